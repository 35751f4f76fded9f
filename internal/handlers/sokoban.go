package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ndsweep/ndsweep-server/internal/sokoban"
)

type Sokoban struct {
	logger *slog.Logger
}

func NewSokoban(logger *slog.Logger) *Sokoban {
	return &Sokoban{logger: logger}
}

type SolveRequest struct {
	Level [][][]string `json:"level"`
}

type SolveResponse struct {
	Solvable bool     `json:"solvable"`
	Moves    []string `json:"moves,omitempty"`
}

// Solve runs the breadth-first solver over a posted level and returns
// a shortest move sequence, if one exists.
func (s Sokoban) Solve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return
	}

	game, err := sokoban.NewGame(req.Level)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return
	}

	moves, ok := sokoban.Solve(game)
	resp := SolveResponse{Solvable: ok}
	for _, move := range moves {
		resp.Moves = append(resp.Moves, move.String())
	}
	sendJSONOrLog(w, s.logger, resp)
}
