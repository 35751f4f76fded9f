package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ndsweep/ndsweep-server/internal/config"
	"github.com/ndsweep/ndsweep-server/internal/middleware"
	"github.com/ndsweep/ndsweep-server/internal/mines"
	"github.com/ndsweep/ndsweep-server/internal/repository"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

var errInvalidCell = fmt.Errorf("cell is out of bounds for the requested board")

// NewGame creates a session from ?dim=...&mine_count=...&cell=...; the
// cell is the opening dig and never holds a mine.
func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseNewGameDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	dims := mines.Dims(dto.Dims)

	cell, err := ParseCellDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if !dims.Contains(cell) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(errInvalidCell))
		return
	}

	mineCoords, err := mines.RandomMines(dims, dto.MineCount, cell, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game, err := mines.NewGame(dims, mineCoords)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}
	if _, err := game.Dig(cell); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to open starting cell", "error", err)
		return
	}

	var sessionParams repository.CreateGameSessionParams
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		g.logger.Debug("creating player session", "claims", claims)
		sessionParams.PlayerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, sessionParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) fetchSessionGame(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *mines.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := mines.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}
	return session, game, true
}

func (g GameHandler) persistGame(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *mines.GameState,
) bool {
	buf, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", "error", err)
		return false
	}

	status := game.Status.String()
	params := repository.UpdateGameSessionParams{
		Status: &status,
		State:  &buf,
	}
	if game.Status.Terminal() && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
		session.EndedAt.Time = endedAt
		session.EndedAt.Valid = true
	}

	if _, err := g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, params,
	); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return false
	}
	return true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSessionGame(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) Dig(w http.ResponseWriter, r *http.Request) {
	cell, err := ParseCellDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, game, ok := g.fetchSessionGame(w, r)
	if !ok {
		return
	}

	revealed, err := game.Dig(cell)
	var oob mines.OutOfBoundsError
	if errors.As(err, &oob) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("dig failed", "error", err)
		return
	}
	g.logger.Debug("dig", "session", session.GameSessionId,
		"cell", cell, "revealed", revealed, "status", game.Status)

	if !g.persistGame(w, r, session, game) {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSessionGame(w, r)
	if !ok {
		return
	}

	game.Forfeit()

	if !g.persistGame(w, r, session, game) {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// Render returns the glyph grid alone; ?all=1 reveals everything, for
// debugging and post-game displays.
func (g GameHandler) Render(w http.ResponseWriter, r *http.Request) {
	_, game, ok := g.fetchSessionGame(w, r)
	if !ok {
		return
	}
	revealAll := r.URL.Query().Get("all") == "1"
	sendJSONOrLog(w, g.logger, map[string]any{
		"status": game.Status.String(),
		"grid":   game.Render(revealAll).Nested(),
	})
}

func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter repository.HighscoreFilter

	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if dims := query["dim"]; len(dims) > 0 {
		for _, axis := range dims {
			v, err := strconv.Atoi(axis)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				sendJSONOrLog(w, g.logger, wrapError(err))
				return
			}
			filter.Dims = append(filter.Dims, v)
		}
	}
	if mineCount := query.Get("mine_count"); mineCount != "" {
		v, err := strconv.Atoi(mineCount)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		filter.MineCount = &v
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}
	sendJSONOrLog(w, g.logger, highscores)
}
