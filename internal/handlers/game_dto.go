package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/ndsweep/ndsweep-server/internal/mines"
	"github.com/ndsweep/ndsweep-server/internal/repository"
)

// NewGameDTO carries board shape and mine count as query parameters;
// the dim key repeats once per axis: ?dim=2&dim=4&mine_count=3.
type NewGameDTO struct {
	Dims      []int `schema:"dim,required"`
	MineCount int   `schema:"mine_count,required"`
}

// CellDTO carries one coordinate, the cell key repeated once per axis.
type CellDTO struct {
	Cell []int `schema:"cell,required"`
}

func newQueryDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := newQueryDecoder().Decode(&dto, src)
	return dto, err
}

func ParseCellDTO(src map[string][]string) (mines.Coord, error) {
	var dto CellDTO
	if err := newQueryDecoder().Decode(&dto, src); err != nil {
		return nil, err
	}
	return mines.Coord(dto.Cell), nil
}

type GameSessionDTO struct {
	GameSessionId string     `json:"game_session_id"`
	Dims          mines.Dims `json:"dims"`
	MineCount     int        `json:"mine_count"`
	Status        string     `json:"status"`
	Grid          any        `json:"grid"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
}

// NewGameSessionDTO projects a stored session for the wire. Terminal
// games render fully revealed; ongoing games respect visibility.
func NewGameSessionDTO(
	session *repository.GameSession, game *mines.GameState,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Dims:          game.Dims,
		MineCount:     game.MineCount(),
		Status:        game.Status.String(),
		Grid:          game.Render(game.Status.Terminal()).Nested(),
		StartedAt:     session.StartedAt.Time.UnixMilli(),
		EndedAt:       endedAt,
	}
}
