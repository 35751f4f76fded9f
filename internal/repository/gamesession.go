package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ndsweep/ndsweep-server/internal/mines"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Dims          []int32
	MineCount     int32
	Status        string
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateGameSessionParams struct {
	PlayerId *int64
}

func dimsColumn(dims mines.Dims) []int32 {
	col := make([]int32, len(dims))
	for i, axis := range dims {
		col[i] = int32(axis)
	}
	return col
}

func (q Queries) CreateGameSession(
	ctx context.Context, state *mines.GameState, params CreateGameSessionParams,
) (*GameSession, error) {
	buf, err := state.Bytes()
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, dims, mine_count, status, state
		)
		VALUES (
			@player_id, @dims, @mine_count, @status, @state
		)
		RETURNING *;`,
		pgx.NamedArgs{
			"player_id":  params.PlayerId,
			"dims":       dimsColumn(state.Dims),
			"mine_count": state.MineCount(),
			"status":     state.Status.String(),
			"state":      buf,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Status  *string
	EndedAt *time.Time
	State   *[]byte
}

func (p UpdateGameSessionParams) setClause() (string, pgx.NamedArgs) {
	parts := make([]string, 0, 4)
	args := pgx.NamedArgs{}

	if p.Status != nil {
		parts = append(parts, "status = @status")
		args["status"] = *p.Status
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}
	parts = append(parts, "updated_at = now()")

	clause := parts[0]
	for _, part := range parts[1:] {
		clause += ", " + part
	}
	return clause, args
}

func (q Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.setClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
