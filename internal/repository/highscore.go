package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ndsweep/ndsweep-server/internal/mines"
)

type Highscore struct {
	GameSessionId string  `json:"game_session_id"`
	Username      *string `json:"username"`
	Dims          []int32 `json:"dims"`
	MineCount     int32   `json:"mine_count"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username  *string
	Dims      mines.Dims
	MineCount *int
}

func (f HighscoreFilter) whereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Dims != nil {
		clauses = append(clauses, "dims = @dims")
		args["dims"] = dimsColumn(f.Dims)
	}
	if f.MineCount != nil {
		clauses = append(clauses, "mine_count = @mine_count")
		args["mine_count"] = *f.MineCount
	}
	return strings.Join(clauses, " AND "), args
}

// GetHighscores lists won sessions ordered by playtime, optionally
// narrowed to one player, board shape or mine count.
func (q Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		game_session_id::text,
		username,
		dims,
		mine_count,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		status = 'victory'
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.whereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
