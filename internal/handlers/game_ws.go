package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ndsweep/ndsweep-server/internal/mines"
	"github.com/ndsweep/ndsweep-server/internal/repository"
)

// Live-play protocol: one command per line,
//
//	d <c0> <c1> ... <cR-1>   dig the cell
//	r                        forfeit
//	g                        no-op, just resend state
//
// The session DTO is sent back after every message.
const (
	wsDig     = "d"
	wsForfeit = "r"
	wsRefresh = "g"
)

func parseWsCell(args []string, rank int) (mines.Coord, error) {
	if len(args) != rank {
		return nil, fmt.Errorf("dig needs exactly %d components", rank)
	}
	cell := make(mines.Coord, rank)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("component %d must be an int", i)
		}
		cell[i] = v
	}
	return cell, nil
}

func (g GameHandler) executeWs(game *mines.GameState, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := tokens[0], tokens[1:]
	switch cmd {
	case wsRefresh:
		return nil
	case wsForfeit:
		game.Forfeit()
		return nil
	case wsDig:
		cell, err := parseWsCell(args, game.Dims.Rank())
		if err != nil {
			return err
		}
		_, err = game.Dig(cell)
		return err
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (g GameHandler) wsRunGameLoop(
	ctx context.Context,
	conn *websocket.Conn,
	session *repository.GameSession,
	game *mines.GameState,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			if err := g.executeWs(game, strings.TrimSpace(line)); err != nil {
				return err
			}
			if game.Status.Terminal() {
				break
			}
		}

		stateBuf, err := game.Bytes()
		if err != nil {
			return fmt.Errorf("unable to serialize game state: %w", err)
		}
		status := game.Status.String()
		params := repository.UpdateGameSessionParams{
			Status: &status,
			State:  &stateBuf,
		}
		if game.Status.Terminal() && !session.EndedAt.Valid {
			endedAt := time.Now().UTC()
			params.EndedAt = &endedAt
			session.EndedAt.Time = endedAt
			session.EndedAt.Valid = true
		}
		if _, err := g.repo.UpdateGameSession(
			ctx, session.GameSessionId, params,
		); err != nil {
			return fmt.Errorf("unable to update session in db: %w", err)
		}

		if err := conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSessionGame(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", "error", err)
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection", "session", session.GameSessionId)

	err = g.wsRunGameLoop(r.Context(), conn, session, game)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		g.logger.Warn("error in ws loop", "error", err)
	}
}
