package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/core"
)

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.pingPeriod())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *Controller) readPump(ctx context.Context, sid core.SessionID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		c.Close()
		ctl.Orch.Registry.Cancel(sid)
		ctl.Orch.OnDisconnect(sid)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				log.Info().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				return
			}
			ctl.dispatch(sid, c, data)
		}
	}
}

// dispatch routes one envelope by its action tag. `type` is accepted as
// an alias for `action`. Unparseable input is dropped without a reply.
func (ctl *Controller) dispatch(sid core.SessionID, c *wsConn, data []byte) {
	var env struct {
		Action string `json:"action"`
		Type   string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad json")
		return
	}
	action := env.Action
	if action == "" {
		action = env.Type
	}

	switch action {
	case core.ActRegisterHost:
		ctl.handleRegisterHost(sid, data)
	case core.ActJoinContestant:
		ctl.handleJoinContestant(sid, data)
	case core.ActBroadcast:
		ctl.handleBroadcast(sid, data)
	case core.ActBuzzersState:
		ctl.handleBuzzersState(sid, data)
	case core.ActBuzzResult:
		ctl.handleBuzzResult(sid, data)
	case core.ActContestantBuzz:
		ctl.handleBuzz(sid, data)
	case core.ActApproveContestant:
		ctl.handleApprove(sid, data)
	case core.ActDenyContestant:
		ctl.handleDeny(sid, data)
	case "ping":
		ctl.handlePing(c)
	default:
		log.Warn().Str("module", "signal").Str("action", action).Msg("unknown action")
	}
}
