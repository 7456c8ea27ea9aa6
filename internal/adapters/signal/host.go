package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/core"
	"github.com/dkeye/Buzz/internal/domain"
)

func (ctl *Controller) handleRegisterHost(sid core.SessionID, data []byte) {
	var p struct {
		RoomCode string `json:"roomCode"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad register-host payload")
		return
	}
	ctl.Orch.RegisterHost(sid, p.RoomCode)
}

func (ctl *Controller) handleApprove(sid core.SessionID, data []byte) {
	var p struct {
		RequestID domain.RequestID `json:"requestId"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad approve payload")
		return
	}
	ctl.Orch.ApproveContestant(sid, p.RequestID)
}

func (ctl *Controller) handleDeny(sid core.SessionID, data []byte) {
	var p struct {
		RequestID domain.RequestID `json:"requestId"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad deny payload")
		return
	}
	ctl.Orch.DenyContestant(sid, p.RequestID)
}

func (ctl *Controller) handleBroadcast(sid core.SessionID, data []byte) {
	var p struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad broadcast payload")
		return
	}
	ctl.Orch.Broadcast(sid, p.Payload)
}

func (ctl *Controller) handleBuzzersState(sid core.SessionID, data []byte) {
	var p struct {
		Open    bool   `json:"open"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad buzzers-state payload")
		return
	}
	ctl.Orch.SetBuzzers(sid, p.Open, p.Message)
}

func (ctl *Controller) handleBuzzResult(sid core.SessionID, data []byte) {
	var p struct {
		ClientID domain.ClientID `json:"clientId"`
		Name     string          `json:"name"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad buzz-result payload")
		return
	}
	ctl.Orch.ConfirmBuzz(sid, p.ClientID, p.Name)
}
