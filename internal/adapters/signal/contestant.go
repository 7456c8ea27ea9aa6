package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/core"
	"github.com/dkeye/Buzz/internal/domain"
)

func (ctl *Controller) handleJoinContestant(sid core.SessionID, data []byte) {
	var p struct {
		RoomCode string `json:"roomCode"`
		Name     string `json:"name"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad join-contestant payload")
		return
	}
	ctl.Orch.JoinContestant(sid, p.RoomCode, p.Name)
}

func (ctl *Controller) handleBuzz(sid core.SessionID, data []byte) {
	var p struct {
		SlotID   domain.SlotID   `json:"slotId"`
		ClientID domain.ClientID `json:"clientId"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad contestant-buzz payload")
		return
	}
	ctl.Orch.Buzz(sid, p.SlotID, p.ClientID)
}
