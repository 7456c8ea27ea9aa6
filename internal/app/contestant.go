package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/core"
	"github.com/dkeye/Buzz/internal/domain"
)

// JoinContestant handles a join attempt against an existing room. In
// moderated mode the request parks in the pending set until the host
// rules on it; otherwise a free slot is granted on the spot.
func (o *Orchestrator) JoinContestant(sid core.SessionID, rawCode, rawName string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	b, conn, ok := o.Registry.BindingOf(sid)
	if !ok {
		return
	}
	if b.Role == core.RoleHost || b.Role == core.RoleContestant {
		log.Warn().Str("module", "app.contestant").Str("sid", string(sid)).
			Str("role", b.Role.String()).Msg("join ignored for bound session")
		return
	}

	name := domain.CleanName(rawName)

	code, valid := domain.CleanCode(rawCode)
	room, found := (*core.Room)(nil), false
	if valid {
		room, found = o.Rooms.Lookup(code)
	}
	if !found || !room.HostBound() {
		o.send(conn, core.JoinDenied{Type: core.EvJoinDenied, Reason: core.ReasonRoomNotFound, Message: "Room not found."})
		return
	}

	if !o.Moderated {
		o.seatImmediately(sid, conn, room, name)
		return
	}

	_, hconn, _ := room.Host()

	// An outstanding request in this room is refreshed in place; no new
	// token is minted.
	if b.Role == core.RoleApplicant && b.RoomCode == code {
		if room.RenamePending(b.RequestID, name) {
			o.send(conn, core.JoinPending{Type: core.EvJoinPending, RoomCode: code, RequestID: b.RequestID})
			o.send(hconn, core.ContestantRequested{Type: core.EvContestantRequested, RequestID: b.RequestID, Name: name, RequestedAt: time.Now().UnixMilli()})
			return
		}
	}
	// A stale request in some other room is released first; one pending
	// request per connection.
	if b.Role == core.RoleApplicant {
		o.detach(sid, b)
	}

	requestID := core.NewRequestID()
	now := time.Now()
	room.AddPending(requestID, &core.PendingJoin{SID: sid, Conn: conn, Name: name, RequestedAt: now})
	o.Registry.SetBinding(sid, core.ApplicantBinding(code, requestID))

	o.send(conn, core.JoinPending{Type: core.EvJoinPending, RoomCode: code, RequestID: requestID})
	o.send(hconn, core.ContestantRequested{Type: core.EvContestantRequested, RequestID: requestID, Name: name, RequestedAt: now.UnixMilli()})
	log.Info().Str("module", "app.contestant").Str("sid", string(sid)).
		Str("code", string(code)).Str("request", string(requestID)).Msg("join pending")
}

// seatImmediately is the unmoderated variant: no pending bookkeeping,
// the room is either open or full.
func (o *Orchestrator) seatImmediately(sid core.SessionID, conn core.SignalConnection, room *core.Room, name string) {
	c, ok := room.AssignSlot(sid, conn, name)
	if !ok {
		o.send(conn, core.JoinDenied{Type: core.EvJoinDenied, Reason: core.ReasonSlotsFull, Message: "All contestant slots are full."})
		return
	}
	o.Registry.SetBinding(sid, core.ContestantBinding(room.Code(), c.Client))
	o.send(conn, core.JoinAccepted{
		Type:     core.EvJoinAccepted,
		RoomCode: room.Code(),
		SlotID:   c.Slot,
		ClientID: c.Client,
		Key:      c.Slot.Key(),
		Name:     c.Name,
	})
	if _, hconn, ok := room.Host(); ok {
		o.send(hconn, core.ContestantJoined{Type: core.EvContestantJoined, SlotID: c.Slot, ClientID: c.Client, Key: c.Slot.Key(), Name: c.Name})
	}
}

// Buzz arbitrates one contestant buzz. A claim that does not match the
// seat is dropped without a reply; a closed gate or absent host answers
// with a locked state; a taken lock answers with the standing result.
// Otherwise the buzz goes to the host alone, which stays the sole writer
// of the lock.
func (o *Orchestrator) Buzz(sid core.SessionID, slot domain.SlotID, clientID domain.ClientID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	b, conn, ok := o.Registry.BindingOf(sid)
	if !ok || b.Role != core.RoleContestant {
		return
	}
	room, ok := o.Rooms.Lookup(b.RoomCode)
	if !ok {
		return
	}

	if b.ClientID != clientID || !room.VerifySeat(slot, clientID) {
		log.Warn().Str("module", "app.contestant").Str("sid", string(sid)).
			Str("slot", string(slot)).Msg("stale buzz dropped")
		return
	}

	_, hconn, hostLive := room.Host()
	if !room.BuzzersOpen() || !hostLive {
		o.send(conn, core.BuzzersState{Type: core.EvBuzzersState, Open: false})
		return
	}

	if respID, respName, taken := room.ActiveResponder(); taken {
		o.send(conn, core.BuzzResult{Type: core.EvBuzzResult, ClientID: respID, Name: respName})
		return
	}

	c, ok := room.Contestant(clientID)
	if !ok {
		return
	}
	o.send(hconn, core.BuzzForward{Type: core.EvContestantBuzz, SlotID: slot, ClientID: clientID, Name: c.Name})
	log.Info().Str("module", "app.contestant").Str("code", string(room.Code())).
		Str("slot", string(slot)).Msg("buzz forwarded")
}
