package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/core"
	"github.com/dkeye/Buzz/internal/domain"
)

// RegisterHost binds the session as moderator of the requested room,
// generating a code when the supplied one is unusable. Registering always
// yields a clean room: any prior host is replaced and every contestant
// and applicant of an earlier session is evicted.
func (o *Orchestrator) RegisterHost(sid core.SessionID, desired string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	b, conn, ok := o.Registry.BindingOf(sid)
	if !ok {
		return
	}

	code, valid := domain.CleanCode(desired)
	if !valid {
		code = core.NewRoomCode()
	}

	// Release whatever the sender was before it becomes a host. A host
	// re-keying its own room is not a departure; the reset below evicts
	// its peers with the restart reason instead.
	if b.Role != core.RoleNone && !(b.Role == core.RoleHost && b.RoomCode == code) {
		o.detach(sid, b)
	}

	room := o.Rooms.Ensure(code)

	if prevSID, prevConn, ok := room.Host(); ok && prevSID != sid {
		o.send(prevConn, core.RoomClosed{Type: core.EvRoomClosed, Reason: core.ReasonHostReplaced})
		o.Registry.SetBinding(prevSID, core.Binding{})
		prevConn.Close()
	}

	contestants, applicants := room.Reset()
	for _, c := range contestants {
		o.send(c.Conn, core.RoomClosed{Type: core.EvRoomClosed, Reason: core.ReasonRoomRestarted})
		o.Registry.SetBinding(c.SID, core.Binding{})
		c.Conn.Close()
	}
	for _, p := range applicants {
		o.send(p.Conn, core.JoinDenied{Type: core.EvJoinDenied, Reason: core.ReasonRoomRestarted, Message: "The host restarted the room."})
		o.Registry.SetBinding(p.SID, core.Binding{})
		p.Conn.Close()
	}

	room.SetHost(sid, conn)
	o.Registry.SetBinding(sid, core.HostBinding(code))
	o.send(conn, core.HostRegistered{Type: core.EvHostRegistered, RoomCode: code})
	log.Info().Str("module", "app.host").Str("sid", string(sid)).Str("code", string(code)).Msg("host registered")
}

// ApproveContestant consumes a pending request and seats the applicant.
func (o *Orchestrator) ApproveContestant(sid core.SessionID, requestID domain.RequestID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	room, hconn, ok := o.hostRoom(sid)
	if !ok {
		return
	}

	p, ok := room.TakePending(requestID)
	if !ok {
		o.send(hconn, core.ContestantRequestError{Type: core.EvContestantRequestError, RequestID: requestID, Reason: core.ReasonExpired})
		return
	}

	if !p.Conn.Alive() {
		o.Registry.SetBinding(p.SID, core.Binding{})
		o.send(hconn, core.ContestantRequestRemoved{Type: core.EvContestantRequestGone, RequestID: requestID, Reason: core.ReasonLeft})
		return
	}

	c, ok := room.AssignSlot(p.SID, p.Conn, p.Name)
	if !ok {
		o.Registry.SetBinding(p.SID, core.Binding{})
		o.send(p.Conn, core.JoinDenied{Type: core.EvJoinDenied, Reason: core.ReasonSlotsFull, Message: "All contestant slots are full."})
		o.send(hconn, core.ContestantRequestRemoved{Type: core.EvContestantRequestGone, RequestID: requestID, Reason: core.ReasonFull})
		return
	}

	o.Registry.SetBinding(p.SID, core.ContestantBinding(room.Code(), c.Client))
	o.send(p.Conn, core.JoinAccepted{
		Type:     core.EvJoinAccepted,
		RoomCode: room.Code(),
		SlotID:   c.Slot,
		ClientID: c.Client,
		Key:      c.Slot.Key(),
		Name:     c.Name,
	})
	o.send(hconn, core.ContestantRequestRemoved{Type: core.EvContestantRequestGone, RequestID: requestID, Reason: core.ReasonApproved})
	o.send(hconn, core.ContestantJoined{Type: core.EvContestantJoined, SlotID: c.Slot, ClientID: c.Client, Key: c.Slot.Key(), Name: c.Name})
}

// DenyContestant discards a pending request and informs both sides.
func (o *Orchestrator) DenyContestant(sid core.SessionID, requestID domain.RequestID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	room, hconn, ok := o.hostRoom(sid)
	if !ok {
		return
	}

	p, ok := room.TakePending(requestID)
	if !ok {
		o.send(hconn, core.ContestantRequestError{Type: core.EvContestantRequestError, RequestID: requestID, Reason: core.ReasonUnavailable})
		return
	}

	if p.Conn.Alive() {
		o.Registry.SetBinding(p.SID, core.Binding{})
		o.send(p.Conn, core.JoinDenied{Type: core.EvJoinDenied, Reason: core.ReasonDenied, Message: "The host declined your request."})
	}
	o.send(hconn, core.ContestantRequestRemoved{Type: core.EvContestantRequestGone, RequestID: requestID, Reason: core.ReasonDenied})
}

// Broadcast forwards an arbitrary host payload verbatim to every seated
// contestant as a sync event.
func (o *Orchestrator) Broadcast(sid core.SessionID, payload json.RawMessage) {
	o.mu.Lock()
	defer o.mu.Unlock()

	room, _, ok := o.hostRoom(sid)
	if !ok {
		return
	}
	o.sendToContestants(room, core.Sync{Type: core.EvSync, Payload: payload})
}

// SetBuzzers flips the host-controlled gate. Opening clears the lock.
func (o *Orchestrator) SetBuzzers(sid core.SessionID, open bool, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	room, _, ok := o.hostRoom(sid)
	if !ok {
		return
	}
	room.SetBuzzers(open)
	o.sendToContestants(room, core.BuzzersState{Type: core.EvBuzzersState, Open: open, Message: message})
}

// ConfirmBuzz records the host-declared outcome as the buzzer lock and
// broadcasts it. The host is the sole writer of the lock.
func (o *Orchestrator) ConfirmBuzz(sid core.SessionID, clientID domain.ClientID, name string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	room, _, ok := o.hostRoom(sid)
	if !ok {
		return
	}
	room.SetActiveResponder(clientID)
	o.sendToContestants(room, core.BuzzResult{Type: core.EvBuzzResult, ClientID: clientID, Name: name})
}
