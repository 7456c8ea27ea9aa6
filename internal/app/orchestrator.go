package app

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/core"
)

// Orchestrator routes every inbound event to the owning room and applies
// the mutate-then-notify pattern. One mutex serializes all handlers, so
// each event runs to completion before the next is processed; that is the
// only concurrency guarantee the room state machine relies on.
type Orchestrator struct {
	mu       sync.Mutex
	Registry *Registry
	Rooms    *core.RoomTable

	// Moderated selects the join workflow: host approval when true
	// (the default), immediate seating when false.
	Moderated bool
}

func NewOrchestrator(moderated bool) *Orchestrator {
	return &Orchestrator{
		Registry:  NewRegistry(),
		Rooms:     core.NewRoomTable(),
		Moderated: moderated,
	}
}

// send encodes and fire-and-forgets one event. Failures are logged and
// swallowed: a dead or slow peer never aborts the operation that
// produced the notification.
func (o *Orchestrator) send(conn core.SignalConnection, v any) {
	if conn == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Msg("event marshal")
		return
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Warn().Err(err).Str("module", "app.orchestrator").Msg("event dropped")
	}
}

// sendToContestants fans an event out to every seated peer of the room.
func (o *Orchestrator) sendToContestants(room *core.Room, v any) {
	for _, c := range room.Contestants() {
		o.send(c.Conn, v)
	}
}

// hostRoom resolves the sender as the live bound host of its room.
// Anything else is an authorization failure and stays silent.
func (o *Orchestrator) hostRoom(sid core.SessionID) (*core.Room, core.SignalConnection, bool) {
	b, conn, ok := o.Registry.BindingOf(sid)
	if !ok || b.Role != core.RoleHost {
		return nil, nil, false
	}
	room, ok := o.Rooms.Lookup(b.RoomCode)
	if !ok || !room.IsHost(sid) {
		return nil, nil, false
	}
	return room, conn, true
}

// detach unwinds a session's current role: the disconnect reconciler
// calls it with the dying session's binding, and re-register/re-join
// paths call it to release a stale role without closing the socket.
func (o *Orchestrator) detach(sid core.SessionID, b core.Binding) {
	room, ok := o.Rooms.Lookup(b.RoomCode)
	if !ok {
		return
	}
	switch b.Role {
	case core.RoleHost:
		// Only tear the room down if this session still moderates it; a
		// replaced host closing late must not kill the new session.
		if room.IsHost(sid) {
			o.teardownRoom(room)
		}
	case core.RoleContestant:
		if slot, ok := room.RemoveContestant(b.ClientID); ok {
			if _, hconn, ok := room.Host(); ok {
				o.send(hconn, core.ContestantLeft{Type: core.EvContestantLeft, SlotID: slot, ClientID: b.ClientID})
			}
		}
	case core.RoleApplicant:
		if _, ok := room.TakePending(b.RequestID); ok {
			if _, hconn, ok := room.Host(); ok {
				o.send(hconn, core.ContestantRequestRemoved{Type: core.EvContestantRequestGone, RequestID: b.RequestID, Reason: core.ReasonLeft})
			}
		}
	}
	o.Registry.SetBinding(sid, core.Binding{})
}

// teardownRoom implements the host-loss path: every contestant is told
// the room closed and cut, every applicant is declined and cut, and all
// mutable room state is wiped.
func (o *Orchestrator) teardownRoom(room *core.Room) {
	contestants, applicants := room.Reset()
	room.ClearHost()

	for _, c := range contestants {
		o.send(c.Conn, core.RoomClosed{Type: core.EvRoomClosed, Reason: core.ReasonHostDisconnected})
		o.Registry.SetBinding(c.SID, core.Binding{})
		c.Conn.Close()
	}
	for _, p := range applicants {
		o.send(p.Conn, core.JoinDenied{Type: core.EvJoinDenied, Reason: core.ReasonHostDisconnected, Message: "The host disconnected."})
		o.Registry.SetBinding(p.SID, core.Binding{})
		p.Conn.Close()
	}
	log.Info().Str("module", "app.orchestrator").Str("code", string(room.Code())).Msg("room torn down")
}

// OnDisconnect is the reconciler for a closed connection. It derives the
// teardown from the session's binding, never from the (already dead)
// socket itself.
func (o *Orchestrator) OnDisconnect(sid core.SessionID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	b, _, ok := o.Registry.BindingOf(sid)
	if !ok {
		return
	}
	defer o.Registry.Unbind(sid)
	if b.Role == core.RoleNone {
		return
	}
	o.detach(sid, b)
	log.Info().Str("module", "app.orchestrator").Str("sid", string(sid)).
		Str("role", b.Role.String()).Str("room", string(b.RoomCode)).Msg("session reconciled")
}
