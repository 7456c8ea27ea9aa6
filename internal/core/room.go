package core

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/domain"
)

// Contestant is one seated participant: its transport handle plus the
// seat bookkeeping mirrored in the slot table.
type Contestant struct {
	SID    SessionID
	Conn   SignalConnection
	Name   string
	Slot   domain.SlotID
	Client domain.ClientID
}

// PendingJoin is a contestant-side request awaiting host approval.
type PendingJoin struct {
	SID         SessionID
	Conn        SignalConnection
	Name        string
	RequestedAt time.Time
}

// Room is the aggregate state machine for one session. Mutations are
// serialized by the orchestrator; the internal lock only protects
// read-side callers (inspection endpoints) against torn reads.
//
// Invariant: every occupied slot has exactly one matching contestants
// entry and vice versa.
type Room struct {
	code domain.RoomCode

	mu      sync.RWMutex
	hostSID SessionID
	host    SignalConnection

	slots       map[domain.SlotID]domain.Seat
	contestants map[domain.ClientID]*Contestant
	pending     map[domain.RequestID]*PendingJoin

	buzzersOpen     bool
	activeResponder domain.ClientID
}

func NewRoom(code domain.RoomCode) *Room {
	return &Room{
		code:        code,
		slots:       make(map[domain.SlotID]domain.Seat),
		contestants: make(map[domain.ClientID]*Contestant),
		pending:     make(map[domain.RequestID]*PendingJoin),
	}
}

func (r *Room) Code() domain.RoomCode { return r.code }

// Host returns the bound moderator connection. ok is false when no host
// is bound or its socket has already died.
func (r *Room) Host() (SessionID, SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.host == nil || !r.host.Alive() {
		return "", nil, false
	}
	return r.hostSID, r.host, true
}

func (r *Room) SetHost(sid SessionID, conn SignalConnection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hostSID = sid
	r.host = conn
	log.Info().Str("module", "core.room").Str("code", string(r.code)).Str("sid", string(sid)).Msg("host bound")
}

// IsHost reports whether sid is the bound host, alive or not. Teardown
// paths use it: by the time a dead socket is reconciled Host() already
// refuses to return it.
func (r *Room) IsHost(sid SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hostSID != "" && r.hostSID == sid
}

func (r *Room) ClearHost() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hostSID = ""
	r.host = nil
}

// Reset wipes all mutable session state and returns the evicted peers so
// the caller can notify and close them. The room code survives.
func (r *Room) Reset() (contestants []*Contestant, applicants []*PendingJoin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contestants {
		contestants = append(contestants, c)
	}
	for _, p := range r.pending {
		applicants = append(applicants, p)
	}

	r.slots = make(map[domain.SlotID]domain.Seat)
	r.contestants = make(map[domain.ClientID]*Contestant)
	r.pending = make(map[domain.RequestID]*PendingJoin)
	r.buzzersOpen = false
	r.activeResponder = ""

	log.Info().Str("module", "core.room").Str("code", string(r.code)).
		Int("contestants", len(contestants)).Int("pending", len(applicants)).Msg("room reset")
	return contestants, applicants
}

// AssignSlot seats a peer in the first empty slot, minting a fresh client
// id. ok is false iff all three slots are occupied.
func (r *Room) AssignSlot(sid SessionID, conn SignalConnection, name string) (*Contestant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range domain.SlotOrder() {
		if _, taken := r.slots[slot]; taken {
			continue
		}
		c := &Contestant{
			SID:    sid,
			Conn:   conn,
			Name:   name,
			Slot:   slot,
			Client: NewClientID(),
		}
		r.slots[slot] = domain.Seat{ClientID: c.Client, Name: name}
		r.contestants[c.Client] = c
		log.Info().Str("module", "core.room").Str("code", string(r.code)).
			Str("slot", string(slot)).Str("client", string(c.Client)).Msg("slot assigned")
		return c, true
	}
	return nil, false
}

// RemoveContestant drops the contestants entry and clears the seat that
// holds its client id. The recorded slot is tried first with a full scan
// as fallback, so drift between the two tables cannot strand a seat.
func (r *Room) RemoveContestant(id domain.ClientID) (domain.SlotID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contestants[id]
	if !ok {
		return "", false
	}
	delete(r.contestants, id)

	freed := c.Slot
	if seat, ok := r.slots[freed]; ok && seat.ClientID == id {
		delete(r.slots, freed)
	} else {
		for slot, seat := range r.slots {
			if seat.ClientID == id {
				freed = slot
				delete(r.slots, slot)
				break
			}
		}
	}
	if r.activeResponder == id {
		r.activeResponder = ""
	}
	log.Info().Str("module", "core.room").Str("code", string(r.code)).
		Str("slot", string(freed)).Str("client", string(id)).Msg("contestant removed")
	return freed, true
}

func (r *Room) Contestant(id domain.ClientID) (*Contestant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contestants[id]
	return c, ok
}

// Contestants returns a snapshot of all seated peers for fan-out.
func (r *Room) Contestants() []*Contestant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Contestant, 0, len(r.contestants))
	for _, c := range r.contestants {
		out = append(out, c)
	}
	return out
}

// VerifySeat reports whether the slot currently holds exactly this client.
func (r *Room) VerifySeat(slot domain.SlotID, id domain.ClientID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seat, ok := r.slots[slot]
	return ok && seat.ClientID == id
}

func (r *Room) AddPending(id domain.RequestID, p *PendingJoin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[id] = p
}

// RenamePending updates a stored request in place. Re-requesting while
// pending refreshes the name instead of minting a duplicate token.
func (r *Room) RenamePending(id domain.RequestID, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pending[id]
	if !ok {
		return false
	}
	p.Name = name
	return true
}

// TakePending removes and returns a pending request.
func (r *Room) TakePending(id domain.RequestID) (*PendingJoin, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pending[id]
	if ok {
		delete(r.pending, id)
	}
	return p, ok
}

// SetBuzzers adopts the host-controlled gate. Opening always clears the
// lock: a fresh window starts with no responder.
func (r *Room) SetBuzzers(open bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buzzersOpen = open
	if open {
		r.activeResponder = ""
	}
}

func (r *Room) BuzzersOpen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.buzzersOpen
}

// SetActiveResponder records the host-declared lock holder. Only the
// host's explicit buzz-result writes this; a raw buzz never does.
func (r *Room) SetActiveResponder(id domain.ClientID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeResponder = id
}

// ActiveResponder returns the current lock holder and its display name,
// or ok=false when the buzzer is unclaimed.
func (r *Room) ActiveResponder() (domain.ClientID, string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.activeResponder == "" {
		return "", "", false
	}
	name := ""
	if c, ok := r.contestants[r.activeResponder]; ok {
		name = c.Name
	}
	return r.activeResponder, name, true
}

func (r *Room) ContestantCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contestants)
}

func (r *Room) OccupiedSlots() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots)
}

func (r *Room) PendingCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pending)
}

func (r *Room) HostBound() bool {
	_, _, ok := r.Host()
	return ok
}
