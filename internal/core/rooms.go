package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Buzz/internal/domain"
)

// RoomTable is the process-wide code -> room mapping. Rooms are created
// on demand and live until process restart; there is no eviction.
type RoomTable struct {
	mu    sync.RWMutex
	rooms map[domain.RoomCode]*Room
}

func NewRoomTable() *RoomTable {
	return &RoomTable{rooms: make(map[domain.RoomCode]*Room)}
}

// Ensure returns the room for code, creating an empty one if absent.
func (t *RoomTable) Ensure(code domain.RoomCode) *Room {
	t.mu.RLock()
	room, ok := t.rooms[code]
	t.mu.RUnlock()
	if ok {
		return room
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if room, ok = t.rooms[code]; ok {
		return room
	}
	room = NewRoom(code)
	t.rooms[code] = room
	log.Info().Str("module", "core.rooms").Str("code", string(code)).Msg("room created")
	return room
}

// Lookup is a pure read; no room is created.
func (t *RoomTable) Lookup(code domain.RoomCode) (*Room, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	room, ok := t.rooms[code]
	return room, ok
}

type RoomInfo struct {
	Code        domain.RoomCode `json:"code"`
	Contestants int             `json:"contestants"`
	Pending     int             `json:"pending"`
	HostBound   bool            `json:"hostBound"`
	BuzzersOpen bool            `json:"buzzersOpen"`
}

func (t *RoomTable) List() []RoomInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]RoomInfo, 0, len(t.rooms))
	for code, r := range t.rooms {
		out = append(out, RoomInfo{
			Code:        code,
			Contestants: r.ContestantCount(),
			Pending:     r.PendingCount(),
			HostBound:   r.HostBound(),
			BuzzersOpen: r.BuzzersOpen(),
		})
	}
	return out
}
