package core

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/dkeye/Buzz/internal/domain"
)

func NewClientID() domain.ClientID {
	return domain.ClientID(uuid.NewString())
}

func NewRequestID() domain.RequestID {
	return domain.RequestID(uuid.NewString())
}

// NewRoomCode draws uniformly over the full 4-digit range. Codes are not
// checked for collision: rooms live for the whole process and a duplicate
// draw just hands the new host an existing room, which registration resets anyway.
func NewRoomCode() domain.RoomCode {
	return domain.RoomCode(strconv.Itoa(1000 + rand.Intn(9000)))
}
