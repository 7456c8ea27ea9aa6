package core

import (
	"encoding/json"

	"github.com/dkeye/Buzz/internal/domain"
)

// Server-to-client event types.
const (
	EvHostRegistered          = "host-registered"
	EvJoinPending             = "join-pending"
	EvJoinAccepted            = "join-accepted"
	EvJoinDenied              = "join-denied"
	EvContestantRequested     = "contestant-requested"
	EvContestantRequestGone   = "contestant-request-removed"
	EvContestantRequestError  = "contestant-request-error"
	EvContestantJoined        = "contestant-joined"
	EvContestantLeft          = "contestant-left"
	EvContestantBuzz          = "contestant-buzz"
	EvSync                    = "sync"
	EvBuzzersState            = "buzzers-state"
	EvBuzzResult              = "buzz-result"
	EvRoomClosed              = "room-closed"
)

// Client-to-server action types.
const (
	ActRegisterHost      = "register-host"
	ActJoinContestant    = "join-contestant"
	ActBroadcast         = "broadcast"
	ActBuzzersState      = "buzzers-state"
	ActBuzzResult        = "buzz-result"
	ActContestantBuzz    = "contestant-buzz"
	ActApproveContestant = "approve-contestant"
	ActDenyContestant    = "deny-contestant"
)

// Reasons carried by denial and removal events.
const (
	ReasonRoomNotFound     = "room-not-found"
	ReasonSlotsFull        = "slots-full"
	ReasonDenied           = "denied"
	ReasonApproved         = "approved"
	ReasonLeft             = "left"
	ReasonFull             = "full"
	ReasonExpired          = "expired"
	ReasonUnavailable      = "unavailable"
	ReasonHostReplaced     = "host-replaced"
	ReasonRoomRestarted    = "room-restarted"
	ReasonHostDisconnected = "host-disconnected"
)

type HostRegistered struct {
	Type     string          `json:"type"`
	RoomCode domain.RoomCode `json:"roomCode"`
}

type JoinPending struct {
	Type      string           `json:"type"`
	RoomCode  domain.RoomCode  `json:"roomCode"`
	RequestID domain.RequestID `json:"requestId"`
}

type JoinAccepted struct {
	Type     string          `json:"type"`
	RoomCode domain.RoomCode `json:"roomCode"`
	SlotID   domain.SlotID   `json:"slotId"`
	ClientID domain.ClientID `json:"clientId"`
	Key      string          `json:"key"`
	Name     string          `json:"name"`
}

type JoinDenied struct {
	Type    string `json:"type"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

type ContestantRequested struct {
	Type        string           `json:"type"`
	RequestID   domain.RequestID `json:"requestId"`
	Name        string           `json:"name"`
	RequestedAt int64            `json:"requestedAt"`
}

type ContestantRequestRemoved struct {
	Type      string           `json:"type"`
	RequestID domain.RequestID `json:"requestId"`
	Reason    string           `json:"reason"`
}

type ContestantRequestError struct {
	Type      string           `json:"type"`
	RequestID domain.RequestID `json:"requestId"`
	Reason    string           `json:"reason"`
}

type ContestantJoined struct {
	Type     string          `json:"type"`
	SlotID   domain.SlotID   `json:"slotId"`
	ClientID domain.ClientID `json:"clientId"`
	Key      string          `json:"key"`
	Name     string          `json:"name"`
}

type ContestantLeft struct {
	Type     string          `json:"type"`
	SlotID   domain.SlotID   `json:"slotId"`
	ClientID domain.ClientID `json:"clientId"`
}

type BuzzForward struct {
	Type     string          `json:"type"`
	SlotID   domain.SlotID   `json:"slotId"`
	ClientID domain.ClientID `json:"clientId"`
	Name     string          `json:"name"`
}

type Sync struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type BuzzersState struct {
	Type    string `json:"type"`
	Open    bool   `json:"open"`
	Message string `json:"message,omitempty"`
}

type BuzzResult struct {
	Type     string          `json:"type"`
	ClientID domain.ClientID `json:"clientId,omitempty"`
	Name     string          `json:"name,omitempty"`
}

type RoomClosed struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}
