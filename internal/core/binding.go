package core

import "github.com/dkeye/Buzz/internal/domain"

// Role is what a connection currently is to its room.
type Role int

const (
	RoleNone Role = iota
	RoleHost
	RoleContestant
	RoleApplicant
)

func (r Role) String() string {
	switch r {
	case RoleHost:
		return "host"
	case RoleContestant:
		return "contestant"
	case RoleApplicant:
		return "applicant"
	}
	return "none"
}

// Binding is the sole source of truth for "who is this connection".
// It lives in the Registry, next to the transport handle, never on it.
// ClientID is set only for RoleContestant, RequestID only for RoleApplicant.
type Binding struct {
	Role      Role
	RoomCode  domain.RoomCode
	ClientID  domain.ClientID
	RequestID domain.RequestID
}

func HostBinding(code domain.RoomCode) Binding {
	return Binding{Role: RoleHost, RoomCode: code}
}

func ContestantBinding(code domain.RoomCode, id domain.ClientID) Binding {
	return Binding{Role: RoleContestant, RoomCode: code, ClientID: id}
}

func ApplicantBinding(code domain.RoomCode, id domain.RequestID) Binding {
	return Binding{Role: RoleApplicant, RoomCode: code, RequestID: id}
}
