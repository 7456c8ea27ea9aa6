// Package domain contains entity without logic, just meta-data
package domain

type (
	RoomCode  string
	ClientID  string
	RequestID string
	SlotID    string
)

// The three fixed contestant seats, in assignment order.
const (
	SlotOne   SlotID = "contestant-1"
	SlotTwo   SlotID = "contestant-2"
	SlotThree SlotID = "contestant-3"
)

const MaxContestants = 3

// SlotOrder returns the fixed first-fit assignment order.
func SlotOrder() [MaxContestants]SlotID {
	return [MaxContestants]SlotID{SlotOne, SlotTwo, SlotThree}
}

// Key is the short label shown on the contestant's buzzer ("1".."3").
func (s SlotID) Key() string {
	switch s {
	case SlotOne:
		return "1"
	case SlotTwo:
		return "2"
	case SlotThree:
		return "3"
	}
	return ""
}

// Seat is the slot-side view of an assigned contestant.
type Seat struct {
	ClientID ClientID `json:"clientId"`
	Name     string   `json:"name"`
}
