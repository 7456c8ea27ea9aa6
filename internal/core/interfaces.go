package core

// Frame is a raw outbound payload, already encoded for the wire.
type Frame []byte

// SessionID identifies one live connection, not a person: the same
// browser opening two sockets holds two sessions.
type SessionID string

// SignalConnection abstracts the messaging transport for one peer.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	// TrySend queues a frame without blocking. Failure means the frame
	// is gone for this peer; callers never retry.
	TrySend(Frame) error
	// Alive reports whether the underlying socket is still open.
	// Stored handles may outlive their socket, so check before use.
	Alive() bool
	Close()
}
