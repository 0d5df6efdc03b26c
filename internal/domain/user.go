package domain

// User represents a bot user as seen by the transport
type User struct {
	ID     int64
	Handle string
}

// State represents user's current interaction state
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingQuestion State = "awaiting_question"
	StateAwaitingFeedback State = "awaiting_feedback"
)

// DialogState holds per-user conversation state. It lives in process memory
// for the lifetime of the process; retention is unbounded (known limitation).
type DialogState struct {
	State   State
	Greeted bool // welcome line already sent on first contact
}
