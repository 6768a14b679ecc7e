package toolkit

import "github.com/hasbyte1/go-passkit/hashing"

// EventType identifies the type of a credential event.
type EventType int

const (
	// EventHashed fires after a new stored record is produced.
	EventHashed EventType = iota
	// EventVerified fires when a password matches its stored record.
	EventVerified
	// EventVerifyFailed fires on a mismatch or an unusable record.
	EventVerifyFailed
	// EventRehashed fires when a verified record was upgraded to the
	// current default parameters.
	EventRehashed
)

func (t EventType) String() string {
	switch t {
	case EventHashed:
		return "hashed"
	case EventVerified:
		return "verified"
	case EventVerifyFailed:
		return "verify_failed"
	case EventRehashed:
		return "rehashed"
	}
	return "unknown"
}

// Event carries the details of a credential event delivered to
// [EventListener]s. It never contains the password or the derived hash.
type Event struct {
	Type EventType
	// Scheme is the record tag involved, when it could be determined.
	Scheme hashing.SchemeName
	// Err explains an EventVerifyFailed caused by a malformed record or an
	// unknown scheme. Nil for a plain password mismatch.
	Err error
}

// EventListener receives [Event]s emitted by the [Toolkit].
type EventListener func(event Event)

func (t *Toolkit) emit(e Event) {
	for _, l := range t.listeners {
		l(e)
	}
}
