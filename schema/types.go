package schema

// SessionID identifies a menu session.
type SessionID string

// Outcome is the result of a single coin flip.
type Outcome uint8

const (
	// Heads is encoded as 0.
	Heads Outcome = iota
	// Tails is encoded as 1.
	Tails
)

// String returns the display label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Heads:
		return "HEADS"
	case Tails:
		return "TAILS"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether o is Heads or Tails.
func (o Outcome) Valid() bool {
	return o == Heads || o == Tails
}
