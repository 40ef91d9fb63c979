package vault

// State is a position in the session lifecycle:
//
//	Uninitialized --Establish--> Unlocked --Close--> Closed
//	Locked        --Unlock-----> Unlocked
type State int

const (
	// StateUninitialized means no fingerprint exists on disk.
	StateUninitialized State = iota
	// StateLocked means a fingerprint exists but no passphrase was verified.
	StateLocked
	// StateUnlocked means the passphrase was verified and entries are loaded.
	StateUnlocked
	// StateClosed means the entries were persisted and the key wiped.
	StateClosed
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
