package dummies

// Order selects the column order of the vocabulary.
type Order int

const (
	// FirstSeen orders categories by their first appearance in the records.
	FirstSeen Order = iota
	// Sorted orders categories lexicographically (byte order).
	Sorted
)

// String returns "first_seen" or "sorted".
func (o Order) String() string {
	switch o {
	case FirstSeen:
		return "first_seen"
	case Sorted:
		return "sorted"
	default:
		return "unknown"
	}
}

// UnknownPolicy decides what happens to tokens missing from a frozen vocabulary.
type UnknownPolicy int

const (
	// Fail reports ErrUnknownCategory for the record and leaves its row zero.
	Fail UnknownPolicy = iota
	// Drop ignores the token and lists it in Result.Dropped.
	Drop
)

// String returns "fail" or "drop".
func (p UnknownPolicy) String() string {
	switch p {
	case Fail:
		return "fail"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Result is the per-record outcome of an incremental expansion.
//
// Fields:
//   - Record:  record index.
//   - Err:     wraps ErrUnknownCategory under the Fail policy.
//   - Dropped: unseen tokens ignored under the Drop policy, first-seen order.
type Result struct {
	Record  int
	Err     error
	Dropped []string
}
