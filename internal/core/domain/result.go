package domain

// SaveResult tags the outcome of a mutating repository call so callers
// can tell a no-op from a failure instead of collapsing both into a
// rows-changed boolean.
type SaveResult int

const (
	SaveNoChange SaveResult = iota
	SaveCreated
	SaveUpdated
	SaveDeleted
)

func (r SaveResult) String() string {
	switch r {
	case SaveCreated:
		return "created"
	case SaveUpdated:
		return "updated"
	case SaveDeleted:
		return "deleted"
	default:
		return "no_change"
	}
}
