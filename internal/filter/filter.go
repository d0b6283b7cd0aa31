// Package filter holds the keep/drop rule for records.
package filter

// Membership is the lookup the rule needs from an identifier set.
type Membership interface {
	Contains(id string) bool
}

// Mode names for diagnostics.
const (
	ModeRetain = "retain"
	ModeRemove = "remove"
)

// Decide reports whether a record with the given identifier is kept.
// Without inverse a record is kept iff its identifier is in ids; with
// inverse iff it is not. Comparison is exact.
func Decide(id string, ids Membership, inverse bool) bool {
	return ids.Contains(id) != inverse
}

// Mode returns ModeRemove in inverse mode and ModeRetain otherwise.
func Mode(inverse bool) string {
	if inverse {
		return ModeRemove
	}
	return ModeRetain
}
