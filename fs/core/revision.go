package core

import (
	"cmp"
	"strconv"
	"time"
)

// Revision is an opaque change marker for a file. Two reads of a file
// describe unchanged content iff their revisions compare equal.
type Revision struct {
	value uint64
}

// ZeroRevision is the revision of a file that was never read or does not exist.
var ZeroRevision = Revision{}

// NewRevision creates a revision from a raw value.
func NewRevision(value uint64) Revision {
	return Revision{value: value}
}

// RevisionFromTime derives a revision from a modification time.
// The zero time maps to ZeroRevision.
func RevisionFromTime(t time.Time) Revision {
	if t.IsZero() {
		return ZeroRevision
	}
	return Revision{value: uint64(t.UnixNano())}
}

// IsZero reports whether r is ZeroRevision.
func (r Revision) IsZero() bool {
	return r.value == 0
}

// Compare returns -1, 0 or +1 depending on whether r orders before, equal
// to, or after other.
func (r Revision) Compare(other Revision) int {
	return cmp.Compare(r.value, other.value)
}

// Uint64 returns the raw value of the revision.
func (r Revision) Uint64() uint64 {
	return r.value
}

// String returns the revision as a hexadecimal number.
func (r Revision) String() string {
	return "r" + strconv.FormatUint(r.value, 16)
}
