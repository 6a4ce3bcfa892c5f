// Package collision detects distinct texts that share a 64-bit hash.
package collision

import (
	"github.com/arloliu/strview"
	"github.com/arloliu/strview/errs"
)

// Outcome classifies a tracked text.
type Outcome uint8

const (
	// Unique means the hash had not been seen before.
	Unique Outcome = iota
	// Duplicate means the same text was tracked before.
	Duplicate
	// Collision means a different text already owns the hash.
	Collision
)

func (o Outcome) String() string {
	switch o {
	case Unique:
		return "unique"
	case Duplicate:
		return "duplicate"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// Tracker remembers the first text seen for each hash. Views are copied into
// the tracker, so callers may reuse their buffers after Track returns.
type Tracker struct {
	names      map[uint64]string
	order      []string
	collisions int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track records v under its hash and reports how it relates to earlier texts.
func (t *Tracker) Track(v strview.View) (uint64, Outcome, error) {
	if !v.IsValid() {
		return 0, Unique, errs.ErrInvalidView
	}

	h := v.Hash()
	if existing, ok := t.names[h]; ok {
		if strview.Equal(strview.FromString(existing), v) {
			return h, Duplicate, nil
		}
		t.collisions++

		return h, Collision, nil
	}

	name := string(v.Bytes())
	t.names[h] = name
	t.order = append(t.order, name)

	return h, Unique, nil
}

// HasCollision reports whether any collision was seen.
func (t *Tracker) HasCollision() bool {
	return t.collisions > 0
}

// Collisions returns the number of colliding texts tracked.
func (t *Tracker) Collisions() int {
	return t.collisions
}

// Names returns the unique texts in first-seen order.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of unique hashes.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears the tracker, keeping allocated capacity.
func (t *Tracker) Reset() {
	clear(t.names)
	t.order = t.order[:0]
	t.collisions = 0
}
