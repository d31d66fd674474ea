package conflict

import (
	"github.com/arloliu/geohash3d/spatial"
)

// Tracker records the base-32 hashes seen in one group and reports repeats.
//
// A Tracker is not safe for concurrent use; callers sharing one across goroutines
// must synchronize access.
type Tracker struct {
	precision  int
	seen       map[string]uint64 // hash → ID of the first point seen with it
	count      int
	duplicates int
}

// NewTracker creates a tracker that hashes points at the given character precision.
//
// Returns:
//   - *Tracker: The created tracker
//   - error: ErrInvalidPrecision if precision is outside [0, spatial.MaxCharacterPrecision]
func NewTracker(precision int) (*Tracker, error) {
	if err := validatePrecision(precision); err != nil {
		return nil, err
	}

	return &Tracker{
		precision: precision,
		seen:      make(map[string]uint64),
	}, nil
}

// Track records hash for the point id.
//
// Returns:
//   - uint64: ID of the first point tracked with this hash (id itself if new)
//   - bool: true if the hash had already been tracked
func (t *Tracker) Track(hash string, id uint64) (uint64, bool) {
	t.count++
	if first, exists := t.seen[hash]; exists {
		t.duplicates++
		return first, true
	}
	t.seen[hash] = id

	return id, false
}

// TrackPoint hashes a point at the tracker's precision and tracks it.
//
// Returns:
//   - string: The point's base-32 hash
//   - uint64: ID of the first point tracked with this hash
//   - bool: true if the point is a near-duplicate of an earlier one
func (t *Tracker) TrackPoint(id uint64, x, y, z float64) (string, uint64, bool, error) {
	hash, err := spatial.EncodeString(x, y, z, t.precision)
	if err != nil {
		return "", 0, false, err
	}
	first, dup := t.Track(hash, id)

	return hash, first, dup, nil
}

// Precision returns the character precision used by TrackPoint.
func (t *Tracker) Precision() int {
	return t.precision
}

// Count returns the number of tracked points, duplicates included.
func (t *Tracker) Count() int {
	return t.count
}

// Unique returns the number of distinct hashes.
func (t *Tracker) Unique() int {
	return len(t.seen)
}

// Duplicates returns the number of points whose hash had already been tracked.
func (t *Tracker) Duplicates() int {
	return t.duplicates
}

// Reset clears all tracked hashes so the tracker can serve a new group.
func (t *Tracker) Reset() {
	clear(t.seen)
	t.count = 0
	t.duplicates = 0
}
