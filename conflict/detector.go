package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/geohash3d/errs"
	"github.com/arloliu/geohash3d/internal/options"
)

// ctxCheckInterval is how many points a group processes between context checks.
const ctxCheckInterval = 1024

// Point is a located item to check for conflicts.
type Point struct {
	// Group is the grouping key; only points in the same group can conflict.
	Group string
	// ID identifies the point to the caller.
	ID uint64
	// X, Y, Z are the point coordinates.
	X, Y, Z float64
}

// Conflict reports a point whose hash was already produced by an earlier point in
// its group.
type Conflict struct {
	Point Point
	// Hash is the shared base-32 hash.
	Hash string
	// FirstID is the ID of the earliest point in the group with the same hash.
	FirstID uint64
}

// Detector finds near-duplicate points by hash collision.
//
// A Detector holds only configuration and is safe for concurrent use.
type Detector struct {
	precision   int
	logger      *slog.Logger
	concurrency int
}

// NewDetector creates a detector configured by opts.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg := newDetectorConfig()
	if err := options.ApplyAndValidate(cfg, (*detectorConfig).validate, opts...); err != nil {
		return nil, err
	}

	return &Detector{
		precision:   cfg.precision,
		logger:      cfg.logger,
		concurrency: cfg.concurrency,
	}, nil
}

// Precision returns the character precision points are hashed at.
func (d *Detector) Precision() int {
	return d.precision
}

// Detect checks points in input order and returns the conflicts in the order they
// were found.
//
// Returns:
//   - []Conflict: Conflicts found, nil if none
//   - error: ErrInvalidGroupKey if a point has an empty group
func (d *Detector) Detect(points []Point) ([]Conflict, error) {
	trackers := make(map[string]*Tracker)

	var conflicts []Conflict
	for _, p := range points {
		if p.Group == "" {
			return nil, fmt.Errorf("%w: point %d has an empty group", errs.ErrInvalidGroupKey, p.ID)
		}

		tracker, ok := trackers[p.Group]
		if !ok {
			var err error
			if tracker, err = NewTracker(d.precision); err != nil {
				return nil, err
			}
			trackers[p.Group] = tracker
		}

		c, dup, err := d.check(tracker, p)
		if err != nil {
			return nil, err
		}
		if dup {
			conflicts = append(conflicts, c)
		}
	}

	d.logger.Info("conflict detection finished",
		slog.Int("points", len(points)),
		slog.Int("groups", len(trackers)),
		slog.Int("conflicts", len(conflicts)),
		slog.Int("precision", d.precision),
	)

	return conflicts, nil
}

// DetectGroups checks each group concurrently and returns the conflicts per group.
//
// The map key is the group; the Group field of the points is overwritten with it.
// Groups without conflicts are absent from the result. The context is checked
// between groups and periodically within large groups.
//
// Returns:
//   - map[string][]Conflict: Conflicts per group
//   - error: ErrInvalidGroupKey for an empty key, or the context error
func (d *Detector) DetectGroups(ctx context.Context, groups map[string][]Point) (map[string][]Conflict, error) {
	keys := slices.Sorted(maps.Keys(groups))
	if len(keys) > 0 && keys[0] == "" {
		return nil, fmt.Errorf("%w: empty group key", errs.ErrInvalidGroupKey)
	}

	results := make([][]Conflict, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	if d.concurrency > 0 {
		g.SetLimit(d.concurrency)
	}
	for i, key := range keys {
		g.Go(func() error {
			conflicts, err := d.detectGroup(gctx, key, groups[key])
			if err != nil {
				return err
			}
			results[i] = conflicts

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]Conflict)
	total, points := 0, 0
	for i, key := range keys {
		points += len(groups[key])
		if len(results[i]) > 0 {
			out[key] = results[i]
			total += len(results[i])
		}
	}

	d.logger.Info("conflict detection finished",
		slog.Int("points", points),
		slog.Int("groups", len(keys)),
		slog.Int("conflicts", total),
		slog.Int("precision", d.precision),
	)

	return out, nil
}

func (d *Detector) detectGroup(ctx context.Context, group string, points []Point) ([]Conflict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracker, err := NewTracker(d.precision)
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for i, p := range points {
		if i > 0 && i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		p.Group = group
		c, dup, err := d.check(tracker, p)
		if err != nil {
			return nil, err
		}
		if dup {
			conflicts = append(conflicts, c)
		}
	}

	return conflicts, nil
}

func (d *Detector) check(tracker *Tracker, p Point) (Conflict, bool, error) {
	hash, first, dup, err := tracker.TrackPoint(p.ID, p.X, p.Y, p.Z)
	if err != nil {
		return Conflict{}, false, fmt.Errorf("point %d: %w", p.ID, err)
	}
	if !dup {
		return Conflict{}, false, nil
	}

	d.logger.Debug("conflict",
		slog.String("group", p.Group),
		slog.Uint64("id", p.ID),
		slog.Uint64("first_id", first),
		slog.String("hash", hash),
	)

	return Conflict{Point: p, Hash: hash, FirstID: first}, true, nil
}
