// Package conflict flags points that hash-collide with an earlier point in the same
// group.
//
// Each point is hashed with spatial.EncodeString at a coarse character precision
// (DefaultPrecision, 4 characters). Within a group, the first point to produce a
// given hash string is kept; every later point producing the same string is reported
// as a Conflict, i.e. a near-duplicate of that first point. Groups are independent:
// the same hash in two groups is not a conflict.
//
// A typical grouping key is a time slice, so that detections at the same position in
// different frames are not reported:
//
//	detector, err := conflict.NewDetector(conflict.WithPrecision(4))
//	if err != nil {
//	    return err
//	}
//	conflicts, err := detector.Detect(points)
//	for _, c := range conflicts {
//	    fmt.Printf("point %d duplicates point %d (hash %s)\n", c.Point.ID, c.FirstID, c.Hash)
//	}
//
// Hash collisions are a locality heuristic, not a distance test: two points just
// either side of a cell boundary are never reported, and two points at opposite
// corners of one cell always are.
package conflict
