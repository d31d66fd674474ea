// Package spatial implements a three-dimensional geohash.
//
// A Hash is produced by interleaved binary subdivision of three coordinate ranges,
// each starting at [-180, 180]. Every bit halves the uncertainty interval of one axis,
// in the fixed cycle y, x, z, y, x, z, ... The bits are packed left-justified into a
// 64-bit word, so points that are close together in space tend to share long common
// bit prefixes, and therefore common leading characters in the base-32 text form.
//
// # Basic Usage
//
//	h, err := spatial.Encode(12.5, -3.25, 40.0, 8)
//	if err != nil {
//	    return err
//	}
//	text, _ := h.ToBase32() // 8 characters
//
// # Precision
//
// Character precision ranges over [0, MaxCharacterPrecision]; each character carries
// 5 bits, so the longest hash has 60 significant bits. EncodeBits accepts an arbitrary
// bit count in [0, MaxBitPrecision]; hashes built that way can only be rendered in
// base-32 when the bit count is a multiple of 5.
//
// # Coordinates
//
// Coordinates are not validated. Values outside [-180, 180] saturate toward the
// nearest boundary: every remaining bit of that axis becomes 1 (above the range) or
// 0 (below it). NaN never compares greater than or equal to a midpoint and therefore
// encodes as all zeros on its axis.
//
// # Locality
//
// Nearby points usually share a prefix, but the converse does not hold: two points on
// either side of a subdivision boundary can be arbitrarily close and still differ in
// the very first bit.
//
// # Thread Safety
//
// Hash is an immutable value type and every function in this package is pure, so
// all of them are safe for concurrent use.
package spatial
