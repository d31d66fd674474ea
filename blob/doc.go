// Package blob persists batches of spatial hashes.
//
// A hash blob is a section.HashHeader followed by a payload of 9-byte records, one per
// hash (see spatial.Hash.AppendBinary), optionally compressed as a whole.
//
// # Encoding Workflow
//
//	encoder, err := blob.NewHashEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithSorted(true),
//	)
//	if err != nil {
//	    return err
//	}
//	for _, p := range points {
//	    if err := encoder.AddPoint(p.X, p.Y, p.Z, 8); err != nil {
//	        return err
//	    }
//	}
//	hb, err := encoder.Finish()
//	data := hb.Bytes()
//
// # Decoding Workflow
//
//	decoder, err := blob.NewHashDecoder(data)
//	if err != nil {
//	    return err
//	}
//	hb, err := decoder.Decode()
//	for i, h := range hb.All() {
//	    fmt.Println(i, h)
//	}
//
// Decoding verifies the magic number, the header flags, the record count and the
// xxHash64 checksum of the decompressed payload.
package blob
