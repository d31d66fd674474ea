// Package section defines the fixed header of a hash blob.
//
// # Layout
//
//	offset  size  field
//	0       2     options: bit 0 endianness (0=little, 1=big), bit 1 sorted,
//	              bits 2-3 reserved (0), bits 4-15 magic number 0xE3D
//	2       1     compression type (format.CompressionType)
//	3       1     reserved (0)
//	4       4     hash count
//	8       8     xxHash64 of the uncompressed payload
//
// The options field is always little-endian so that the endianness bit can be read
// before the byte order of the rest of the header is known. Every other multi-byte
// field uses the byte order recorded in the options.
package section
