package section

const (
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	SortedMask       = 0x0002 // Mask for sorted payload bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicHashV1Opt = 0xE3D0 // MagicHashV1Opt is the version 1 magic number for hash blobs.
)

const (
	HeaderSize    = 16         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the record payload starts
)
