package gbl

// Header and element tags for the GBL container format.
// All tags are stored little-endian on the wire.
const (
	// TagHeaderV3 marks the fixed image header at offset 0
	TagHeaderV3 Tag = 0x03a617eb

	// TagApplication carries application metadata (type, version, capabilities, product ID)
	TagApplication Tag = 0xf40a0af4

	// TagBootloader carries a bootloader upgrade image and its target address
	TagBootloader Tag = 0xf50909f5

	// TagSEUpgrade carries a secure-element upgrade blob
	TagSEUpgrade Tag = 0x5ea617eb

	// TagMetadata carries free-form metadata bytes
	TagMetadata Tag = 0xf60808f6

	// TagProg carries flash data to program at a given address
	TagProg Tag = 0xfe0101fe

	// TagEraseProg carries flash data to erase-then-program at a given address
	TagEraseProg Tag = 0xfd0303fd

	// TagEnd terminates the element sequence and embeds the image CRC
	TagEnd Tag = 0xfc0404fc
)

// Fixed layout sizes in bytes.
const (
	// HeaderSize is the size of the fixed header region
	HeaderSize = 16

	// ElementHeaderSize is the size of an element's tag + length prefix
	ElementHeaderSize = 8

	// MinValidSize is the minimum buffer size IsValid will accept
	MinValidSize = 10
)

// ChecksumResidue is the value the CRC-32 of a complete image must equal.
// The End element stores the CRC of everything before it, so the CRC of
// the whole buffer, stored checksum included, lands on this constant for
// any intact image.
const ChecksumResidue uint32 = 0x2144df1c
