package gbl

import "fmt"

// MalformedHeaderError indicates that the buffer is too short to hold
// the fixed header, or that its tag is not the GBL header magic.
type MalformedHeaderError struct {
	// Size is the buffer size in bytes
	Size int

	// Tag is the observed header tag, set when the buffer was long
	// enough to read one
	Tag uint32
}

func (e *MalformedHeaderError) Error() string {
	if e.Size < HeaderSize {
		return fmt.Sprintf("malformed header: buffer is %d bytes, need at least %d", e.Size, HeaderSize)
	}
	return fmt.Sprintf("malformed header: tag 0x%08X, want 0x%08X", e.Tag, uint32(TagHeaderV3))
}

// UnknownTagError indicates an element tag outside the recognized set.
type UnknownTagError struct {
	// Tag is the unrecognized tag value
	Tag uint32

	// Offset is the byte offset where the tag was read
	Offset int
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown element tag 0x%08X at offset %d", e.Tag, e.Offset)
}

// TruncatedError indicates that a fixed field extends past the end of
// the buffer.
type TruncatedError struct {
	// Offset is the byte offset of the field that could not be read
	Offset int

	// Size is the buffer size in bytes
	Size int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated image: need 4 bytes at offset %d, buffer is %d bytes", e.Offset, e.Size)
}

// TrailingDataError indicates that the element walk did not land
// exactly on the end of the buffer.
type TrailingDataError struct {
	// Cursor is the offset where the walk ended
	Cursor int

	// Size is the buffer size in bytes
	Size int
}

func (e *TrailingDataError) Error() string {
	if e.Cursor < e.Size {
		return fmt.Sprintf("trailing data: elements end at offset %d, buffer is %d bytes", e.Cursor, e.Size)
	}
	return fmt.Sprintf("missing data: elements end at offset %d, buffer is %d bytes", e.Cursor, e.Size)
}

// ChecksumError indicates that the CRC-32 over the whole image does not
// equal the expected residue.
type ChecksumError struct {
	// Computed is the CRC-32 computed over the buffer
	Computed uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum invalid: image CRC-32 is 0x%08X, want 0x%08X", e.Computed, ChecksumResidue)
}
