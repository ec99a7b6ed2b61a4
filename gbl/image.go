package gbl

import "fmt"

// Tag identifies the kind of a GBL header or sub-element.
type Tag uint32

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagHeaderV3:
		return "header"
	case TagApplication:
		return "application"
	case TagBootloader:
		return "bootloader"
	case TagSEUpgrade:
		return "se-upgrade"
	case TagMetadata:
		return "metadata"
	case TagProg:
		return "prog"
	case TagEraseProg:
		return "erase-prog"
	case TagEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown(0x%08X)", uint32(t))
	}
}

// Header is the fixed 16-byte record at the start of every image.
type Header struct {
	// Length is the declared length of the header's variable region.
	// The first element starts at offset 8 + Length.
	Length uint32

	// Version is the image format version
	Version uint32

	// Type is the image type code
	Type uint32
}

// Element is one tagged entry of the image. The concrete type is one of
// Application, Bootloader, SEUpgrade, Metadata, ProgramData or End;
// consumers dispatch with a type switch.
type Element interface {
	// Tag returns the element's wire tag.
	Tag() Tag
}

// Application carries metadata about the application contained in the image.
type Application struct {
	// Type is the application type code
	Type uint32

	// Version is the application version
	Version uint32

	// Capabilities is the application capability flags
	Capabilities uint32

	// ProductID is the product identifier bytes
	ProductID []byte
}

func (*Application) Tag() Tag { return TagApplication }

// Bootloader carries a bootloader upgrade image.
type Bootloader struct {
	// Version is the bootloader version
	Version uint32

	// Address is the flash address the bootloader is written to
	Address uint32

	// Data is the bootloader image bytes
	Data []byte
}

func (*Bootloader) Tag() Tag { return TagBootloader }

// SEUpgrade carries a secure-element upgrade blob.
type SEUpgrade struct {
	// BlobSize is the declared size of the upgrade blob
	BlobSize uint32

	// Version is the secure-element version
	Version uint32

	// Data is the upgrade blob bytes
	Data []byte
}

func (*SEUpgrade) Tag() Tag { return TagSEUpgrade }

// Metadata carries free-form metadata, opaque to the container format.
type Metadata struct {
	// Data is the metadata bytes
	Data []byte
}

func (*Metadata) Tag() Tag { return TagMetadata }

// ProgramData carries flash data to be written at a fixed address.
// It covers both the prog and erase-prog tags, which share one layout.
type ProgramData struct {
	// FlashStartAddress is the address the data is flashed to
	FlashStartAddress uint32

	// Data is the flash data
	Data []byte

	// Erase is true for erase-prog elements, which erase the target
	// region before programming it
	Erase bool
}

func (p *ProgramData) Tag() Tag {
	if p.Erase {
		return TagEraseProg
	}
	return TagProg
}

// End terminates the element sequence.
type End struct {
	// EblCRC is the stored image checksum, read big-endian like every
	// other fixed field. Parse validates the image with the whole-buffer
	// residue check instead of comparing against this value.
	EblCRC uint32
}

func (*End) Tag() Tag { return TagEnd }

// Image is a fully decoded GBL container.
type Image struct {
	// Header is the fixed image header
	Header Header

	// Elements holds the image elements in stream order
	Elements []Element
}

// Application returns the image's application element, if present.
func (img *Image) Application() (*Application, bool) {
	for _, e := range img.Elements {
		if app, ok := e.(*Application); ok {
			return app, true
		}
	}
	return nil, false
}

// FlashRegions returns the image's prog and erase-prog elements in
// stream order. These are the regions a flashing tool writes to the
// device.
func (img *Image) FlashRegions() []*ProgramData {
	var regions []*ProgramData
	for _, e := range img.Elements {
		if pd, ok := e.(*ProgramData); ok {
			regions = append(regions, pd)
		}
	}
	return regions
}
