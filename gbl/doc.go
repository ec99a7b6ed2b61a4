// Package gbl provides parsing for Silicon Labs GBL firmware image containers.
//
// # GBL Container Format
//
// A GBL image is a fixed 16-byte header followed by a sequence of
// tag-length-value elements, terminated by an end element that embeds
// the image checksum.
//
// Header layout (16 bytes):
//
//	[Tag(4, LE)][Length(4, LE)][Version(4, BE)][Type(4, BE)]
//
// The tag must equal 0x03a617eb. Length is the size of the header's
// variable region; the first element starts at offset 8 + Length.
//
// Element layout:
//
//	[Tag(4, LE)][Length(4, LE)][fixed fields (BE)][payload]
//
// Recognized element tags and their fixed fields:
//
//	application  0xf40a0af4  type(4), version(4), capabilities(4), then product ID bytes
//	bootloader   0xf50909f5  version(4), address(4), then image bytes
//	se-upgrade   0x5ea617eb  blobSize(4), version(4), then blob bytes
//	metadata     0xf60808f6  payload only
//	prog         0xfe0101fe  flashStartAddress(4), then flash data
//	erase-prog   0xfd0303fd  flashStartAddress(4), then flash data
//	end          0xfc0404fc  eblCrc(4)
//
// The end element stores the CRC-32 (IEEE 802.3 polynomial) of every
// preceding byte, so the CRC of the complete buffer equals the fixed
// residue 0x2144df1c.
//
// # Usage
//
// Check whether a buffer is worth parsing, then parse it:
//
//	data, _ := os.ReadFile("firmware.gbl")
//
//	if !gbl.IsValid(data) {
//	    log.Fatal("not a GBL image")
//	}
//
//	img, err := gbl.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Image version: 0x%08X\n", img.Header.Version)
//	for _, region := range img.FlashRegions() {
//	    fmt.Printf("Flash 0x%08X: %d bytes (erase=%v)\n",
//	        region.FlashStartAddress, len(region.Data), region.Erase)
//	}
//
// Parse operates on an already-loaded byte slice and performs no I/O.
// The returned Image owns copies of the payload byte ranges, so the
// input buffer may be released or reused afterwards.
//
// # Error Handling
//
// Parse returns structured errors, one type per violated invariant:
//   - MalformedHeaderError: buffer too short or header tag mismatch
//   - UnknownTagError: unrecognized element tag, with its value and offset
//   - TruncatedError: a fixed field runs past the end of the buffer
//   - TrailingDataError: the element walk does not end exactly at the buffer end
//   - ChecksumError: the whole-image CRC-32 does not equal the residue
//
// Every failure is fatal to the Parse call; there are no partial
// results. Distinguish the conditions with errors.As. IsValid never
// returns an error.
package gbl
