package gbl

import "encoding/binary"

// IsValid reports whether data plausibly holds a GBL image.
//
// It checks only that the buffer is at least MinValidSize bytes and
// starts with the header tag; it validates neither the structure nor
// the checksum. Use it as a cheap filter before Parse. It never fails.
func IsValid(data []byte) bool {
	if len(data) < MinValidSize {
		return false
	}
	return Tag(binary.LittleEndian.Uint32(data)) == TagHeaderV3
}

// Parse decodes a complete GBL image from data.
//
// It parses the fixed header, walks the element sequence and validates
// the whole-buffer checksum. Parse succeeds only for a buffer that is
// an exact, complete, checksum-valid image; any violation returns one
// of the error types in this package and no partial result.
//
// Example:
//
//	img, err := gbl.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, region := range img.FlashRegions() {
//	    fmt.Printf("0x%08X: %d bytes\n", region.FlashStartAddress, len(region.Data))
//	}
func Parse(data []byte) (*Image, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	img := &Image{Header: hdr}

	// The first element follows the 8-byte tag/length prefix plus the
	// header's declared variable region.
	cursor := ElementHeaderSize + int(hdr.Length)
	for cursor < len(data) {
		elem, length, err := parseElement(data, cursor)
		if err != nil {
			return nil, err
		}

		img.Elements = append(img.Elements, elem)
		cursor += ElementHeaderSize + int(length)

		if _, ok := elem.(*End); ok {
			break
		}
	}

	if cursor != len(data) {
		return nil, &TrailingDataError{Cursor: cursor, Size: len(data)}
	}

	if err := validateChecksum(data); err != nil {
		return nil, err
	}

	return img, nil
}

// parseHeader decodes the fixed 16-byte header at the start of data.
//
// Layout: tag (LE) at offset 0, variable-region length (LE) at 4,
// version (BE) at 8, type (BE) at 12.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, &MalformedHeaderError{Size: len(data)}
	}

	if tag := binary.LittleEndian.Uint32(data); Tag(tag) != TagHeaderV3 {
		return Header{}, &MalformedHeaderError{Size: len(data), Tag: tag}
	}

	return Header{
		Length:  binary.LittleEndian.Uint32(data[4:8]),
		Version: binary.BigEndian.Uint32(data[8:12]),
		Type:    binary.BigEndian.Uint32(data[12:16]),
	}, nil
}

// parseElement decodes one element at offset p and returns it together
// with its declared length, which the caller uses to locate the next
// element.
//
// Layout: tag (LE) at p, declared length (LE) at p+4, then tag-specific
// big-endian fixed fields from p+8 followed by the payload.
func parseElement(data []byte, p int) (Element, uint32, error) {
	tag, err := readUint32LE(data, p)
	if err != nil {
		return nil, 0, err
	}

	length, err := readUint32LE(data, p+4)
	if err != nil {
		return nil, 0, err
	}

	end := p + ElementHeaderSize + int(length)

	switch Tag(tag) {
	case TagApplication:
		typ, err := readUint32BE(data, p+8)
		if err != nil {
			return nil, 0, err
		}
		version, err := readUint32BE(data, p+12)
		if err != nil {
			return nil, 0, err
		}
		capabilities, err := readUint32BE(data, p+16)
		if err != nil {
			return nil, 0, err
		}
		return &Application{
			Type:         typ,
			Version:      version,
			Capabilities: capabilities,
			ProductID:    payloadRange(data, p+20, end),
		}, length, nil

	case TagBootloader:
		version, err := readUint32BE(data, p+8)
		if err != nil {
			return nil, 0, err
		}
		address, err := readUint32BE(data, p+12)
		if err != nil {
			return nil, 0, err
		}
		return &Bootloader{
			Version: version,
			Address: address,
			Data:    payloadRange(data, p+16, end),
		}, length, nil

	case TagSEUpgrade:
		blobSize, err := readUint32BE(data, p+8)
		if err != nil {
			return nil, 0, err
		}
		version, err := readUint32BE(data, p+12)
		if err != nil {
			return nil, 0, err
		}
		return &SEUpgrade{
			BlobSize: blobSize,
			Version:  version,
			Data:     payloadRange(data, p+16, end),
		}, length, nil

	case TagMetadata:
		return &Metadata{
			Data: payloadRange(data, p+8, end),
		}, length, nil

	case TagProg, TagEraseProg:
		address, err := readUint32BE(data, p+8)
		if err != nil {
			return nil, 0, err
		}
		return &ProgramData{
			FlashStartAddress: address,
			Data:              payloadRange(data, p+12, end),
			Erase:             Tag(tag) == TagEraseProg,
		}, length, nil

	case TagEnd:
		crc, err := readUint32BE(data, p+8)
		if err != nil {
			return nil, 0, err
		}
		return &End{EblCRC: crc}, length, nil
	}

	return nil, 0, &UnknownTagError{Tag: tag, Offset: p}
}

// payloadRange copies the payload bytes in [start, end), bounding end to
// the buffer. A declared length too small to reach start yields an empty
// payload; the walker's final cursor check reports the length mismatch.
func payloadRange(data []byte, start, end int) []byte {
	if end > len(data) {
		end = len(data)
	}
	if end < start {
		end = start
	}
	payload := make([]byte, end-start)
	copy(payload, data[start:end])
	return payload
}

// readUint32LE reads a little-endian uint32 at offset off with an
// explicit bounds check.
func readUint32LE(data []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(data) {
		return 0, &TruncatedError{Offset: off, Size: len(data)}
	}
	return binary.LittleEndian.Uint32(data[off:]), nil
}

// readUint32BE reads a big-endian uint32 at offset off with an explicit
// bounds check.
func readUint32BE(data []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(data) {
		return 0, &TruncatedError{Offset: off, Size: len(data)}
	}
	return binary.BigEndian.Uint32(data[off:]), nil
}
