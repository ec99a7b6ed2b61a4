package gbl

import "hash/crc32"

// validateChecksum verifies the whole-image CRC-32 residue.
//
// The End element stores the CRC-32 (IEEE 802.3 polynomial) of every
// byte before it, little-endian. Running the same CRC over the full
// buffer, stored checksum included, therefore yields the fixed
// ChecksumResidue for any intact image; the stored field never needs
// to be excluded from the computation.
func validateChecksum(data []byte) error {
	if crc := crc32.ChecksumIEEE(data); crc != ChecksumResidue {
		return &ChecksumError{Computed: crc}
	}
	return nil
}
