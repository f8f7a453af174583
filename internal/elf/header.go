package elf

import (
	"encoding/binary"
	"fmt"
)

// ParseFileHeader reads the three file header fields that locate the
// program header table. A nil result with a nil error means e_phoff is
// zero: the object legitimately has no program headers and therefore no
// resolvable dependencies.
func ParseFileHeader(raw []byte) (*FileHeaderMeta, error) {
	if len(raw) < fileHeaderSize {
		return nil, fmt.Errorf("file header needs %d bytes, have %d: %w",
			fileHeaderSize, len(raw), ErrTruncatedHeader)
	}

	meta := FileHeaderMeta{
		ProgramHeaderOffset:    binary.LittleEndian.Uint64(raw[phOffOffset:]),
		ProgramHeaderEntrySize: binary.LittleEndian.Uint16(raw[phEntSizeOffset:]),
		ProgramHeaderCount:     binary.LittleEndian.Uint16(raw[phNumOffset:]),
	}
	if meta.ProgramHeaderOffset == 0 {
		return nil, nil
	}
	return &meta, nil
}
