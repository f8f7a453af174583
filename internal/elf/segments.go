package elf

import (
	"encoding/binary"
	"fmt"
)

// FindDynamicSegment walks the program header table described by meta and
// returns the first entry of type PT_DYNAMIC. A well-formed object carries
// at most one; if several appear the first wins. ErrNoDynamicSegment
// signals a statically linked object, not a malformed one.
func FindDynamicSegment(raw []byte, meta FileHeaderMeta) (ProgramHeaderEntry, error) {
	entrySize := uint64(meta.ProgramHeaderEntrySize)
	if entrySize < segMinEntrySize {
		return ProgramHeaderEntry{}, fmt.Errorf(
			"program header entry size %d is below the %d-byte minimum: %w",
			entrySize, segMinEntrySize, ErrOutOfBounds)
	}

	tableSize := entrySize * uint64(meta.ProgramHeaderCount)
	table, err := checkedSlice(raw, meta.ProgramHeaderOffset, tableSize, "program header table")
	if err != nil {
		return ProgramHeaderEntry{}, err
	}

	for i := uint64(0); i < uint64(meta.ProgramHeaderCount); i++ {
		chunk := table[i*entrySize : (i+1)*entrySize]
		entry := decodeProgramHeader(chunk)
		if entry.Type == SegmentDynamic {
			return entry, nil
		}
	}
	return ProgramHeaderEntry{}, ErrNoDynamicSegment
}

func decodeProgramHeader(chunk []byte) ProgramHeaderEntry {
	return ProgramHeaderEntry{
		Type:       classifySegment(binary.LittleEndian.Uint32(chunk[segTypeOffset:])),
		FileOffset: binary.LittleEndian.Uint64(chunk[segFileOffOffset:]),
		FileSize:   binary.LittleEndian.Uint64(chunk[segFileSzOffset:]),
	}
}

// checkedSlice returns raw[off:off+size] after proving the range lies
// inside the buffer. The arithmetic is ordered so off+size cannot wrap.
func checkedSlice(raw []byte, off, size uint64, what string) ([]byte, error) {
	n := uint64(len(raw))
	if off > n || size > n-off {
		return nil, fmt.Errorf("%s [%#x, %#x+%#x) exceeds %d-byte file: %w",
			what, off, off, size, n, ErrOutOfBounds)
	}
	return raw[off : off+size], nil
}
