package elf

import (
	"encoding/binary"
	"fmt"
)

// DecodeDynamicSection walks the dynamic segment's byte range in fixed
// 16-byte elements and aggregates the ones dependency resolution needs:
// the string table location and size, and every DT_NEEDED value in the
// order it appears. That order is the output order of the resolver and is
// part of the package contract.
//
// The size field comes from the DT_STRSZ element, never from a second
// DT_STRTAB lookup. A trailing fragment shorter than one element is
// ignored rather than treated as malformed.
func DecodeDynamicSection(raw []byte, seg ProgramHeaderEntry) (DynamicSummary, error) {
	section, err := checkedSlice(raw, seg.FileOffset, seg.FileSize, "dynamic section")
	if err != nil {
		return DynamicSummary{}, err
	}

	var (
		summary     DynamicSummary
		haveStrTab  bool
		haveStrSize bool
	)
	for i := 0; i+dynEntrySize <= len(section); i += dynEntrySize {
		entry := decodeDynamicEntry(section[i : i+dynEntrySize])
		switch entry.Tag {
		case TagNeeded:
			summary.Needed = append(summary.Needed, entry.Value)
		case TagStringTableOffset:
			if !haveStrTab {
				summary.StringTableOffset = entry.Value
				haveStrTab = true
			}
		case TagStringTableSize:
			if !haveStrSize {
				summary.StringTableSize = entry.Value
				haveStrSize = true
			}
		}
	}

	if !haveStrTab {
		return DynamicSummary{}, fmt.Errorf("%d-byte dynamic section: %w",
			len(section), ErrMissingStringTable)
	}
	if !haveStrSize {
		return DynamicSummary{}, fmt.Errorf("%d-byte dynamic section: %w",
			len(section), ErrMissingStringTableSize)
	}
	return summary, nil
}

func decodeDynamicEntry(chunk []byte) DynamicEntry {
	return DynamicEntry{
		Tag:   classifyTag(binary.LittleEndian.Uint64(chunk)),
		Value: binary.LittleEndian.Uint64(chunk[8:]),
	}
}
