package elf

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// ResolveLibraryNames turns each DT_NEEDED value into the null-terminated
// name it indexes inside the dynamic string table. Results keep the
// relative order of the Needed values; consumers may rely on it matching
// declaration order in the binary. A nil Needed slice yields an empty,
// non-nil result.
func ResolveLibraryNames(raw []byte, summary DynamicSummary) ([]string, error) {
	table, err := checkedSlice(raw, summary.StringTableOffset, summary.StringTableSize, "string table")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(summary.Needed))
	for _, index := range summary.Needed {
		name, err := readTableString(table, index)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func readTableString(table []byte, index uint64) (string, error) {
	if index >= uint64(len(table)) {
		return "", fmt.Errorf("string index %#x exceeds %d-byte table: %w",
			index, len(table), ErrOutOfBounds)
	}
	end := bytes.IndexByte(table[index:], 0)
	if end < 0 {
		return "", fmt.Errorf("string at %#x runs past the table without a terminator: %w",
			index, ErrOutOfBounds)
	}
	name := table[index : index+uint64(end)]
	if !utf8.Valid(name) {
		return "", fmt.Errorf("string at %#x: %w", index, ErrInvalidEncoding)
	}
	return string(name), nil
}
