package elf

import (
	"bytes"
	"fmt"
)

// ValidateIdent confirms the buffer begins with the ELF magic and declares
// the 64-bit little-endian layout every later stage assumes. It must pass
// before any offset arithmetic on the buffer is trusted.
func ValidateIdent(raw []byte) error {
	if len(raw) < len(elfMagic) {
		// A short buffer that could still be an ELF prefix is a
		// truncation, not a format mismatch.
		if bytes.Equal(raw, elfMagic[:len(raw)]) {
			return fmt.Errorf("identification bytes: %w", ErrTruncatedHeader)
		}
		return ErrNotELF
	}
	if !bytes.Equal(raw[:len(elfMagic)], elfMagic[:]) {
		return ErrNotELF
	}
	if len(raw) <= identDataIndex {
		return fmt.Errorf("identification bytes: %w", ErrTruncatedHeader)
	}
	if raw[identClassIndex] != classELF64 {
		return fmt.Errorf("class %#x is not ELF64: %w", raw[identClassIndex], ErrUnsupportedFormat)
	}
	if raw[identDataIndex] != dataLittleEnd {
		return fmt.Errorf("data encoding %#x is not little-endian: %w", raw[identDataIndex], ErrUnsupportedFormat)
	}
	return nil
}
