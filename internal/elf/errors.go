package elf

import "errors"

// Parse failures are sentinel errors so callers can match them with
// errors.Is after the positional context added by the pipeline stages.
// "No program headers" is deliberately absent: a zero e_phoff is a valid
// terminal state reported as an empty result, not a failure.
var (
	// ErrNotELF means the buffer does not begin with the ELF magic.
	ErrNotELF = errors.New("not an ELF object")

	// ErrUnsupportedFormat means the object is ELF but not the 64-bit
	// little-endian variant this package handles.
	ErrUnsupportedFormat = errors.New("unsupported ELF format")

	// ErrTruncatedHeader means the buffer ends before a fixed-offset
	// file header field could be read.
	ErrTruncatedHeader = errors.New("truncated ELF header")

	// ErrNoDynamicSegment means the program header table has no
	// PT_DYNAMIC entry. Expected for statically linked objects.
	ErrNoDynamicSegment = errors.New("no dynamic segment")

	// ErrMissingStringTable means the dynamic section lacks a DT_STRTAB
	// element.
	ErrMissingStringTable = errors.New("dynamic section has no string table entry")

	// ErrMissingStringTableSize means the dynamic section lacks a
	// DT_STRSZ element.
	ErrMissingStringTableSize = errors.New("dynamic section has no string table size entry")

	// ErrOutOfBounds means a computed byte range exceeds the buffer.
	ErrOutOfBounds = errors.New("byte range outside file bounds")

	// ErrInvalidEncoding means a resolved library name is not valid UTF-8.
	ErrInvalidEncoding = errors.New("library name is not valid UTF-8")
)
