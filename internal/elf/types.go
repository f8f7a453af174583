// Package elf extracts the shared-library dependencies declared by a
// 64-bit little-endian ELF executable or shared object. It operates on the
// complete file contents in memory and never reads past a checked boundary;
// every multi-byte field is decoded explicitly rather than by reinterpreting
// raw buffer positions.
package elf

// Fixed offsets and sizes from the ELF64 layout. Only the fields the
// dependency walk needs are named here.
const (
	// File header (Ehdr).
	identClassIndex = 4    // EI_CLASS
	identDataIndex  = 5    // EI_DATA
	fileHeaderSize  = 0x40 // sizeof(Elf64_Ehdr)
	phOffOffset     = 0x20 // e_phoff
	phEntSizeOffset = 0x36 // e_phentsize
	phNumOffset     = 0x38 // e_phnum

	// Program header entry (Phdr), offsets relative to the entry.
	segTypeOffset    = 0x00 // p_type
	segFileOffOffset = 0x08 // p_offset
	segFileSzOffset  = 0x20 // p_filesz
	segMinEntrySize  = segFileSzOffset + 8

	// Dynamic section element (Dyn).
	dynEntrySize = 16

	classELF64    = 2 // ELFCLASS64
	dataLittleEnd = 1 // ELFDATA2LSB
)

// elfMagic is the four-byte identification prefix every ELF object carries.
var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// SegmentType classifies a program header entry. Only the dynamic-linking
// segment matters for dependency extraction; every other p_type value,
// known or not, collapses to SegmentOther.
type SegmentType int

const (
	SegmentOther SegmentType = iota
	SegmentDynamic
)

const rawSegmentDynamic = 2 // PT_DYNAMIC

func classifySegment(raw uint32) SegmentType {
	if raw == rawSegmentDynamic {
		return SegmentDynamic
	}
	return SegmentOther
}

// DynTag classifies a dynamic section element. Unrecognized tags are
// TagOther and ignored by the decoder.
type DynTag int

const (
	TagOther DynTag = iota
	TagNeeded
	TagStringTableOffset
	TagStringTableSize
)

// Raw d_tag values from the ELF specification.
const (
	rawTagNeeded  = 1  // DT_NEEDED
	rawTagStrTab  = 5  // DT_STRTAB
	rawTagStrSize = 10 // DT_STRSZ
)

func classifyTag(raw uint64) DynTag {
	switch raw {
	case rawTagNeeded:
		return TagNeeded
	case rawTagStrTab:
		return TagStringTableOffset
	case rawTagStrSize:
		return TagStringTableSize
	default:
		return TagOther
	}
}

// FileHeaderMeta holds the three file header fields that locate the
// program header table.
type FileHeaderMeta struct {
	ProgramHeaderOffset    uint64
	ProgramHeaderEntrySize uint16
	ProgramHeaderCount     uint16
}

// ProgramHeaderEntry is one decoded entry of the program header table,
// reduced to the fields the dependency walk consumes.
type ProgramHeaderEntry struct {
	Type       SegmentType
	FileOffset uint64
	FileSize   uint64
}

// DynamicEntry is one decoded 16-byte element of the dynamic section. The
// meaning of Value depends entirely on Tag: a string-table index for
// TagNeeded, a file offset for TagStringTableOffset, a byte count for
// TagStringTableSize.
type DynamicEntry struct {
	Tag   DynTag
	Value uint64
}

// DynamicSummary aggregates the dynamic section elements relevant to
// dependency resolution. Needed preserves encounter order, which becomes
// the output order of the resolver.
type DynamicSummary struct {
	StringTableOffset uint64
	StringTableSize   uint64
	Needed            []uint64
}
