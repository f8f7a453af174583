package elf

// ResolveDependencies runs the full pipeline over the raw file contents:
// identification check, file header decode, dynamic segment lookup,
// dynamic section decode, string table resolution. It returns the needed
// shared-library names in declaration order.
//
// An object with no program headers resolves to an empty list. A
// statically linked object (program headers but no PT_DYNAMIC entry)
// surfaces ErrNoDynamicSegment so callers can tell it apart from a
// malformed file; everything else propagates the failing stage's error
// unchanged. The function is pure: the same buffer always yields the same
// result.
func ResolveDependencies(raw []byte) ([]string, error) {
	if err := ValidateIdent(raw); err != nil {
		return nil, err
	}

	meta, err := ParseFileHeader(raw)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return []string{}, nil
	}

	segment, err := FindDynamicSegment(raw, *meta)
	if err != nil {
		return nil, err
	}

	summary, err := DecodeDynamicSection(raw, segment)
	if err != nil {
		return nil, err
	}

	return ResolveLibraryNames(raw, summary)
}
