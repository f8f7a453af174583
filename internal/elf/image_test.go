package elf

import "encoding/binary"

// Helpers for assembling synthetic ELF64 little-endian images in memory.
// Offsets follow the layout constants in types.go; the canonical image
// built by buildDynamicImage is shared by the stage tests and the
// end-to-end tests.

const (
	testPhdrSize   = 0x38
	testPhdrOffset = 0x40
	testDynOffset  = 0x100
	testStrOffset  = 0x200
	testStrSize    = 0x20
	testImageSize  = 0x400
)

type testImage struct {
	buf []byte
}

func newTestImage(size int) *testImage {
	buf := make([]byte, size)
	copy(buf, elfMagic[:])
	if size > identClassIndex {
		buf[identClassIndex] = classELF64
	}
	if size > identDataIndex {
		buf[identDataIndex] = dataLittleEnd
	}
	return &testImage{buf: buf}
}

func (m *testImage) setFileHeader(phoff uint64, entsize, count uint16) *testImage {
	binary.LittleEndian.PutUint64(m.buf[phOffOffset:], phoff)
	binary.LittleEndian.PutUint16(m.buf[phEntSizeOffset:], entsize)
	binary.LittleEndian.PutUint16(m.buf[phNumOffset:], count)
	return m
}

func (m *testImage) putProgramHeader(index int, typ uint32, fileOff, fileSize uint64) *testImage {
	base := testPhdrOffset + index*testPhdrSize
	binary.LittleEndian.PutUint32(m.buf[base+segTypeOffset:], typ)
	binary.LittleEndian.PutUint64(m.buf[base+segFileOffOffset:], fileOff)
	binary.LittleEndian.PutUint64(m.buf[base+segFileSzOffset:], fileSize)
	return m
}

func (m *testImage) putDynamicEntry(index int, tag, value uint64) *testImage {
	base := testDynOffset + index*dynEntrySize
	binary.LittleEndian.PutUint64(m.buf[base:], tag)
	binary.LittleEndian.PutUint64(m.buf[base+8:], value)
	return m
}

func (m *testImage) putString(off int, s string) *testImage {
	copy(m.buf[off:], s)
	m.buf[off+len(s)] = 0
	return m
}

func (m *testImage) bytes() []byte {
	return m.buf
}

// buildDynamicImage assembles a well-formed image whose dynamic section
// declares libc.so.6 and libm.so.6, in that order. String table layout:
// index 0 is the empty string, libc.so.6 starts at 1, libm.so.6 at 11.
func buildDynamicImage() *testImage {
	return newTestImage(testImageSize).
		setFileHeader(testPhdrOffset, testPhdrSize, 2).
		putProgramHeader(0, 1, 0, 0). // PT_LOAD, irrelevant to the walk
		putProgramHeader(1, rawSegmentDynamic, testDynOffset, 6*dynEntrySize).
		putDynamicEntry(0, rawTagNeeded, 1).
		putDynamicEntry(1, rawTagNeeded, 11).
		putDynamicEntry(2, rawTagStrTab, testStrOffset).
		putDynamicEntry(3, rawTagStrSize, testStrSize).
		putDynamicEntry(4, 21, 0). // DT_DEBUG, ignored
		putDynamicEntry(5, 0, 0).  // DT_NULL terminator
		putString(testStrOffset+1, "libc.so.6").
		putString(testStrOffset+11, "libm.so.6")
}
