package layout

import (
	"testing"

	"github.com/gencam/genicam/internal/buf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallLayout(t *testing.T) *Layout {
	t.Helper()
	l, err := NewBuilder(0).
		Add(EntryDesc{Name: "VersionMinor", Len: 2, Access: RO, Kind: KindUint, Endian: buf.LittleEndian, Init: uint64(1)}).
		Add(EntryDesc{Name: "Name", Len: 8, Access: RW, Kind: KindString, Init: "hi"}).
		Add(EntryDesc{Name: "Counter", Len: 4, Access: RW, Kind: KindUint, Endian: buf.LittleEndian}).
		Add(EntryDesc{Name: "Secret", Len: 2, Access: NA, Kind: KindBytes, Init: []byte{0xaa, 0xbb}}).
		Build()
	require.NoError(t, err)
	return l
}

func TestSizeIsSumOfEntryLengths(t *testing.T) {
	l := smallLayout(t)
	assert.Equal(t, 16, l.Size())
}

func TestRawEntryOffsets(t *testing.T) {
	l := smallLayout(t)
	re, err := l.RawEntry("Counter")
	require.NoError(t, err)
	assert.Equal(t, RawEntry{Offset: 10, Len: 4}, re)
}

func TestFragmentPreload(t *testing.T) {
	l := smallLayout(t)
	frag := l.Fragment()
	require.Len(t, frag, 16)
	assert.Equal(t, byte(1), frag[0])
	assert.Equal(t, byte(0), frag[1])
	assert.Equal(t, "hi\x00\x00\x00\x00\x00\x00", string(frag[2:10]))
}

func TestAccessRightWithRangeStrictest(t *testing.T) {
	l := smallLayout(t)
	assert.Equal(t, RO, l.AccessRightWithRange(0, 2))
	assert.Equal(t, RW, l.AccessRightWithRange(2, 10))
	assert.Equal(t, NA, l.AccessRightWithRange(14, 16))
	// A range spanning RO and RW areas intersects to RO.
	assert.Equal(t, RO, l.AccessRightWithRange(0, 4))
	// Out of bounds or empty yields NA.
	assert.Equal(t, NA, l.AccessRightWithRange(0, 0))
	assert.Equal(t, NA, l.AccessRightWithRange(10, 100))
}

func TestWriteRejectsNonWritableRange(t *testing.T) {
	l := smallLayout(t)
	mem := l.Fragment()
	err := l.Write(mem, 14, []byte{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUintRoundTrip(t *testing.T) {
	l := smallLayout(t)
	mem := l.Fragment()
	require.NoError(t, l.PutUint(mem, "Counter", 0xdeadbeef&0x7fffffff))
	v, err := l.Uint(mem, "Counter")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xdeadbeef&0x7fffffff), v)
}

func TestStringRoundTrip(t *testing.T) {
	l := smallLayout(t)
	mem := l.Fragment()
	require.NoError(t, l.PutString(mem, "Name", "hello"))
	s, err := l.String(mem, "Name")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestStringTooLongRejected(t *testing.T) {
	l := smallLayout(t)
	mem := l.Fragment()
	err := l.PutString(mem, "Name", "this string is definitely too long")
	require.Error(t, err)
}

func TestEntryTooWideRejected(t *testing.T) {
	_, err := NewBuilder(0).
		Add(EntryDesc{Name: "Huge", Len: 9, Kind: KindUint}).
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryTooWide)
}

func TestUnknownEntry(t *testing.T) {
	l := smallLayout(t)
	_, err := l.RawEntry("DoesNotExist")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

func TestWideStringRoundTrip(t *testing.T) {
	l, err := NewBuilder(0).
		Add(EntryDesc{Name: "Label", Len: 16, Access: RW, Kind: KindWideString}).
		Build()
	require.NoError(t, err)
	mem := l.Fragment()

	require.NoError(t, l.PutWideString(mem, "Label", "cam1"))
	s, err := l.WideString(mem, "Label")
	require.NoError(t, err)
	assert.Equal(t, "cam1", s)
}

func TestWideStringTooLongRejected(t *testing.T) {
	l, err := NewBuilder(0).
		Add(EntryDesc{Name: "Label", Len: 4, Access: RW, Kind: KindWideString}).
		Build()
	require.NoError(t, err)
	mem := l.Fragment()

	err = l.PutWideString(mem, "Label", "too long for four bytes")
	require.Error(t, err)
}
