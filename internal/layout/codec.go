package layout

import (
	"fmt"
	"unicode/utf8"

	"github.com/gencam/genicam/internal/buf"
	"golang.org/x/text/encoding/unicode"
)

var wideCodec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Read returns a copy of mem[lo:hi], validating the range against the
// layout's bounds (but not its access right — callers needing access
// enforcement use Write, or check AccessRightWithRange themselves for
// reads gated by a region's RO/NA policy).
func (l *Layout) Read(mem []byte, lo, hi int) ([]byte, error) {
	b, ok := buf.Slice(mem, lo, hi-lo)
	if !ok || lo < 0 || hi > l.size {
		return nil, fmt.Errorf("%w: [%d,%d) in layout of size %d", ErrOutOfRange, lo, hi, l.size)
	}
	return append([]byte(nil), b...), nil
}

// Write copies data into mem[lo:lo+len(data)], failing if any byte of that
// range lies in a non-writable area (§4.1).
func (l *Layout) Write(mem []byte, lo int, data []byte) error {
	hi := lo + len(data)
	if lo < 0 || hi > l.size || hi > len(mem) {
		return fmt.Errorf("%w: [%d,%d) in layout of size %d", ErrOutOfRange, lo, hi, l.size)
	}
	if !l.AccessRightWithRange(lo, hi).writable() {
		return fmt.Errorf("%w: [%d,%d)", ErrAccessDenied, lo, hi)
	}
	copy(mem[lo:hi], data)
	return nil
}

// Uint decodes the named KindUint entry from mem as an unsigned integer.
func (l *Layout) Uint(mem []byte, name string) (uint64, error) {
	e, b, err := l.entryBytes(mem, name, KindUint)
	if err != nil {
		return 0, err
	}
	return buf.Uint(b, e.Endian), nil
}

// Int decodes the named KindInt entry from mem as a sign-extended integer.
func (l *Layout) Int(mem []byte, name string) (int64, error) {
	e, b, err := l.entryBytes(mem, name, KindInt)
	if err != nil {
		return 0, err
	}
	return buf.Int(b, e.Endian), nil
}

// PutUint encodes v into the named KindUint entry of mem, honoring the
// layout's access-right protection.
func (l *Layout) PutUint(mem []byte, name string, v uint64) error {
	e, err := l.entry(name)
	if err != nil {
		return err
	}
	if e.Kind != KindUint {
		return fmt.Errorf("%w: %q is not KindUint", ErrMisaligned, name)
	}
	enc := make([]byte, e.Len)
	buf.PutUint(enc, v, e.Endian)
	return l.Write(mem, e.Offset, enc)
}

// String decodes the named KindString entry from mem: NUL-terminated within
// its fixed length, required to be valid UTF-8 up to the first NUL (§4.1).
func (l *Layout) String(mem []byte, name string) (string, error) {
	_, b, err := l.entryBytes(mem, name, KindString)
	if err != nil {
		return "", err
	}
	n := indexNUL(b)
	if !utf8.Valid(b[:n]) {
		return "", fmt.Errorf("%w: entry %q", ErrInvalidUTF8, name)
	}
	return string(b[:n]), nil
}

// PutString encodes s into the named KindString entry, NUL-padding it to the
// entry's fixed length. If s plus a terminating NUL doesn't fit, it returns
// an error and writes nothing.
func (l *Layout) PutString(mem []byte, name string, s string) error {
	e, err := l.entry(name)
	if err != nil {
		return err
	}
	if e.Kind != KindString {
		return fmt.Errorf("%w: %q is not KindString", ErrMisaligned, name)
	}
	if len(s) >= e.Len {
		return fmt.Errorf("%w: string %d bytes exceeds entry length %d", ErrMisaligned, len(s), e.Len)
	}
	enc := make([]byte, e.Len)
	copy(enc, s)
	return l.Write(mem, e.Offset, enc)
}

// WideString decodes the named KindWideString entry from mem as UTF-16LE,
// truncating at the first NUL code unit.
func (l *Layout) WideString(mem []byte, name string) (string, error) {
	_, b, err := l.entryBytes(mem, name, KindWideString)
	if err != nil {
		return "", err
	}
	n := indexNUL16(b)
	s, err := wideCodec.NewDecoder().String(string(b[:n]))
	if err != nil {
		return "", fmt.Errorf("%w: entry %q: %v", ErrInvalidUTF8, name, err)
	}
	return s, nil
}

// PutWideString encodes s as UTF-16LE into the named KindWideString entry,
// zero-padding (or erroring if it doesn't fit) to the entry's fixed length.
func (l *Layout) PutWideString(mem []byte, name string, s string) error {
	e, err := l.entry(name)
	if err != nil {
		return err
	}
	if e.Kind != KindWideString {
		return fmt.Errorf("%w: %q is not KindWideString", ErrMisaligned, name)
	}
	encoded, err := wideCodec.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("layout: encode wide string for %q: %w", name, err)
	}
	if len(encoded) >= e.Len {
		return fmt.Errorf("%w: wide string %d bytes exceeds entry length %d", ErrMisaligned, len(encoded), e.Len)
	}
	enc := make([]byte, e.Len)
	copy(enc, encoded)
	return l.Write(mem, e.Offset, enc)
}

func indexNUL16(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return len(b) - len(b)%2
}

func (l *Layout) entryBytes(mem []byte, name string, want EntryKind) (Entry, []byte, error) {
	e, err := l.entry(name)
	if err != nil {
		return Entry{}, nil, err
	}
	if e.Kind != want {
		return Entry{}, nil, fmt.Errorf("%w: %q", ErrMisaligned, name)
	}
	b, ok := buf.Slice(mem, e.Offset, e.Len)
	if !ok {
		return Entry{}, nil, fmt.Errorf("%w: entry %q", ErrOutOfRange, name)
	}
	return e, b, nil
}

func indexNUL(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return len(b)
}
