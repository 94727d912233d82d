package layout

import (
	"fmt"
	"sort"

	"github.com/gencam/genicam/internal/buf"
)

// protectedRange is one half-open range of the protection map.
type protectedRange struct {
	lo, hi int // [lo, hi)
	access Access
}

// Layout is a contiguous byte region partitioned into named entries,
// produced once by Builder and immutable thereafter (§4.1).
type Layout struct {
	entries []Entry
	index   map[string]int
	size    int
	fragment []byte
	ranges   []protectedRange // sorted, non-overlapping, covers [0, size)
}

// Builder accumulates entries in order, computing each one's offset by
// accumulating prior lengths from base.
type Builder struct {
	base    int
	offset  int
	entries []Entry
	frag    []byte
	err     error
}

// NewBuilder starts a Builder whose first entry begins at base.
func NewBuilder(base int) *Builder {
	return &Builder{base: base, offset: base}
}

// Add appends one entry, encoding its initializer (if any) into the
// fragment buffer at the entry's derived offset.
func (b *Builder) Add(d EntryDesc) *Builder {
	if b.err != nil {
		return b
	}
	if (d.Kind == KindUint || d.Kind == KindInt) && d.Len > 8 {
		b.err = fmt.Errorf("%w: entry %q has length %d", ErrEntryTooWide, d.Name, d.Len)
		return b
	}
	e := Entry{
		Name:   d.Name,
		Offset: b.offset,
		Len:    d.Len,
		Access: d.Access,
		Kind:   d.Kind,
		Endian: d.Endian,
	}
	b.entries = append(b.entries, e)

	// Grow the fragment buffer to cover this entry, then encode its
	// initializer in place.
	need := e.Offset + e.Len - b.base
	for len(b.frag) < need {
		b.frag = append(b.frag, 0)
	}
	dst := b.frag[e.Offset-b.base : e.Offset-b.base+e.Len]
	if d.Init != nil {
		if err := encodeInit(dst, d); err != nil {
			b.err = fmt.Errorf("entry %q: %w", d.Name, err)
			return b
		}
	}

	b.offset += d.Len
	return b
}

func encodeInit(dst []byte, d EntryDesc) error {
	switch d.Kind {
	case KindUint:
		v, ok := toUint64(d.Init)
		if !ok {
			return fmt.Errorf("initializer is not an integer")
		}
		buf.PutUint(dst, v, d.Endian)
	case KindInt:
		v, ok := toInt64(d.Init)
		if !ok {
			return fmt.Errorf("initializer is not an integer")
		}
		buf.PutUint(dst, uint64(v), d.Endian)
	case KindString:
		s, ok := d.Init.(string)
		if !ok {
			return fmt.Errorf("initializer is not a string")
		}
		if len(s) > len(dst) {
			return fmt.Errorf("initializer string longer than entry")
		}
		copy(dst, s) // remaining bytes already zero (NUL padding)
	case KindWideString:
		s, ok := d.Init.(string)
		if !ok {
			return fmt.Errorf("initializer is not a string")
		}
		encoded, err := wideCodec.NewEncoder().String(s)
		if err != nil {
			return fmt.Errorf("wide string initializer: %w", err)
		}
		if len(encoded) > len(dst) {
			return fmt.Errorf("initializer wide string longer than entry")
		}
		copy(dst, encoded)
	case KindBytes:
		raw, ok := d.Init.([]byte)
		if !ok || len(raw) != len(dst) {
			return fmt.Errorf("initializer must be exactly %d bytes", len(dst))
		}
		copy(dst, raw)
	}
	return nil
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint64:
		return x, true
	case uint32:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case int:
		return uint64(x), true
	case int64:
		return uint64(x), true
	default:
		return 0, false
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	default:
		return 0, false
	}
}

// Build finalizes the Layout: computes total size and the sorted access
// protection map.
func (b *Builder) Build() (*Layout, error) {
	if b.err != nil {
		return nil, b.err
	}
	l := &Layout{
		entries:  b.entries,
		index:    make(map[string]int, len(b.entries)),
		size:     b.offset - b.base,
		fragment: append([]byte(nil), b.frag...),
	}
	for i, e := range l.entries {
		l.index[e.Name] = i
	}
	l.ranges = buildProtectionMap(l.entries, b.base, l.size)
	return l, nil
}

func buildProtectionMap(entries []Entry, base, size int) []protectedRange {
	if size == 0 {
		return nil
	}
	ranges := make([]protectedRange, 0, len(entries))
	for _, e := range entries {
		ranges = append(ranges, protectedRange{lo: e.Offset - base, hi: e.Offset - base + e.Len, access: e.Access})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	return ranges
}

// Size returns the layout's total byte size (sum of all entry lengths).
func (l *Layout) Size() int { return l.size }

// RawEntry returns the {offset, len} of the named entry relative to the
// layout's base.
func (l *Layout) RawEntry(name string) (RawEntry, error) {
	e, err := l.entry(name)
	if err != nil {
		return RawEntry{}, err
	}
	return RawEntry{Offset: e.Offset, Len: e.Len}, nil
}

func (l *Layout) entry(name string) (Entry, error) {
	i, ok := l.index[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	return l.entries[i], nil
}

// Fragment returns a clone of the layout's preloaded byte buffer.
func (l *Layout) Fragment() []byte {
	return append([]byte(nil), l.fragment...)
}

// AccessRightWithRange returns the strictest access right among all ranges
// intersecting r (a [lo, hi) byte range relative to the layout's base). An
// empty or out-of-bounds r returns NA (§4.1).
func (l *Layout) AccessRightWithRange(lo, hi int) Access {
	if lo >= hi || lo < 0 || hi > l.size {
		return NA
	}
	result := RW
	matched := false
	for _, r := range l.ranges {
		if r.hi <= lo || r.lo >= hi {
			continue
		}
		matched = true
		result = intersect(result, r.access)
	}
	if !matched {
		return NA
	}
	return result
}
