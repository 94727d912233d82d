package layout

import "github.com/gencam/genicam/internal/buf"

// EntryKind is an entry's semantic type (§4.1: "unsigned integer ≤ 8 bytes,
// signed integer ≤ 8 bytes, fixed-length string, or raw bytes").
type EntryKind uint8

const (
	KindBytes EntryKind = iota
	KindUint
	KindInt
	KindString
	// KindWideString decodes as UTF-16LE rather than UTF-8, for entries a
	// legacy tool may have written in wide-character form.
	KindWideString
)

// EntryDesc describes one named entry to be appended to a Layout by
// Builder.Add. Init, when non-nil, preloads the entry's bytes:
//   - KindUint/KindInt: a uint64/int64 (truncated/sign-extended to Len bytes)
//   - KindString: a string, NUL-padded to Len bytes
//   - KindBytes: a []byte of exactly Len bytes
type EntryDesc struct {
	Name   string
	Len    int
	Access Access
	Kind   EntryKind
	Endian buf.Endian
	Init   any
}

// Entry is a Layout's resolved, immutable view of one EntryDesc: its
// derived Offset plus the declared metadata.
type Entry struct {
	Name   string
	Offset int
	Len    int
	Access Access
	Kind   EntryKind
	Endian buf.Endian
}

// RawEntry is the {offset, len} pair callers ask for when they only need
// placement, not the full Entry (e.g. a node's p_invalidator range math).
type RawEntry struct {
	Offset int
	Len    int
}
