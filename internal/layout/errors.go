// Package layout implements the register-layout primitive (§4.1): a flat
// byte region partitioned into named entries with length, access right,
// endianness, and a typed view, plus the access-right protection map the
// USB3 ABRM/SBRM emulator memory is built from (§6).
package layout

import "errors"

var (
	// ErrOutOfRange indicates an access fell outside [0, size).
	ErrOutOfRange = errors.New("layout: access out of range")
	// ErrAccessDenied indicates an access touched a byte whose access right
	// forbids it (Write reports it for non-writable bytes).
	ErrAccessDenied = errors.New("layout: access right violation")
	// ErrMisaligned indicates a typed accessor's range didn't match its declared width.
	ErrMisaligned = errors.New("layout: misaligned length for typed accessor")
	// ErrInvalidUTF8 indicates a string entry's bytes (up to the first NUL) were not valid UTF-8.
	ErrInvalidUTF8 = errors.New("layout: invalid UTF-8 in string entry")
	// ErrUnknownEntry indicates a lookup by name found no such entry.
	ErrUnknownEntry = errors.New("layout: unknown entry")
	// ErrEntryTooWide indicates an integer entry declared a length over 8 bytes.
	ErrEntryTooWide = errors.New("layout: integer entry exceeds 8 bytes")
)
