// Package engine ties NodeStore, ValueStore, and CacheStore to a Device
// capability and implements the read/write pipelines of §4.4-§4.7: the
// register layout integer is in internal/layout; this package resolves a
// node's address/length, applies caching and access-mode policy, and
// detects formula re-entrancy.
package engine

// Device is the synchronous memory-access boundary every register node
// reaches bytes through (§4.7). Implementations backed by an asynchronous
// transport (the USB3 Vision wire protocol) adapt at this boundary; the
// engine never schedules or retries on their behalf.
type Device interface {
	ReadMem(address uint64, buf []byte) error
	WriteMem(address uint64, data []byte) error
}
