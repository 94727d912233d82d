package engine

import "github.com/gencam/genicam/types"

// inFlight tracks nodes currently mid-evaluation on the calling goroutine,
// so a Converter/SwissKnife formula that (directly or indirectly)
// references its own node fails with CycleDetected instead of recursing
// forever (§4.5, scenario S3). The engine is single-threaded per Device
// (§5), so a plain map suffices.
type inFlight struct {
	active map[types.NodeID]bool
}

func newInFlight() *inFlight {
	return &inFlight{active: make(map[types.NodeID]bool)}
}

// enter marks id as being evaluated, returning an error if it is already
// in flight, and a release func the caller must defer.
func (f *inFlight) enter(id types.NodeID) (release func(), err error) {
	if f.active[id] {
		return func() {}, types.New(types.ErrKindCycleDetected,
			"re-entrant evaluation", nil)
	}
	f.active[id] = true
	return func() { delete(f.active, id) }, nil
}
