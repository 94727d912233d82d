// Package store implements the three interned stores §3 defines: NodeStore
// (name interning + the node-variant arena), ValueStore (literal constants),
// and CacheStore (per-node cached reads/writes plus invalidator bookkeeping).
package store

import (
	"fmt"

	"github.com/gencam/genicam/types"
)

// NodeStore interns node names into NodeIDs and holds the arena of node
// variants indexable by id (§3). It is generic over the node-variant type so
// that this package does not import the node package; both take NodeID from
// the types package.
type NodeStore[T any] struct {
	ids     map[string]types.NodeID
	names   []string // index 0 is a dummy slot; InvalidNodeID == 0
	nodes   []T
	defined []bool
}

// New creates an empty NodeStore.
func New[T any]() *NodeStore[T] {
	s := &NodeStore[T]{ids: make(map[string]types.NodeID)}
	// Reserve index 0 so types.InvalidNodeID never aliases a real node.
	s.names = append(s.names, "")
	s.nodes = append(s.nodes, *new(T))
	s.defined = append(s.defined, false)
	return s
}

// Intern returns the NodeID for name, creating one if this is the first
// time name has been seen. Interning is idempotent (§3).
func (s *NodeStore[T]) Intern(name string) types.NodeID {
	if id, ok := s.ids[name]; ok {
		return id
	}
	id := types.NodeID(len(s.names))
	s.ids[name] = id
	s.names = append(s.names, name)
	s.nodes = append(s.nodes, *new(T))
	s.defined = append(s.defined, false)
	return id
}

// Lookup returns the NodeID already interned for name, if any.
func (s *NodeStore[T]) Lookup(name string) (types.NodeID, bool) {
	id, ok := s.ids[name]
	return id, ok
}

// Name returns the interned name for id.
func (s *NodeStore[T]) Name(id types.NodeID) (string, bool) {
	if int(id) <= 0 || int(id) >= len(s.names) {
		return "", false
	}
	return s.names[id], true
}

// Define attaches the built node variant to an already-interned id. Once
// defined, a node is immutable (§3: "Nodes are created only by the
// parser/builder; once stored, a node is immutable").
func (s *NodeStore[T]) Define(id types.NodeID, node T) error {
	if int(id) <= 0 || int(id) >= len(s.nodes) {
		return fmt.Errorf("store: id %d was never interned", id)
	}
	s.nodes[id] = node
	s.defined[id] = true
	return nil
}

// Get returns the node variant stored for id, and whether it has been
// Define'd yet.
func (s *NodeStore[T]) Get(id types.NodeID) (T, bool) {
	if int(id) <= 0 || int(id) >= len(s.nodes) || !s.defined[id] {
		var zero T
		return zero, false
	}
	return s.nodes[id], true
}

// Len returns the number of interned nodes (including undefined forward
// references).
func (s *NodeStore[T]) Len() int { return len(s.names) - 1 }

// Resolve checks §3's invariant that every interned NodeId resolves to a
// defined node once parsing completes, returning the first unresolved name
// found.
func (s *NodeStore[T]) Resolve() error {
	for id := 1; id < len(s.names); id++ {
		if !s.defined[id] {
			return fmt.Errorf("store: node %q referenced but never defined", s.names[id])
		}
	}
	return nil
}

// Names returns every interned name, in interning order, for round-trip
// serialization and iteration.
func (s *NodeStore[T]) Names() []string {
	return append([]string(nil), s.names[1:]...)
}
