package store

import "github.com/gencam/genicam/types"

// CacheEntry is a node's last committed value plus a validity bit (§3).
type CacheEntry struct {
	Value any
	Valid bool
}

// CacheStore maps NodeID to cached reads/writes and maintains the reverse
// invalidator index: for a node N, dependents[N] is the set of nodes whose
// cache must be dropped when N is written (§3c).
//
// A node's own p_invalidators list names the *triggers* that invalidate it
// (S4: "B.p_invalidators = [A]" means writing A invalidates B), so
// RegisterInvalidators is called once per node at parse time with that
// node as dependent and its p_invalidators as triggers; CacheStore inverts
// that into the trigger->dependents index used by Invalidate.
type CacheStore struct {
	mode       map[types.NodeID]types.CachingMode
	cache      map[types.NodeID]CacheEntry
	dependents map[types.NodeID][]types.NodeID
}

// NewCacheStore creates an empty CacheStore.
func NewCacheStore() *CacheStore {
	return &CacheStore{
		mode:       make(map[types.NodeID]types.CachingMode),
		cache:      make(map[types.NodeID]CacheEntry),
		dependents: make(map[types.NodeID][]types.NodeID),
	}
}

// SetCacheMode records node's cache policy (RegisterBase.cacheable, §3).
func (c *CacheStore) SetCacheMode(node types.NodeID, mode types.CachingMode) {
	c.mode[node] = mode
}

// CacheMode returns node's cache policy, defaulting to WriteThrough (the
// RegisterBase default, §3) if never set.
func (c *CacheStore) CacheMode(node types.NodeID) types.CachingMode {
	if m, ok := c.mode[node]; ok {
		return m
	}
	return types.WriteThrough
}

// RegisterInvalidators records that dependent's cache must be dropped
// whenever any of triggers is written.
func (c *CacheStore) RegisterInvalidators(dependent types.NodeID, triggers []types.NodeID) {
	for _, t := range triggers {
		c.dependents[t] = append(c.dependents[t], dependent)
	}
}

// Get returns node's cached value, if any and valid.
func (c *CacheStore) Get(node types.NodeID) (any, bool) {
	e, ok := c.cache[node]
	if !ok || !e.Valid {
		return nil, false
	}
	return e.Value, true
}

// Put records value as node's cached value.
func (c *CacheStore) Put(node types.NodeID, value any) {
	c.cache[node] = CacheEntry{Value: value, Valid: true}
}

// Drop removes node's own cache entry without cascading to dependents.
func (c *CacheStore) Drop(node types.NodeID) {
	delete(c.cache, node)
}

// Invalidate drops node's own cache entry and then, transitively, every
// node that (directly or indirectly) lists node as one of its invalidators
// (§3's invariant, property test 4, scenario S4). The graph is acyclic by
// construction (a parse-time check enforces this), but Invalidate tracks
// visited nodes defensively so a malformed graph can't loop forever.
func (c *CacheStore) Invalidate(node types.NodeID) {
	visited := map[types.NodeID]bool{}
	var walk func(types.NodeID)
	walk = func(n types.NodeID) {
		if visited[n] {
			return
		}
		visited[n] = true
		c.Drop(n)
		for _, dep := range c.dependents[n] {
			walk(dep)
		}
	}
	walk(node)
}

// DetectCycle reports whether the trigger->dependents graph built so far
// contains a cycle, and the NodeID at which it was found. The parser calls
// this once after registering every node's invalidators; §4.3 treats a
// definitional cycle here as a parse error.
func (c *CacheStore) DetectCycle() (types.NodeID, bool) {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[types.NodeID]int{}
	var visit func(types.NodeID) (types.NodeID, bool)
	visit = func(n types.NodeID) (types.NodeID, bool) {
		color[n] = gray
		for _, dep := range c.dependents[n] {
			switch color[dep] {
			case gray:
				return dep, true
			case white:
				if found, ok := visit(dep); ok {
					return found, true
				}
			}
		}
		color[n] = black
		return 0, false
	}
	for n := range c.dependents {
		if color[n] == white {
			if found, ok := visit(n); ok {
				return found, true
			}
		}
	}
	return 0, false
}
