package engine

import (
	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/types"
)

// IsImplemented reports a node's p_is_implemented predicate, defaulting to
// true when unset (§4.6).
func (e *Engine) IsImplemented(n *node.NodeBase) (bool, error) {
	return e.predicate(n.PIsImplemented, true)
}

// IsAvailable reports a node's p_is_available predicate, defaulting to true.
func (e *Engine) IsAvailable(n *node.NodeBase) (bool, error) {
	return e.predicate(n.PIsAvailable, true)
}

// IsLocked reports a node's p_is_locked predicate, defaulting to false.
func (e *Engine) IsLocked(n *node.NodeBase) (bool, error) {
	return e.predicate(n.PIsLocked, false)
}

func (e *Engine) predicate(id types.NodeID, def bool) (bool, error) {
	if id == types.InvalidNodeID {
		return def, nil
	}
	v, err := e.ReadInteger(id)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// ReadBoolean reads a BooleanNode as the GenICam convention: nonzero means
// true (§4.6's IBoolean).
func (e *Engine) ReadBoolean(id types.NodeID) (bool, error) {
	n, err := e.lookupNode(id)
	if err != nil {
		return false, err
	}
	b, ok := n.(*node.BooleanNode)
	if !ok {
		return false, types.ErrInvalidNode
	}
	if b.PValue != types.InvalidNodeID {
		v, err := e.ReadInteger(b.PValue)
		return v != 0, err
	}
	val, err := e.Values.Get(b.DefaultValue)
	if err != nil {
		return false, err
	}
	return val.B, nil
}

// WriteBoolean writes a BooleanNode by delegating to its underlying
// integer-valued node.
func (e *Engine) WriteBoolean(id types.NodeID, value bool) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	b, ok := n.(*node.BooleanNode)
	if !ok {
		return types.ErrInvalidNode
	}
	if b.PValue == types.InvalidNodeID {
		return types.New(types.ErrKindInvalidNode, "boolean node has no writable backing value", nil)
	}
	var iv int64
	if value {
		iv = 1
	}
	return e.WriteInteger(b.PValue, iv)
}

// CurrentEntry returns the EnumEntry an EnumerationNode currently holds.
func (e *Engine) CurrentEntry(id types.NodeID) (node.EnumEntry, error) {
	n, err := e.lookupNode(id)
	if err != nil {
		return node.EnumEntry{}, err
	}
	en, ok := n.(*node.EnumerationNode)
	if !ok {
		return node.EnumEntry{}, types.ErrInvalidNode
	}
	var v int64
	if en.PValue != types.InvalidNodeID {
		v, err = e.ReadInteger(en.PValue)
		if err != nil {
			return node.EnumEntry{}, err
		}
	} else {
		val, err := e.Values.Get(en.DefaultValue)
		if err != nil {
			return node.EnumEntry{}, err
		}
		v = val.I
	}
	entry, ok := en.EntryByValue(v)
	if !ok {
		return node.EnumEntry{}, types.New(types.ErrKindInvalidData, "current value matches no enum entry", nil)
	}
	return entry, nil
}

// SetEntryBySymbol sets an EnumerationNode to the entry named symbol.
func (e *Engine) SetEntryBySymbol(id types.NodeID, symbol string) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	en, ok := n.(*node.EnumerationNode)
	if !ok {
		return types.ErrInvalidNode
	}
	entry, ok := en.EntryBySymbol(symbol)
	if !ok {
		return types.New(types.ErrKindInvalidData, "no such enum symbol: "+symbol, nil)
	}
	if en.PValue == types.InvalidNodeID {
		return types.New(types.ErrKindInvalidNode, "enumeration node has no writable backing value", nil)
	}
	return e.WriteInteger(en.PValue, entry.Value)
}

// Execute runs a CommandNode by writing its trigger value to PValue.
func (e *Engine) Execute(id types.NodeID) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	c, ok := n.(*node.CommandNode)
	if !ok {
		return types.ErrInvalidNode
	}
	return e.WriteInteger(c.PValue, c.CommandVal)
}

// IsDone reports whether a CommandNode's trigger value has been consumed:
// GenICam convention is that the backing register reads back 0 once the
// device has finished executing.
func (e *Engine) IsDone(id types.NodeID) (bool, error) {
	n, err := e.lookupNode(id)
	if err != nil {
		return false, err
	}
	c, ok := n.(*node.CommandNode)
	if !ok {
		return false, types.ErrInvalidNode
	}
	v, err := e.ReadInteger(c.PValue)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}
