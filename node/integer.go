package node

import "github.com/gencam/genicam/types"

// IntegerNode is a plain integer value, independent of any register (§4.6).
// Its value is either held directly in the ValueStore (DefaultValue) or
// delegated to another node (PValue); the engine resolves which at
// evaluation time.
type IntegerNode struct {
	NodeBase

	PValue       types.NodeID
	DefaultValue types.ValueID

	// Bounds are either a constant or a reference to another integer node
	// (PMin/PMax/PInc override the constant when set).
	MinConst, MaxConst, IncConst int64
	PMin, PMax, PInc             types.NodeID

	UnitStr string
	Repr    types.Representation
}

func (n *IntegerNode) Min() int64                          { return n.MinConst }
func (n *IntegerNode) Max() int64                           { return n.MaxConst }
func (n *IntegerNode) Inc() int64                           { return n.IncConst }
func (n *IntegerNode) Unit() string                         { return n.UnitStr }
func (n *IntegerNode) Representation() types.Representation { return n.Repr }
