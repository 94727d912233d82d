package node

import "github.com/gencam/genicam/types"

// FloatNode is a plain floating-point value (§4.6).
type FloatNode struct {
	NodeBase

	PValue       types.NodeID
	DefaultValue types.ValueID

	MinConst, MaxConst float64
	PMin, PMax         types.NodeID

	UnitStr string
}

func (n *FloatNode) MinFloat() float64 { return n.MinConst }
func (n *FloatNode) MaxFloat() float64 { return n.MaxConst }
func (n *FloatNode) UnitFloat() string { return n.UnitStr }
