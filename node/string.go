package node

import "github.com/gencam/genicam/types"

// StringNode is a plain string value (§4.6).
type StringNode struct {
	NodeBase

	PValue        types.NodeID
	DefaultValue  types.ValueID
	MaxLengthConst int64
}

func (n *StringNode) MaxLength() int64 { return n.MaxLengthConst }
