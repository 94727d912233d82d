package node

import "github.com/gencam/genicam/types"

// BooleanNode is a plain boolean value, represented internally as an
// integer node whose nonzero value means true (the GenICam convention).
type BooleanNode struct {
	NodeBase

	PValue       types.NodeID
	DefaultValue types.ValueID
}
