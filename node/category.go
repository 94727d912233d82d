package node

import "github.com/gencam/genicam/types"

// CategoryNode groups other nodes for presentation purposes; it carries no
// value of its own (§4.6).
type CategoryNode struct {
	NodeBase

	Children []types.NodeID
}
