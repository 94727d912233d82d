package node

import "github.com/gencam/genicam/types"

// CommandNode executes an action by writing a sentinel value to another
// node (typically an integer register) and polling it for completion.
type CommandNode struct {
	NodeBase

	PValue     types.NodeID
	CommandVal int64 // value written to PValue to trigger execution
}

func (n *CommandNode) CommandValue() types.NodeID { return n.PValue }
