package node

import "github.com/gencam/genicam/types"

// NodeBase holds the fields every node variant carries, per §3.
type NodeBase struct {
	ID types.NodeID

	NameSpace   string
	Visibility  types.Visibility
	ToolTip     string
	Description string
	DisplayName string
	DocuURL     string
	IsDeprecated bool
	EventID     types.NodeID

	// ImposedAccessMode restricts the variant's intrinsic access mode
	// (§3: "monotonically restricts"). Defaults to RW, i.e. no restriction.
	ImposedAccessMode types.AccessMode

	// Predicate node ids, all optional (zero value is types.InvalidNodeID).
	PIsImplemented types.NodeID
	PIsAvailable   types.NodeID
	PIsLocked      types.NodeID
	PBlockPolling  types.NodeID
	PErrors        []types.NodeID
	PAlias         types.NodeID
	PCastAlias     types.NodeID
}

// Base implements Node.
func (b *NodeBase) Base() *NodeBase { return b }

// HasPredicate reports whether a p_is_implemented/p_is_available/p_is_locked
// style predicate was declared at all.
func HasPredicate(id types.NodeID) bool { return id != types.InvalidNodeID }

// NewNodeBase returns a NodeBase with the §3 defaults applied (ImposedAccessMode=RW).
func NewNodeBase(id types.NodeID) NodeBase {
	return NodeBase{ID: id, ImposedAccessMode: types.RW}
}
