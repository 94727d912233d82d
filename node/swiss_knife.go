package node

import "github.com/gencam/genicam/types"

// SwissKnifeNode is a read-only Converter: only the forward expression
// exists, so writes always fail with InvalidNode (§4.5).
type SwissKnifeNode struct {
	NodeBase

	Variables map[string]types.NodeID
	Expr      string
	UnitStr   string
}

// IntSwissKnifeNode is SwissKnifeNode's integer dialect: IntDivision
// semantics, int64 result (§4.2, scenario S5).
type IntSwissKnifeNode struct {
	NodeBase

	Variables map[string]types.NodeID
	Expr      string
	UnitStr   string
	Repr      types.Representation
}
