package node

import "github.com/gencam/genicam/types"

// ConverterNode computes a floating-point value from other nodes via a
// forward formula, and accepts writes by solving an inverse formula for the
// distinguished TO variable (§4.5).
type ConverterNode struct {
	NodeBase

	PValue    types.NodeID // node the converted value is read from/written to
	Variables map[string]types.NodeID

	FromExpr string // formula yielding `value` from the variables
	ToExpr   string // formula yielding the value to write to PValue, given TO

	UnitStr string
}

// IntConverterNode is ConverterNode's integer-dialect sibling: formulas
// evaluate with IntDivision semantics and the result is an int64 (§4.2).
type IntConverterNode struct {
	NodeBase

	PValue    types.NodeID
	Variables map[string]types.NodeID

	FromExpr string
	ToExpr   string

	UnitStr string
	Repr    types.Representation
}
