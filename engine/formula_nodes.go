package engine

import (
	"github.com/gencam/genicam/formula"
	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/types"
)

// buildFormulaEnv resolves every variable a parsed expression references
// against the node graph, reading each bound node's current value (integer
// or float, whichever it holds) through the same Engine — so a
// Converter/SwissKnife formula can mix references to IntReg, FloatReg, or
// another Converter.
func (e *Engine) buildFormulaEnv(vars map[string]types.NodeID, parsed formula.Expr) (formula.Env, error) {
	env := formula.Env{}
	for _, name := range formula.Identifiers(parsed) {
		id, ok := vars[name]
		if !ok {
			return nil, types.New(types.ErrKindParse, "unresolved formula variable "+name, nil)
		}
		v, err := e.readNumeric(id)
		if err != nil {
			return nil, err
		}
		env[name] = v
	}
	return env, nil
}

// readNumeric reads id as whichever numeric type its variant holds,
// producing a formula.Value so integer and float nodes can be mixed in one
// expression's environment.
func (e *Engine) readNumeric(id types.NodeID) (formula.Value, error) {
	n, err := e.lookupNode(id)
	if err != nil {
		return formula.Value{}, err
	}
	switch n.(type) {
	case *node.FloatNode, *node.FloatRegNode:
		f, err := e.ReadFloat(id)
		if err != nil {
			return formula.Value{}, err
		}
		return formula.Float(f), nil
	default:
		i, err := e.ReadInteger(id)
		if err != nil {
			return formula.Value{}, err
		}
		return formula.Int(i), nil
	}
}

func (e *Engine) evalIntSwissKnife(n *node.IntSwissKnifeNode) (int64, error) {
	parsed, err := formula.Parse(n.Expr)
	if err != nil {
		return 0, types.New(types.ErrKindParse, "bad swiss-knife expression", err)
	}
	env, err := e.buildFormulaEnv(n.Variables, parsed)
	if err != nil {
		return 0, err
	}
	v, err := formula.EvalExpr(parsed, env, formula.IntDivision)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

func (e *Engine) evalIntConverterRead(n *node.IntConverterNode) (int64, error) {
	parsed, err := formula.Parse(n.FromExpr)
	if err != nil {
		return 0, types.New(types.ErrKindParse, "bad converter from-expression", err)
	}
	env, err := e.buildFormulaEnv(n.Variables, parsed)
	if err != nil {
		return 0, err
	}
	v, err := formula.EvalExpr(parsed, env, formula.IntDivision)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// WriteIntConverter solves the inverse to_expr for TO=userValue and writes
// the result to PValue (§4.5).
func (e *Engine) WriteIntConverter(id types.NodeID, userValue int64) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	conv, ok := n.(*node.IntConverterNode)
	if !ok {
		return types.ErrInvalidNode
	}
	parsed, err := formula.Parse(conv.ToExpr)
	if err != nil {
		return types.New(types.ErrKindParse, "bad converter to-expression", err)
	}
	env, err := e.buildFormulaEnv(conv.Variables, parsed)
	if err != nil {
		return err
	}
	env["TO"] = formula.Int(userValue)
	v, err := formula.EvalExpr(parsed, env, formula.IntDivision)
	if err != nil {
		return err
	}
	return e.WriteInteger(conv.PValue, v.Int64())
}

func (e *Engine) evalSwissKnife(n *node.SwissKnifeNode) (float64, error) {
	parsed, err := formula.Parse(n.Expr)
	if err != nil {
		return 0, types.New(types.ErrKindParse, "bad swiss-knife expression", err)
	}
	env, err := e.buildFormulaEnv(n.Variables, parsed)
	if err != nil {
		return 0, err
	}
	v, err := formula.EvalExpr(parsed, env, formula.FloatDivision)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// WriteSwissKnife always fails: a SwissKnife is read-only (§4.5).
func (e *Engine) WriteSwissKnife(types.NodeID, float64) error {
	return types.New(types.ErrKindInvalidNode, "SwissKnife nodes are read-only", nil)
}

func (e *Engine) evalConverterRead(n *node.ConverterNode) (float64, error) {
	parsed, err := formula.Parse(n.FromExpr)
	if err != nil {
		return 0, types.New(types.ErrKindParse, "bad converter from-expression", err)
	}
	env, err := e.buildFormulaEnv(n.Variables, parsed)
	if err != nil {
		return 0, err
	}
	v, err := formula.EvalExpr(parsed, env, formula.FloatDivision)
	if err != nil {
		return 0, err
	}
	return v.Float64(), nil
}

// WriteConverter solves the inverse to_expr for TO=userValue and writes the
// result to PValue (§4.5).
func (e *Engine) WriteConverter(id types.NodeID, userValue float64) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	conv, ok := n.(*node.ConverterNode)
	if !ok {
		return types.ErrInvalidNode
	}
	parsed, err := formula.Parse(conv.ToExpr)
	if err != nil {
		return types.New(types.ErrKindParse, "bad converter to-expression", err)
	}
	env, err := e.buildFormulaEnv(conv.Variables, parsed)
	if err != nil {
		return err
	}
	env["TO"] = formula.Float(userValue)
	v, err := formula.EvalExpr(parsed, env, formula.FloatDivision)
	if err != nil {
		return err
	}
	return e.WriteFloat(conv.PValue, v.Float64())
}
