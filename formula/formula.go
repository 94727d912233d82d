// Package formula implements the small arithmetic/boolean expression
// sub-language used by Converter, IntConverter, SwissKnife, and
// IntSwissKnife nodes (§4.2). Expressions are parsed once, at node-graph
// build time, and evaluated many times against different variable
// environments.
package formula

import (
	"errors"

	"github.com/gencam/genicam/types"
)

// Eval parses and evaluates expr in one step against env, using dialect to
// resolve "/" per §4.2. Prefer Parse followed by repeated EvalExpr calls for
// expressions evaluated more than once (every Converter/SwissKnife node
// does).
func Eval(expr string, env Env, dialect Dialect) (Value, error) {
	e, err := Parse(expr)
	if err != nil {
		return Value{}, err
	}
	return EvalExpr(e, env, dialect)
}

// EvalExpr evaluates a previously parsed Expr against env, translating the
// package's internal sentinel errors into the engine's typed error
// vocabulary (§7: ArithmeticError, UnboundVariable).
func EvalExpr(e Expr, env Env, dialect Dialect) (Value, error) {
	v, err := e.eval(env, dialect)
	if err != nil {
		return Value{}, wrapTyped(err)
	}
	return v, nil
}

func wrapTyped(err error) error {
	switch {
	case errors.Is(err, ErrArithmetic):
		return types.New(types.ErrKindArithmetic, "formula arithmetic error", err)
	case errors.Is(err, ErrUnboundVariable):
		return types.New(types.ErrKindUnboundVariable, "formula unbound variable", err)
	default:
		return err
	}
}
