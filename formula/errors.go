package formula

import "errors"

// Sentinel errors returned by the lexer, parser, and evaluator. EvalExpr
// wraps ErrArithmetic and ErrUnboundVariable (per §4.2/§7) in a *types.Error;
// parse-time errors stay as plain Go errors since parsing happens once at
// build time rather than on every evaluation.
var (
	// ErrUnexpectedChar indicates a byte the lexer does not recognize.
	ErrUnexpectedChar = errors.New("formula: unexpected character")
	// ErrUnexpectedToken indicates the parser found a token it could not use.
	ErrUnexpectedToken = errors.New("formula: unexpected token")
	// ErrUnknownFunction indicates a call to a function not in §4.2's list.
	ErrUnknownFunction = errors.New("formula: unknown function")
	// ErrArity indicates a function call with the wrong argument count.
	ErrArity = errors.New("formula: wrong number of arguments")

	// ErrArithmetic indicates division/modulo by zero or integer overflow.
	ErrArithmetic = errors.New("formula: arithmetic error")
	// ErrUnboundVariable indicates a variable with no binding in the environment.
	ErrUnboundVariable = errors.New("formula: unbound variable")
	// ErrIntegerOperandRequired indicates a bitwise/shift operator saw a float operand.
	ErrIntegerOperandRequired = errors.New("formula: integer operand required")
)
