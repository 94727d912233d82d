package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntSwissKnifeDialect(t *testing.T) {
	// S5: IntSwissKnife with `(X + 3) * 2 >> 1`, X=5 -> 8; X=0 -> 3.
	e, err := Parse("(X + 3) * 2 >> 1")
	require.NoError(t, err)

	v, err := EvalExpr(e, Env{"X": Int(5)}, IntDivision)
	require.NoError(t, err)
	assert.False(t, v.IsFloat())
	assert.Equal(t, int64(8), v.Int64())

	v, err = EvalExpr(e, Env{"X": Int(0)}, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int64())
}

func TestSwissKnifeDoubleDivision(t *testing.T) {
	// S5: SwissKnife with `X / 2`, X=5 -> 2.5 (double arithmetic).
	v, err := Eval("X / 2", Env{"X": Int(5)}, FloatDivision)
	require.NoError(t, err)
	assert.True(t, v.IsFloat())
	assert.InDelta(t, 2.5, v.Float64(), 1e-9)
}

func TestIntDivisionTruncates(t *testing.T) {
	v, err := Eval("7 / 2", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int64())
}

func TestDivisionByZero(t *testing.T) {
	_, err := Eval("1 / 0", nil, IntDivision)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArithmetic)

	_, err = Eval("1 / 0", nil, FloatDivision)
	require.Error(t, err)
}

func TestModByZero(t *testing.T) {
	_, err := Eval("5 % 0", nil, IntDivision)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArithmetic)
}

func TestUnboundVariable(t *testing.T) {
	_, err := Eval("X + 1", Env{}, IntDivision)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnboundVariable)
}

func TestTernary(t *testing.T) {
	v, err := Eval("X > 0 ? 1 : -1", Env{"X": Int(-5)}, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v.Int64())
}

func TestShiftBeyond64YieldsZero(t *testing.T) {
	v, err := Eval("1 << 64", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())

	v, err = Eval("1024 >> 100", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())
}

func TestBitwiseRequiresInteger(t *testing.T) {
	_, err := Eval("1.5 & 2", nil, IntDivision)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegerOperandRequired)
}

func TestShortCircuit(t *testing.T) {
	// X is unbound, but should never be evaluated since the left side
	// short-circuits both && and ||.
	v, err := Eval("0 && X", Env{}, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())

	v, err = Eval("1 || X", Env{}, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
}

func TestFunctionsAndConstants(t *testing.T) {
	v, err := Eval("ABS(-5)", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Int64())

	v, err = Eval("POW(2, 10)", nil, IntDivision)
	require.NoError(t, err)
	assert.InDelta(t, 1024.0, v.Float64(), 1e-9)

	v, err = Eval("TRUE && FALSE", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Int64())

	v, err = Eval("SQRT(4) == 2", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
}

func TestHexLiteral(t *testing.T) {
	v, err := Eval("0xFF + 1", nil, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, int64(256), v.Int64())
}

func TestPurity(t *testing.T) {
	// Property 6 (§8): evaluating the same parsed expression twice with the
	// same environment yields identical values.
	e, err := Parse("(X * 2 + 1) % 7")
	require.NoError(t, err)
	env := Env{"X": Int(13)}
	a, err := EvalExpr(e, env, IntDivision)
	require.NoError(t, err)
	b, err := EvalExpr(e, env, IntDivision)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestArity(t *testing.T) {
	_, err := Parse("SIN(1, 2)")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArity)

	_, err = Parse("NOSUCHFUNC(1)")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestIdentifiers(t *testing.T) {
	e, err := Parse("X + ATAN2(Y, Z) > 0 ? X : Y + Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, Identifiers(e))
}

func TestIdentifiersNoneForLiteralExpr(t *testing.T) {
	e, err := Parse("1 + 2")
	require.NoError(t, err)
	assert.Empty(t, Identifiers(e))
}
