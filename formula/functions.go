package formula

import (
	"fmt"
	"math"
)

// unaryFuncs implements §4.2's unary function list. Each operates on the
// double-widened argument; functions whose mathematical result is always an
// integer for an integer input (ABS, SGN, NEG, TRUNC, FLOOR, CEIL, ROUND)
// preserve the argument's int-ness instead of forcing a float result.
var unaryFuncs = map[string]func(Value) Value{
	"SIN":   func(v Value) Value { return Float(math.Sin(v.Float64())) },
	"COS":   func(v Value) Value { return Float(math.Cos(v.Float64())) },
	"TAN":   func(v Value) Value { return Float(math.Tan(v.Float64())) },
	"ASIN":  func(v Value) Value { return Float(math.Asin(v.Float64())) },
	"ACOS":  func(v Value) Value { return Float(math.Acos(v.Float64())) },
	"ATAN":  func(v Value) Value { return Float(math.Atan(v.Float64())) },
	"EXP":   func(v Value) Value { return Float(math.Exp(v.Float64())) },
	"LN":    func(v Value) Value { return Float(math.Log(v.Float64())) },
	"LG":    func(v Value) Value { return Float(math.Log10(v.Float64())) },
	"SQRT":  func(v Value) Value { return Float(math.Sqrt(v.Float64())) },
	"TRUNC": preserveInt(math.Trunc),
	"FLOOR": preserveInt(math.Floor),
	"CEIL":  preserveInt(math.Ceil),
	"ROUND": preserveInt(math.Round),
	"ABS": func(v Value) Value {
		if v.IsFloat() {
			return Float(math.Abs(v.Float64()))
		}
		i := v.Int64()
		if i < 0 {
			i = -i
		}
		return Int(i)
	},
	"SGN": func(v Value) Value {
		f := v.Float64()
		switch {
		case f > 0:
			return Int(1)
		case f < 0:
			return Int(-1)
		default:
			return Int(0)
		}
	},
	"NEG": func(v Value) Value {
		if v.IsFloat() {
			return Float(-v.Float64())
		}
		return Int(-v.Int64())
	},
}

func preserveInt(f func(float64) float64) func(Value) Value {
	return func(v Value) Value {
		if !v.IsFloat() {
			return v
		}
		return Float(f(v.Float64()))
	}
}

// binaryFuncs implements §4.2's binary function list.
var binaryFuncs = map[string]func(a, b Value) Value{
	"ATAN2": func(a, b Value) Value { return Float(math.Atan2(a.Float64(), b.Float64())) },
	"POW":   func(a, b Value) Value { return Float(math.Pow(a.Float64(), b.Float64())) },
}

func checkArity(name string, n int) error {
	if _, ok := unaryFuncs[name]; ok {
		if n != 1 {
			return fmt.Errorf("%w: %s takes 1 argument, got %d", ErrArity, name, n)
		}
		return nil
	}
	if _, ok := binaryFuncs[name]; ok {
		if n != 2 {
			return fmt.Errorf("%w: %s takes 2 arguments, got %d", ErrArity, name, n)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownFunction, name)
}

func evalCall(name string, args []Value) (Value, error) {
	if fn, ok := unaryFuncs[name]; ok {
		return fn(args[0]), nil
	}
	if fn, ok := binaryFuncs[name]; ok {
		return fn(args[0], args[1]), nil
	}
	return Value{}, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
}
