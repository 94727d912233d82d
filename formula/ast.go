package formula

// Expr is a parsed formula node. Parsing happens once at build time (§4.2);
// EvalExpr is called many times with different variable bindings.
type Expr interface {
	eval(env Env, dialect Dialect) (Value, error)
}

type litExpr struct{ v Value }

func (e litExpr) eval(Env, Dialect) (Value, error) { return e.v, nil }

type identExpr struct{ name string }

func (e identExpr) eval(env Env, _ Dialect) (Value, error) {
	v, ok := env[e.name]
	if !ok {
		return Value{}, unboundErr(e.name)
	}
	return v, nil
}

type unaryExpr struct {
	op tokenKind
	x  Expr
}

func (e unaryExpr) eval(env Env, d Dialect) (Value, error) {
	x, err := e.x.eval(env, d)
	if err != nil {
		return Value{}, err
	}
	return evalUnary(e.op, x)
}

type binaryExpr struct {
	op   tokenKind
	l, r Expr
}

func (e binaryExpr) eval(env Env, d Dialect) (Value, error) {
	// && and || short-circuit: the right operand is only evaluated when it
	// can change the result.
	if e.op == tokAndAnd || e.op == tokOrOr {
		l, err := e.l.eval(env, d)
		if err != nil {
			return Value{}, err
		}
		lb := l.truthy()
		if e.op == tokAndAnd && !lb {
			return Int(0), nil
		}
		if e.op == tokOrOr && lb {
			return Int(1), nil
		}
		r, err := e.r.eval(env, d)
		if err != nil {
			return Value{}, err
		}
		if r.truthy() {
			return Int(1), nil
		}
		return Int(0), nil
	}

	l, err := e.l.eval(env, d)
	if err != nil {
		return Value{}, err
	}
	r, err := e.r.eval(env, d)
	if err != nil {
		return Value{}, err
	}
	return evalBinary(e.op, l, r, d)
}

type ternaryExpr struct {
	cond, a, b Expr
}

func (e ternaryExpr) eval(env Env, d Dialect) (Value, error) {
	c, err := e.cond.eval(env, d)
	if err != nil {
		return Value{}, err
	}
	if c.truthy() {
		return e.a.eval(env, d)
	}
	return e.b.eval(env, d)
}

type callExpr struct {
	name string
	args []Expr
}

func (e callExpr) eval(env Env, d Dialect) (Value, error) {
	args := make([]Value, len(e.args))
	for i, a := range e.args {
		v, err := a.eval(env, d)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return evalCall(e.name, args)
}
