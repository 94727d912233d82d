package node

// RegisterNode is a raw byte register with no integer/float/string
// interpretation: callers read/write exactly RegisterBase.LengthExpr bytes
// through the Port (§4.6's IRegister).
type RegisterNode struct {
	RegisterBase
}
