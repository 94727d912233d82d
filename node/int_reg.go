package node

import "github.com/gencam/genicam/types"

// IntRegNode is an integer register: its value is the full declared-length
// byte payload decoded as a signed or unsigned integer in the declared
// endianness (§4.4).
type IntRegNode struct {
	RegisterBase

	Sign     types.Sign
	Endian   types.Endianness
	MinConst int64
	MaxConst int64
	IncConst int64
	UnitStr  string
	Repr     types.Representation
}

func (n *IntRegNode) Min() int64                          { return n.MinConst }
func (n *IntRegNode) Max() int64                           { return n.MaxConst }
func (n *IntRegNode) Inc() int64                           { return n.IncConst }
func (n *IntRegNode) Unit() string                         { return n.UnitStr }
func (n *IntRegNode) Representation() types.Representation { return n.Repr }
