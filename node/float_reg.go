package node

import "github.com/gencam/genicam/types"

// FloatRegNode decodes its register payload as an IEEE-754 double or
// single, per its declared length and endianness (§4.6). Endianness
// defaults to LittleEndian (§4.3).
type FloatRegNode struct {
	RegisterBase

	Endian             types.Endianness
	MinConst, MaxConst float64
	UnitStr            string
}

func (n *FloatRegNode) MinFloat() float64 { return n.MinConst }
func (n *FloatRegNode) MaxFloat() float64 { return n.MaxConst }
func (n *FloatRegNode) UnitFloat() string { return n.UnitStr }
