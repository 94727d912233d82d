package node

import "github.com/gencam/genicam/types"

// BitMask is either a single bit or an inclusive LSB..MSB range within the
// register's byte payload, counted from LSB=0 (§3's invariant: lsb <= msb <
// 8*length).
type BitMask struct {
	LSB int
	MSB int
}

// SingleBit returns the one-bit mask at pos.
func SingleBit(pos int) BitMask { return BitMask{LSB: pos, MSB: pos} }

// Range returns the inclusive [lsb,msb] mask.
func Range(lsb, msb int) BitMask { return BitMask{LSB: lsb, MSB: msb} }

// Width is the number of bits the mask covers.
func (m BitMask) Width() int { return m.MSB - m.LSB + 1 }

// MaskedIntRegNode is an integer register whose logical value occupies a
// bit range within its byte payload (§4.4 step 5, §9 glossary). Produced
// either directly from an XML MaskedIntReg element or by expanding a
// StructReg's StructEntry children (§4.3).
type MaskedIntRegNode struct {
	RegisterBase

	Mask     BitMask
	Sign     types.Sign
	Endian   types.Endianness
	MinConst int64
	MaxConst int64
	IncConst int64
	UnitStr  string
	Repr     types.Representation
}

func (n *MaskedIntRegNode) Min() int64                          { return n.MinConst }
func (n *MaskedIntRegNode) Max() int64                           { return n.MaxConst }
func (n *MaskedIntRegNode) Inc() int64                           { return n.IncConst }
func (n *MaskedIntRegNode) Unit() string                         { return n.UnitStr }
func (n *MaskedIntRegNode) Representation() types.Representation { return n.Repr }
