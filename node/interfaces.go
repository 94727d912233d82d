// Package node defines the fixed set of GenICam node variants (§4.6) as a
// tagged union: one Go struct per variant, each embedding NodeBase (or
// RegisterBase) and declaring which capability interfaces it supports.
// Capability discovery is a pure function of the variant's static shape —
// the engine package does the type-switching and wires stores/Device to
// the operations a variant's fields describe.
package node

import "github.com/gencam/genicam/types"

// Node is implemented by every variant; it exposes the common NodeBase
// metadata shared by all of them.
type Node interface {
	Base() *NodeBase
}

// IInteger is implemented by variants exposing an integer value with
// bounds and representation metadata (Integer, IntReg, MaskedIntReg).
type IInteger interface {
	Node
	Min() int64
	Max() int64
	Inc() int64
	Unit() string
	Representation() types.Representation
}

// IFloat is implemented by variants exposing a floating-point value
// (Float, FloatReg).
type IFloat interface {
	Node
	MinFloat() float64
	MaxFloat() float64
	UnitFloat() string
}

// IBoolean is implemented by Boolean.
type IBoolean interface {
	Node
}

// IString is implemented by String. StringReg does not implement it: its
// maximum length is its register length, resolved by the engine.
type IString interface {
	Node
	MaxLength() int64
}

// IEnumeration is implemented by Enumeration.
type IEnumeration interface {
	Node
	Entries() []EnumEntry
}

// ICommand is implemented by Command.
type ICommand interface {
	Node
	CommandValue() types.NodeID
}

// IRegister is implemented by *RegisterBase, which carries the Port,
// address and length of a register. The register-backed variants (Register,
// IntReg, FloatReg, StringReg, MaskedIntReg) do not implement it themselves:
// their embedded RegisterBase field shadows the method of the same name, so
// callers reach the base through that field.
type IRegister interface {
	Node
	RegisterBase() *RegisterBase
}

// ISelector is implemented by variants that participate in a
// selector/selected relationship.
type ISelector interface {
	Node
	Selecting() []types.NodeID
	Selected() []types.NodeID
}

// IPort is implemented by Port.
type IPort interface {
	Node
	DeviceName() string
}

// EnumEntry is one symbolic/numeric pair of an Enumeration node.
type EnumEntry struct {
	Symbol string
	Value  int64
	Base   NodeBase
}
