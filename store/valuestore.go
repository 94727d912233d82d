package store

import (
	"fmt"

	"github.com/gencam/genicam/types"
)

// ValueKind tags what a Value holds.
type ValueKind uint8

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueBool
	ValueString
)

// Value is a literal constant held by the ValueStore: a default, an
// enumeration entry's numeric value, or a literal used inside a formula
// (§3).
type Value struct {
	Kind ValueKind
	I    int64
	F    float64
	B    bool
	S    string
}

func IntValue(i int64) Value     { return Value{Kind: ValueInt, I: i} }
func FloatValue(f float64) Value { return Value{Kind: ValueFloat, F: f} }
func BoolValue(b bool) Value     { return Value{Kind: ValueBool, B: b} }
func StringValue(s string) Value { return Value{Kind: ValueString, S: s} }

// ValueStore interns literal values keyed by an opaque ValueID.
type ValueStore struct {
	values []Value
}

// NewValueStore creates an empty ValueStore.
func NewValueStore() *ValueStore {
	// Reserve index 0 so types.InvalidValueID never aliases a stored value.
	return &ValueStore{values: []Value{{}}}
}

// Store appends v and returns its new ValueID.
func (vs *ValueStore) Store(v Value) types.ValueID {
	vs.values = append(vs.values, v)
	return types.ValueID(len(vs.values) - 1)
}

// Get returns the value stored for id.
func (vs *ValueStore) Get(id types.ValueID) (Value, error) {
	if int(id) <= 0 || int(id) >= len(vs.values) {
		return Value{}, fmt.Errorf("store: value id %d out of range", id)
	}
	return vs.values[id], nil
}

// Len returns the number of stored values.
func (vs *ValueStore) Len() int { return len(vs.values) - 1 }
