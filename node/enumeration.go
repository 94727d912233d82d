package node

import "github.com/gencam/genicam/types"

// EnumerationNode selects among a fixed set of EnumEntry symbols, each
// carrying an integer value (§4.6).
type EnumerationNode struct {
	NodeBase

	PValue       types.NodeID
	DefaultValue types.ValueID
	EntryList    []EnumEntry
}

func (n *EnumerationNode) Entries() []EnumEntry { return n.EntryList }

// EntryBySymbol looks up an entry by its symbolic name.
func (n *EnumerationNode) EntryBySymbol(symbol string) (EnumEntry, bool) {
	for _, e := range n.EntryList {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return EnumEntry{}, false
}

// EntryByValue looks up an entry by its numeric value.
func (n *EnumerationNode) EntryByValue(value int64) (EnumEntry, bool) {
	for _, e := range n.EntryList {
		if e.Value == value {
			return e, true
		}
	}
	return EnumEntry{}, false
}
