package node

import "github.com/gencam/genicam/types"

// StructEntryDesc is one <StructEntry> child of a <StructReg> (§4.3). It is
// not a stored node variant; ExpandStructReg folds each entry into the
// shared StructReg base to produce a MaskedIntRegNode.
type StructEntryDesc struct {
	ID types.NodeID

	ToolTip     string
	Description string
	DisplayName string
	Visibility  types.Visibility
	DocuURL     string
	IsDeprecated bool
	EventID     types.NodeID
	PIsImplemented, PIsAvailable, PIsLocked, PBlockPolling types.NodeID
	ImposedAccessMode types.AccessMode
	PErrors           []types.NodeID
	PAlias, PCastAlias types.NodeID

	PInvalidators []types.NodeID
	AccessMode    types.AccessMode
	Cacheable     types.CachingMode
	HasCacheable  bool
	PollingTime   int64
	HasPollingTime bool
	Streamable    bool

	Mask BitMask
	Sign types.Sign
	Unit string
	Repr types.Representation
}

// StructRegDesc is a parsed <StructReg> element prior to expansion.
type StructRegDesc struct {
	Base    RegisterBase
	Endian  types.Endianness
	Entries []StructEntryDesc
}

// ExpandStructReg turns a StructReg plus its StructEntry children into one
// MaskedIntRegNode per entry, applying the StructEntry merge rule from
// §4.3: explicit entry fields override the StructReg's; access_mode's
// default RO and imposed_access_mode's default RW never override; vector
// fields (p_invalidators, p_errors) only override when the entry's list is
// non-empty.
func ExpandStructReg(desc StructRegDesc) []*MaskedIntRegNode {
	out := make([]*MaskedIntRegNode, 0, len(desc.Entries))
	for _, e := range desc.Entries {
		base := desc.Base // copy; each entry gets an independent RegisterBase
		base.ID = e.ID

		if e.ToolTip != "" {
			base.ToolTip = e.ToolTip
		}
		if e.Description != "" {
			base.Description = e.Description
		}
		if e.DisplayName != "" {
			base.DisplayName = e.DisplayName
		}
		if e.Visibility != 0 {
			base.Visibility = e.Visibility
		}
		if e.DocuURL != "" {
			base.DocuURL = e.DocuURL
		}
		if e.IsDeprecated {
			base.IsDeprecated = e.IsDeprecated
		}
		if e.EventID != types.InvalidNodeID {
			base.EventID = e.EventID
		}
		if e.PIsImplemented != types.InvalidNodeID {
			base.PIsImplemented = e.PIsImplemented
		}
		if e.PIsAvailable != types.InvalidNodeID {
			base.PIsAvailable = e.PIsAvailable
		}
		if e.PIsLocked != types.InvalidNodeID {
			base.PIsLocked = e.PIsLocked
		}
		if e.PBlockPolling != types.InvalidNodeID {
			base.PBlockPolling = e.PBlockPolling
		}
		// ImposedAccessMode's default is RW; only an explicit non-RW overrides.
		if e.ImposedAccessMode != types.RW {
			base.ImposedAccessMode = e.ImposedAccessMode
		}
		if len(e.PErrors) > 0 {
			base.PErrors = e.PErrors
		}
		if e.PAlias != types.InvalidNodeID {
			base.PAlias = e.PAlias
		}
		if e.PCastAlias != types.InvalidNodeID {
			base.PCastAlias = e.PCastAlias
		}

		if e.Streamable {
			base.Streamable = e.Streamable
		}
		// AccessMode's default is RO; only an explicit non-RO overrides.
		if e.AccessMode != types.RO {
			base.AccessMode = e.AccessMode
		}
		if e.HasCacheable {
			base.Cacheable = e.Cacheable
		}
		if e.HasPollingTime {
			base.PollingTime = e.PollingTime
		}
		if len(e.PInvalidators) > 0 {
			base.PInvalidators = e.PInvalidators
		}

		out = append(out, &MaskedIntRegNode{
			RegisterBase: base,
			Mask:         e.Mask,
			Sign:         e.Sign,
			Endian:       desc.Endian,
			UnitStr:      e.Unit,
			Repr:         e.Repr,
		})
	}
	return out
}
