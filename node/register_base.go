package node

import "github.com/gencam/genicam/types"

// AddressExpr and LengthExpr are formula source strings evaluated over the
// integer node environment to yield a register's runtime address/length
// (§3: "address (expression yielding u64)").
type RegisterBase struct {
	NodeBase

	AddressExpr string
	LengthExpr  string
	Port        types.NodeID

	AccessMode types.AccessMode
	Cacheable  types.CachingMode
	PollingTime int64 // advisory only (§9 open question); 0 means unset

	Streamable bool

	// PInvalidators are the trigger nodes registered with the CacheStore's
	// reverse index (§3's invariant, scenario S4).
	PInvalidators []types.NodeID
}

// RegisterBase satisfies the IRegister capability interface.
func (r *RegisterBase) RegisterBase() *RegisterBase { return r }

// NewRegisterBase returns a RegisterBase with §3's defaults: AccessMode=RO,
// Cacheable=WriteThrough, Streamable=false.
func NewRegisterBase(id types.NodeID) RegisterBase {
	return RegisterBase{
		NodeBase:   NewNodeBase(id),
		AccessMode: types.RO,
		Cacheable:  types.WriteThrough,
	}
}

// EffectiveAccessMode combines the register's intrinsic AccessMode with its
// NodeBase's ImposedAccessMode (§3's monotonic-restriction invariant).
func (r *RegisterBase) EffectiveAccessMode() types.AccessMode {
	return r.AccessMode.Combine(r.ImposedAccessMode)
}
