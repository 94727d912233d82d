package engine

import (
	"fmt"

	"github.com/gencam/genicam/formula"
	"github.com/gencam/genicam/internal/buf"
	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/store"
	"github.com/gencam/genicam/types"
)

// Engine evaluates reads/writes against a populated node graph, honoring
// caching, invalidation, bit-masked integer registers, converters, and
// access-mode policy (§4.4-§4.5). It is single-threaded and synchronous
// with respect to one Device (§5): the node graph itself is immutable
// after parsing, so only the CacheStore and the Device handles are
// mutable state owned by the Engine.
type Engine struct {
	Nodes  *store.NodeStore[node.Node]
	Values *store.ValueStore
	Cache  *store.CacheStore

	devices  map[string]Device
	inFlight *inFlight
}

// New wires a populated NodeStore/ValueStore/CacheStore (typically the
// output of the parser) into an Engine ready to serve reads/writes.
func New(nodes *store.NodeStore[node.Node], values *store.ValueStore, cache *store.CacheStore) *Engine {
	return &Engine{
		Nodes:    nodes,
		Values:   values,
		Cache:    cache,
		devices:  make(map[string]Device),
		inFlight: newInFlight(),
	}
}

// RegisterDevice binds name (a PortNode's DeviceRef) to a concrete Device.
func (e *Engine) RegisterDevice(name string, d Device) {
	e.devices[name] = d
}

func (e *Engine) lookupNode(id types.NodeID) (node.Node, error) {
	n, ok := e.Nodes.Get(id)
	if !ok {
		return nil, types.New(types.ErrKindInvalidNode, fmt.Sprintf("node %d not defined", id), nil)
	}
	return n, nil
}

func (e *Engine) deviceFor(portID types.NodeID) (Device, error) {
	n, err := e.lookupNode(portID)
	if err != nil {
		return nil, err
	}
	p, ok := n.(*node.PortNode)
	if !ok {
		return nil, types.New(types.ErrKindInvalidNode, "referenced node is not a Port", nil)
	}
	d, ok := e.devices[p.DeviceRef]
	if !ok {
		return nil, types.New(types.ErrKindDevice, fmt.Sprintf("no device registered for port %q", p.DeviceRef), nil)
	}
	return d, nil
}

// evalIntExpr evaluates a formula string as an integer, resolving any
// variable it references against another integer-valued node in the graph
// (§4.4: "address and length, both may be expressions over other integer
// nodes"). A plain numeric literal needs no variable resolution at all.
func (e *Engine) evalIntExpr(expr string) (int64, error) {
	parsed, err := formula.Parse(expr)
	if err != nil {
		return 0, types.New(types.ErrKindParse, "bad expression: "+expr, err)
	}
	env := formula.Env{}
	for _, name := range formula.Identifiers(parsed) {
		id, ok := e.Nodes.Lookup(name)
		if !ok {
			return 0, types.New(types.ErrKindInvalidNode, "unresolved identifier "+name, nil)
		}
		v, err := e.ReadInteger(id)
		if err != nil {
			return 0, err
		}
		env[name] = formula.Int(v)
	}
	v, err := formula.EvalExpr(parsed, env, formula.IntDivision)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// registerInfo is the resolved runtime geometry of a register-backed node:
// its device, byte address and length.
type registerInfo struct {
	dev     Device
	address uint64
	length  int
}

func (e *Engine) resolveRegister(rb *node.RegisterBase) (registerInfo, error) {
	dev, err := e.deviceFor(rb.Port)
	if err != nil {
		return registerInfo{}, err
	}
	addr, err := e.evalIntExpr(rb.AddressExpr)
	if err != nil {
		return registerInfo{}, err
	}
	length, err := e.evalIntExpr(rb.LengthExpr)
	if err != nil {
		return registerInfo{}, err
	}
	return registerInfo{dev: dev, address: uint64(addr), length: int(length)}, nil
}

// ReadInteger implements §4.4's read pipeline for IntReg and MaskedIntReg.
// Other integer-bearing variants (IntegerNode with a literal default) are
// also accepted so address/length expressions can reference them.
func (e *Engine) ReadInteger(id types.NodeID) (int64, error) {
	release, err := e.inFlight.enter(id)
	if err != nil {
		return 0, err
	}
	defer release()

	n, err := e.lookupNode(id)
	if err != nil {
		return 0, err
	}

	switch v := n.(type) {
	case *node.IntegerNode:
		return e.readPlainInteger(v)
	case *node.IntRegNode:
		return e.readIntReg(v)
	case *node.MaskedIntRegNode:
		return e.readMaskedIntReg(v)
	case *node.IntConverterNode:
		return e.evalIntConverterRead(v)
	case *node.IntSwissKnifeNode:
		return e.evalIntSwissKnife(v)
	default:
		return 0, types.ErrInvalidNode
	}
}

func (e *Engine) readPlainInteger(n *node.IntegerNode) (int64, error) {
	if n.PValue != types.InvalidNodeID {
		return e.ReadInteger(n.PValue)
	}
	val, err := e.Values.Get(n.DefaultValue)
	if err != nil {
		return 0, err
	}
	return val.I, nil
}

func (e *Engine) readIntReg(n *node.IntRegNode) (int64, error) {
	effective := n.EffectiveAccessMode()
	if err := checkReadable(effective, nodeName(e, n.ID)); err != nil {
		return 0, err
	}
	if cached, ok := e.cacheGet(n.ID, n.Cacheable); ok {
		return cached, nil
	}
	info, err := e.resolveRegister(&n.RegisterBase)
	if err != nil {
		return 0, err
	}
	raw := make([]byte, info.length)
	if err := info.dev.ReadMem(info.address, raw); err != nil {
		return 0, types.New(types.ErrKindDevice, "read_mem failed", err)
	}
	v := decodeSigned(raw, n.Sign, n.Endian)
	e.cachePut(n.ID, n.Cacheable, v)
	return v, nil
}

func (e *Engine) readMaskedIntReg(n *node.MaskedIntRegNode) (int64, error) {
	effective := n.EffectiveAccessMode()
	if err := checkReadable(effective, nodeName(e, n.ID)); err != nil {
		return 0, err
	}
	if cached, ok := e.cacheGet(n.ID, n.Cacheable); ok {
		return cached, nil
	}
	info, err := e.resolveRegister(&n.RegisterBase)
	if err != nil {
		return 0, err
	}
	raw := make([]byte, info.length)
	if err := info.dev.ReadMem(info.address, raw); err != nil {
		return 0, types.New(types.ErrKindDevice, "read_mem failed", err)
	}
	full := buf.Uint(raw, endianOf(n.Endian))
	masked := extractBits(full, n.Mask)
	var v int64
	if n.Sign == types.Signed {
		v = buf.SignExtend(masked, uint(n.Mask.Width()))
	} else {
		v = int64(masked)
	}
	e.cachePut(n.ID, n.Cacheable, v)
	return v, nil
}

// WriteInteger implements §4.4's write pipeline for IntReg and MaskedIntReg.
func (e *Engine) WriteInteger(id types.NodeID, value int64) error {
	n, err := e.lookupNode(id)
	if err != nil {
		return err
	}
	switch v := n.(type) {
	case *node.IntRegNode:
		return e.writeIntReg(v, value)
	case *node.MaskedIntRegNode:
		return e.writeMaskedIntReg(v, value)
	default:
		return types.ErrInvalidNode
	}
}

func (e *Engine) writeIntReg(n *node.IntRegNode, value int64) error {
	effective := n.EffectiveAccessMode()
	if err := checkWritable(effective, nodeName(e, n.ID)); err != nil {
		return err
	}
	if err := checkRange(value, n.MinConst, n.MaxConst); err != nil {
		return err
	}
	info, err := e.resolveRegister(&n.RegisterBase)
	if err != nil {
		return err
	}
	raw := make([]byte, info.length)
	if n.Sign == types.Signed {
		buf.PutUint(raw, uint64(value), endianOf(n.Endian))
	} else {
		buf.PutUint(raw, uint64(value), endianOf(n.Endian))
	}
	if err := info.dev.WriteMem(info.address, raw); err != nil {
		return types.New(types.ErrKindDevice, "write_mem failed", err)
	}
	e.commitWrite(n.ID, n.Cacheable, value, n.PInvalidators)
	return nil
}

func (e *Engine) writeMaskedIntReg(n *node.MaskedIntRegNode, value int64) error {
	effective := n.EffectiveAccessMode()
	if err := checkWritable(effective, nodeName(e, n.ID)); err != nil {
		return err
	}
	if err := checkRange(value, n.MinConst, n.MaxConst); err != nil {
		return err
	}
	info, err := e.resolveRegister(&n.RegisterBase)
	if err != nil {
		return err
	}
	raw := make([]byte, info.length)
	if err := info.dev.ReadMem(info.address, raw); err != nil {
		return types.New(types.ErrKindDevice, "read_mem failed during read-modify-write", err)
	}
	full := buf.Uint(raw, endianOf(n.Endian))
	full = insertBits(full, n.Mask, uint64(value))
	buf.PutUint(raw, full, endianOf(n.Endian))
	if err := info.dev.WriteMem(info.address, raw); err != nil {
		return types.New(types.ErrKindDevice, "write_mem failed", err)
	}
	e.commitWrite(n.ID, n.Cacheable, value, n.PInvalidators)
	return nil
}

// commitWrite applies step 5-6 of §4.4's write pipeline: invalidate every
// node depending on this write, then update (or drop) this node's own
// cache entry per its caching mode.
func (e *Engine) commitWrite(id types.NodeID, mode types.CachingMode, value int64, _ []types.NodeID) {
	e.Cache.Invalidate(id)
	switch mode {
	case types.WriteThrough:
		e.Cache.Put(id, value)
	default: // WriteAround, NoCache: a write never (re)populates the cache
		e.Cache.Drop(id)
	}
}

func (e *Engine) cacheGet(id types.NodeID, mode types.CachingMode) (int64, bool) {
	if mode == types.NoCache {
		return 0, false
	}
	v, ok := e.Cache.Get(id)
	if !ok {
		return 0, false
	}
	iv, ok := v.(int64)
	return iv, ok
}

func (e *Engine) cachePut(id types.NodeID, mode types.CachingMode, value int64) {
	if mode == types.NoCache {
		return
	}
	// WriteAround only populates on reads, which this call always is.
	e.Cache.Put(id, value)
}

func checkRange(v, lo, hi int64) error {
	if lo == 0 && hi == 0 {
		return nil // unset bounds: no range declared
	}
	if v < lo || v > hi {
		return types.New(types.ErrKindInvalidData, fmt.Sprintf("value %d out of range [%d,%d]", v, lo, hi), nil)
	}
	return nil
}

func decodeSigned(raw []byte, sign types.Sign, e types.Endianness) int64 {
	if sign == types.Signed {
		return buf.Int(raw, endianOf(e))
	}
	return int64(buf.Uint(raw, endianOf(e)))
}

func endianOf(e types.Endianness) buf.Endian {
	if e == types.BigEndian {
		return buf.BigEndian
	}
	return buf.LittleEndian
}

func extractBits(full uint64, m node.BitMask) uint64 {
	width := uint(m.Width())
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}
	return (full >> uint(m.LSB)) & mask
}

func insertBits(full uint64, m node.BitMask, value uint64) uint64 {
	width := uint(m.Width())
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}
	cleared := full &^ (mask << uint(m.LSB))
	return cleared | ((value & mask) << uint(m.LSB))
}

func nodeName(e *Engine, id types.NodeID) string {
	name, ok := e.Nodes.Name(id)
	if !ok {
		return fmt.Sprintf("node#%d", id)
	}
	return name
}
