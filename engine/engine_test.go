package engine

import (
	"testing"

	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/store"
	"github.com/gencam/genicam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memDevice is a flat byte-addressed fake Device for tests.
type memDevice struct {
	mem       []byte
	writeCalls, readCalls int
}

func newMemDevice(size int) *memDevice { return &memDevice{mem: make([]byte, size)} }

func (d *memDevice) ReadMem(address uint64, out []byte) error {
	d.readCalls++
	copy(out, d.mem[address:int(address)+len(out)])
	return nil
}

func (d *memDevice) WriteMem(address uint64, data []byte) error {
	d.writeCalls++
	copy(d.mem[address:int(address)+len(data)], data)
	return nil
}

// buildHarness wires one Port node bound to a memDevice, returning the
// engine, the node store, and the port's NodeID for register wiring.
func buildHarness(t *testing.T, memSize int) (*Engine, *store.NodeStore[node.Node], types.NodeID) {
	t.Helper()
	nodes := store.New[node.Node]()
	values := store.NewValueStore()
	cache := store.NewCacheStore()
	eng := New(nodes, values, cache)

	dev := newMemDevice(memSize)
	eng.RegisterDevice("Device", dev)

	portID := nodes.Intern("Device")
	require.NoError(t, nodes.Define(portID, &node.PortNode{
		NodeBase:  node.NewNodeBase(portID),
		DeviceRef: "Device",
	}))
	return eng, nodes, portID
}

func TestIntRegRoundTrip(t *testing.T) {
	// property test 2: write(v); read() == v for a fixed length/endianness.
	eng, nodes, port := buildHarness(t, 64)
	id := nodes.Intern("Width")
	rb := node.NewRegisterBase(id)
	rb.AddressExpr = "0x10"
	rb.LengthExpr = "4"
	rb.Port = port
	rb.AccessMode = types.RW
	require.NoError(t, nodes.Define(id, &node.IntRegNode{
		RegisterBase: rb,
		Sign:         types.Unsigned,
		Endian:       types.LittleEndian,
		MinConst:     0,
		MaxConst:     0xffffffff,
	}))

	require.NoError(t, eng.WriteInteger(id, 0xdeadbeef))
	v, err := eng.ReadInteger(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0xdeadbeef), v)
}

func TestMaskedIntRegPreservesOtherBits(t *testing.T) {
	// property test 3: write(v); read() == v & mask; bits outside the mask
	// are preserved byte for byte.
	eng, nodes, port := buildHarness(t, 64)
	id := nodes.Intern("Flag")
	rb := node.NewRegisterBase(id)
	rb.AddressExpr = "0x20"
	rb.LengthExpr = "4"
	rb.Port = port
	rb.AccessMode = types.RW

	// Pre-seed the register with a known pattern outside the mask.
	devAny, _ := eng.deviceFor(port)
	dev := devAny.(*memDevice)
	dev.mem[0x20] = 0xff
	dev.mem[0x21] = 0xff
	dev.mem[0x22] = 0xff
	dev.mem[0x23] = 0xff

	require.NoError(t, nodes.Define(id, &node.MaskedIntRegNode{
		RegisterBase: rb,
		Mask:         node.Range(4, 7),
		Sign:         types.Unsigned,
		Endian:       types.LittleEndian,
		MinConst:     0,
		MaxConst:     0xf,
	}))

	require.NoError(t, eng.WriteInteger(id, 0x3))
	v, err := eng.ReadInteger(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0x3), v)

	// Byte 0's low nibble (bits 0-3, outside the mask) must still read back
	// as the original all-1s pattern; only bits 4-7 changed to 0x3.
	assert.Equal(t, byte(0x3f), dev.mem[0x20])
	assert.Equal(t, byte(0xff), dev.mem[0x21])
	assert.Equal(t, byte(0xff), dev.mem[0x22])
	assert.Equal(t, byte(0xff), dev.mem[0x23])
}

func TestAccessDeniedOnReadOnlyWrite(t *testing.T) {
	// S6: IntReg with access_mode=RO; any write fails with AccessDenied and
	// device.write_mem is never called.
	eng, nodes, port := buildHarness(t, 64)
	id := nodes.Intern("ReadOnlyCounter")
	rb := node.NewRegisterBase(id)
	rb.AddressExpr = "0x0"
	rb.LengthExpr = "4"
	rb.Port = port
	rb.AccessMode = types.RO
	require.NoError(t, nodes.Define(id, &node.IntRegNode{
		RegisterBase: rb,
		Sign:         types.Unsigned,
		Endian:       types.LittleEndian,
	}))

	devAny, _ := eng.deviceFor(port)
	dev := devAny.(*memDevice)

	err := eng.WriteInteger(id, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrAccessDenied)
	assert.Equal(t, 0, dev.writeCalls)
}

func TestConverterCycleDetected(t *testing.T) {
	// S3: Converter A references B, B references A; reading A fails with
	// CycleDetected.
	nodes := store.New[node.Node]()
	values := store.NewValueStore()
	cache := store.NewCacheStore()
	eng := New(nodes, values, cache)

	idA := nodes.Intern("A")
	idB := nodes.Intern("B")
	require.NoError(t, nodes.Define(idA, &node.IntConverterNode{
		NodeBase:  node.NewNodeBase(idA),
		Variables: map[string]types.NodeID{"B": idB},
		FromExpr:  "B + 1",
	}))
	require.NoError(t, nodes.Define(idB, &node.IntConverterNode{
		NodeBase:  node.NewNodeBase(idB),
		Variables: map[string]types.NodeID{"A": idA},
		FromExpr:  "A + 1",
	}))

	_, err := eng.ReadInteger(idA)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrCycleDetected)
}

func TestIntSwissKnifeViaEngine(t *testing.T) {
	// S5: IntSwissKnife (X+3)*2>>1, X=5 -> 8.
	nodes := store.New[node.Node]()
	values := store.NewValueStore()
	cache := store.NewCacheStore()
	eng := New(nodes, values, cache)

	xID := nodes.Intern("X")
	xVal := values.Store(store.IntValue(5))
	require.NoError(t, nodes.Define(xID, &node.IntegerNode{
		NodeBase:     node.NewNodeBase(xID),
		DefaultValue: xVal,
	}))

	skID := nodes.Intern("SK")
	require.NoError(t, nodes.Define(skID, &node.IntSwissKnifeNode{
		NodeBase:  node.NewNodeBase(skID),
		Variables: map[string]types.NodeID{"X": xID},
		Expr:      "(X + 3) * 2 >> 1",
	}))

	v, err := eng.ReadInteger(skID)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)
}

func TestInvalidationCascadeThroughEngine(t *testing.T) {
	// S4 exercised through the full write pipeline: writing A must drop B's
	// cache entry.
	eng, nodes, port := buildHarness(t, 64)
	idA := nodes.Intern("A")
	idB := nodes.Intern("B")

	rbA := node.NewRegisterBase(idA)
	rbA.AddressExpr, rbA.LengthExpr, rbA.Port, rbA.AccessMode = "0x0", "4", port, types.RW
	require.NoError(t, nodes.Define(idA, &node.IntRegNode{RegisterBase: rbA, Endian: types.LittleEndian}))

	rbB := node.NewRegisterBase(idB)
	rbB.AddressExpr, rbB.LengthExpr, rbB.Port, rbB.AccessMode = "0x4", "4", port, types.RO
	rbB.PInvalidators = []types.NodeID{idA}
	require.NoError(t, nodes.Define(idB, &node.IntRegNode{RegisterBase: rbB, Endian: types.LittleEndian}))

	eng.Cache.RegisterInvalidators(idB, rbB.PInvalidators)

	_, err := eng.ReadInteger(idB)
	require.NoError(t, err)
	_, ok := eng.Cache.Get(idB)
	require.True(t, ok)

	require.NoError(t, eng.WriteInteger(idA, 1))
	_, ok = eng.Cache.Get(idB)
	assert.False(t, ok, "writing A must invalidate B's cache entry")
}
