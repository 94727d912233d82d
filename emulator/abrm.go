// Package emulator provides a sample USB3 Vision device: the ABRM
// register layout (§6) built on internal/layout, plus an in-memory
// engine.Device implementation useful for tests and local development
// without real hardware.
package emulator

import (
	"github.com/gencam/genicam/internal/buf"
	"github.com/gencam/genicam/internal/layout"
)

// deviceCapability encodes the ABRM DeviceCapability bitfield: bit 0
// UserDefinedName, bit 3 Timestamp, bit 8 FamilyName, bit 9 SBRM, bit 10
// Endianness, bit 11 WrittenLength, bit 13 StackedCommands, bit 14
// DeviceSoftwareInterface (§6).
const deviceCapability = 0b110_1111_0000_1001

const sbrmAddress = 0xffff

// NewABRMLayout builds the bit-exact ABRM region declared in §6: a
// 592-byte little-endian layout with 23 named entries. RawEntry and the
// typed accessors on the result address every field named there.
func NewABRMLayout() (*layout.Layout, error) {
	b := layout.NewBuilder(0).
		Add(entry("GenCpVersionMinor", 2, layout.RO, layout.KindUint, uint64(1))).
		Add(entry("GenCpVersionMajor", 2, layout.RO, layout.KindUint, uint64(1))).
		Add(entryStr("ManufacturerName", 64, layout.RO, "cameleon")).
		Add(entryStr("ModelName", 64, layout.RO, "cameleon model")).
		Add(entryStr("FamilyName", 64, layout.RO, "cameleon family")).
		Add(entryStr("DeviceVersion", 64, layout.RO, "none")).
		Add(entryStr("ManufacturerInfo", 64, layout.RO, "none")).
		Add(entryStr("SerialNumber", 64, layout.RO, "")).
		Add(entryStr("UserDefinedName", 64, layout.RW, "")).
		Add(entry("DeviceCapability", 8, layout.RO, layout.KindUint, uint64(deviceCapability))).
		Add(entry("MaximumDeviceResponseTime", 4, layout.RO, layout.KindUint, uint64(100))).
		Add(entry("ManifestTableAddress", 8, layout.RO, layout.KindUint, uint64(0))).
		Add(entry("SBRMAddress", 8, layout.RO, layout.KindUint, uint64(sbrmAddress))).
		Add(entry("DeviceConfiguration", 8, layout.RO, layout.KindUint, uint64(0))).
		Add(entry("HeartbeatTimeout", 4, layout.NA, layout.KindUint, uint64(0))).
		Add(entry("MessageChannelId", 4, layout.NA, layout.KindUint, uint64(0))).
		Add(entry("Timestamp", 8, layout.RO, layout.KindUint, uint64(0))).
		Add(entry("TimestampLatch", 4, layout.WO, layout.KindUint, uint64(0))).
		Add(entry("TimestampIncrement", 8, layout.RO, layout.KindUint, uint64(1000))).
		Add(entry("AccessPrivilege", 4, layout.NA, layout.KindUint, uint64(0))).
		Add(entry("ProtocolEndianess", 4, layout.RO, layout.KindUint, uint64(0xFFFFFFFF))).
		Add(entry("ImplementationEndianess", 4, layout.NA, layout.KindUint, uint64(0))).
		Add(entryStr("DeviceSoftwareInterfaceVersion", 64, layout.RO, "1.0.0"))
	return b.Build()
}

func entry(name string, length int, access layout.Access, kind layout.EntryKind, init uint64) layout.EntryDesc {
	return layout.EntryDesc{Name: name, Len: length, Access: access, Kind: kind, Endian: buf.LittleEndian, Init: init}
}

func entryStr(name string, length int, access layout.Access, init string) layout.EntryDesc {
	return layout.EntryDesc{Name: name, Len: length, Access: access, Kind: layout.KindString, Init: init}
}
