package emulator

import (
	"fmt"

	"github.com/gencam/genicam/engine"
	"github.com/gencam/genicam/internal/layout"
)

var _ engine.Device = (*Device)(nil)

// Device is an in-memory engine.Device backed by a register layout (the
// ABRM, or any other layout.Layout a caller supplies). It enforces the
// layout's per-range access rights on every read_mem/write_mem call, the
// same way a real USB3 Vision device enforces them in firmware.
type Device struct {
	layout *layout.Layout
	mem    []byte
}

// NewDevice wraps l, preloading mem with the layout's declared initializers.
func NewDevice(l *layout.Layout) *Device {
	return &Device{layout: l, mem: l.Fragment()}
}

// ReadMem implements engine.Device.
func (d *Device) ReadMem(address uint64, buf []byte) error {
	lo := int(address)
	hi := lo + len(buf)
	b, err := d.layout.Read(d.mem, lo, hi)
	if err != nil {
		return fmt.Errorf("emulator: read_mem: %w", err)
	}
	if a := d.layout.AccessRightWithRange(lo, hi); len(buf) > 0 && a != layout.RO && a != layout.RW {
		return fmt.Errorf("emulator: read_mem: %w: [%d,%d) is %s", layout.ErrAccessDenied, lo, hi, a)
	}
	copy(buf, b)
	return nil
}

// WriteMem implements engine.Device.
func (d *Device) WriteMem(address uint64, data []byte) error {
	if err := d.layout.Write(d.mem, int(address), data); err != nil {
		return fmt.Errorf("emulator: write_mem: %w", err)
	}
	return nil
}

// Layout returns the layout backing this device, for tests that want to
// inspect raw offsets (RawEntry) directly.
func (d *Device) Layout() *layout.Layout { return d.layout }
