package node

// PortNode binds a logical address space to a Device capability (§4.7).
// The engine resolves DeviceRef to an actual engine.Device at evaluation
// time; the node package only records the binding's name.
type PortNode struct {
	NodeBase

	DeviceRef string
}

func (n *PortNode) DeviceName() string { return n.DeviceRef }
