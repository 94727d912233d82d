package parser

import (
	"strings"
	"testing"

	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<RegisterDescription ModelName="Sample">
  <Category Name="Root">
    <pFeature>Width</pFeature>
    <pFeature>Gain</pFeature>
  </Category>

  <Port Name="Device">
    <DeviceName>Device</DeviceName>
  </Port>

  <Integer Name="Width">
    <ToolTip>Image width</ToolTip>
    <pValue>WidthReg</pValue>
    <Min>0</Min>
    <Max>4096</Max>
  </Integer>

  <IntReg Name="WidthReg">
    <Address>0x1000</Address>
    <Length>4</Length>
    <pPort>Device</pPort>
    <AccessMode>RW</AccessMode>
    <Sign>Unsigned</Sign>
  </IntReg>

  <Float Name="Gain">
    <ToolTip>Sensor gain</ToolTip>
    <Value>1.5</Value>
    <Min>0.0</Min>
    <Max>10.0</Max>
  </Float>
</RegisterDescription>
`

func TestParseBuildsNodeGraph(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	widthID, ok := doc.Nodes.Lookup("Width")
	require.True(t, ok)
	widthNode, ok := doc.Nodes.Get(widthID)
	require.True(t, ok)
	width, ok := widthNode.(*node.IntegerNode)
	require.True(t, ok)
	assert.Equal(t, "Image width", width.ToolTip)
	assert.Equal(t, int64(4096), width.Max())

	regID, ok := doc.Nodes.Lookup("WidthReg")
	require.True(t, ok)
	assert.Equal(t, widthID != types.InvalidNodeID, ok)
	regNode, ok := doc.Nodes.Get(regID)
	require.True(t, ok)
	reg, ok := regNode.(*node.IntRegNode)
	require.True(t, ok)
	assert.Equal(t, "0x1000", reg.AddressExpr)
	assert.Equal(t, types.RW, reg.AccessMode)

	gainID, ok := doc.Nodes.Lookup("Gain")
	require.True(t, ok)
	gainNode, ok := doc.Nodes.Get(gainID)
	require.True(t, ok)
	gain, ok := gainNode.(*node.FloatNode)
	require.True(t, ok)
	assert.Equal(t, 10.0, gain.MaxFloat())

	catID, ok := doc.Nodes.Lookup("Root")
	require.True(t, ok)
	catNode, ok := doc.Nodes.Get(catID)
	require.True(t, ok)
	cat, ok := catNode.(*node.CategoryNode)
	require.True(t, ok)
	assert.ElementsMatch(t, []types.NodeID{widthID, gainID}, cat.Children)
}

func TestParseRejectsUnknownElement(t *testing.T) {
	doc := `<RegisterDescription><Bogus Name="X"/></RegisterDescription>`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedElement)
}

func TestParseRejectsMissingRegisterAddress(t *testing.T) {
	doc := `<RegisterDescription>
		<IntReg Name="Bad">
			<Length>4</Length>
			<pPort>Device</pPort>
		</IntReg>
	</RegisterDescription>`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingElement)
}

func TestParseRejectsConverterPValueCycle(t *testing.T) {
	doc := `<RegisterDescription>
		<Converter Name="A">
			<pValue>B</pValue>
			<FormulaFrom>VAL</FormulaFrom>
			<FormulaTo>TO</FormulaTo>
		</Converter>
		<Converter Name="B">
			<pValue>A</pValue>
			<FormulaFrom>VAL</FormulaFrom>
			<FormulaTo>TO</FormulaTo>
		</Converter>
	</RegisterDescription>`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converter pValue cycle")
}

// TestStructRegExpansion mirrors the original StructReg expansion fixture:
// two StructEntry children of a BigEndian, 4-byte StructReg at 0x10000,
// each producing an independent MaskedIntRegNode whose NodeBase fields
// either override or fall back to the container's (§4.3).
func TestStructRegExpansion(t *testing.T) {
	doc := `<RegisterDescription>
		<Port Name="Device">
			<DeviceName>Device</DeviceName>
		</Port>

		<Integer Name="Invalidator0"><Value>0</Value></Integer>
		<Integer Name="Invalidator1"><Value>0</Value></Integer>

		<StructReg Name="StructRegContainer">
			<ToolTip>Struct Reg ToolTip</ToolTip>
			<Address>0x10000</Address>
			<Length>4</Length>
			<pPort>Device</pPort>
			<Endianess>BigEndian</Endianess>

			<StructEntry Name="StructEntry0">
				<ToolTip>StructEntry0 ToolTip</ToolTip>
				<ImposedAccessMode>RO</ImposedAccessMode>
				<pInvalidator>Invalidator0</pInvalidator>
				<pInvalidator>Invalidator1</pInvalidator>
				<AccessMode>RW</AccessMode>
				<Cachable>WriteAround</Cachable>
				<PollingTime>1000</PollingTime>
				<Streamable>Yes</Streamable>
				<LSB>10</LSB>
				<MSB>1</MSB>
				<Sign>Signed</Sign>
				<Unit>Hz</Unit>
				<Representation>Logarithmic</Representation>
			</StructEntry>

			<StructEntry Name="StructEntry1">
				<Bit>24</Bit>
			</StructEntry>
		</StructReg>
	</RegisterDescription>`

	parsed, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	id0, ok := parsed.Nodes.Lookup("StructEntry0")
	require.True(t, ok)
	n0, ok := parsed.Nodes.Get(id0)
	require.True(t, ok)
	e0, ok := n0.(*node.MaskedIntRegNode)
	require.True(t, ok)
	assert.Equal(t, types.RO, e0.ImposedAccessMode)
	assert.Equal(t, "StructEntry0 ToolTip", e0.ToolTip)
	assert.Equal(t, types.RW, e0.AccessMode)
	assert.Equal(t, types.BigEndian, e0.Endian)
	assert.Equal(t, "0x10000", e0.AddressExpr)

	id1, ok := parsed.Nodes.Lookup("StructEntry1")
	require.True(t, ok)
	n1, ok := parsed.Nodes.Get(id1)
	require.True(t, ok)
	e1, ok := n1.(*node.MaskedIntRegNode)
	require.True(t, ok)
	assert.Equal(t, types.RW, e1.ImposedAccessMode) // default, not overridden
	assert.Equal(t, "Struct Reg ToolTip", e1.ToolTip) // falls back to container's
	assert.Equal(t, types.RO, e1.AccessMode)          // default, not overridden
}
