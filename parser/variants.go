package parser

import (
	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/store"
	"github.com/gencam/genicam/types"
)

// intBounds holds the constant Min/Max/Inc values that parseIntBounds reads
// for Integer, IntReg, and MaskedIntReg (§4.6); Inc defaults to 1.
type intBounds struct {
	min, max, inc int64
}

func parseIntBounds(e elem) (intBounds, error) {
	var b intBounds
	if v, ok := e.childText(elemMin); ok {
		n, err := parseInt(elemMin, v)
		if err != nil {
			return b, err
		}
		b.min = n
	}
	if v, ok := e.childText(elemMax); ok {
		n, err := parseInt(elemMax, v)
		if err != nil {
			return b, err
		}
		b.max = n
	}
	if v, ok := e.childText(elemInc); ok {
		n, err := parseInt(elemInc, v)
		if err != nil {
			return b, err
		}
		b.inc = n
	} else {
		b.inc = 1
	}
	return b, nil
}

func buildInteger(ns *store.NodeStore[node.Node], vs *store.ValueStore, id types.NodeID, e elem) (*node.IntegerNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.IntegerNode{NodeBase: base}

	n.PValue = internRefOpt(ns, e, elemPValue)
	if v, ok := e.childText(elemValue); ok && n.PValue == types.InvalidNodeID {
		lit, err := parseInt(elemValue, v)
		if err != nil {
			return nil, err
		}
		n.DefaultValue = vs.Store(store.IntValue(lit))
	}

	b, err := parseIntBounds(e)
	if err != nil {
		return nil, err
	}
	n.MinConst, n.MaxConst, n.IncConst = b.min, b.max, b.inc
	n.PMin = internRefOpt(ns, e, "pMin")
	n.PMax = internRefOpt(ns, e, "pMax")
	n.PInc = internRefOpt(ns, e, "pInc")

	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	if v, ok := e.childText(elemRepresentation); ok {
		repr, err := parseRepresentation(v)
		if err != nil {
			return nil, err
		}
		n.Repr = repr
	}
	return n, nil
}

func buildFloat(ns *store.NodeStore[node.Node], vs *store.ValueStore, id types.NodeID, e elem) (*node.FloatNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.FloatNode{NodeBase: base}

	n.PValue = internRefOpt(ns, e, elemPValue)
	if v, ok := e.childText(elemValue); ok && n.PValue == types.InvalidNodeID {
		lit, err := parseFloat(elemValue, v)
		if err != nil {
			return nil, err
		}
		n.DefaultValue = vs.Store(store.FloatValue(lit))
	}
	if v, ok := e.childText(elemMin); ok {
		f, err := parseFloat(elemMin, v)
		if err != nil {
			return nil, err
		}
		n.MinConst = f
	}
	if v, ok := e.childText(elemMax); ok {
		f, err := parseFloat(elemMax, v)
		if err != nil {
			return nil, err
		}
		n.MaxConst = f
	}
	n.PMin = internRefOpt(ns, e, "pMin")
	n.PMax = internRefOpt(ns, e, "pMax")
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	return n, nil
}

func buildBoolean(ns *store.NodeStore[node.Node], vs *store.ValueStore, id types.NodeID, e elem) (*node.BooleanNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.BooleanNode{NodeBase: base}
	n.PValue = internRefOpt(ns, e, elemPValue)
	if v, ok := e.childText(elemValue); ok && n.PValue == types.InvalidNodeID {
		b, err := parseBool(v)
		if err != nil {
			return nil, err
		}
		n.DefaultValue = vs.Store(store.BoolValue(b))
	}
	return n, nil
}

func buildString(ns *store.NodeStore[node.Node], vs *store.ValueStore, id types.NodeID, e elem) (*node.StringNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.StringNode{NodeBase: base}
	n.PValue = internRefOpt(ns, e, elemPValue)
	if v, ok := e.childText(elemValue); ok && n.PValue == types.InvalidNodeID {
		n.DefaultValue = vs.Store(store.StringValue(v))
	}
	if v, ok := e.childText(elemMaxLength); ok {
		l, err := parseInt(elemMaxLength, v)
		if err != nil {
			return nil, err
		}
		n.MaxLengthConst = l
	}
	return n, nil
}

func buildEnumeration(ns *store.NodeStore[node.Node], vs *store.ValueStore, id types.NodeID, e elem) (*node.EnumerationNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.EnumerationNode{NodeBase: base}
	n.PValue = internRefOpt(ns, e, elemPValue)
	if v, ok := e.childText(elemValue); ok && n.PValue == types.InvalidNodeID {
		lit, err := parseInt(elemValue, v)
		if err != nil {
			return nil, err
		}
		n.DefaultValue = vs.Store(store.IntValue(lit))
	}
	for _, entry := range e.children(tagEnumEntry) {
		symbol, ok := entry.attr(attrName)
		if !ok {
			return nil, missingElement(attrName)
		}
		// EnumEntry carries display metadata but is not itself an
		// addressable node, so its name is never interned.
		entryBase, err := parseNodeBase(ns, types.InvalidNodeID, entry)
		if err != nil {
			return nil, err
		}
		v, ok := entry.childText(elemValue)
		if !ok {
			return nil, missingElement(elemValue)
		}
		val, err := parseInt(elemValue, v)
		if err != nil {
			return nil, err
		}
		n.EntryList = append(n.EntryList, node.EnumEntry{Symbol: symbol, Value: val, Base: entryBase})
	}
	return n, nil
}

func buildCommand(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.CommandNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.CommandNode{NodeBase: base}
	n.PValue = internRefOpt(ns, e, elemPValue)
	if v, ok := e.childText(elemCommandValue); ok {
		val, err := parseInt(elemCommandValue, v)
		if err != nil {
			return nil, err
		}
		n.CommandVal = val
	} else {
		n.CommandVal = 1
	}
	return n, nil
}

func buildCategory(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.CategoryNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.CategoryNode{NodeBase: base}
	for _, f := range e.texts("pFeature") {
		n.Children = append(n.Children, internRef(ns, f))
	}
	return n, nil
}

func buildPort(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.PortNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.PortNode{NodeBase: base}
	if v, ok := e.childText(elemDeviceName); ok {
		n.DeviceRef = v
	} else if name, ok := e.attr(attrName); ok {
		n.DeviceRef = name
	}
	return n, nil
}

func buildRegister(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.RegisterNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	rb, err := parseRegisterBase(ns, base, e)
	if err != nil {
		return nil, err
	}
	return &node.RegisterNode{RegisterBase: rb}, nil
}

func buildIntReg(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.IntRegNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	rb, err := parseRegisterBase(ns, base, e)
	if err != nil {
		return nil, err
	}
	n := &node.IntRegNode{RegisterBase: rb}

	if v, ok := e.childText(elemSign); ok {
		s, err := parseSign(v)
		if err != nil {
			return nil, err
		}
		n.Sign = s
	}
	if v, ok := e.childText(elemEndianness); ok {
		en, err := parseEndianness(v)
		if err != nil {
			return nil, err
		}
		n.Endian = en
	}
	b, err := parseIntBounds(e)
	if err != nil {
		return nil, err
	}
	n.MinConst, n.MaxConst, n.IncConst = b.min, b.max, b.inc
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	if v, ok := e.childText(elemRepresentation); ok {
		repr, err := parseRepresentation(v)
		if err != nil {
			return nil, err
		}
		n.Repr = repr
	}
	return n, nil
}

func parseBitMask(e elem) (node.BitMask, error) {
	if v, ok := e.childText(elemBit); ok {
		n, err := parseInt(elemBit, v)
		if err != nil {
			return node.BitMask{}, err
		}
		return node.SingleBit(int(n)), nil
	}
	lsbText, lok := e.childText(elemLSB)
	msbText, mok := e.childText(elemMSB)
	if !lok || !mok {
		return node.BitMask{}, missingElement(elemLSB)
	}
	lsb, err := parseInt(elemLSB, lsbText)
	if err != nil {
		return node.BitMask{}, err
	}
	msb, err := parseInt(elemMSB, msbText)
	if err != nil {
		return node.BitMask{}, err
	}
	return node.Range(int(lsb), int(msb)), nil
}

func buildMaskedIntReg(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.MaskedIntRegNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	rb, err := parseRegisterBase(ns, base, e)
	if err != nil {
		return nil, err
	}
	n := &node.MaskedIntRegNode{RegisterBase: rb}

	mask, err := parseBitMask(e)
	if err != nil {
		return nil, err
	}
	n.Mask = mask

	if v, ok := e.childText(elemSign); ok {
		s, err := parseSign(v)
		if err != nil {
			return nil, err
		}
		n.Sign = s
	}
	if v, ok := e.childText(elemEndianness); ok {
		en, err := parseEndianness(v)
		if err != nil {
			return nil, err
		}
		n.Endian = en
	}
	b, err := parseIntBounds(e)
	if err != nil {
		return nil, err
	}
	n.MinConst, n.MaxConst, n.IncConst = b.min, b.max, b.inc
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	if v, ok := e.childText(elemRepresentation); ok {
		repr, err := parseRepresentation(v)
		if err != nil {
			return nil, err
		}
		n.Repr = repr
	}
	return n, nil
}

func buildFloatReg(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.FloatRegNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	rb, err := parseRegisterBase(ns, base, e)
	if err != nil {
		return nil, err
	}
	n := &node.FloatRegNode{RegisterBase: rb}
	if v, ok := e.childText(elemEndianness); ok {
		en, err := parseEndianness(v)
		if err != nil {
			return nil, err
		}
		n.Endian = en
	}
	if v, ok := e.childText(elemMin); ok {
		f, err := parseFloat(elemMin, v)
		if err != nil {
			return nil, err
		}
		n.MinConst = f
	}
	if v, ok := e.childText(elemMax); ok {
		f, err := parseFloat(elemMax, v)
		if err != nil {
			return nil, err
		}
		n.MaxConst = f
	}
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	return n, nil
}

func buildStringReg(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.StringRegNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	rb, err := parseRegisterBase(ns, base, e)
	if err != nil {
		return nil, err
	}
	return &node.StringRegNode{RegisterBase: rb}, nil
}

func buildConverter(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.ConverterNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.ConverterNode{NodeBase: base}
	n.PValue = internRefOpt(ns, e, elemPValue)
	n.Variables = parseVariables(ns, e)
	if v, ok := e.childText(elemFormulaFrom); ok {
		n.FromExpr = v
	} else {
		return nil, missingElement(elemFormulaFrom)
	}
	if v, ok := e.childText(elemFormulaTo); ok {
		n.ToExpr = v
	} else {
		return nil, missingElement(elemFormulaTo)
	}
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	return n, nil
}

func buildIntConverter(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.IntConverterNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.IntConverterNode{NodeBase: base}
	n.PValue = internRefOpt(ns, e, elemPValue)
	n.Variables = parseVariables(ns, e)
	if v, ok := e.childText(elemFormulaFrom); ok {
		n.FromExpr = v
	} else {
		return nil, missingElement(elemFormulaFrom)
	}
	if v, ok := e.childText(elemFormulaTo); ok {
		n.ToExpr = v
	} else {
		return nil, missingElement(elemFormulaTo)
	}
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	if v, ok := e.childText(elemRepresentation); ok {
		repr, err := parseRepresentation(v)
		if err != nil {
			return nil, err
		}
		n.Repr = repr
	}
	return n, nil
}

func buildSwissKnife(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.SwissKnifeNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.SwissKnifeNode{NodeBase: base}
	n.Variables = parseVariables(ns, e)
	if v, ok := e.childText(elemFormula); ok {
		n.Expr = v
	} else {
		return nil, missingElement(elemFormula)
	}
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	return n, nil
}

func buildIntSwissKnife(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (*node.IntSwissKnifeNode, error) {
	base, err := parseNodeBase(ns, id, e)
	if err != nil {
		return nil, err
	}
	n := &node.IntSwissKnifeNode{NodeBase: base}
	n.Variables = parseVariables(ns, e)
	if v, ok := e.childText(elemFormula); ok {
		n.Expr = v
	} else {
		return nil, missingElement(elemFormula)
	}
	if v, ok := e.childText(elemUnit); ok {
		n.UnitStr = v
	}
	if v, ok := e.childText(elemRepresentation); ok {
		repr, err := parseRepresentation(v)
		if err != nil {
			return nil, err
		}
		n.Repr = repr
	}
	return n, nil
}

func buildStructEntry(ns *store.NodeStore[node.Node], e elem) (node.StructEntryDesc, error) {
	id, err := intern(ns, e)
	if err != nil {
		return node.StructEntryDesc{}, err
	}
	var d node.StructEntryDesc
	d.ID = id

	if v, ok := e.childText(elemToolTip); ok {
		d.ToolTip = v
	}
	if v, ok := e.childText(elemDescription); ok {
		d.Description = v
	}
	if v, ok := e.childText(elemDisplayName); ok {
		d.DisplayName = v
	}
	if v, ok := e.childText(elemDocuURL); ok {
		d.DocuURL = v
	}
	if v, ok := e.childText(elemVisibility); ok {
		vis, err := parseVisibility(v)
		if err != nil {
			return d, err
		}
		d.Visibility = vis
	}
	if v, ok := e.childText(elemIsDeprecated); ok {
		b, err := parseBool(v)
		if err != nil {
			return d, err
		}
		d.IsDeprecated = b
	}
	d.PIsImplemented = internRefOpt(ns, e, elemPIsImplemented)
	d.PIsAvailable = internRefOpt(ns, e, elemPIsAvailable)
	d.PIsLocked = internRefOpt(ns, e, elemPIsLocked)
	d.PBlockPolling = internRefOpt(ns, e, elemPBlockPolling)
	d.PErrors = internRefList(ns, e, elemPError)
	d.PAlias = internRefOpt(ns, e, elemPAlias)
	d.PCastAlias = internRefOpt(ns, e, elemPCastAlias)
	if v, ok := e.childText(elemImposedAccessMode); ok {
		am, err := parseAccessModeStr(v)
		if err != nil {
			return d, err
		}
		d.ImposedAccessMode = am
	} else {
		d.ImposedAccessMode = types.RW
	}

	if v, ok := e.childText(elemAccessMode); ok {
		am, err := parseAccessModeStr(v)
		if err != nil {
			return d, err
		}
		d.AccessMode = am
	} else {
		d.AccessMode = types.RO
	}
	if v, ok := e.childText(elemCachable); ok {
		cm, has, err := parseCachingMode(v)
		if err != nil {
			return d, err
		}
		d.Cacheable, d.HasCacheable = cm, has
	}
	if v, ok := e.childText(elemPollingTime); ok {
		n, err := parseInt(elemPollingTime, v)
		if err != nil {
			return d, err
		}
		d.PollingTime, d.HasPollingTime = n, true
	}
	if v, ok := e.childText(elemStreamable); ok {
		b, err := parseBool(v)
		if err != nil {
			return d, err
		}
		d.Streamable = b
	}
	d.PInvalidators = internRefList(ns, e, elemPInvalidator)

	mask, err := parseBitMask(e)
	if err != nil {
		return d, err
	}
	d.Mask = mask

	if v, ok := e.childText(elemSign); ok {
		s, err := parseSign(v)
		if err != nil {
			return d, err
		}
		d.Sign = s
	}
	if v, ok := e.childText(elemUnit); ok {
		d.Unit = v
	}
	if v, ok := e.childText(elemRepresentation); ok {
		repr, err := parseRepresentation(v)
		if err != nil {
			return d, err
		}
		d.Repr = repr
	}
	return d, nil
}

// buildStructReg parses a <StructReg> container. Its own Name is never
// interned as a node: §4.3's StructEntry expansion means only the entries
// it produces are addressable nodes, so the container's NodeBase.ID is a
// placeholder overwritten per entry by ExpandStructReg.
func buildStructReg(ns *store.NodeStore[node.Node], e elem) ([]*node.MaskedIntRegNode, error) {
	base, err := parseNodeBase(ns, types.InvalidNodeID, e)
	if err != nil {
		return nil, err
	}
	rb, err := parseRegisterBase(ns, base, e)
	if err != nil {
		return nil, err
	}

	desc := node.StructRegDesc{Base: rb}
	if v, ok := e.childText(elemEndianness); ok {
		en, err := parseEndianness(v)
		if err != nil {
			return nil, err
		}
		desc.Endian = en
	}
	for _, se := range e.children(tagStructEntry) {
		entry, err := buildStructEntry(ns, se)
		if err != nil {
			return nil, err
		}
		desc.Entries = append(desc.Entries, entry)
	}
	return node.ExpandStructReg(desc), nil
}
