package parser

import (
	"strconv"
	"strings"

	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/store"
	"github.com/gencam/genicam/types"
)

// intern resolves e's Name attribute to a NodeID, creating one if this is
// the first time the name has been seen (a forward reference from an
// earlier sibling, or the node's own definition).
func intern(ns *store.NodeStore[node.Node], e elem) (types.NodeID, error) {
	name, ok := e.attr(attrName)
	if !ok || name == "" {
		return 0, missingElement(attrName)
	}
	return ns.Intern(name), nil
}

// internRef interns a name referenced by a child element's text content
// (pValue, pInvalidator, pAlias, and similar).
func internRef(ns *store.NodeStore[node.Node], name string) types.NodeID {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.InvalidNodeID
	}
	return ns.Intern(name)
}

func internRefOpt(ns *store.NodeStore[node.Node], e elem, tag string) types.NodeID {
	if text, ok := e.childText(tag); ok {
		return internRef(ns, text)
	}
	return types.InvalidNodeID
}

func internRefList(ns *store.NodeStore[node.Node], e elem, tag string) []types.NodeID {
	texts := e.texts(tag)
	if len(texts) == 0 {
		return nil
	}
	out := make([]types.NodeID, 0, len(texts))
	for _, t := range texts {
		out = append(out, internRef(ns, t))
	}
	return out
}

func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "Yes", "1":
		return true, nil
	case "false", "No", "0", "":
		return false, nil
	default:
		return false, badAttribute("bool", s, strconv.ErrSyntax)
	}
}

// parseInt accepts both decimal and GenICam's 0x-prefixed hexadecimal
// integer literals (§4.1).
func parseInt(name, s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	base := 10
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, badAttribute(name, s, err)
	}
	n := int64(v)
	if neg {
		n = -n
	}
	return n, nil
}

func parseFloat(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, badAttribute(name, s, err)
	}
	return v, nil
}

func parseVisibility(s string) (types.Visibility, error) {
	switch strings.TrimSpace(s) {
	case "", "Beginner":
		return types.Beginner, nil
	case "Expert":
		return types.Expert, nil
	case "Guru":
		return types.Guru, nil
	case "Invisible":
		return types.Invisible, nil
	default:
		return 0, badAttribute(elemVisibility, s, strconv.ErrSyntax)
	}
}

func parseAccessModeStr(s string) (types.AccessMode, error) {
	switch strings.TrimSpace(s) {
	case "RW":
		return types.RW, nil
	case "RO":
		return types.RO, nil
	case "WO":
		return types.WO, nil
	default:
		return 0, badAttribute(elemAccessMode, s, strconv.ErrSyntax)
	}
}

func parseCachingMode(s string) (types.CachingMode, bool, error) {
	switch strings.TrimSpace(s) {
	case "":
		return types.WriteThrough, false, nil
	case "WriteThrough":
		return types.WriteThrough, true, nil
	case "WriteAround":
		return types.WriteAround, true, nil
	case "NoCache":
		return types.NoCache, true, nil
	default:
		return 0, false, badAttribute(elemCachable, s, strconv.ErrSyntax)
	}
}

func parseSign(s string) (types.Sign, error) {
	switch strings.TrimSpace(s) {
	case "", "Unsigned":
		return types.Unsigned, nil
	case "Signed":
		return types.Signed, nil
	default:
		return 0, badAttribute(elemSign, s, strconv.ErrSyntax)
	}
}

func parseEndianness(s string) (types.Endianness, error) {
	switch strings.TrimSpace(s) {
	case "", "LittleEndian":
		return types.LittleEndian, nil
	case "BigEndian":
		return types.BigEndian, nil
	default:
		return 0, badAttribute(elemEndianness, s, strconv.ErrSyntax)
	}
}

func parseRepresentation(s string) (types.Representation, error) {
	switch strings.TrimSpace(s) {
	case "", "Linear":
		return types.Linear, nil
	case "Logarithmic":
		return types.Logarithmic, nil
	case "Boolean":
		return types.Boolean, nil
	case "PureNumber":
		return types.PureNumber, nil
	case "HexNumber":
		return types.HexNumber, nil
	case "IPV4Address":
		return types.IPV4Address, nil
	case "MACAddress":
		return types.MACAddress, nil
	default:
		return 0, badAttribute(elemRepresentation, s, strconv.ErrSyntax)
	}
}

// parseNodeBase fills the NodeBase fields common to every variant from e's
// shared child elements, interning every node-name reference along the way.
func parseNodeBase(ns *store.NodeStore[node.Node], id types.NodeID, e elem) (node.NodeBase, error) {
	base := node.NewNodeBase(id)

	if ns2, ok := e.attr(attrNameSpace); ok {
		base.NameSpace = ns2
	}
	if v, ok := e.childText(elemToolTip); ok {
		base.ToolTip = v
	}
	if v, ok := e.childText(elemDescription); ok {
		base.Description = v
	}
	if v, ok := e.childText(elemDisplayName); ok {
		base.DisplayName = v
	}
	if v, ok := e.childText(elemDocuURL); ok {
		base.DocuURL = v
	}
	if v, ok := e.childText(elemVisibility); ok {
		vis, err := parseVisibility(v)
		if err != nil {
			return base, err
		}
		base.Visibility = vis
	}
	if v, ok := e.childText(elemIsDeprecated); ok {
		b, err := parseBool(v)
		if err != nil {
			return base, err
		}
		base.IsDeprecated = b
	}
	if v, ok := e.attr(elemEventID); ok {
		base.EventID = internRef(ns, v)
	}
	if v, ok := e.childText(elemImposedAccessMode); ok {
		am, err := parseAccessModeStr(v)
		if err != nil {
			return base, err
		}
		base.ImposedAccessMode = am
	}
	base.PIsImplemented = internRefOpt(ns, e, elemPIsImplemented)
	base.PIsAvailable = internRefOpt(ns, e, elemPIsAvailable)
	base.PIsLocked = internRefOpt(ns, e, elemPIsLocked)
	base.PBlockPolling = internRefOpt(ns, e, elemPBlockPolling)
	base.PErrors = internRefList(ns, e, elemPError)
	base.PAlias = internRefOpt(ns, e, elemPAlias)
	base.PCastAlias = internRefOpt(ns, e, elemPCastAlias)

	return base, nil
}

// parseRegisterBase extends a built NodeBase with the address/length/port
// and caching fields every register-backed variant declares (§4.3).
func parseRegisterBase(ns *store.NodeStore[node.Node], base node.NodeBase, e elem) (node.RegisterBase, error) {
	rb := node.RegisterBase{NodeBase: base, AccessMode: types.RO, Cacheable: types.WriteThrough}

	if v, ok := e.childText(elemAddress); ok {
		rb.AddressExpr = v
	} else if v, ok := e.childText(elemPAddress); ok {
		rb.AddressExpr = v
	} else {
		return rb, missingElement(elemAddress)
	}

	if v, ok := e.childText(elemLength); ok {
		rb.LengthExpr = v
	} else if v, ok := e.childText(elemPLength); ok {
		rb.LengthExpr = v
	} else {
		return rb, missingElement(elemLength)
	}

	if v, ok := e.childText(elemPort); ok {
		rb.Port = internRef(ns, v)
	} else {
		return rb, missingElement(elemPort)
	}

	if v, ok := e.childText(elemAccessMode); ok {
		am, err := parseAccessModeStr(v)
		if err != nil {
			return rb, err
		}
		rb.AccessMode = am
	}
	if v, ok := e.childText(elemCachable); ok {
		cm, _, err := parseCachingMode(v)
		if err != nil {
			return rb, err
		}
		rb.Cacheable = cm
	}
	if v, ok := e.childText(elemPollingTime); ok {
		n, err := parseInt(elemPollingTime, v)
		if err != nil {
			return rb, err
		}
		rb.PollingTime = n
	}
	if v, ok := e.childText(elemStreamable); ok {
		b, err := parseBool(v)
		if err != nil {
			return rb, err
		}
		rb.Streamable = b
	}
	rb.PInvalidators = internRefList(ns, e, elemPInvalidator)

	return rb, nil
}

func parseVariables(ns *store.NodeStore[node.Node], e elem) map[string]types.NodeID {
	vars := map[string]types.NodeID{}
	for _, v := range e.children(elemPVariable) {
		name, ok := v.attr(attrName)
		if !ok {
			continue
		}
		vars[name] = internRef(ns, v.Content)
	}
	return vars
}
