package parser

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gencam/genicam/node"
	"github.com/gencam/genicam/store"
	"github.com/gencam/genicam/types"
)

// Document is a fully parsed register-description: the three stores §3
// defines, ready to be handed to an engine.Engine alongside a registered
// Device per Port (§4.7).
type Document struct {
	Nodes  *store.NodeStore[node.Node]
	Values *store.ValueStore
	Cache  *store.CacheStore
}

// Parse decodes a register-description XML document and builds its node
// graph (§4.3). It rejects documents with an element this engine does not
// model (ErrUnexpectedElement), a required attribute or child missing
// (ErrMissingElement/ErrBadAttribute), or whose invalidator graph contains
// a cycle (types.ErrKindParse).
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var root elem
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parser: decode xml: %w", err)
	}
	if root.XMLName.Local != tagRegisterDescription {
		return nil, unexpectedElement(root.XMLName.Local)
	}

	doc := &Document{
		Nodes:  store.New[node.Node](),
		Values: store.NewValueStore(),
		Cache:  store.NewCacheStore(),
	}

	for _, child := range root.Children {
		if err := doc.addTopLevel(child); err != nil {
			return nil, err
		}
	}

	if err := doc.Nodes.Resolve(); err != nil {
		return nil, types.New(types.ErrKindParse, "unresolved node reference", err)
	}
	if cycleAt, found := doc.Cache.DetectCycle(); found {
		name, _ := doc.Nodes.Name(cycleAt)
		return nil, types.New(types.ErrKindParse, fmt.Sprintf("invalidator cycle at %q", name), nil)
	}
	if cycleAt, found := detectConverterCycle(doc.Nodes); found {
		name, _ := doc.Nodes.Name(cycleAt)
		return nil, types.New(types.ErrKindParse, fmt.Sprintf("converter pValue cycle at %q", name), nil)
	}

	return doc, nil
}

// detectConverterCycle rejects only the "definitional" cycle §9 names
// explicitly: a chain of Converter/IntConverter nodes whose pValue targets
// loop back on themselves, which would make every read of any node on the
// chain recurse forever. Other reference cycles (e.g. two Integer nodes
// whose pMin/pMax point at each other without ever being read) are left to
// be caught dynamically, at first evaluation, by the engine's re-entrancy
// guard — not rejected here.
func detectConverterCycle(ns *store.NodeStore[node.Node]) (types.NodeID, bool) {
	pValue := func(id types.NodeID) (types.NodeID, bool) {
		n, ok := ns.Get(id)
		if !ok {
			return 0, false
		}
		switch v := n.(type) {
		case *node.ConverterNode:
			return v.PValue, v.PValue != types.InvalidNodeID
		case *node.IntConverterNode:
			return v.PValue, v.PValue != types.InvalidNodeID
		default:
			return 0, false
		}
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[types.NodeID]int{}
	var visit func(types.NodeID) (types.NodeID, bool)
	visit = func(id types.NodeID) (types.NodeID, bool) {
		color[id] = gray
		if next, ok := pValue(id); ok {
			switch color[next] {
			case gray:
				return next, true
			case white:
				if found, cyclic := visit(next); cyclic {
					return found, true
				}
			}
		}
		color[id] = black
		return 0, false
	}

	for _, name := range ns.Names() {
		id, _ := ns.Lookup(name)
		if color[id] == white {
			if found, cyclic := visit(id); cyclic {
				return found, true
			}
		}
	}
	return 0, false
}

func (doc *Document) addTopLevel(e elem) error {
	ns, vs, cs := doc.Nodes, doc.Values, doc.Cache

	switch e.XMLName.Local {
	case tagCategory:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildCategory(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagInteger:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildInteger(ns, vs, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagFloat:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildFloat(ns, vs, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagBoolean:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildBoolean(ns, vs, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagString:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildString(ns, vs, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagEnumeration:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildEnumeration(ns, vs, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagCommand:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildCommand(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagPort:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildPort(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagConverter:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildConverter(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagIntConverter:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildIntConverter(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagSwissKnife:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildSwissKnife(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagIntSwissKnife:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildIntSwissKnife(ns, id, e)
		if err != nil {
			return err
		}
		return ns.Define(id, n)

	case tagRegister:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildRegister(ns, id, e)
		if err != nil {
			return err
		}
		cs.SetCacheMode(id, n.Cacheable)
		cs.RegisterInvalidators(id, n.PInvalidators)
		return ns.Define(id, n)

	case tagIntReg:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildIntReg(ns, id, e)
		if err != nil {
			return err
		}
		cs.SetCacheMode(id, n.Cacheable)
		cs.RegisterInvalidators(id, n.PInvalidators)
		return ns.Define(id, n)

	case tagMaskedIntReg:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildMaskedIntReg(ns, id, e)
		if err != nil {
			return err
		}
		cs.SetCacheMode(id, n.Cacheable)
		cs.RegisterInvalidators(id, n.PInvalidators)
		return ns.Define(id, n)

	case tagFloatReg:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildFloatReg(ns, id, e)
		if err != nil {
			return err
		}
		cs.SetCacheMode(id, n.Cacheable)
		cs.RegisterInvalidators(id, n.PInvalidators)
		return ns.Define(id, n)

	case tagStringReg:
		id, err := intern(ns, e)
		if err != nil {
			return err
		}
		n, err := buildStringReg(ns, id, e)
		if err != nil {
			return err
		}
		cs.SetCacheMode(id, n.Cacheable)
		cs.RegisterInvalidators(id, n.PInvalidators)
		return ns.Define(id, n)

	case tagStructReg:
		entries, err := buildStructReg(ns, e)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			cs.SetCacheMode(entry.ID, entry.Cacheable)
			cs.RegisterInvalidators(entry.ID, entry.PInvalidators)
			if err := ns.Define(entry.ID, entry); err != nil {
				return err
			}
		}
		return nil

	default:
		return unexpectedElement(e.XMLName.Local)
	}
}
