package parser

import "encoding/xml"

// elem is a generic XML element tree node: the whole register-description
// document decodes into one elem tree, which the per-variant builders then
// walk by tag name rather than driving encoding/xml's streaming tokenizer
// directly.
type elem struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []elem     `xml:",any"`
}

func (e elem) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// child returns the first direct child element named tag.
func (e elem) child(tag string) (elem, bool) {
	for _, c := range e.Children {
		if c.XMLName.Local == tag {
			return c, true
		}
	}
	return elem{}, false
}

// childText returns the text content of the first direct child named tag.
func (e elem) childText(tag string) (string, bool) {
	c, ok := e.child(tag)
	if !ok {
		return "", false
	}
	return c.Content, true
}

// children returns every direct child element named tag, in document order.
func (e elem) children(tag string) []elem {
	var out []elem
	for _, c := range e.Children {
		if c.XMLName.Local == tag {
			out = append(out, c)
		}
	}
	return out
}

// texts returns the text content of every direct child element named tag,
// for repeatable reference elements like pInvalidator/pError.
func (e elem) texts(tag string) []string {
	var out []string
	for _, c := range e.children(tag) {
		out = append(out, c.Content)
	}
	return out
}
