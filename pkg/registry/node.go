// Package registry decodes API registry XML (the Khronos gl.xml layout) into
// an ordered node tree consumed by package spec.
//
// The tree keeps element order, attribute order and interleaved text, so a
// declaration such as
//
//	<param>const <ptype>GLchar</ptype> *const*<name>string</name></param>
//
// can be read back word by word.
package registry

import "strings"

// Attr is a single attribute of an element node.
type Attr struct {
	Name  string
	Value string
}

// Node is one element or text node of a registry tree.
// Text nodes have an empty Tag and carry their content in Text.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// IsText reports whether n is a character-data node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Lookup returns the value of the named attribute and whether it was present.
func (n *Node) Lookup(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	v, _ := n.Lookup(name)
	return v
}

// Child returns the first direct element child with the given tag, or nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Elements returns the direct element children with the given tag in
// document order. An empty tag selects every element child.
func (n *Node) Elements(tag string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsText() {
			continue
		}
		if tag == "" || c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// InnerText returns the concatenated character data of n and its descendants.
func (n *Node) InnerText() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.IsText() {
			b.WriteString(c.Text)
			continue
		}
		c.writeText(b)
	}
}
