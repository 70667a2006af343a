// Package dom is a small mutable document tree for SVG markup.
package dom

import "strings"

// NodeType is the type of a Node.
type NodeType uint8

// NodeType values.
const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
	CDATANode
	ProcInstNode
	DoctypeNode
)

func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case CDATANode:
		return "CDATA"
	case ProcInstNode:
		return "ProcInst"
	case DoctypeNode:
		return "Doctype"
	}
	return "Invalid"
}

// Attr is an attribute with its qualified name and its raw value without quotes.
type Attr struct {
	Name string
	Val  string
}

// Prefix returns the namespace prefix of the attribute name, or an empty string.
func (a Attr) Prefix() string {
	return Prefix(a.Name)
}

// Node is an element, text, comment, CDATA section, processing instruction or doctype.
// Name is the qualified tag name for elements and the target for processing instructions.
// Data holds the raw content of all other node types.
type Node struct {
	Type     NodeType
	Name     string
	Attrs    []Attr
	Data     string
	Children []*Node
}

// NewElement returns a new element node.
func NewElement(name string, attrs ...Attr) *Node {
	return &Node{Type: ElementNode, Name: name, Attrs: attrs}
}

// NewText returns a new text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr returns true if the named attribute exists.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// RemoveAttr removes the named attribute and returns whether it existed.
func (n *Node) RemoveAttr(name string) bool {
	return n.RemoveAttrFunc(func(attr Attr) bool {
		return attr.Name == name
	}) != 0
}

// RemoveAttrFunc removes all attributes for which f returns true, keeping the order of the others.
// It returns the number of removed attributes.
func (n *Node) RemoveAttrFunc(f func(Attr) bool) int {
	j := 0
	for _, attr := range n.Attrs {
		if !f(attr) {
			n.Attrs[j] = attr
			j++
		}
	}
	removed := len(n.Attrs) - j
	n.Attrs = n.Attrs[:j]
	return removed
}

// Elements returns the element children.
func (n *Node) Elements() []*Node {
	var elems []*Node
	for _, child := range n.Children {
		if child.Type == ElementNode {
			elems = append(elems, child)
		}
	}
	return elems
}

// RemoveChildrenFunc removes the direct children for which f returns true.
func (n *Node) RemoveChildrenFunc(f func(*Node) bool) int {
	j := 0
	for _, child := range n.Children {
		if !f(child) {
			n.Children[j] = child
			j++
		}
	}
	removed := len(n.Children) - j
	for i := j; i < len(n.Children); i++ {
		n.Children[i] = nil
	}
	n.Children = n.Children[:j]
	return removed
}

// RemoveDescendantsFunc removes all descendant elements for which f returns true.
// A removed subtree is not visited any further. The node itself is never removed.
func (n *Node) RemoveDescendantsFunc(f func(*Node) bool) int {
	removed := n.RemoveChildrenFunc(func(child *Node) bool {
		return child.Type == ElementNode && f(child)
	})
	for _, child := range n.Children {
		if child.Type == ElementNode {
			removed += child.RemoveDescendantsFunc(f)
		}
	}
	return removed
}

// Walk visits n and all its descendant elements depth-first in pre-order.
// When f returns false the children of that element are skipped.
func Walk(n *Node, f func(*Node) bool) {
	if n == nil || n.Type != ElementNode || !f(n) {
		return
	}
	for _, child := range n.Children {
		if child.Type == ElementNode {
			Walk(child, f)
		}
	}
}

// Prefix returns the namespace prefix of a qualified name, or an empty string.
func Prefix(name string) string {
	if i := strings.IndexByte(name, ':'); 0 < i {
		return name[:i]
	}
	return ""
}

////////////////////////////////////////////////////////////////

// Document is a parsed markup file: the root element plus any top-level
// processing instructions, doctype, comments and whitespace around it.
type Document struct {
	Children []*Node
}

// Root returns the root element, or nil.
func (doc *Document) Root() *Node {
	for _, n := range doc.Children {
		if n.Type == ElementNode {
			return n
		}
	}
	return nil
}

// Walk visits all elements of the document depth-first in pre-order.
func (doc *Document) Walk(f func(*Node) bool) {
	Walk(doc.Root(), f)
}
