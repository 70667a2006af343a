// Package editor strips the markup that vector editors such as Inkscape leave in SVG files.
package editor

import (
	"strings"

	"github.com/tdewolff/svgweb/dom"
)

var attrPrefixes = []string{"inkscape:", "sodipodi:"}

var elementNames = map[string]bool{
	"sodipodi:namedview": true,
	"inkscape:grid":      true,
}

// IsEditorAttr returns true for attributes in the inkscape or sodipodi namespace.
func IsEditorAttr(attr dom.Attr) bool {
	for _, prefix := range attrPrefixes {
		if strings.HasPrefix(attr.Name, prefix) {
			return true
		}
	}
	return false
}

// IsEditorElement returns true for editor-only elements such as sodipodi:namedview.
func IsEditorElement(n *dom.Node) bool {
	return n.Type == dom.ElementNode && elementNames[n.Name]
}

// Strip removes editor attributes and elements from the document, starting at the root element.
func Strip(doc *dom.Document) {
	if root := doc.Root(); root != nil {
		StripElement(root)
	}
}

// StripElement walks the element depth-first. At each element it first removes the editor
// attributes and all editor elements below it, then continues with the remaining children.
func StripElement(n *dom.Node) {
	n.RemoveAttrFunc(IsEditorAttr)
	n.RemoveDescendantsFunc(IsEditorElement)
	for _, child := range n.Children {
		if child.Type == dom.ElementNode {
			StripElement(child)
		}
	}
}
