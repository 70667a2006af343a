// Package fill rewrites fill colors so that an SVG inherits the CSS color of its context.
package fill

import (
	"regexp"

	"github.com/tdewolff/svgweb/dom"
)

// Token is the color every fill is set to.
const Token = "currentColor"

var styleFillRegexp = regexp.MustCompile(`(?i)fill\s*:[^;]+`)

// Normalize sets every fill attribute and every fill declaration inside a style attribute to Token.
// Other color properties such as stroke or stop-color are left alone.
func Normalize(doc *dom.Document) {
	doc.Walk(func(n *dom.Node) bool {
		NormalizeElement(n)
		return true
	})
}

// NormalizeElement normalizes the fill of a single element.
func NormalizeElement(n *dom.Node) {
	for i, attr := range n.Attrs {
		switch attr.Name {
		case "fill":
			n.Attrs[i].Val = Token
		case "style":
			n.Attrs[i].Val = Style(attr.Val)
		}
	}
}

// Style replaces each fill declaration in a style attribute value by fill:currentColor.
func Style(style string) string {
	return styleFillRegexp.ReplaceAllLiteralString(style, "fill:"+Token)
}
