package svg

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/svgweb/dom"
)

var urlRefRegexp = regexp.MustCompile(`url\(\s*['"]?#([^'")\s]+)`)

// removeNodes removes every node in the document for which f returns true, including top-level nodes.
// Children of removed nodes are not visited.
func removeNodes(doc *dom.Document, f func(*dom.Node) bool) {
	var remove func(*dom.Node)
	remove = func(n *dom.Node) {
		n.RemoveChildrenFunc(f)
		for _, child := range n.Children {
			if child.Type == dom.ElementNode {
				remove(child)
			}
		}
	}
	root := &dom.Node{Children: doc.Children}
	remove(root)
	doc.Children = root.Children
}

func isEmpty(n *dom.Node) bool {
	for _, child := range n.Children {
		if child.Type != dom.TextNode || !parse.IsAllWhitespace([]byte(child.Data)) {
			return false
		}
	}
	return true
}

// property returns the value of a presentation attribute, where the style attribute takes precedence.
func property(n *dom.Node, name string) (string, bool) {
	if style, ok := n.Attr("style"); ok {
		for _, decl := range strings.Split(style, ";") {
			if colon := strings.IndexByte(decl, ':'); colon != -1 {
				if strings.EqualFold(strings.TrimSpace(decl[:colon]), name) {
					return strings.ToLower(strings.TrimSpace(decl[colon+1:])), true
				}
			}
		}
	}
	if val, ok := n.Attr(name); ok {
		return strings.ToLower(strings.TrimSpace(val)), true
	}
	return "", false
}

// isZero returns true if the length attribute exists and equals zero.
func isZero(n *dom.Node, name string) bool {
	val, ok := n.Attr(name)
	if !ok {
		return false
	}
	val = strings.TrimSpace(val)
	val = strings.TrimRightFunc(val, func(r rune) bool {
		return r == '%' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	})
	f, err := strconv.ParseFloat(val, 64)
	return err == nil && f == 0
}

// references returns all ids that are referenced by url(#id) or href="#id", in attributes and in style sheets.
func references(doc *dom.Document) map[string]bool {
	refs := map[string]bool{}
	addURLs := func(s string) {
		for _, m := range urlRefRegexp.FindAllStringSubmatch(s, -1) {
			refs[m[1]] = true
		}
	}
	doc.Walk(func(n *dom.Node) bool {
		for _, attr := range n.Attrs {
			if (attr.Name == "href" || attr.Name == "xlink:href") && strings.HasPrefix(attr.Val, "#") {
				refs[attr.Val[1:]] = true
			} else {
				addURLs(attr.Val)
			}
		}
		if n.Name == "style" {
			for _, child := range n.Children {
				if child.Type == dom.TextNode || child.Type == dom.CDATANode {
					addURLs(child.Data)
				}
			}
		}
		return true
	})
	return refs
}

////////////////////////////////////////////////////////////////

func removeProcInst(doc *dom.Document) {
	removeNodes(doc, func(n *dom.Node) bool {
		return n.Type == dom.ProcInstNode && n.Name == "xml"
	})
}

func removeComments(doc *dom.Document) {
	removeNodes(doc, func(n *dom.Node) bool {
		return n.Type == dom.CommentNode && !strings.HasPrefix(n.Data, "!")
	})
}

func removeElements(doc *dom.Document, name string) {
	removeNodes(doc, func(n *dom.Node) bool {
		return n.Type == dom.ElementNode && n.Name == name
	})
}

// removeUselessDefs keeps only definitions that can be referenced, those with an id, and style sheets.
// Such elements nested in an element without id are moved up.
func removeUselessDefs(doc *dom.Document) {
	var useful func(*dom.Node, []*dom.Node) []*dom.Node
	useful = func(n *dom.Node, nodes []*dom.Node) []*dom.Node {
		for _, child := range n.Children {
			if child.Type != dom.ElementNode {
				continue
			} else if child.HasAttr("id") || child.Name == "style" {
				nodes = append(nodes, child)
			} else {
				nodes = useful(child, nodes)
			}
		}
		return nodes
	}

	root := doc.Root()
	removeNodes(doc, func(n *dom.Node) bool {
		if n == root || n.Type != dom.ElementNode {
			return false
		} else if n.Name != "defs" && (!nonRenderingTagMap[n.Name] || n.HasAttr("id")) {
			return false
		}
		n.Children = useful(n, nil)
		return len(n.Children) == 0
	})
}

// removeEditorsNSData removes namespace declarations of vector editors on svg elements,
// and all elements and attributes using their prefixes.
func removeEditorsNSData(doc *dom.Document) {
	prefixes := map[string]bool{}
	var remove func(*dom.Node)
	remove = func(n *dom.Node) {
		if n.Name == "svg" {
			n.RemoveAttrFunc(func(attr dom.Attr) bool {
				if strings.HasPrefix(attr.Name, "xmlns:") && editorNamespaceMap[attr.Val] {
					prefixes[attr.Name[len("xmlns:"):]] = true
					return true
				}
				return false
			})
		}
		n.RemoveAttrFunc(func(attr dom.Attr) bool {
			return prefixes[attr.Prefix()]
		})
		n.RemoveChildrenFunc(func(child *dom.Node) bool {
			return child.Type == dom.ElementNode && prefixes[dom.Prefix(child.Name)]
		})
		for _, child := range n.Children {
			if child.Type == dom.ElementNode {
				remove(child)
			}
		}
	}
	if root := doc.Root(); root != nil {
		remove(root)
	}
}

func removeEmptyAttrs(doc *dom.Document) {
	doc.Walk(func(n *dom.Node) bool {
		n.RemoveAttrFunc(func(attr dom.Attr) bool {
			return attr.Val == "" && !conditionalAttrMap[attr.Name]
		})
		return true
	})
}

func removeHiddenElems(doc *dom.Document) {
	root := doc.Root()
	if root == nil {
		return
	}
	refs := references(doc)

	var hasVisible func(*dom.Node) bool
	hasVisible = func(n *dom.Node) bool {
		for _, child := range n.Elements() {
			if visibility, _ := property(child, "visibility"); visibility == "visible" || hasVisible(child) {
				return true
			}
		}
		return false
	}
	var isReferenced func(*dom.Node) bool
	isReferenced = func(n *dom.Node) bool {
		if id, ok := n.Attr("id"); ok && refs[id] {
			return true
		}
		for _, child := range n.Elements() {
			if isReferenced(child) {
				return true
			}
		}
		return false
	}
	isHidden := func(n *dom.Node, inClipPath bool) bool {
		if isReferenced(n) {
			return false
		}
		if display, _ := property(n, "display"); display == "none" && n.Name != "marker" {
			return true
		} else if visibility, _ := property(n, "visibility"); visibility == "hidden" && !hasVisible(n) {
			return true
		} else if opacity, _ := property(n, "opacity"); opacity == "0" && !inClipPath {
			return true
		}
		switch n.Name {
		case "circle":
			return isEmpty(n) && isZero(n, "r")
		case "ellipse":
			return isEmpty(n) && (isZero(n, "rx") || isZero(n, "ry"))
		case "rect", "pattern", "image":
			return isEmpty(n) && (isZero(n, "width") || isZero(n, "height"))
		case "path":
			d, _ := n.Attr("d")
			return strings.TrimSpace(d) == ""
		case "polyline", "polygon":
			return !n.HasAttr("points")
		}
		return false
	}

	var remove func(*dom.Node, bool)
	remove = func(n *dom.Node, inClipPath bool) {
		inClipPath = inClipPath || n.Name == "clipPath"
		n.RemoveChildrenFunc(func(child *dom.Node) bool {
			return child.Type == dom.ElementNode && isHidden(child, inClipPath)
		})
		for _, child := range n.Children {
			if child.Type == dom.ElementNode {
				remove(child, inClipPath)
			}
		}
	}
	remove(root, false)
}

func removeEmptyText(doc *dom.Document) {
	removeNodes(doc, func(n *dom.Node) bool {
		if n.Type != dom.ElementNode {
			return false
		}
		switch n.Name {
		case "text", "tspan":
			return len(n.Children) == 0
		case "tref":
			return !n.HasAttr("xlink:href") && !n.HasAttr("href")
		}
		return false
	})
}

// removeEmptyContainers removes containers without content, innermost first so that emptied parents go too.
func removeEmptyContainers(doc *dom.Document) {
	var remove func(*dom.Node)
	remove = func(n *dom.Node) {
		for _, child := range n.Children {
			if child.Type == dom.ElementNode {
				remove(child)
			}
		}
		if n.Name == "switch" {
			return
		}
		n.RemoveChildrenFunc(func(child *dom.Node) bool {
			if child.Type != dom.ElementNode || !containerTagMap[child.Name] || !isEmpty(child) {
				return false
			}
			switch child.Name {
			case "svg":
				return false
			case "pattern":
				return len(child.Attrs) == 0
			case "mask":
				return !child.HasAttr("id")
			case "g":
				return !child.HasAttr("filter")
			}
			return true
		})
	}
	if root := doc.Root(); root != nil {
		remove(root)
	}
}

// removeViewBox removes the viewBox of the root element when it starts at the origin
// and has the same size as the width and height.
func removeViewBox(doc *dom.Document) {
	root := doc.Root()
	if root == nil || root.Name != "svg" {
		return
	}
	viewBox, ok := root.Attr("viewBox")
	if !ok {
		return
	}
	width, okWidth := root.Attr("width")
	height, okHeight := root.Attr("height")
	if !okWidth || !okHeight {
		return
	}
	nums := strings.FieldsFunc(viewBox, func(r rune) bool {
		return r == ',' || parse.IsWhitespace(byte(r))
	})
	if len(nums) == 4 && nums[0] == "0" && nums[1] == "0" && strings.TrimSuffix(width, "px") == nums[2] && strings.TrimSuffix(height, "px") == nums[3] {
		root.RemoveAttr("viewBox")
	}
}

func convertColors(doc *dom.Document) {
	doc.Walk(func(n *dom.Node) bool {
		for i, attr := range n.Attrs {
			if colorAttrMap[attr.Name] {
				n.Attrs[i].Val = ShortenColor(attr.Val)
			}
		}
		return true
	})
}
