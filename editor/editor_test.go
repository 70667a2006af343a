package editor

import (
	"strings"
	"testing"

	"github.com/tdewolff/svgweb/dom"
	"github.com/tdewolff/test"
)

const inkscapeSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd" viewBox="0 0 24 24" sodipodi:docname="icon.svg" inkscape:version="1.3">
  <sodipodi:namedview id="namedview1" pagecolor="#ffffff" inkscape:zoom="8">
    <inkscape:grid id="grid1" type="xygrid"/>
  </sodipodi:namedview>
  <g inkscape:label="Layer 1" inkscape:groupmode="layer" id="layer1">
    <path d="M0 0h24v24H0z" sodipodi:nodetypes="ccccc" fill="none"/>
    <g><inkscape:grid id="grid2"/><text>keep me</text></g>
  </g>
</svg>`

func TestStrip(t *testing.T) {
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg inkscape:version="1" a="b"/>`, `<svg a="b"/>`},
		{`<svg><sodipodi:namedview><inkscape:grid/></sodipodi:namedview><g/></svg>`, `<svg><g/></svg>`},
		{`<svg><g><g><inkscape:grid/></g></g></svg>`, `<svg><g><g/></g></svg>`},
		{`<svg><path sodipodi:type="arc" d="M0 0"/></svg>`, `<svg><path d="M0 0"/></svg>`},
		{`<svg><sodipodi:guide id="a"/></svg>`, `<svg><sodipodi:guide id="a"/></svg>`},
		{`<svg Inkscape:label="x" xmlns:inkscape="y"/>`, `<svg Inkscape:label="x" xmlns:inkscape="y"/>`},
		{`<sodipodi:namedview/>`, `<sodipodi:namedview/>`},
		{`<svg><text>inkscape:label</text></svg>`, `<svg><text>inkscape:label</text></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			doc, err := dom.ParseString(tt.svg)
			test.Error(t, err)
			Strip(doc)
			test.String(t, doc.String(), tt.expected)
		})
	}
}

func TestStripEliminatesEditorData(t *testing.T) {
	doc, err := dom.ParseString(inkscapeSVG)
	test.Error(t, err)
	Strip(doc)

	doc.Walk(func(n *dom.Node) bool {
		test.That(t, !IsEditorElement(n), "editor element left:", n.Name)
		for _, attr := range n.Attrs {
			test.That(t, !strings.HasPrefix(attr.Name, "inkscape:") && !strings.HasPrefix(attr.Name, "sodipodi:"), "editor attribute left:", attr.Name)
		}
		return true
	})
	test.That(t, strings.Contains(doc.String(), "<text>keep me</text>"))
}

func TestStripPreservesOtherMarkup(t *testing.T) {
	type elem struct {
		name  string
		attrs []dom.Attr
	}
	collect := func(doc *dom.Document) []elem {
		var elems []elem
		doc.Walk(func(n *dom.Node) bool {
			if IsEditorElement(n) {
				return false
			}
			var attrs []dom.Attr
			for _, attr := range n.Attrs {
				if !IsEditorAttr(attr) {
					attrs = append(attrs, attr)
				}
			}
			elems = append(elems, elem{n.Name, attrs})
			return true
		})
		return elems
	}

	doc, err := dom.ParseString(inkscapeSVG)
	test.Error(t, err)
	before := collect(doc)
	Strip(doc)
	after := collect(doc)
	test.T(t, after, before)
	test.T(t, len(after), 5)
}
