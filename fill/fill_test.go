package fill

import (
	"testing"

	"github.com/tdewolff/svgweb/dom"
	"github.com/tdewolff/test"
)

func TestStyle(t *testing.T) {
	var tests = []struct {
		style    string
		expected string
	}{
		{`stroke:red;fill:#ff0000;opacity:0.5`, `stroke:red;fill:currentColor;opacity:0.5`},
		{`fill:red`, `fill:currentColor`},
		{`FILL : Red ; stroke:blue`, `fill:currentColor; stroke:blue`},
		{`fill:red;fill:blue`, `fill:currentColor;fill:currentColor`},
		{`fill-opacity:0.5;fill-rule:evenodd`, `fill-opacity:0.5;fill-rule:evenodd`},
		{`stroke:#000;stop-color:#fff`, `stroke:#000;stop-color:#fff`},
		{`fill:`, `fill:`},
		{``, ``},
		{`fill:currentColor`, `fill:currentColor`},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			test.String(t, Style(tt.style), tt.expected)
		})
	}
}

func TestNormalize(t *testing.T) {
	var tests = []struct {
		svg      string
		expected string
	}{
		{`<svg fill="none"><path fill="#f00"/></svg>`, `<svg fill="currentColor"><path fill="currentColor"/></svg>`},
		{`<svg><path style="fill:#f00;stroke:#000" stroke="#00f"/></svg>`, `<svg><path style="fill:currentColor;stroke:#000" stroke="#00f"/></svg>`},
		{`<svg><linearGradient><stop stop-color="#fff"/></linearGradient></svg>`, `<svg><linearGradient><stop stop-color="#fff"/></linearGradient></svg>`},
		{`<svg><g><g><rect fill="rgb(1,2,3)" x="1"/></g></g></svg>`, `<svg><g><g><rect fill="currentColor" x="1"/></g></g></svg>`},
		{`<svg><path d="M0 0"/></svg>`, `<svg><path d="M0 0"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			doc, err := dom.ParseString(tt.svg)
			test.Error(t, err)
			Normalize(doc)
			test.String(t, doc.String(), tt.expected)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	doc, err := dom.ParseString(`<svg fill="#123"><g style="opacity:1;fill: blue"><path fill="red" style="fill:green"/></g></svg>`)
	test.Error(t, err)

	Normalize(doc)
	once := doc.String()
	Normalize(doc)
	test.String(t, doc.String(), once)

	doc.Walk(func(n *dom.Node) bool {
		if val, ok := n.Attr("fill"); ok {
			test.String(t, val, Token)
		}
		return true
	})
}
