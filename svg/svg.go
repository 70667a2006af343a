// Package svg minifies SVG documents by removing markup that does not affect rendering.
package svg

import (
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/svgweb/dom"
)

// DefaultMinifier is the default minifier, it applies every rule.
var DefaultMinifier = &Minifier{}

// Minifier is an SVG minifier. Every rule is enabled by default and can be turned off by its Keep option.
type Minifier struct {
	KeepProcInst        bool // keep <?xml ...?> declarations
	KeepComments        bool // keep comments, comments starting with ! are always kept
	KeepMetadata        bool
	KeepTitle           bool
	KeepDesc            bool
	KeepUselessDefs     bool // keep definitions that cannot be referenced
	KeepEditorsNSData   bool // keep elements and attributes in editor namespaces
	KeepEmptyAttrs      bool
	KeepHiddenElems     bool
	KeepEmptyText       bool
	KeepEmptyContainers bool
	KeepViewBox         bool // keep a viewBox that equals the width and height
	KeepColors          bool // keep color values as written
}

// Minify minifies SVG data, it reads from r and writes to w.
func Minify(m *minify.M, w io.Writer, r io.Reader, params map[string]string) error {
	return DefaultMinifier.Minify(m, w, r, params)
}

// Minify minifies SVG data, it reads from r and writes to w.
// Input that is not well-formed returns a *parse.Error and writes nothing.
func (o *Minifier) Minify(_ *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	doc, err := dom.Parse(r)
	if err != nil {
		return err
	}
	o.Apply(doc)
	return Write(w, doc)
}

// Apply runs the enabled rules over the document in place.
func (o *Minifier) Apply(doc *dom.Document) {
	if !o.KeepProcInst {
		removeProcInst(doc)
	}
	if !o.KeepComments {
		removeComments(doc)
	}
	if !o.KeepMetadata {
		removeElements(doc, "metadata")
	}
	if !o.KeepTitle {
		removeElements(doc, "title")
	}
	if !o.KeepDesc {
		removeElements(doc, "desc")
	}
	if !o.KeepUselessDefs {
		removeUselessDefs(doc)
	}
	if !o.KeepEditorsNSData {
		removeEditorsNSData(doc)
	}
	if !o.KeepEmptyAttrs {
		removeEmptyAttrs(doc)
	}
	if !o.KeepHiddenElems {
		removeHiddenElems(doc)
	}
	if !o.KeepEmptyText {
		removeEmptyText(doc)
	}
	if !o.KeepEmptyContainers {
		removeEmptyContainers(doc)
	}
	if !o.KeepViewBox {
		removeViewBox(doc)
	}
	if !o.KeepColors {
		convertColors(doc)
	}
}
