// Package svgweb prepares SVG files for embedding in web pages. Fills are set to currentColor,
// editor metadata is stripped, and the result is minified with a fixed set of rules.
package svgweb

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/svgweb/dom"
	"github.com/tdewolff/svgweb/editor"
	"github.com/tdewolff/svgweb/fill"
	"github.com/tdewolff/svgweb/svg"
)

// MediaType is the media type the minifier is registered under.
const MediaType = "image/svg+xml"

// Rules are the minification rules, all enabled except for viewBox removal and color conversion.
var Rules = svg.Minifier{
	KeepViewBox: true,
	KeepColors:  true,
}

// Optimizer runs the fill normalization, editor stripping and minification stages.
type Optimizer struct {
	M *minify.M
}

// New returns an Optimizer that minifies with Rules.
func New() *Optimizer {
	m := minify.New()
	rules := Rules
	m.Add(MediaType, &rules)
	return NewWithMinifier(m)
}

// NewWithMinifier returns an Optimizer that uses the minifier registered for MediaType in m.
func NewWithMinifier(m *minify.M) *Optimizer {
	return &Optimizer{m}
}

// Optimize reads an SVG document from r and writes the optimized document to w.
// Nothing is written to w when an error occurs before the output is complete.
// Errors are of type *Error without a path.
func (o *Optimizer) Optimize(w io.Writer, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return NewError(ReadError, "", err)
	}

	doc, err := dom.ParseBytes(b)
	if err != nil {
		return NewError(MalformedError, "", err)
	}
	fill.Normalize(doc)
	editor.Strip(doc)

	src := bytes.NewBuffer(make([]byte, 0, len(b)))
	if _, err := doc.WriteTo(src); err != nil {
		return NewError(WriteError, "", err)
	}

	dst := bytes.NewBuffer(make([]byte, 0, src.Len()))
	if err := o.M.Minify(MediaType, dst, src); err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			return NewError(MalformedError, "", err)
		}
		return fmt.Errorf("minify: %w", err)
	}

	if _, err := w.Write(dst.Bytes()); err != nil {
		return NewError(WriteError, "", err)
	}
	return nil
}

// Bytes optimizes the SVG document in b.
func (o *Optimizer) Bytes(b []byte) ([]byte, error) {
	w := &bytes.Buffer{}
	if err := o.Optimize(w, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// String optimizes the SVG document in s.
func (o *Optimizer) String(s string) (string, error) {
	b, err := o.Bytes([]byte(s))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
