package svgweb

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/svgweb/svg"
	"github.com/tdewolff/test"
)

var errFail = errors.New("write failed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errFail
}

const inkscapeSVG = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!-- Created with Inkscape (http://www.inkscape.org/) -->
<svg
   xmlns="http://www.w3.org/2000/svg"
   xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"
   xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
   width="24"
   height="24"
   viewBox="0 0 24 24"
   inkscape:version="1.2 (dc2aedaf03, 2022-05-15)"
   sodipodi:docname="icon.svg">
  <sodipodi:namedview id="namedview7" pagecolor="#ffffff" inkscape:zoom="32">
    <inkscape:grid type="xygrid" id="grid9"/>
  </sodipodi:namedview>
  <title>Icon</title>
  <metadata id="metadata5"/>
  <g inkscape:label="Layer 1" inkscape:groupmode="layer" id="layer1">
    <path d="M0 0h24v24H0z" fill="#FF0000" style="stroke:red;fill:#ff0000;opacity:0.5"/>
    <circle cx="12" cy="12" r="4" stroke="#00ff00"/>
  </g>
</svg>
`

func TestOptimize(t *testing.T) {
	tests := []struct {
		svg      string
		expected string
	}{
		{inkscapeSVG, `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24"><g id="layer1"><path d="M0 0h24v24H0z" fill="currentColor" style="stroke:red;fill:currentColor;opacity:0.5"/><circle cx="12" cy="12" r="4" stroke="#00ff00"/></g></svg>`},
		{`<svg><rect width="1" height="1" fill="none"/></svg>`, `<svg><rect width="1" height="1" fill="currentColor"/></svg>`},
		{`<svg><rect width="1" height="1" style="Fill : rgb(1,2,3) ; stroke: blue"/></svg>`, `<svg><rect width="1" height="1" style="fill:currentColor; stroke: blue"/></svg>`},
		{`<svg><rect width="1" height="1" stroke="rgb(255,0,0)" stop-color="white"/></svg>`, `<svg><rect width="1" height="1" stroke="rgb(255,0,0)" stop-color="white"/></svg>`},
		{`<svg viewBox="0 0 10 10"/>`, `<svg viewBox="0 0 10 10"/>`},
		{"\xEF\xBB\xBF<?xml version=\"1.0\"?><svg><path d=\"M0 0\" fill=\"red\"/></svg>", `<svg><path d="M0 0" fill="currentColor"/></svg>`},
		{`<svg width="10" height="10" viewBox="0 0 10 10"/>`, `<svg width="10" height="10" viewBox="0 0 10 10"/>`},
		{`<svg><g sodipodi:insensitive="true"><sodipodi:namedview/><path d="M0 0" inkscape:connector-curvature="0"/></g></svg>`, `<svg><g><path d="M0 0"/></g></svg>`},
	}

	o := New()
	for _, tt := range tests {
		t.Run(tt.svg, func(t *testing.T) {
			s, err := o.String(tt.svg)
			test.Error(t, err)
			test.String(t, s, tt.expected)
		})
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	o := New()
	b, err := o.Bytes([]byte(inkscapeSVG))
	test.Error(t, err)

	b2, err := o.Bytes(b)
	test.Error(t, err)
	test.Bytes(t, b2, b)
}

func TestOptimizeNoEditorData(t *testing.T) {
	s, err := New().String(inkscapeSVG)
	test.Error(t, err)
	test.That(t, !strings.Contains(s, "inkscape:"), s)
	test.That(t, !strings.Contains(s, "sodipodi:"), s)
	test.That(t, !strings.Contains(s, "#FF0000"), s)
	test.That(t, !strings.Contains(s, "#ff0000"), s)
}

func TestOptimizeErrors(t *testing.T) {
	o := New()

	w := &bytes.Buffer{}
	err := o.Optimize(w, strings.NewReader(`<svg><g></svg>`))
	test.That(t, IsKind(err, MalformedError), err)
	var perr *parse.Error
	test.That(t, errors.As(err, &perr), "must wrap a *parse.Error")
	test.T(t, w.Len(), 0)

	err = o.Optimize(w, iotest.ErrReader(errFail))
	test.That(t, IsKind(err, ReadError), err)
	test.T(t, errors.Is(err, errFail), true)

	err = o.Optimize(failWriter{}, strings.NewReader(`<svg/>`))
	test.That(t, IsKind(err, WriteError), err)
	test.That(t, !IsKind(err, ReadError), err)

	_, err = NewWithMinifier(minify.New()).String(`<svg/>`)
	test.T(t, errors.Is(err, minify.ErrNotExist), true)
}

func TestNewWithMinifier(t *testing.T) {
	m := minify.New()
	m.Add(MediaType, svg.DefaultMinifier)

	s, err := NewWithMinifier(m).String(`<svg width="10" height="10" viewBox="0 0 10 10"><path d="M0 0" fill="#f00" stroke="#FF0000"/></svg>`)
	test.Error(t, err)
	test.String(t, s, `<svg width="10" height="10"><path d="M0 0" fill="currentColor" stroke="red"/></svg>`)
}

func TestRules(t *testing.T) {
	test.T(t, Rules, svg.Minifier{KeepViewBox: true, KeepColors: true})
}

func TestError(t *testing.T) {
	err := NewError(WriteError, "optimized/a.svg", errFail)
	test.String(t, err.Error(), "write error: optimized/a.svg: write failed")
	test.T(t, errors.Unwrap(err), errFail)
	test.String(t, NewError(ReadError, "", errFail).Error(), "read error: write failed")
	test.String(t, ErrorKind(9).String(), "ErrorKind(9)")

	test.That(t, IsKind(err, WriteError))
	test.That(t, !IsKind(err, OutputDirError))
	test.That(t, !IsKind(errFail, WriteError))
}

////////////////////////////////////////////////////////////////

func BenchmarkOptimize(b *testing.B) {
	o := New()
	src := []byte(inkscapeSVG)
	w := &bytes.Buffer{}
	for i := 0; i < b.N; i++ {
		w.Reset()
		if err := o.Optimize(w, bytes.NewReader(src)); err != nil {
			b.Fatal(err)
		}
	}
}
