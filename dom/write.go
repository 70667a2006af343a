package dom

import (
	"bytes"
	"io"

	"github.com/tdewolff/parse/v2/xml"
)

var (
	ltBytes         = []byte("<")
	gtBytes         = []byte(">")
	voidBytes       = []byte("/>")
	isBytes         = []byte("=")
	spaceBytes      = []byte(" ")
	endBytes        = []byte("</")
	piStartBytes    = []byte("<?")
	piEndBytes      = []byte("?>")
	commentStart    = []byte("<!--")
	commentEnd      = []byte("-->")
	cdataStartBytes = []byte("<![CDATA[")
	cdataEndBytes   = []byte("]]>")
	doctypeBytes    = []byte("<!DOCTYPE")
)

// writer keeps the first error and ignores all writes after it.
type writer struct {
	w   io.Writer
	n   int64
	err error
}

func (w *writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	w.n += int64(n)
	w.err = err
	return n, err
}

func (w *writer) WriteString(s string) {
	w.Write([]byte(s))
}

// WriteAttr writes an attribute with a leading space, quoting its value with
// whichever quote occurs least in the value.
func WriteAttr(w io.Writer, buf *[]byte, attr Attr) error {
	if _, err := w.Write(spaceBytes); err != nil {
		return err
	}
	if _, err := io.WriteString(w, attr.Name); err != nil {
		return err
	}
	if _, err := w.Write(isBytes); err != nil {
		return err
	}
	_, err := w.Write(xml.EscapeAttrVal(buf, []byte(attr.Val)))
	return err
}

// WriteTo serializes the document to w as is.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	bw := &writer{w: w}
	var buf []byte
	for _, n := range doc.Children {
		writeNode(bw, &buf, n)
	}
	return bw.n, bw.err
}

// String returns the serialized document.
func (doc *Document) String() string {
	b := &bytes.Buffer{}
	doc.WriteTo(b)
	return b.String()
}

func writeNode(w *writer, buf *[]byte, n *Node) {
	switch n.Type {
	case ElementNode:
		w.Write(ltBytes)
		w.WriteString(n.Name)
		for _, attr := range n.Attrs {
			WriteAttr(w, buf, attr)
		}
		if len(n.Children) == 0 {
			w.Write(voidBytes)
			return
		}
		w.Write(gtBytes)
		for _, child := range n.Children {
			writeNode(w, buf, child)
		}
		w.Write(endBytes)
		w.WriteString(n.Name)
		w.Write(gtBytes)
	case TextNode:
		w.WriteString(n.Data)
	case CommentNode:
		w.Write(commentStart)
		w.WriteString(n.Data)
		w.Write(commentEnd)
	case CDATANode:
		w.Write(cdataStartBytes)
		w.WriteString(n.Data)
		w.Write(cdataEndBytes)
	case ProcInstNode:
		w.Write(piStartBytes)
		w.WriteString(n.Name)
		for _, attr := range n.Attrs {
			WriteAttr(w, buf, attr)
		}
		w.Write(piEndBytes)
	case DoctypeNode:
		w.Write(doctypeBytes)
		w.WriteString(n.Data)
		w.Write(gtBytes)
	}
}
