package svg

import (
	"bytes"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
	"github.com/tdewolff/svgweb/dom"
)

var (
	ltBytes         = []byte("<")
	gtBytes         = []byte(">")
	voidBytes       = []byte("/>")
	endBytes        = []byte("</")
	piStartBytes    = []byte("<?")
	piEndBytes      = []byte("?>")
	commentStart    = []byte("<!--")
	commentEnd      = []byte("-->")
	CDATAStartBytes = []byte("<![CDATA[")
	CDATAEndBytes   = []byte("]]>")
	doctypeBytes    = []byte("<!DOCTYPE")
)

type writer struct {
	w   io.Writer
	err error

	attrByteBuffer []byte
	cdataBuffer    []byte
}

func (w *writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	var n int
	n, w.err = w.w.Write(b)
	return n, w.err
}

// Write writes the document to w without whitespace between elements.
// Text inside text content elements keeps single spaces.
func Write(w io.Writer, doc *dom.Document) error {
	mw := &writer{
		w:              w,
		attrByteBuffer: make([]byte, 0, 64),
	}
	for _, n := range doc.Children {
		mw.node(n, false, false)
	}
	return mw.err
}

// text returns the minified text and whether anything is left of it.
// Preserved text is returned as is.
func text(data string, inText, preserve bool) ([]byte, bool) {
	b := []byte(data)
	if preserve {
		return b, 0 < len(b)
	} else if inText {
		b = parse.ReplaceMultipleWhitespace(b)
		b = bytes.ReplaceAll(b, []byte{'\n'}, []byte{' '})
	} else {
		b = parse.TrimWhitespace(b)
	}
	return b, 0 < len(b)
}

func significant(n *dom.Node, inText, preserve bool) bool {
	switch n.Type {
	case dom.TextNode, dom.CDATANode:
		_, ok := text(n.Data, inText, preserve)
		return ok
	}
	return true
}

// xmlSpace returns whether the element preserves whitespace, given whether its parent does.
func xmlSpace(n *dom.Node, preserve bool) bool {
	switch space, _ := n.Attr("xml:space"); space {
	case "preserve":
		return true
	case "default":
		return false
	}
	return preserve
}

func (w *writer) node(n *dom.Node, inText, preserve bool) {
	switch n.Type {
	case dom.ElementNode:
		inText = inText || textContentTagMap[n.Name]
		preserve = xmlSpace(n, preserve)
		w.Write(ltBytes)
		w.Write([]byte(n.Name))
		for _, attr := range n.Attrs {
			dom.WriteAttr(w, &w.attrByteBuffer, attr)
		}

		empty := true
		for _, child := range n.Children {
			if significant(child, inText, preserve) {
				empty = false
				break
			}
		}
		if empty {
			w.Write(voidBytes)
			return
		}

		w.Write(gtBytes)
		for _, child := range n.Children {
			w.node(child, inText, preserve)
		}
		w.Write(endBytes)
		w.Write([]byte(n.Name))
		w.Write(gtBytes)
	case dom.TextNode:
		if b, ok := text(n.Data, inText, preserve); ok {
			w.Write(b)
		}
	case dom.CDATANode:
		if b, ok := text(n.Data, inText, preserve); ok {
			var useText bool
			if b, useText = xml.EscapeCDATAVal(&w.cdataBuffer, b); useText {
				w.Write(b)
			} else {
				w.Write(CDATAStartBytes)
				w.Write(b)
				w.Write(CDATAEndBytes)
			}
		}
	case dom.CommentNode:
		w.Write(commentStart)
		w.Write([]byte(n.Data))
		w.Write(commentEnd)
	case dom.ProcInstNode:
		w.Write(piStartBytes)
		w.Write([]byte(n.Name))
		for _, attr := range n.Attrs {
			dom.WriteAttr(w, &w.attrByteBuffer, attr)
		}
		w.Write(piEndBytes)
	case dom.DoctypeNode:
		w.Write(doctypeBytes)
		w.Write([]byte(n.Data))
		w.Write(gtBytes)
	}
}
