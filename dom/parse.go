package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// Parse reads well-formed markup from r and returns its document tree.
// Syntax errors are returned as *parse.Error carrying the line and column.
func Parse(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(b)
}

// ParseString parses well-formed markup from s.
func ParseString(s string) (*Document, error) {
	return ParseBytes([]byte(s))
}

// ParseBytes parses well-formed markup from b. A leading UTF-8 byte order mark is skipped.
func ParseBytes(b []byte) (*Document, error) {
	b = bytes.TrimPrefix(b, bomBytes)
	p := &parser{
		b:   b,
		z:   parse.NewInputBytes(b),
		doc: &Document{},
	}
	p.l = xml.NewLexer(p.z)
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

var bomBytes = []byte("\xEF\xBB\xBF")

type parser struct {
	b   []byte
	z   *parse.Input
	l   *xml.Lexer
	doc *Document

	stack []*Node
	cur   *Node // element or processing instruction whose attributes are being read
	root  bool
}

func (p *parser) errorf(message string, a ...interface{}) error {
	return parse.NewError(bytes.NewReader(p.b), p.z.Offset(), message, a...)
}

func (p *parser) append(n *Node) {
	if len(p.stack) == 0 {
		p.doc.Children = append(p.doc.Children, n)
	} else {
		parent := p.stack[len(p.stack)-1]
		parent.Children = append(parent.Children, n)
	}
}

func (p *parser) run() error {
	for {
		tt, data := p.l.Next()
		switch tt {
		case xml.ErrorToken:
			if p.l.Err() != io.EOF {
				return p.l.Err()
			}
			if p.cur != nil {
				return p.errorf("unexpected end of file in <%s>", p.cur.Name)
			} else if 0 < len(p.stack) {
				return p.errorf("unexpected end of file, <%s> is not closed", p.stack[len(p.stack)-1].Name)
			} else if !p.root {
				return p.errorf("no root element")
			}
			return nil
		case xml.TextToken:
			if len(p.stack) == 0 {
				if !parse.IsAllWhitespace(data) {
					return p.errorf("text outside of the root element")
				}
			}
			p.append(NewText(string(data)))
		case xml.CommentToken:
			p.append(&Node{Type: CommentNode, Data: string(p.l.Text())})
		case xml.CDATAToken:
			if len(p.stack) == 0 {
				return p.errorf("CDATA section outside of the root element")
			}
			p.append(&Node{Type: CDATANode, Data: string(p.l.Text())})
		case xml.DOCTYPEToken:
			if p.root {
				return p.errorf("DOCTYPE after the root element")
			}
			p.append(&Node{Type: DoctypeNode, Data: string(p.l.Text())})
		case xml.StartTagPIToken:
			p.cur = &Node{Type: ProcInstNode, Name: string(p.l.Text())}
			p.append(p.cur)
		case xml.StartTagClosePIToken:
			p.cur = nil
		case xml.StartTagToken:
			if len(p.stack) == 0 {
				if p.root {
					return p.errorf("more than one root element")
				}
				p.root = true
			}
			p.cur = NewElement(string(p.l.Text()))
			p.append(p.cur)
			p.stack = append(p.stack, p.cur)
		case xml.AttributeToken:
			if p.cur == nil {
				return p.errorf("unexpected attribute")
			}
			name := string(p.l.Text())
			val := p.l.AttrVal()
			if len(val) < 2 || val[0] != '"' && val[0] != '\'' || val[len(val)-1] != val[0] {
				return p.errorf("attribute %s of <%s> must have a quoted value", name, p.cur.Name)
			} else if p.cur.HasAttr(name) {
				return p.errorf("duplicate attribute %s in <%s>", name, p.cur.Name)
			}
			p.cur.Attrs = append(p.cur.Attrs, Attr{name, string(val[1 : len(val)-1])})
		case xml.StartTagCloseToken:
			p.cur = nil
		case xml.StartTagCloseVoidToken:
			if p.cur == nil || p.cur.Type != ElementNode {
				return p.errorf("unexpected />")
			}
			p.cur = nil
			p.stack = p.stack[:len(p.stack)-1]
		case xml.EndTagToken:
			name := strings.TrimSpace(string(p.l.Text()))
			if len(p.stack) == 0 {
				return p.errorf("unexpected end tag </%s>", name)
			} else if open := p.stack[len(p.stack)-1]; open.Name != name {
				return p.errorf("end tag </%s> does not match <%s>", name, open.Name)
			}
			p.stack = p.stack[:len(p.stack)-1]
		}
	}
}
