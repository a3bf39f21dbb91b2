// Package dom is the live-document entry adapter: it converts HTML markup
// that lives in (or is loaded into) a beevik/etree document model, feeding
// the same tree converter as the standalone backend in package htmr. For any
// given input and options the two backends produce structurally identical
// output.
package dom

import (
	"encoding/xml"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iamyuu/htmr"
	"github.com/iamyuu/htmr/element"
)

// ToElement converts HTML markup into a forest of output elements using the
// live-document backend. input must be a string; any other type fails with
// htmr.ErrExpectedHTMLString before parsing — the same error, with the same
// timing, as the standalone adapter.
func ToElement(input any, o *htmr.Options) ([]*element.Node, error) {
	doc, err := Load(input)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, o), nil
}

// Load parses HTML markup into a live etree document with HTML-friendly read
// settings (permissive syntax, HTML entities, auto-closed void elements).
func Load(input any) (*etree.Document, error) {
	s, ok := input.(string)
	if !ok {
		return nil, htmr.ErrExpectedHTMLString
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
		Entity:     xml.HTMLEntity,
		AutoClose:  xml.HTMLAutoClose,
	}
	if err := doc.ReadFromString(s); err != nil {
		return nil, err
	}
	return doc, nil
}

// FromDocument converts an already-built live document. The document is
// only read, never mutated; the adapter owns its own traversal and shares
// no state with the standalone backend.
func FromDocument(doc *etree.Document, o *htmr.Options) []*element.Node {
	root := &htmr.Node{Type: html.DocumentNode}
	appendTokens(root, doc.Child)
	return htmr.ConvertTree(root, o)
}

// appendTokens projects etree tokens onto the shared parse-node shape.
func appendTokens(parent *htmr.Node, tokens []etree.Token) {
	for _, tok := range tokens {
		switch t := tok.(type) {
		case *etree.Element:
			tag := strings.ToLower(t.FullTag())
			n := &htmr.Node{
				Type:     html.ElementNode,
				DataAtom: atom.Lookup([]byte(tag)),
				Data:     tag,
				Attr:     projectAttrs(t.Attr),
			}
			parent.AppendChild(n)
			appendTokens(n, t.Child)
			trimLeadingNewline(n)
		case *etree.CharData:
			appendText(parent, t.Data)
		case *etree.Comment:
			parent.AppendChild(&htmr.Node{Type: html.CommentNode, Data: t.Data})
		default:
			// Directives (doctype, CDATA markers) and processing
			// instructions never appear in the output.
		}
	}
}

func projectAttrs(attrs []etree.Attr) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]html.Attribute, 0, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		val := a.Value
		// The non-strict XML reader records a valueless attribute with its
		// own name as the value. Fold that back to the valueless form for
		// boolean attributes, so <iframe allowfullscreen /> maps to the same
		// true-valued property the tokenizer-driven backend produces.
		if a.Space == "" && element.IsBooleanAttr(key) && strings.EqualFold(val, a.Key) {
			val = ""
		}
		out = append(out, html.Attribute{
			Namespace: strings.ToLower(a.Space),
			Key:       key,
			Val:       val,
		})
	}
	return out
}

// appendText merges adjacent character data, matching the tokenizer-driven
// backend which coalesces consecutive text tokens.
func appendText(parent *htmr.Node, text string) {
	if text == "" {
		return
	}
	if last := parent.LastChild; last != nil && last.Type == html.TextNode {
		last.Data += text
		return
	}
	parent.AppendChild(&htmr.Node{Type: html.TextNode, Data: text})
}

// trimLeadingNewline drops the newline immediately after a <pre>, <listing>
// or <textarea> start tag, per the HTML parsing algorithm. The XML reader
// keeps it; the tokenizer-driven backend already discards it.
func trimLeadingNewline(n *htmr.Node) {
	switch n.Data {
	case "pre", "listing", "textarea":
	default:
		return
	}
	c := n.FirstChild
	if c == nil || c.Type != html.TextNode {
		return
	}
	d := c.Data
	if d != "" && d[0] == '\r' {
		d = d[1:]
	}
	if d != "" && d[0] == '\n' {
		d = d[1:]
	}
	if d == "" {
		n.RemoveChild(c)
		return
	}
	c.Data = d
}
