// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmr

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	a "golang.org/x/net/html/atom"
)

// A parser builds a Node tree from HTML markup. It uses the tokenizer from
// the golang.org/x/net/html package and honors the HTML5 rules that matter
// for fragment-shaped input (implied end tags, self-closing tags, raw text
// elements), while keeping the tree as close to the original source as
// possible. There is no goal to reproduce full document parsing: the input
// is treated as body content, never wrapped in html/head/body.
type parser struct {
	// tokenizer provides the tokens for the parser.
	tokenizer *html.Tokenizer
	// tok is the most recently read token.
	tok html.Token
	// Self-closing tags like <hr/> are treated as start tags, except that
	// hasSelfClosingToken is set while they are being processed.
	hasSelfClosingToken bool
	// doc is the document root element.
	doc *Node
	// The stack of open elements (section 12.2.4.2).
	oe nodeStack
	// im is the current insertion mode.
	im insertionMode
	// originalIM is the insertion mode to go back to after completing a text
	// insertion mode.
	originalIM insertionMode
}

func (p *parser) top() *Node {
	if n := p.oe.top(); n != nil {
		return n
	}
	return p.doc
}

// Stop tags for use in popUntil. These come from section 12.2.4.2.
var defaultScopeStopTags = map[string][]a.Atom{
	"":     {a.Applet, a.Caption, a.Html, a.Table, a.Td, a.Th, a.Marquee, a.Object, a.Template},
	"math": {a.AnnotationXml, a.Mi, a.Mn, a.Mo, a.Ms, a.Mtext},
	"svg":  {a.Desc, a.ForeignObject, a.Title},
}

type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// popUntil pops the stack of open elements at the highest element whose tag
// is in matchTags, provided there is no higher element in the scope's stop
// tags (as defined in section 12.2.4.2). It returns whether or not there was
// such an element. If there was not, popUntil leaves the stack unchanged.
func (p *parser) popUntil(s scope, matchTags ...a.Atom) bool {
	if i := p.indexOfElementInScope(s, matchTags...); i != -1 {
		p.oe = p.oe[:i]
		return true
	}
	return false
}

// indexOfElementInScope returns the index in p.oe of the highest element
// whose tag is in matchTags that is in scope. If no matching element is in
// scope, it returns -1.
func (p *parser) indexOfElementInScope(s scope, matchTags ...a.Atom) int {
	for i := len(p.oe) - 1; i >= 0; i-- {
		tagAtom := p.oe[i].DataAtom
		if p.oe[i].Namespace == "" {
			for _, t := range matchTags {
				if t == tagAtom {
					return i
				}
			}
			switch s {
			case defaultScope:
				// No-op.
			case listItemScope:
				if tagAtom == a.Ol || tagAtom == a.Ul {
					return -1
				}
			case buttonScope:
				if tagAtom == a.Button {
					return -1
				}
			case tableScope:
				if tagAtom == a.Html || tagAtom == a.Table || tagAtom == a.Template {
					return -1
				}
			case selectScope:
				if tagAtom != a.Optgroup && tagAtom != a.Option {
					return -1
				}
			default:
				panic("unreachable")
			}
		}
		switch s {
		case defaultScope, listItemScope, buttonScope:
			for _, t := range defaultScopeStopTags[p.oe[i].Namespace] {
				if t == tagAtom {
					return -1
				}
			}
		}
	}
	return -1
}

// elementInScope is like popUntil, except that it doesn't modify the stack of
// open elements.
func (p *parser) elementInScope(s scope, matchTags ...a.Atom) bool {
	return p.indexOfElementInScope(s, matchTags...) != -1
}

// parseGenericRawTextElement implements the generic raw text element parsing
// algorithm defined in 12.2.6.2.
func (p *parser) parseGenericRawTextElement() {
	p.addElement()
	p.originalIM = p.im
	p.im = textIM
}

// generateImpliedEndTags pops nodes off the stack of open elements as long as
// the top node has a tag name of dd, dt, li, optgroup, option, p, rb, rp, rt
// or rtc. If exceptions are specified, nodes with that name will not be
// popped off.
func (p *parser) generateImpliedEndTags(exceptions ...string) {
	var i int
loop:
	for i = len(p.oe) - 1; i >= 0; i-- {
		n := p.oe[i]
		if n.Type != html.ElementNode {
			break
		}
		switch n.DataAtom {
		case a.Dd, a.Dt, a.Li, a.Optgroup, a.Option, a.P, a.Rb, a.Rp, a.Rt, a.Rtc:
			for _, except := range exceptions {
				if n.Data == except {
					break loop
				}
			}
			continue
		}
		break
	}

	p.oe = p.oe[:i+1]
}

// addChild adds a child node n to the top element, and pushes n onto the
// stack of open elements if it is an element node.
func (p *parser) addChild(n *Node) {
	p.top().AppendChild(n)

	if n.Type == html.ElementNode {
		p.oe = append(p.oe, n)
	}
}

// addText adds text to the preceding node if it is a text node, or else it
// calls addChild with a new text node.
func (p *parser) addText(text string) {
	if text == "" {
		return
	}

	t := p.top()
	if n := t.LastChild; n != nil && n.Type == html.TextNode {
		n.Data += text
		return
	}

	p.addChild(&Node{
		Type: html.TextNode,
		Data: text,
	})
}

// addElement adds a child element based on the current token.
func (p *parser) addElement() {
	attrs := make([]html.Attribute, len(p.tok.Attr))
	copy(attrs, p.tok.Attr)

	p.addChild(&Node{
		Type:     html.ElementNode,
		DataAtom: p.tok.DataAtom,
		Data:     p.tok.Data,
		Attr:     attrs,
	})
}

// Section 12.2.5.
func (p *parser) acknowledgeSelfClosingTag() {
	p.hasSelfClosingToken = false
}

// An insertion mode (section 12.2.4.1) is the state transition function from
// a particular state in the HTML5 parser's state machine. It updates the
// parser's fields depending on parser.tok (where ErrorToken means EOF).
// It returns whether the token was consumed.
type insertionMode func(*parser) bool

// setOriginalIM sets the insertion mode to return to after completing a text
// insertion mode. Section 12.2.4.1, "using the rules for".
func (p *parser) setOriginalIM() {
	if p.originalIM != nil {
		panic("htmr: bad parser state: originalIM was set twice")
	}
	p.originalIM = p.im
}

func inBodyIM(p *parser) bool {
	switch p.tok.Type {
	case html.DoctypeToken:
		// Fragments never render a doctype; drop it.
	case html.TextToken:
		d := p.tok.Data
		switch n := p.top(); n.DataAtom {
		case a.Pre, a.Listing:
			if n.FirstChild == nil {
				// Ignore a newline at the start of a <pre> block.
				if d != "" && d[0] == '\r' {
					d = d[1:]
				}
				if d != "" && d[0] == '\n' {
					d = d[1:]
				}
			}
		}
		d = strings.Replace(d, "\x00", "", -1)
		if d == "" {
			return true
		}
		p.addText(d)
	case html.StartTagToken:
		switch p.tok.DataAtom {
		case a.Base, a.Basefont, a.Bgsound, a.Link, a.Meta:
			p.addElement()
			p.oe.pop()
			p.acknowledgeSelfClosingTag()
			return true
		case a.Address, a.Article, a.Aside, a.Blockquote, a.Center, a.Details, a.Dialog, a.Dir, a.Div, a.Dl, a.Fieldset, a.Figcaption, a.Figure, a.Footer, a.Header, a.Hgroup, a.Main, a.Menu, a.Nav, a.Ol, a.P, a.Section, a.Summary, a.Ul:
			p.popUntil(buttonScope, a.P)
			p.addElement()
		case a.H1, a.H2, a.H3, a.H4, a.H5, a.H6:
			p.popUntil(buttonScope, a.P)
			switch n := p.top(); n.DataAtom {
			case a.H1, a.H2, a.H3, a.H4, a.H5, a.H6:
				p.oe.pop()
			}
			p.addElement()
		case a.Pre, a.Listing:
			p.popUntil(buttonScope, a.P)
			p.addElement()
		case a.Form:
			p.popUntil(buttonScope, a.P)
			p.addElement()
		case a.Li:
			for i := len(p.oe) - 1; i >= 0; i-- {
				node := p.oe[i]
				switch node.DataAtom {
				case a.Li:
					p.oe = p.oe[:i]
				case a.Address, a.Div, a.P:
					continue
				default:
					if !isSpecialElement(node) {
						continue
					}
				}
				break
			}
			p.popUntil(buttonScope, a.P)
			p.addElement()
		case a.Dd, a.Dt:
			for i := len(p.oe) - 1; i >= 0; i-- {
				node := p.oe[i]
				switch node.DataAtom {
				case a.Dd, a.Dt:
					p.oe = p.oe[:i]
				case a.Address, a.Div, a.P:
					continue
				default:
					if !isSpecialElement(node) {
						continue
					}
				}
				break
			}
			p.popUntil(buttonScope, a.P)
			p.addElement()
		case a.Button:
			p.popUntil(defaultScope, a.Button)
			p.addElement()
		case a.Table:
			p.popUntil(buttonScope, a.P)
			p.addElement()
		case a.Area, a.Br, a.Embed, a.Img, a.Input, a.Keygen, a.Wbr:
			p.addElement()
			p.oe.pop()
			p.acknowledgeSelfClosingTag()
		case a.Param, a.Source, a.Track:
			p.addElement()
			p.oe.pop()
			p.acknowledgeSelfClosingTag()
		case a.Hr:
			p.popUntil(buttonScope, a.P)
			p.addElement()
			p.oe.pop()
			p.acknowledgeSelfClosingTag()
		case a.Image:
			p.tok.DataAtom = a.Img
			p.tok.Data = a.Img.String()
			return false
		case a.Textarea:
			p.addElement()
			p.setOriginalIM()
			p.im = textIM
		case a.Xmp:
			p.popUntil(buttonScope, a.P)
			p.parseGenericRawTextElement()
		case a.Iframe:
			p.parseGenericRawTextElement()
			if p.hasSelfClosingToken {
				// A self-closing <iframe/> has no raw text content.
				p.oe.pop()
				p.acknowledgeSelfClosingTag()
				p.im = p.originalIM
				p.originalIM = nil
				p.tokenizer.NextIsNotRawText()
			}
		case a.Noembed:
			p.parseGenericRawTextElement()
		case a.Noscript:
			p.addElement()
			// Parse <noscript> content as regular HTML rather than raw text.
			p.tokenizer.NextIsNotRawText()
		case a.Optgroup, a.Option:
			if p.top().DataAtom == a.Option {
				p.oe.pop()
			}
			p.addElement()
		case a.Rb, a.Rtc:
			if p.elementInScope(defaultScope, a.Ruby) {
				p.generateImpliedEndTags()
			}
			p.addElement()
		case a.Rp, a.Rt:
			if p.elementInScope(defaultScope, a.Ruby) {
				p.generateImpliedEndTags("rtc")
			}
			p.addElement()
		case a.Math, a.Svg:
			p.addElement()
			p.top().Namespace = p.tok.Data
			if p.hasSelfClosingToken {
				p.oe.pop()
				p.acknowledgeSelfClosingTag()
			}
			return true
		default:
			p.addElement()
			if p.hasSelfClosingToken {
				p.oe.pop()
				p.acknowledgeSelfClosingTag()
			}
		}
	case html.EndTagToken:
		switch p.tok.DataAtom {
		case a.Address, a.Article, a.Aside, a.Blockquote, a.Button, a.Center, a.Details, a.Dialog, a.Dir, a.Div, a.Dl, a.Fieldset, a.Figcaption, a.Figure, a.Footer, a.Header, a.Hgroup, a.Listing, a.Main, a.Menu, a.Nav, a.Ol, a.Pre, a.Section, a.Summary, a.Ul:
			p.popUntil(defaultScope, p.tok.DataAtom)
		case a.Form:
			i := p.indexOfElementInScope(defaultScope, a.Form)
			if i == -1 {
				// Ignore the token.
				return true
			}
			p.generateImpliedEndTags()
			if p.oe[i].DataAtom != a.Form {
				// Ignore the token.
				return true
			}
			p.popUntil(defaultScope, a.Form)
		case a.P:
			p.popUntil(buttonScope, a.P)
		case a.Li:
			p.popUntil(listItemScope, a.Li)
		case a.Dd, a.Dt:
			p.popUntil(defaultScope, p.tok.DataAtom)
		case a.H1, a.H2, a.H3, a.H4, a.H5, a.H6:
			p.popUntil(defaultScope, a.H1, a.H2, a.H3, a.H4, a.H5, a.H6)
		case a.Applet, a.Marquee, a.Object:
			p.popUntil(defaultScope, p.tok.DataAtom)
		case a.Br:
			p.tok.Type = html.StartTagToken
			return false
		default:
			p.inBodyEndTagOther(p.tok.DataAtom, p.tok.Data)
		}
	case html.CommentToken:
		p.top().AppendChild(&Node{
			Type: html.CommentNode,
			Data: p.tok.Data,
		})
	case html.ErrorToken:
		// EOF: remaining open elements are implicitly closed.
	}

	return true
}

// inBodyEndTagOther performs the "any other end tag" algorithm for inBodyIM.
func (p *parser) inBodyEndTagOther(tagAtom a.Atom, tagName string) {
	for i := len(p.oe) - 1; i >= 0; i-- {
		// Two element nodes have the same tag if they have the same Data. As
		// an optimization, common HTML tags carry a unique non-zero DataAtom,
		// since integer comparison is faster than string comparison.
		if (p.oe[i].DataAtom == tagAtom) &&
			((tagAtom != 0) || (p.oe[i].Data == tagName)) {
			p.oe = p.oe[:i]
			break
		}
		if isSpecialElement(p.oe[i]) {
			break
		}
	}
}

// Section 12.2.6.4.8.
func textIM(p *parser) bool {
	switch p.tok.Type {
	case html.ErrorToken:
		p.oe.pop()
	case html.TextToken:
		d := p.tok.Data
		if n := p.oe.top(); n.DataAtom == a.Textarea && n.FirstChild == nil {
			// Ignore a newline at the start of a <textarea> block.
			if d != "" && d[0] == '\r' {
				d = d[1:]
			}
			if d != "" && d[0] == '\n' {
				d = d[1:]
			}
		}
		if d == "" {
			return true
		}
		p.addText(d)
		return true
	case html.EndTagToken:
		p.oe.pop()
	}
	p.im = p.originalIM
	p.originalIM = nil
	return p.tok.Type == html.EndTagToken
}

// isSpecialElement reports whether the element is in the "special" category
// from section 12.2.4.2.
func isSpecialElement(n *Node) bool {
	switch n.Namespace {
	case "", "html":
		switch n.DataAtom {
		case a.Address, a.Applet, a.Area, a.Article, a.Aside, a.Base,
			a.Basefont, a.Bgsound, a.Blockquote, a.Body, a.Br, a.Button,
			a.Caption, a.Center, a.Col, a.Colgroup, a.Dd, a.Details, a.Dir,
			a.Div, a.Dl, a.Dt, a.Embed, a.Fieldset, a.Figcaption, a.Figure,
			a.Footer, a.Form, a.Frame, a.Frameset, a.H1, a.H2, a.H3, a.H4,
			a.H5, a.H6, a.Head, a.Header, a.Hgroup, a.Hr, a.Html, a.Iframe,
			a.Img, a.Input, a.Keygen, a.Li, a.Link, a.Listing, a.Main,
			a.Marquee, a.Menu, a.Meta, a.Nav, a.Noembed, a.Noframes,
			a.Noscript, a.Object, a.Ol, a.P, a.Param, a.Plaintext, a.Pre,
			a.Script, a.Section, a.Select, a.Source, a.Style, a.Summary,
			a.Table, a.Tbody, a.Td, a.Template, a.Textarea, a.Tfoot, a.Th,
			a.Thead, a.Title, a.Tr, a.Track, a.Ul, a.Wbr, a.Xmp:
			return true
		}
	case "math":
		switch n.DataAtom {
		case a.Mi, a.Mo, a.Mn, a.Ms, a.Mtext, a.AnnotationXml:
			return true
		}
	case "svg":
		switch n.DataAtom {
		case a.ForeignObject, a.Desc, a.Title:
			return true
		}
	}
	return false
}

// parseCurrentToken runs the current token through the parsing routines
// until it is consumed.
func (p *parser) parseCurrentToken() {
	if p.tok.Type == html.SelfClosingTagToken {
		p.hasSelfClosingToken = true
		p.tok.Type = html.StartTagToken
	}

	consumed := false
	for !consumed {
		consumed = p.im(p)
	}

	if p.hasSelfClosingToken {
		// This is a parse error, but ignore it.
		p.hasSelfClosingToken = false
	}
}

func (p *parser) parse() error {
	// Iterate until EOF. Any other error will cause an early return.
	var err error
	for err != io.EOF {
		// CDATA sections are allowed only in foreign content.
		n := p.oe.top()
		p.tokenizer.AllowCDATA(n != nil && n.Namespace != "")
		// Read and parse the next token.
		p.tokenizer.Next()
		p.tok = p.tokenizer.Token()
		if p.tok.Type == html.ErrorToken {
			err = p.tokenizer.Err()
			if err != nil && err != io.EOF {
				return err
			}
		}
		p.parseCurrentToken()
	}

	return nil
}

// Parse returns the parsed *Node tree for the HTML from the given Reader.
// The input is assumed to be UTF-8 encoded body content.
func Parse(r io.Reader) (*Node, error) {
	p := &parser{
		tokenizer: html.NewTokenizer(r),
		doc: &Node{
			Type: html.DocumentNode,
		},
		im: inBodyIM,
	}

	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.doc, nil
}
