// Package styleparse parses inline CSS declaration lists (the contents of a
// style attribute) into an ordered set of camelCased properties, tolerating
// malformed fragments. A declaration that cannot be parsed is skipped without
// affecting its siblings.
package styleparse

import (
	"html"
	"strings"

	"github.com/fatih/camelcase"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Declaration is a single style property with its raw value.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered list of style declarations. Order follows the
// source text so serialization is deterministic.
type Declarations []Declaration

// Get returns the value of the given (camelCased) property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// String serializes the declarations back to CSS text, converting camelCased
// property names to their hyphenated form. A capitalized first segment marks
// a vendor prefix and gains back its leading hyphen.
func (d Declarations) String() string {
	var sb strings.Builder
	for i, decl := range d {
		if i > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(hyphenate(decl.Property))
		sb.WriteString(":")
		sb.WriteString(decl.Value)
	}
	return sb.String()
}

// hyphenate converts a camelCased property name back to CSS form:
// backgroundColor -> background-color, WebkitTransition -> -webkit-transition.
// Custom properties (--x) pass through unchanged.
func hyphenate(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	vendor := prop != "" && prop[0] >= 'A' && prop[0] <= 'Z'
	words := camelcase.Split(prop)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	out := strings.Join(words, "-")
	if vendor {
		out = "-" + out
	}
	return out
}

// Parser parses inline style declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a style parser. A nil logger disables debug logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("styleparse")}
}

// Parse parses raw inline style text with a no-op logger.
func Parse(raw string) Declarations {
	return NewParser(nil).Parse(raw)
}

// token is a single lexed CSS token.
type token struct {
	tt   css.TokenType
	data string
}

// Parse tokenizes raw and assembles declarations, splitting on top-level
// semicolons only. Semicolons and colons inside parentheses, functions such
// as url(...), and quoted strings never terminate or split a declaration.
// Malformed declarations are skipped individually; zero valid declarations
// yield a nil result, never an error.
//
// HTML character references are decoded before lexing, so that values like
// &quot;Arial&quot; lex as string tokens rather than stray delimiters.
// Decoding is idempotent on already-decoded input.
func (p *Parser) Parse(raw string) Declarations {
	raw = html.UnescapeString(raw)
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	l := css.NewLexer(parse.NewInputString(raw))

	var decls Declarations
	var cur []token
	depth := 0

	flush := func() {
		if d, ok := p.declaration(cur); ok {
			decls = append(decls, d)
		}
		cur = cur[:0]
	}

	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			break // io.EOF or unrecoverable input; whatever was lexed still counts
		}
		switch tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		case css.SemicolonToken:
			if depth == 0 {
				flush()
				continue
			}
		case css.CommentToken:
			continue
		}
		cur = append(cur, token{tt: tt, data: string(data)})
	}
	flush()

	return decls
}

// declaration parses one semicolon-delimited token run as "property : value".
// The split happens at the first top-level colon after the property name;
// colons later in the value (protocol schemes, url(...) contents) are kept
// verbatim.
func (p *Parser) declaration(toks []token) (Declaration, bool) {
	i := 0
	skipWS := func() {
		for i < len(toks) && toks[i].tt == css.WhitespaceToken {
			i++
		}
	}

	skipWS()
	if i >= len(toks) {
		return Declaration{}, false
	}
	if toks[i].tt != css.IdentToken && toks[i].tt != css.CustomPropertyNameToken {
		p.log.Debug("skipping malformed declaration", zap.String("got", toks[i].data))
		return Declaration{}, false
	}
	prop := toks[i].data
	i++

	skipWS()
	if i >= len(toks) || toks[i].tt != css.ColonToken {
		p.log.Debug("skipping declaration without colon", zap.String("property", prop))
		return Declaration{}, false
	}
	i++

	var sb strings.Builder
	for ; i < len(toks); i++ {
		sb.WriteString(toks[i].data)
	}
	val := strings.TrimSpace(sb.String())
	if val == "" {
		p.log.Debug("skipping declaration with empty value", zap.String("property", prop))
		return Declaration{}, false
	}

	return Declaration{
		Property: camelProperty(prop),
		Value:    val,
	}, true
}

// camelProperty normalizes a hyphenated CSS property name to camelCase.
// A leading vendor-prefix hyphen produces a capitalized first segment
// (-webkit-transition -> WebkitTransition), keeping vendor properties
// distinct from standard ones. Custom properties (--x) are kept as-is.
func camelProperty(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	prop = strings.ToLower(prop)

	segs := strings.Split(prop, "-")
	var sb strings.Builder
	first := true
	vendor := strings.HasPrefix(prop, "-")
	for _, s := range segs {
		if s == "" {
			continue
		}
		if first && !vendor {
			sb.WriteString(s)
		} else {
			sb.WriteString(strings.ToUpper(s[:1]))
			sb.WriteString(s[1:])
		}
		first = false
	}
	return sb.String()
}
