package htmr

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/iamyuu/htmr/element"
)

// DefaultTransformKey is the Transform map key matching any tag or text node
// that has no exact-tag override.
const DefaultTransformKey = "_"

// TransformKind discriminates the two input shapes a TransformFunc can
// receive, so callbacks never have to infer the node type from field
// presence.
type TransformKind uint8

const (
	// TextInput means the callback received a surviving text node; only the
	// Text field is meaningful.
	TextInput TransformKind = iota
	// ElementInput means the callback received an element node; Tag, Props
	// and Children are meaningful.
	ElementInput
)

// TransformInput is the discriminated view of a node handed to a
// TransformFunc after structural conversion. Props and Children are copies:
// mutating them does not affect the converter's own state.
type TransformInput struct {
	Kind     TransformKind
	Text     string
	Tag      string
	Props    element.Props
	Children []*element.Node
}

// TransformFunc replaces the default mapping for a node. The returned node
// is used as-is (full override semantics; the converter merges nothing back
// in). Returning nil elides the node from the output.
type TransformFunc func(in TransformInput) *element.Node

// AttrMatcher decides whether an attribute name bypasses renaming and is
// copied through with its original name. The two implementations — ExactName
// and Pattern — form a closed set.
type AttrMatcher interface {
	matchAttr(name string) bool
}

type exactNameMatcher string

func (m exactNameMatcher) matchAttr(name string) bool { return string(m) == name }

type patternMatcher struct{ re *regexp.Regexp }

func (m patternMatcher) matchAttr(name string) bool { return m.re.MatchString(name) }

// ExactName matches an attribute by its exact name.
func ExactName(name string) AttrMatcher { return exactNameMatcher(name) }

// Pattern matches attribute names against a compiled regular expression.
func Pattern(re *regexp.Regexp) AttrMatcher { return patternMatcher{re: re} }

// Options configures a conversion. The zero value converts with defaults;
// every field is optional. Options are read-only during conversion and may
// be shared across concurrent calls.
type Options struct {
	// Transform maps tag names to override functions. The DefaultTransformKey
	// entry, if present, applies to any element or text node without an
	// exact-tag entry.
	Transform map[string]TransformFunc

	// PreserveAttributes lists attribute names (exact or pattern) that are
	// copied through unrenamed.
	PreserveAttributes []AttrMatcher

	// DangerouslySetChildren lists tags whose inner markup is attached
	// verbatim as the element.InnerHTMLProp property instead of being
	// recursively converted.
	DangerouslySetChildren []string

	// Logger receives debug-level diagnostics (skipped style declarations,
	// transform dispatch). Nil disables logging.
	Logger *zap.Logger
}

// logger returns the configured logger or a no-op one. Safe on nil Options.
func (o *Options) logger() *zap.Logger {
	if o == nil || o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// dangerous reports whether tag's children must be passed through as raw
// markup.
func (o *Options) dangerous(tag string) bool {
	if o == nil {
		return false
	}
	for _, t := range o.DangerouslySetChildren {
		if t == tag {
			return true
		}
	}
	return false
}

// preserved reports whether the attribute name matches a PreserveAttributes
// entry. Matchers are evaluated in order.
func (o *Options) preserved(name string) bool {
	if o == nil {
		return false
	}
	for _, m := range o.PreserveAttributes {
		if m.matchAttr(name) {
			return true
		}
	}
	return false
}
