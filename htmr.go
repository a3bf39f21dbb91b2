// Package htmr converts a string of HTML markup into a tree of typed UI
// elements (package element) consumable by a declarative rendering
// framework.
//
// Two entry adapters exist: ToElement in this package drives a standalone
// tokenizer-based parse, and the dom subpackage drives a live document model
// (beevik/etree). Both feed the same converter and produce structurally
// identical output for the same input and options.
//
// The conversion is a pure, synchronous computation: no I/O, no shared
// mutable state, safe to invoke concurrently on independent inputs.
package htmr

import (
	"strings"

	"github.com/iamyuu/htmr/element"
)

// ToElement converts HTML markup into a forest of output elements using the
// standalone parsing backend. input must be a string; any other type fails
// with ErrExpectedHTMLString before parsing. A nil Options converts with
// defaults.
func ToElement(input any, o *Options) ([]*element.Node, error) {
	s, err := checkInput(input)
	if err != nil {
		return nil, err
	}

	root, err := Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}

	return ConvertTree(root, o), nil
}
