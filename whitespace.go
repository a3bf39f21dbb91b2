package htmr

import "strings"

// tableStructureTags are tags whose element children form rows and cells;
// whitespace-only text between them would show up as spurious blank nodes in
// the output tree.
var tableStructureTags = map[string]bool{
	"table":    true,
	"thead":    true,
	"tbody":    true,
	"tfoot":    true,
	"tr":       true,
	"colgroup": true,
}

// preformattedTags preserve their text content verbatim, newlines included.
var preformattedTags = map[string]bool{
	"pre":      true,
	"textarea": true,
	"listing":  true,
}

// keepText decides whether a text node survives conversion. Non-whitespace
// text is always kept. Whitespace-only text is dropped under table-structure
// tags and kept everywhere else: between sibling elements it represents
// meaningful spacing. Text under preformatted tags is never elided.
func keepText(text, parentTag string) bool {
	if preformattedTags[parentTag] {
		return true
	}
	if strings.Trim(text, whitespace) != "" {
		return true
	}
	return !tableStructureTags[parentTag]
}
