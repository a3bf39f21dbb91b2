package htmr

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/iamyuu/htmr/element"
)

// mapAttributes resolves an element's attributes into its property list:
//  1. names matching a PreserveAttributes entry are copied through with
//     their original name and value,
//  2. valueless boolean attributes become true-valued properties — the
//     serializer renders those back as a bare empty-valued attribute, never
//     the literal text "true" and never omitted,
//  3. names in the rename table get their framework property name,
//  4. everything else — including aria-* and data-* — passes through
//     unchanged (forward-compatible default).
//
// Source order is preserved. Values arrive entity-decoded from both parse
// backends and are copied as-is; decoding them again here would collapse
// text that legitimately contains references. The style attribute is mapped
// like any other string attribute; the converter replaces it with parsed
// declarations.
func mapAttributes(attrs []html.Attribute, o *Options) element.Props {
	if len(attrs) == 0 {
		return nil
	}
	props := make(element.Props, 0, len(attrs))
	for _, attr := range attrs {
		name := attr.Key
		if attr.Namespace != "" {
			name = attr.Namespace + ":" + attr.Key
		}
		name = strings.ToLower(name)

		if o.preserved(name) {
			props.Set(name, attr.Val)
			continue
		}

		key := name
		if prop, ok := element.AttrToProp(name); ok {
			key = prop
		}

		if element.IsBooleanAttr(name) && attr.Val == "" {
			props.Set(key, true)
			continue
		}

		props.Set(key, attr.Val)
	}
	return props
}
