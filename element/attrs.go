package element

// attrToProp renames HTML attribute names to their framework property names.
// The table is a process-wide constant: initialized once, never mutated,
// safe for concurrent reads. Attributes not listed here — including all
// aria-* and data-* attributes — keep their name.
var attrToProp = map[string]string{
	"accept-charset":  "acceptCharset",
	"accesskey":       "accessKey",
	"allowfullscreen": "allowFullScreen",
	"autocapitalize":  "autoCapitalize",
	"autocomplete":    "autoComplete",
	"autocorrect":     "autoCorrect",
	"autofocus":       "autoFocus",
	"autoplay":        "autoPlay",
	"autosave":        "autoSave",
	"cellpadding":     "cellPadding",
	"cellspacing":     "cellSpacing",
	"charset":         "charSet",
	"class":           "className",
	"colspan":         "colSpan",
	"contenteditable": "contentEditable",
	"contextmenu":     "contextMenu",
	"controlslist":    "controlsList",
	"crossorigin":     "crossOrigin",
	"datetime":        "dateTime",
	"enctype":         "encType",
	"enterkeyhint":    "enterKeyHint",
	"fetchpriority":   "fetchPriority",
	"for":             "htmlFor",
	"formaction":      "formAction",
	"formenctype":     "formEncType",
	"formmethod":      "formMethod",
	"formnovalidate":  "formNoValidate",
	"formtarget":      "formTarget",
	"frameborder":     "frameBorder",
	"hreflang":        "hrefLang",
	"http-equiv":      "httpEquiv",
	"imagesizes":      "imageSizes",
	"imagesrcset":     "imageSrcSet",
	"inputmode":       "inputMode",
	"itemid":          "itemID",
	"itemprop":        "itemProp",
	"itemref":         "itemRef",
	"itemscope":       "itemScope",
	"itemtype":        "itemType",
	"keyparams":       "keyParams",
	"keytype":         "keyType",
	"marginheight":    "marginHeight",
	"marginwidth":     "marginWidth",
	"maxlength":       "maxLength",
	"mediagroup":      "mediaGroup",
	"minlength":       "minLength",
	"nomodule":        "noModule",
	"novalidate":      "noValidate",
	"playsinline":     "playsInline",
	"radiogroup":      "radioGroup",
	"readonly":        "readOnly",
	"referrerpolicy":  "referrerPolicy",
	"rowspan":         "rowSpan",
	"spellcheck":      "spellCheck",
	"srcdoc":          "srcDoc",
	"srclang":         "srcLang",
	"srcset":          "srcSet",
	"tabindex":        "tabIndex",
	"usemap":          "useMap",

	// SVG
	"clip-path":           "clipPath",
	"clip-rule":           "clipRule",
	"dominant-baseline":   "dominantBaseline",
	"fill-opacity":        "fillOpacity",
	"fill-rule":           "fillRule",
	"marker-end":          "markerEnd",
	"marker-mid":          "markerMid",
	"marker-start":        "markerStart",
	"preserveaspectratio": "preserveAspectRatio",
	"shape-rendering":     "shapeRendering",
	"stop-color":          "stopColor",
	"stop-opacity":        "stopOpacity",
	"stroke-dasharray":    "strokeDasharray",
	"stroke-dashoffset":   "strokeDashoffset",
	"stroke-linecap":      "strokeLinecap",
	"stroke-linejoin":     "strokeLinejoin",
	"stroke-miterlimit":   "strokeMiterlimit",
	"stroke-opacity":      "strokeOpacity",
	"stroke-width":        "strokeWidth",
	"text-anchor":         "textAnchor",
	"viewbox":             "viewBox",

	// Namespaced
	"xlink:actuate": "xlinkActuate",
	"xlink:arcrole": "xlinkArcrole",
	"xlink:href":    "xlinkHref",
	"xlink:role":    "xlinkRole",
	"xlink:show":    "xlinkShow",
	"xlink:title":   "xlinkTitle",
	"xlink:type":    "xlinkType",
	"xml:base":      "xmlBase",
	"xml:lang":      "xmlLang",
	"xml:space":     "xmlSpace",
}

// booleanAttrs are presence-only attributes: written without a value they
// signal true by presence alone. Shared by the attribute mapper (valueless →
// bool prop) and the live-document adapter (folding the XML reader's
// name-as-value form back to valueless).
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"contenteditable": true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr reports whether the (lowercased) attribute name is a
// presence-only boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// propToAttr is the inverse of attrToProp, used by the serializer to write
// property names back as markup attribute names.
var propToAttr = make(map[string]string, len(attrToProp))

func init() {
	for attr, prop := range attrToProp {
		propToAttr[prop] = attr
	}
}

// AttrToProp returns the framework property name for an HTML attribute name
// and whether a rename applies.
func AttrToProp(name string) (string, bool) {
	prop, ok := attrToProp[name]
	return prop, ok
}

// PropToAttr returns the markup attribute name for a property name.
// Unrenamed properties come back unchanged.
func PropToAttr(prop string) string {
	if attr, ok := propToAttr[prop]; ok {
		return attr
	}
	return prop
}
