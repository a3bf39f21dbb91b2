// Package element defines the output tree produced by the htmr converter:
// typed UI nodes with ordered properties, ready to be handed to a rendering
// framework's server-side serializer or client-side mount routine.
package element

import "github.com/iamyuu/htmr/styleparse"

// Kind represents the type of an output node.
type Kind uint8

const (
	// KindElement represents a tagged element node.
	KindElement Kind = iota
	// KindText represents a text node.
	KindText
)

// InnerHTMLProp is the property carrying raw, unconverted inner markup for
// tags listed in DangerouslySetChildren. The renderer writes its value
// verbatim and skips the node's children.
const InnerHTMLProp = "dangerouslySetInnerHTML"

// Prop is a single element property. Values are usually strings; boolean
// attributes carry true, and the "style" property carries parsed style
// declarations.
type Prop struct {
	Key string
	Val any
}

// Props is an ordered property list. Order follows the source markup, so two
// conversions of the same input always produce the same serialized output.
type Props []Prop

// Get returns the value for key and whether it is present.
func (p Props) Get(key string) (any, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Val, true
		}
	}
	return nil, false
}

// Set replaces the value for key in place, or appends a new property if the
// key is not present.
func (p *Props) Set(key string, val any) {
	for i, kv := range *p {
		if kv.Key == key {
			(*p)[i].Val = val
			return
		}
	}
	*p = append(*p, Prop{Key: key, Val: val})
}

// Del removes the property with the given key, preserving the order of the
// remaining properties.
func (p *Props) Del(key string) {
	for i, kv := range *p {
		if kv.Key == key {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return
		}
	}
}

// Clone returns a copy of the property list. Parsed style declarations are
// copied too, so a clone holder cannot mutate the original's declarations
// through the shared pointer.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	copy(out, p)
	for i, kv := range out {
		if d, ok := kv.Val.(*styleparse.Declarations); ok {
			decls := make(styleparse.Declarations, len(*d))
			copy(decls, *d)
			out[i].Val = &decls
		}
	}
	return out
}

// Node is a single node of the output tree.
// A Node is owned exclusively by the conversion that produced it; the
// converter never aliases parse-tree structures into it.
type Node struct {
	// Kind determines whether Tag/Props/Kids or Text are meaningful.
	Kind Kind

	// Tag is the element tag name (e.g. "div"). Only used when
	// Kind == KindElement.
	Tag string

	// Props contains the mapped properties for this node, in source order.
	Props Props

	// Kids contains converted child nodes. Nil for text nodes.
	Kids []*Node

	// Text content (only used when Kind == KindText).
	Text string
}

// NewElement creates an element node.
func NewElement(tag string, props Props, kids ...*Node) *Node {
	out := make([]*Node, 0, len(kids))
	for _, k := range kids {
		if k != nil {
			out = append(out, k)
		}
	}
	return &Node{Kind: KindElement, Tag: tag, Props: props, Kids: out}
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// IsElement returns true if this is an element node.
func (n *Node) IsElement() bool { return n.Kind == KindElement }

// IsText returns true if this is a text node.
func (n *Node) IsText() bool { return n.Kind == KindText }
