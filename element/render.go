package element

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/iamyuu/htmr/styleparse"
)

// voidElements are HTML elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// renderer writes an element tree as HTML markup. Write errors are tracked
// on the first failure and short-circuit the rest of the traversal.
type renderer struct {
	w   io.Writer
	err error
}

// Render serializes the given nodes to w as HTML markup.
func Render(w io.Writer, nodes ...*Node) error {
	r := &renderer{w: w}
	for _, n := range nodes {
		r.renderNode(n)
	}
	return r.err
}

// RenderToString serializes the given nodes to an HTML string.
func RenderToString(nodes ...*Node) (string, error) {
	var buf strings.Builder
	if err := Render(&buf, nodes...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

func (r *renderer) renderNode(n *Node) {
	if n == nil || r.err != nil {
		return
	}
	switch n.Kind {
	case KindText:
		r.write(html.EscapeString(n.Text))
	case KindElement:
		r.renderElement(n)
	}
}

func (r *renderer) renderElement(n *Node) {
	r.write("<")
	r.write(n.Tag)

	for _, p := range n.Props {
		if p.Key == InnerHTMLProp {
			continue
		}
		r.write(" ")
		r.write(PropToAttr(p.Key))
		r.write(`="`)
		r.write(html.EscapeString(propValueString(p.Val)))
		r.write(`"`)
	}

	r.write(">")

	if voidElements[n.Tag] {
		return
	}

	if raw, ok := n.Props.Get(InnerHTMLProp); ok {
		// Raw passthrough content is written as-is; children are ignored.
		r.write(fmt.Sprint(raw))
	} else {
		// Text inside script and style carries code, not markup.
		rawText := n.Tag == "script" || n.Tag == "style"
		for _, kid := range n.Kids {
			if rawText && kid.Kind == KindText {
				r.write(kid.Text)
			} else {
				r.renderNode(kid)
			}
		}
	}

	r.write("</")
	r.write(n.Tag)
	r.write(">")
}

// propValueString converts a property value to its attribute text. Boolean
// true properties render as a bare empty-valued attribute rather than the
// literal text "true"; parsed style declarations render back to CSS text.
func propValueString(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case bool:
		if vv {
			return ""
		}
		return "false"
	case *styleparse.Declarations:
		return vv.String()
	case styleparse.Declarations:
		return vv.String()
	default:
		return fmt.Sprint(vv)
	}
}
