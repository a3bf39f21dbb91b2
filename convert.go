package htmr

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
	"go.uber.org/zap"

	"github.com/iamyuu/htmr/element"
	"github.com/iamyuu/htmr/styleparse"
)

// converter walks a parse tree depth-first and assembles the output element
// tree. Each conversion owns its converter instance; nothing is shared
// between calls except the read-only attribute and style tables.
type converter struct {
	opts  *Options
	log   *zap.Logger
	style *styleparse.Parser
}

// ConvertTree converts a parse tree built by either entry adapter into a
// forest of output elements. A document root with several top-level nodes
// yields several elements; a single root yields a one-element slice.
func ConvertTree(root *Node, o *Options) []*element.Node {
	if root == nil {
		return nil
	}

	log := o.logger()
	c := &converter{
		opts:  o,
		log:   log,
		style: styleparse.NewParser(log),
	}

	if root.Type == xhtml.DocumentNode {
		var out []*element.Node
		for child := root.FirstChild; child != nil; child = child.NextSibling {
			if n := c.convertNode(child); n != nil {
				out = append(out, n)
			}
		}
		return out
	}

	if n := c.convertNode(root); n != nil {
		return []*element.Node{n}
	}
	return nil
}

// convertNode converts a single parse node. It returns nil when the node
// contributes nothing to its parent's child sequence (comments, elided
// whitespace, transforms returning nil).
func (c *converter) convertNode(n *Node) *element.Node {
	switch n.Type {
	case xhtml.ElementNode:
		return c.convertElement(n)
	case xhtml.TextNode:
		return c.convertText(n)
	default:
		// Comments and doctypes never appear in the output; their content is
		// not inspected or decoded.
		return nil
	}
}

func (c *converter) convertElement(n *Node) *element.Node {
	tag := strings.ToLower(n.Data)
	props := mapAttributes(n.Attr, c.opts)

	// Replace the inline style attribute with parsed declarations, or drop
	// it when nothing in it parses.
	if raw, ok := props.Get("style"); ok {
		if s, isStr := raw.(string); isStr {
			if decls := c.style.Parse(s); len(decls) > 0 {
				props.Set("style", &decls)
			} else {
				c.log.Debug("dropping unparsable style attribute", zap.String("tag", tag))
				props.Del("style")
			}
		}
	}

	var kids []*element.Node
	if c.opts.dangerous(tag) {
		// Raw passthrough: the inner markup is re-serialized as written and
		// attached as a single raw-content property, not converted children.
		props.Set(element.InnerHTMLProp, innerMarkup(n))
	} else {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if kid := c.convertNode(child); kid != nil {
				kids = append(kids, kid)
			}
		}
	}

	if fn := resolveTransform(tag, c.opts); fn != nil {
		c.log.Debug("applying transform override", zap.String("tag", tag))
		return fn(TransformInput{
			Kind:     ElementInput,
			Tag:      tag,
			Props:    props.Clone(),
			Children: cloneKids(kids),
		})
	}

	return &element.Node{Kind: element.KindElement, Tag: tag, Props: props, Kids: kids}
}

func (c *converter) convertText(n *Node) *element.Node {
	// Both backends deliver entity-decoded text; a second decode would
	// collapse content that legitimately reads like a reference ("&amp;").
	text := n.Data

	parentTag := ""
	if n.Parent != nil && n.Parent.Type == xhtml.ElementNode {
		parentTag = strings.ToLower(n.Parent.Data)
	}
	if !keepText(text, parentTag) {
		return nil
	}

	if fn := resolveTransform("", c.opts); fn != nil {
		return fn(TransformInput{Kind: TextInput, Text: text})
	}

	return element.NewText(text)
}

func cloneKids(kids []*element.Node) []*element.Node {
	if kids == nil {
		return nil
	}
	out := make([]*element.Node, len(kids))
	copy(out, kids)
	return out
}

// innerMarkup serializes an element's children back to markup text, undoing
// the parse: text re-escaped, attributes quoted, comments kept. This is the
// raw-content payload for DangerouslySetChildren tags.
func innerMarkup(n *Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeMarkup(&sb, child)
	}
	return sb.String()
}

// textEscaper escapes text-position content for raw inner markup. Only the
// markup-significant characters are escaped; quotes stay literal in text
// position, keeping the payload as close to the original source as possible.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func writeMarkup(sb *strings.Builder, n *Node) {
	switch n.Type {
	case xhtml.TextNode:
		sb.WriteString(textEscaper.Replace(n.Data))
	case xhtml.CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	case xhtml.ElementNode:
		sb.WriteString("<")
		sb.WriteString(n.Data)
		for _, attr := range n.Attr {
			sb.WriteString(" ")
			if attr.Namespace != "" {
				sb.WriteString(attr.Namespace)
				sb.WriteString(":")
			}
			sb.WriteString(attr.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(attr.Val))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		if voidTags[strings.ToLower(n.Data)] {
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			writeMarkup(sb, child)
		}
		sb.WriteString("</")
		sb.WriteString(n.Data)
		sb.WriteString(">")
	}
}

// voidTags mirror the HTML void element set for raw inner-markup
// serialization.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}
