package htmr

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// dump writes a compact representation of a parse tree, one that makes the
// test expectations readable: elements as <tag>...</tag>, text verbatim,
// comments as <!--...-->.
func dump(n *Node) string {
	var sb strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.CommentNode:
			sb.WriteString("<!--")
			sb.WriteString(n.Data)
			sb.WriteString("-->")
		case html.ElementNode:
			sb.WriteString("<")
			sb.WriteString(n.Data)
			sb.WriteString(">")
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			sb.WriteString("</")
			sb.WriteString(n.Data)
			sb.WriteString(">")
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "nested elements",
			text: "<div><p>hi</p></div>",
			want: "<div><p>hi</p></div>",
		},
		{
			name: "unclosed elements close at EOF",
			text: "<div><span>x",
			want: "<div><span>x</span></div>",
		},
		{
			name: "paragraph closes paragraph",
			text: "<p>a<p>b",
			want: "<p>a</p><p>b</p>",
		},
		{
			name: "heading closes heading",
			text: "<h1>a<h2>b",
			want: "<h1>a</h1><h2>b</h2>",
		},
		{
			name: "list item closes list item",
			text: "<ul><li>a<li>b</ul>",
			want: "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name: "definition terms close each other",
			text: "<dl><dt>t<dd>d</dl>",
			want: "<dl><dt>t</dt><dd>d</dd></dl>",
		},
		{
			name: "void element",
			text: "<div><br>x</div>",
			want: "<div><br></br>x</div>",
		},
		{
			name: "self-closing non-void element",
			text: "<div><foo/>x</div>",
			want: "<div><foo></foo>x</div>",
		},
		{
			name: "self-closing iframe does not swallow siblings",
			text: "<iframe/><p>after</p>",
			want: "<iframe></iframe><p>after</p>",
		},
		{
			name: "raw text element keeps markup-ish text",
			text: "<script>if (a < b) { f(); }</script>",
			want: "<script>if (a < b) { f(); }</script>",
		},
		{
			name: "textarea drops leading newline",
			text: "<textarea>\nabc</textarea>",
			want: "<textarea>abc</textarea>",
		},
		{
			name: "pre drops leading newline only",
			text: "<pre>\na\nb</pre>",
			want: "<pre>a\nb</pre>",
		},
		{
			name: "comment is kept in the parse tree",
			text: "<div><!-- note --></div>",
			want: "<div><!-- note --></div>",
		},
		{
			name: "doctype is dropped",
			text: "<!DOCTYPE html><p>x</p>",
			want: "<p>x</p>",
		},
		{
			name: "stray end tag is ignored",
			text: "<div>a</span>b</div>",
			want: "<div>ab</div>",
		},
		{
			name: "end tag br becomes start tag",
			text: "a</br>b",
			want: "a<br></br>b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.text))
			if err != nil {
				t.Fatal(err)
			}
			if got := dump(root); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAdjacentTextMerges(t *testing.T) {
	root, err := Parse(strings.NewReader("<div>a&amp;b</div>"))
	if err != nil {
		t.Fatal(err)
	}
	div := root.FirstChild
	if div == nil || div.FirstChild == nil {
		t.Fatal("unexpected tree shape")
	}
	if div.FirstChild != div.LastChild {
		t.Error("adjacent text tokens should merge into one node")
	}
	if got := div.FirstChild.Data; got != "a&b" {
		t.Errorf("text = %q, want %q", got, "a&b")
	}
}
