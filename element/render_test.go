package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamyuu/htmr/styleparse"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name  string
		nodes []*Node
		want  string
	}{
		{
			name:  "text is escaped",
			nodes: []*Node{NewText("a < b & c")},
			want:  "a &lt; b &amp; c",
		},
		{
			name:  "element with children",
			nodes: []*Node{NewElement("p", nil, NewText("hi"))},
			want:  "<p>hi</p>",
		},
		{
			name:  "void element has no closing tag",
			nodes: []*Node{NewElement("br", nil)},
			want:  "<br>",
		},
		{
			name: "props render in order with framework names mapped back",
			nodes: []*Node{NewElement("label", Props{
				{Key: "htmlFor", Val: "name"},
				{Key: "className", Val: "field"},
			})},
			want: `<label for="name" class="field"></label>`,
		},
		{
			name:  "boolean true prop renders as bare empty-valued attribute",
			nodes: []*Node{NewElement("iframe", Props{{Key: "allowFullScreen", Val: true}})},
			want:  `<iframe allowfullscreen=""></iframe>`,
		},
		{
			name: "style declarations render as css text",
			nodes: []*Node{NewElement("div", Props{
				{Key: "style", Val: &styleparse.Declarations{
					{Property: "backgroundColor", Value: "red"},
					{Property: "WebkitTransition", Value: "all .2s"},
				}},
			})},
			want: `<div style="background-color:red;-webkit-transition:all .2s"></div>`,
		},
		{
			name: "raw inner markup suppresses children",
			nodes: []*Node{NewElement("pre", Props{
				{Key: InnerHTMLProp, Val: "&lt;strong&gt;x&lt;/strong&gt;"},
			}, NewText("ignored"))},
			want: "<pre>&lt;strong&gt;x&lt;/strong&gt;</pre>",
		},
		{
			name: "script text is not escaped",
			nodes: []*Node{NewElement("script", nil,
				NewText(`if (a < b) { alert("&"); }`))},
			want: `<script>if (a < b) { alert("&"); }</script>`,
		},
		{
			name: "forest renders in sequence",
			nodes: []*Node{
				NewElement("span", nil, NewText("Hello")),
				NewText(" "),
				NewElement("span", nil, NewText("World")),
			},
			want: "<span>Hello</span> <span>World</span>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.nodes...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderAttrEscaping(t *testing.T) {
	got, err := RenderToString(NewElement("a", Props{{Key: "title", Val: `say "hi" & go`}}))
	assert.NoError(t, err)
	assert.Equal(t, `<a title="say &#34;hi&#34; &amp; go"></a>`, got)
}
