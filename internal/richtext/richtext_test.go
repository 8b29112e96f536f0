package richtext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, raw string) string {
	t.Helper()

	out, err := Render(json.RawMessage(raw))
	require.NoError(t, err)

	return out
}

func TestRender_Empty(t *testing.T) {
	out, err := Render(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender_InvalidJSON(t *testing.T) {
	_, err := Render(json.RawMessage(`{not json`))
	assert.Error(t, err)
}

func TestRender_Paragraph(t *testing.T) {
	raw := `{"children":[{"type":"paragraph","children":[{"text":"hello world"}]}]}`

	assert.Equal(t, "<p>hello world</p>", render(t, raw))
}

func TestRender_UnknownTypeFallsBackToParagraph(t *testing.T) {
	raw := `{"children":[{"type":"mystery","children":[{"text":"x"}]}]}`

	assert.Equal(t, "<p>x</p>", render(t, raw))
}

func TestRender_Headings(t *testing.T) {
	raw := `{"children":[
		{"type":"heading-one","children":[{"text":"a"}]},
		{"type":"heading-two","children":[{"text":"b"}]},
		{"type":"heading-three","children":[{"text":"c"}]},
		{"type":"heading-four","children":[{"text":"d"}]}
	]}`

	assert.Equal(t, "<h1>a</h1><h2>b</h2><h3>c</h3><h4>d</h4>", render(t, raw))
}

func TestRender_Marks(t *testing.T) {
	raw := `{"children":[{"type":"paragraph","children":[
		{"text":"plain "},
		{"text":"strong","bold":true},
		{"text":" and ","italic":true},
		{"text":"all","bold":true,"italic":true,"underline":true,"code":true}
	]}]}`

	out := render(t, raw)

	assert.Contains(t, out, "<strong>strong</strong>")
	assert.Contains(t, out, "<em> and </em>")
	assert.Contains(t, out, "<u><em><strong><code>all</code></strong></em></u>")
}

func TestRender_Lists(t *testing.T) {
	raw := `{"children":[
		{"type":"bulleted-list","children":[
			{"type":"list-item","children":[{"text":"one"}]},
			{"type":"list-item","children":[{"text":"two"}]}
		]},
		{"type":"numbered-list","children":[
			{"type":"list-item","children":[{"text":"first"}]}
		]}
	]}`

	out := render(t, raw)

	assert.Equal(t, "<ul><li>one</li><li>two</li></ul><ol><li>first</li></ol>", out)
}

func TestRender_Link(t *testing.T) {
	raw := `{"children":[{"type":"paragraph","children":[
		{"type":"link","href":"https://example.com","children":[{"text":"here"}]}
	]}]}`

	out := render(t, raw)

	assert.Contains(t, out, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">here</a>`)
}

func TestRender_LinkWithoutHref(t *testing.T) {
	raw := `{"children":[{"type":"link","children":[{"text":"dangling"}]}]}`

	assert.Contains(t, render(t, raw), `<a href="#"`)
}

func TestRender_Blockquote(t *testing.T) {
	raw := `{"children":[{"type":"blockquote","children":[{"text":"wisdom"}]}]}`

	assert.Equal(t, "<blockquote>wisdom</blockquote>", render(t, raw))
}

func TestRender_CodeBlock(t *testing.T) {
	raw := `{"children":[{"type":"code-block","children":[{"text":"x := 1"}]}]}`

	assert.Equal(t, "<pre><code>x := 1</code></pre>", render(t, raw))
}

func TestRender_EscapesText(t *testing.T) {
	raw := `{"children":[{"type":"paragraph","children":[{"text":"<script>alert(1)</script>"}]}]}`

	out := render(t, raw)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRender_EscapesHref(t *testing.T) {
	raw := `{"children":[{"type":"link","href":"https://example.com/?a=1&b=\"2\"","children":[{"text":"x"}]}]}`

	out := render(t, raw)

	assert.NotContains(t, out, `"2"`)
	assert.Contains(t, out, "&amp;")
}
