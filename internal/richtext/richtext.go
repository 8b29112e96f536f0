package richtext

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// renders a CMS rich-text AST to HTML. The AST is the editor's raw format:
// a root object with a children array of element nodes, where leaves carry a
// text field plus optional mark flags. Unknown element types fall back to
// paragraphs; all text is escaped.
func Render(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return "", fmt.Errorf("failed to parse rich text: %w", err)
	}

	children, ok := root["children"].([]any)
	if !ok {
		return "", nil
	}

	var b strings.Builder

	for _, child := range children {
		renderNode(&b, child)
	}

	return b.String(), nil
}

func renderNode(b *strings.Builder, v any) {
	node, ok := v.(map[string]any)
	if !ok {
		return
	}

	// leaf text node: apply marks from the inside out
	if text, ok := node["text"].(string); ok {
		s := html.EscapeString(text)

		if isSet(node["code"]) {
			s = "<code>" + s + "</code>"
		}

		if isSet(node["bold"]) {
			s = "<strong>" + s + "</strong>"
		}

		if isSet(node["italic"]) {
			s = "<em>" + s + "</em>"
		}

		if isSet(node["underline"]) {
			s = "<u>" + s + "</u>"
		}

		b.WriteString(s)
		return
	}

	var inner strings.Builder

	if children, ok := node["children"].([]any); ok {
		for _, child := range children {
			renderNode(&inner, child)
		}
	}

	nodeType, _ := node["type"].(string)

	switch nodeType {
	case "heading-one":
		wrap(b, "h1", inner.String())
	case "heading-two":
		wrap(b, "h2", inner.String())
	case "heading-three":
		wrap(b, "h3", inner.String())
	case "heading-four":
		wrap(b, "h4", inner.String())
	case "bulleted-list":
		wrap(b, "ul", inner.String())
	case "numbered-list":
		wrap(b, "ol", inner.String())
	case "list-item":
		wrap(b, "li", inner.String())
	case "link":
		href, _ := node["href"].(string)
		if href == "" {
			href = "#"
		}

		b.WriteString(`<a href="` + html.EscapeString(href) + `" target="_blank" rel="noopener noreferrer">`)
		b.WriteString(inner.String())
		b.WriteString("</a>")
	case "blockquote":
		wrap(b, "blockquote", inner.String())
	case "code-block":
		b.WriteString("<pre><code>")
		b.WriteString(inner.String())
		b.WriteString("</code></pre>")
	default:
		wrap(b, "p", inner.String())
	}
}

func wrap(b *strings.Builder, tag, inner string) {
	b.WriteString("<" + tag + ">")
	b.WriteString(inner)
	b.WriteString("</" + tag + ">")
}

func isSet(v any) bool {
	set, ok := v.(bool)
	return ok && set
}
