package blog

import "codeberg.org/devfolio/server/devfolio/catalog"

// single-post response; ContentHTML is the rendered rich-text body
type PostResponse struct {
	Post        *catalog.BlogPost `json:"post"`
	ContentHTML string            `json:"contentHtml,omitempty"`
}
