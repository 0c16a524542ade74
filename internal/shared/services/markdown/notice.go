// Package markdown renders the operator notice shown above the dashboard.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts Markdown into HTML that is safe to embed in a page.
// Raw HTML in the source is dropped by goldmark before sanitising.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
				extension.Table,
			),
		),
		policy: noticePolicy(),
	}
}

func noticePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowURLSchemes("http", "https", "mailto")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// ToHTMLSanitized returns an empty string for blank input.
func (r *Renderer) ToHTMLSanitized(src string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render notice: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
