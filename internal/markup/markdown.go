// Package markup converts between the Markdown agents write and the HTML
// vendor APIs store.
package markup

import (
	"bytes"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once

	policyInstance *bluemonday.Policy
	policyOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		)
	})
	return markdownInstance
}

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policyInstance = bluemonday.UGCPolicy()
	})
	return policyInstance
}

// ToHTML renders Markdown as sanitized HTML.
func ToHTML(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(markdown), &buf); err != nil {
		return "<p>" + html.EscapeString(markdown) + "</p>"
	}
	return strings.TrimSpace(getPolicy().Sanitize(buf.String()))
}

// Sanitize strips unsafe markup from HTML.
func Sanitize(s string) string {
	return getPolicy().Sanitize(s)
}
