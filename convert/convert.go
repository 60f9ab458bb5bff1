// Package convert turns raw documentation pages into markdown.
//
// Conversion is a pure function over the input bytes: parse the DOM, drop
// structural chrome (navigation, scripts, styles, hidden elements), keep the
// semantic content landmark, sanitize, and hand the surviving HTML to the
// markdown converter. Identical input always produces identical output,
// which the fetch cache relies on.
//
// Preserved through conversion:
//   - heading hierarchy (# markers), paragraphs, lists
//   - code blocks as fenced blocks, with language hints from class attributes
//   - tables as markdown rows
//   - hyperlinks as [text](url), resolved against the source domain
package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Result is the outcome of converting one page.
type Result struct {
	Title    string
	Markdown string
}

// sanitizer strips anything executable or presentational that survives DOM
// pruning, while keeping the structure the markdown converter consumes.
// Class attributes stay on pre/code so fenced blocks keep language hints.
func sanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowAttrs("class").OnElements("pre", "code")
	return p
}

// ToMarkdown converts an HTML page to markdown. sourceURL anchors relative
// links. An empty Markdown in the result means the page had no extractable
// content; that is not an error.
func ToMarkdown(src []byte, sourceURL string) (*Result, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := findTitle(doc)

	root := findContentRoot(doc)
	pruneBoilerplate(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	clean := sanitizer().Sanitize(buf.String())

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	markdown, err := conv.ConvertString(clean, converter.WithDomain(sourceURL))
	if err != nil {
		return nil, fmt.Errorf("convert to markdown: %w", err)
	}

	return &Result{
		Title:    title,
		Markdown: strings.TrimSpace(markdown),
	}, nil
}

// IsHTML reports whether a response should go through HTML conversion.
// A page is HTML when its body prefix looks like markup, when the
// Content-Type header says so, or when no header was sent at all.
// Anything else is served as already-final text.
func IsHTML(contentType string, body []byte) bool {
	if strings.Contains(contentType, "text/html") || contentType == "" {
		return true
	}
	head := body
	if len(head) > 512 {
		head = head[:512]
	}
	prefix := strings.ToLower(string(head))
	return strings.Contains(prefix, "<html") || strings.Contains(prefix, "<!doctype html")
}
