package convert

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var hiddenStylePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)display\s*:\s*none`),
	regexp.MustCompile(`(?i)visibility\s*:\s*hidden`),
	regexp.MustCompile(`(?i)font-size\s*:\s*0[^1-9]`),
	regexp.MustCompile(`(?i)opacity\s*:\s*0[^.]`),
	regexp.MustCompile(`(?i)position\s*:\s*absolute[^;]*-\d{4,}`),
}

// chromeClassFragments marks elements whose class or id identifies page
// chrome rather than content (breadcrumbs, cookie banners, doc-site
// utility bars).
var chromeClassFragments = []string{
	"breadcrumb",
	"cookie-banner",
	"cookie-consent",
	"page-utilities",
	"feedback-section",
	"doc-feedback",
	"site-header",
	"site-footer",
}

func hasHiddenStyle(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "style" {
			for _, pat := range hiddenStylePatterns {
				if pat.MatchString(a.Val) {
					return true
				}
			}
		}
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// isBoilerplate reports whether a node is structural chrome that must never
// surface in converted output.
func isBoilerplate(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Nav, atom.Footer,
		atom.Header, atom.Aside, atom.Form, atom.Iframe, atom.Meta, atom.Link:
		return true
	}
	if hasHiddenStyle(n) {
		return true
	}
	marker := strings.ToLower(getAttr(n, "class") + " " + getAttr(n, "id"))
	for _, frag := range chromeClassFragments {
		if strings.Contains(marker, frag) {
			return true
		}
	}
	switch getAttr(n, "role") {
	case "navigation", "banner", "contentinfo", "search":
		return true
	}
	return false
}

// pruneBoilerplate removes boilerplate subtrees in place.
func pruneBoilerplate(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if isBoilerplate(c) {
			n.RemoveChild(c)
			continue
		}
		pruneBoilerplate(c)
	}
}

// findContentRoot returns the semantic content landmark of the document:
// <main>, <article>, or an element with role="main". Falls back to <body>,
// then to the document itself.
func findContentRoot(doc *html.Node) *html.Node {
	for _, a := range []atom.Atom{atom.Main, atom.Article} {
		if n := findFirst(doc, func(n *html.Node) bool { return n.DataAtom == a }); n != nil {
			return n
		}
	}
	if n := findFirst(doc, func(n *html.Node) bool { return getAttr(n, "role") == "main" }); n != nil {
		return n
	}
	if n := findFirst(doc, func(n *html.Node) bool { return n.DataAtom == atom.Body }); n != nil {
		return n
	}
	return doc
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findTitle extracts the <title> text.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		if n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}
