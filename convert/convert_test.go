package convert

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Amazon S3 bucket naming rules</title>
<script>window.tracking = true;</script>
<style>.hidden { display: none; }</style>
</head>
<body>
<nav><a href="/index.html">Home</a> &gt; <a href="/s3/">S3</a></nav>
<header class="site-header">AWS Documentation</header>
<main>
<h1>Bucket naming rules</h1>
<p>Bucket names must be between 3 and 63 characters long.</p>
<h2>General purpose buckets</h2>
<ul>
<li>Names must begin with a letter or number.</li>
<li>Names must not contain uppercase characters.</li>
</ul>
<pre><code class="language-json">{"Rules": []}</code></pre>
<table>
<tr><th>Limit</th><th>Value</th></tr>
<tr><td>Minimum length</td><td>3</td></tr>
</table>
<p>See <a href="https://docs.aws.amazon.com/s3/latest/userguide/create-bucket.html">creating a bucket</a> for details.</p>
</main>
<footer>Feedback | Privacy</footer>
</body>
</html>`

func TestToMarkdown_Deterministic(t *testing.T) {
	// WHAT: Converting identical input twice yields byte-identical output.
	// WHY: The fetch cache stores converted documents by URL; two processes
	// converting the same page must agree.
	first, err := ToMarkdown([]byte(samplePage), "https://docs.aws.amazon.com/s3/latest/userguide/rules.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	second, err := ToMarkdown([]byte(samplePage), "https://docs.aws.amazon.com/s3/latest/userguide/rules.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if first.Markdown != second.Markdown {
		t.Error("conversion is not deterministic")
	}
}

func TestToMarkdown_StripsChrome(t *testing.T) {
	// WHAT: Navigation, scripts, styles, headers and footers never surface.
	// WHY: Boilerplate chrome wastes the caller's context window.
	res, err := ToMarkdown([]byte(samplePage), "https://docs.aws.amazon.com/s3/latest/userguide/rules.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, banned := range []string{"window.tracking", ".hidden", "Feedback | Privacy", "AWS Documentation"} {
		if strings.Contains(res.Markdown, banned) {
			t.Errorf("output contains boilerplate %q", banned)
		}
	}
}

func TestToMarkdown_Structure(t *testing.T) {
	// WHAT: Headings, lists, code fences, tables, and links survive conversion.
	res, err := ToMarkdown([]byte(samplePage), "https://docs.aws.amazon.com/s3/latest/userguide/rules.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	md := res.Markdown

	if !strings.Contains(md, "# Bucket naming rules") {
		t.Error("missing h1 marker")
	}
	if !strings.Contains(md, "## General purpose buckets") {
		t.Error("missing h2 marker")
	}
	if !strings.Contains(md, "- Names must begin with a letter or number.") {
		t.Error("missing list item marker")
	}
	if !strings.Contains(md, "```") {
		t.Error("missing code fence")
	}
	if !strings.Contains(md, `{"Rules": []}`) {
		t.Error("code block content altered")
	}
	if !strings.Contains(md, "|") || !strings.Contains(md, "Minimum length") {
		t.Error("table rows not converted")
	}
	if !strings.Contains(md, "https://docs.aws.amazon.com/s3/latest/userguide/create-bucket.html") {
		t.Error("link target dropped")
	}
	if !strings.Contains(md, "creating a bucket") {
		t.Error("link text dropped")
	}
}

func TestToMarkdown_Title(t *testing.T) {
	res, err := ToMarkdown([]byte(samplePage), "https://docs.aws.amazon.com/s3/latest/userguide/rules.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Title != "Amazon S3 bucket naming rules" {
		t.Errorf("title: got %q", res.Title)
	}
}

func TestToMarkdown_HiddenElements(t *testing.T) {
	// WHAT: Inline-hidden elements are dropped.
	// WHY: Hidden text is the classic vector for stuffing pages with
	// content the human reader never sees.
	page := `<html><body><main><p>visible text</p>` +
		`<p style="display: none">hidden text</p>` +
		`<p style="visibility: hidden">also hidden</p></main></body></html>`
	res, err := ToMarkdown([]byte(page), "https://docs.aws.amazon.com/x.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(res.Markdown, "visible text") {
		t.Error("visible text missing")
	}
	if strings.Contains(res.Markdown, "hidden") {
		t.Errorf("hidden text surfaced: %q", res.Markdown)
	}
}

func TestToMarkdown_EmptyPage(t *testing.T) {
	// WHAT: A page with no content converts to an empty string, not an error.
	res, err := ToMarkdown([]byte("<html><body></body></html>"), "https://docs.aws.amazon.com/x.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if res.Markdown != "" {
		t.Errorf("expected empty markdown, got %q", res.Markdown)
	}
}

func TestToMarkdown_ChromeClasses(t *testing.T) {
	// WHAT: Elements flagged as chrome by class or role are pruned.
	page := `<html><body>` +
		`<div class="breadcrumb"><a href="/">Home</a></div>` +
		`<div role="navigation">Menu</div>` +
		`<p>actual content</p></body></html>`
	res, err := ToMarkdown([]byte(page), "https://docs.aws.amazon.com/x.html")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if strings.Contains(res.Markdown, "Home") || strings.Contains(res.Markdown, "Menu") {
		t.Errorf("chrome surfaced: %q", res.Markdown)
	}
	if !strings.Contains(res.Markdown, "actual content") {
		t.Error("content missing")
	}
}

func TestIsHTML(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		want        bool
	}{
		{"html content type", "text/html; charset=utf-8", "plain", true},
		{"missing content type", "", "anything", true},
		{"sniffed html", "text/plain", "<!DOCTYPE html><html>", true},
		{"sniffed html lowercase", "application/octet-stream", "<html><body>", true},
		{"plain text", "text/plain", "just words", false},
		{"json", "application/json", `{"a":1}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsHTML(tc.contentType, []byte(tc.body)); got != tc.want {
				t.Errorf("IsHTML(%q, %q): got %v, want %v", tc.contentType, tc.body, got, tc.want)
			}
		})
	}
}
