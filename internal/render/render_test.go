package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parseFragment(t *testing.T, src string) *html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body
}

func renderFragment(t *testing.T, src string) string {
	t.Helper()
	var b strings.Builder
	if err := Fragment(&b, parseFragment(t, src)); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestBooleanAttributesBare(t *testing.T) {
	got := renderFragment(t, `<input type="checkbox" checked disabled>`)
	want := `<input type="checkbox" checked disabled/>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmptyNonBooleanAttributeKeepsQuotes(t *testing.T) {
	got := renderFragment(t, `<input value="">`)
	want := `<input value=""/>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBrWithoutSlashOtherVoidsWithSlash(t *testing.T) {
	got := renderFragment(t, `<p>a<br>b</p><img src="x.png"><hr>`)
	if !strings.Contains(got, "<br>") || strings.Contains(got, "<br/>") {
		t.Fatalf("expected bare <br>, got %q", got)
	}
	if !strings.Contains(got, `<img src="x.png"/>`) {
		t.Fatalf("expected self-closing img, got %q", got)
	}
	if !strings.Contains(got, "<hr/>") {
		t.Fatalf("expected self-closing hr, got %q", got)
	}
}

func TestAttributeValueEscaping(t *testing.T) {
	got := renderFragment(t, `<div title="say &quot;hi&quot; &amp; go"></div>`)
	want := `<div title="say &#34;hi&#34; &amp; go"></div>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScriptContentVerbatim(t *testing.T) {
	src := `<script>if (a < b && c > d) { run("x"); }</script>`
	got := renderFragment(t, src)
	if got != src {
		t.Fatalf("script content changed: got %q, want %q", got, src)
	}
}

func TestTextEscaping(t *testing.T) {
	got := renderFragment(t, `<p>1 &lt; 2 &amp; 3</p>`)
	want := `<p>1 &lt; 2 &amp; 3</p>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDocumentWithDoctypeAndComment(t *testing.T) {
	doc, err := html.Parse(strings.NewReader("<!DOCTYPE html><html><head></head><body><!-- note --><p>hej</p></body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var b strings.Builder
	if err := Document(&b, doc); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype: %q", got)
	}
	if !strings.Contains(got, "<!-- note -->") {
		t.Fatalf("missing comment: %q", got)
	}
	if !strings.Contains(got, "<p>hej</p>") {
		t.Fatalf("missing paragraph: %q", got)
	}
}
