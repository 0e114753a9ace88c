// Package render serializes an annotated HTML tree with the output
// conventions the annotated documents rely on: boolean attributes in their
// minimal form, <br> without a self-closing slash, standard entity escaping
// everywhere else.
package render

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// booleanAttrs are attributes whose presence alone carries meaning. The
// stock serializer writes them as name=""; they are emitted bare instead.
var booleanAttrs = map[string]bool{
	"async":      true,
	"autofocus":  true,
	"autoplay":   true,
	"checked":    true,
	"controls":   true,
	"defer":      true,
	"disabled":   true,
	"hidden":     true,
	"ismap":      true,
	"loop":       true,
	"multiple":   true,
	"muted":      true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"reversed":   true,
	"selected":   true,
}

// voidElements never get a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements take their child text verbatim, without entity escaping.
var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "xmp": true,
}

// Document serializes n and its subtree to w.
func Document(w io.Writer, n *html.Node) error {
	var b bytes.Buffer
	writeNode(&b, n, false)
	_, err := w.Write(b.Bytes())
	return err
}

// Fragment serializes only the children of container to w, for documents
// that were parsed as rootless fragments.
func Fragment(w io.Writer, container *html.Node) error {
	var b bytes.Buffer
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		writeNode(&b, c, false)
	}
	_, err := w.Write(b.Bytes())
	return err
}

func writeNode(b *bytes.Buffer, n *html.Node, raw bool) {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c, false)
		}
	case html.DoctypeNode:
		writeDoctype(b, n)
	case html.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case html.TextNode:
		if raw {
			b.WriteString(n.Data)
		} else {
			b.WriteString(html.EscapeString(n.Data))
		}
	case html.ElementNode:
		writeElement(b, n)
	}
}

func writeElement(b *bytes.Buffer, n *html.Node) {
	tag := n.Data
	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(a.Key)
		if a.Val == "" && booleanAttrs[strings.ToLower(a.Key)] {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	if voidElements[strings.ToLower(tag)] {
		// <br/> is the one historically inconsistent form in the source
		// documents; it is emitted without the slash.
		if strings.EqualFold(tag, "br") {
			b.WriteByte('>')
		} else {
			b.WriteString("/>")
		}
		return
	}
	b.WriteByte('>')
	raw := rawTextElements[strings.ToLower(tag)]
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c, raw)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func writeDoctype(b *bytes.Buffer, n *html.Node) {
	b.WriteString("<!DOCTYPE ")
	b.WriteString(n.Data)
	var public, system string
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			public = a.Val
		case "system":
			system = a.Val
		}
	}
	if public != "" {
		b.WriteString(` PUBLIC "`)
		b.WriteString(public)
		b.WriteByte('"')
		if system != "" {
			b.WriteString(` "`)
			b.WriteString(system)
			b.WriteByte('"')
		}
	} else if system != "" {
		b.WriteString(` SYSTEM "`)
		b.WriteString(system)
		b.WriteByte('"')
	}
	b.WriteByte('>')
}
