// Package annotate walks a parsed HTML tree and marks translatable text and
// attribute values with data-i18n annotations, registering every key it
// places.
package annotate

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/i18nmark/i18nmark/internal/registry"
	"github.com/i18nmark/i18nmark/internal/textrules"
)

// Walk annotates every element under root depth-first, mutating the tree in
// place and recording each placed key in reg. Running Walk on its own
// output is a no-op.
func Walk(root *html.Node, pol *Policy, reg *registry.Registry) {
	if root == nil {
		return
	}
	if root.Type == html.ElementNode {
		visit(root, pol, reg)
		return
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, pol, reg)
	}
}

// WalkFragment annotates the children of container, which holds a parsed
// rootless fragment. The container itself is never annotated, so fragment
// top-level text runs are span-wrapped rather than folded into a synthetic
// parent.
func WalkFragment(container *html.Node, pol *Policy, reg *registry.Registry) {
	if container == nil {
		return
	}
	wrapTextChildren(container, reg)
	recurse(container, pol, reg)
}

// visit applies the annotation rules to one element, in strict priority:
// skip, option reservation, attributes, whole-node text-only, whole-node
// with structural children, per-text-node wrapping, then recursion.
func visit(n *html.Node, pol *Policy, reg *registry.Registry) {
	tag := strings.ToLower(n.Data)
	if pol.Skipped(tag) {
		return
	}
	if tag == "option" {
		visitOption(n, reg)
		return
	}

	annotateAttrs(n, pol, reg)

	direct := directText(n)
	switch {
	case hasAttr(n, DataAttr):
		// Already annotated by an earlier run; only descend.
	case textrules.Translatable(direct) && !pol.Preserved(tag):
		kids := childElements(n)
		switch {
		case len(kids) == 0:
			setAttr(n, DataAttr, reg.Add(direct))
			removeChildren(n, func(*html.Node) bool { return true })
			return
		case allStructural(kids):
			setAttr(n, DataAttr, reg.Add(direct))
			removeChildren(n, func(c *html.Node) bool { return c.Type == html.TextNode })
		default:
			wrapTextChildren(n, reg)
		}
	default:
		wrapTextChildren(n, reg)
	}

	recurse(n, pol, reg)
}

// recurse descends into remaining child elements, honoring the skip set and
// never re-entering an annotation span.
func recurse(n *html.Node, pol *Policy, reg *registry.Registry) {
	for _, c := range childElements(n) {
		if pol.Skipped(c.Data) || isAnnotationSpan(c) {
			continue
		}
		visit(c, pol, reg)
	}
}

// visitOption handles the reserved <option> tag: only its own text is ever
// considered, and its value attribute and children are left untouched.
// Option values are machine-readable identifiers and must never be swapped
// for translated text.
func visitOption(n *html.Node, reg *registry.Registry) {
	if hasAttr(n, DataAttr) {
		return
	}
	direct := directText(n)
	if !textrules.Translatable(direct) {
		return
	}
	setAttr(n, DataAttr, reg.Add(direct))
}

// annotateAttrs rewrites each translatable attribute value into its
// data-i18n-* form.
func annotateAttrs(n *html.Node, pol *Policy, reg *registry.Registry) {
	for _, name := range translatableAttrs {
		val, ok := getAttr(n, name)
		if !ok || !textrules.Translatable(val) {
			continue
		}
		setAttr(n, attrPrefix+name, reg.Add(val))
		if !pol.keepAttrs {
			removeAttr(n, name)
		}
	}
}

// wrapTextChildren replaces each translatable direct text run of n with a
// span annotation, keeping leading and trailing whitespace outside the span
// so layout survives. Whitespace-only text nodes are preserved untouched.
func wrapTextChildren(n *html.Node, reg *registry.Registry) {
	for _, c := range childNodes(n) {
		if c.Type != html.TextNode || strings.TrimSpace(c.Data) == "" {
			continue
		}
		leading, core, trailing := splitEdgeSpace(c.Data)
		if !textrules.Translatable(core) {
			continue
		}
		span := &html.Node{Type: html.ElementNode, DataAtom: atom.Span, Data: "span"}
		span.Attr = []html.Attribute{{Key: DataAttr, Val: reg.Add(core)}}
		span.AppendChild(&html.Node{Type: html.TextNode, Data: core})
		if leading != "" {
			n.InsertBefore(&html.Node{Type: html.TextNode, Data: leading}, c)
		}
		n.InsertBefore(span, c)
		if trailing != "" {
			n.InsertBefore(&html.Node{Type: html.TextNode, Data: trailing}, c)
		}
		n.RemoveChild(c)
	}
}

// directText concatenates the immediate text-node children of n, joining
// runs with a space so text separated by elements keeps a word boundary.
func directText(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			parts = append(parts, c.Data)
		}
	}
	return strings.Join(parts, " ")
}

// childNodes snapshots the full child list so callers can mutate it while
// iterating.
func childNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// childElements snapshots the element children of n.
func childElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func allStructural(kids []*html.Node) bool {
	for _, c := range kids {
		if !structuralTags[strings.ToLower(c.Data)] {
			return false
		}
	}
	return true
}

// removeChildren detaches every child of n matching the predicate, working
// on a snapshot of the child list.
func removeChildren(n *html.Node, match func(*html.Node) bool) {
	for _, c := range childNodes(n) {
		if match(c) {
			n.RemoveChild(c)
		}
	}
}

func isAnnotationSpan(n *html.Node) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, "span") && hasAttr(n, DataAttr)
}

// splitEdgeSpace splits s into leading whitespace, core and trailing
// whitespace.
func splitEdgeSpace(s string) (leading, core, trailing string) {
	woLead := strings.TrimLeftFunc(s, unicode.IsSpace)
	leading = s[:len(s)-len(woLead)]
	core = strings.TrimRightFunc(woLead, unicode.IsSpace)
	trailing = woLead[len(core):]
	return leading, core, trailing
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := getAttr(n, key)
	return ok
}

// setAttr replaces key's value if present, otherwise appends it.
func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if strings.EqualFold(n.Attr[i].Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, key) {
			out = append(out, a)
		}
	}
	n.Attr = out
}
