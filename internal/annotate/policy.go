package annotate

import (
	"fmt"
	"strings"
)

// DataAttr is the annotation attribute carrying the dictionary key for an
// element's text content.
const DataAttr = "data-i18n"

// attrPrefix derives the annotation name for a translatable attribute, e.g.
// placeholder becomes data-i18n-placeholder.
const attrPrefix = "data-i18n-"

// translatableAttrs is the fixed list of attributes whose values are
// translation candidates.
var translatableAttrs = []string{"title", "placeholder", "alt", "aria-label", "aria-description"}

// structuralTags are non-text-bearing elements. Their presence among a
// node's children does not demote the node from whole-node annotation.
var structuralTags = map[string]bool{
	"input":    true,
	"select":   true,
	"img":      true,
	"br":       true,
	"hr":       true,
	"wbr":      true,
	"progress": true,
	"meter":    true,
}

var defaultSkip = []string{"script", "style", "noscript", "iframe", "template"}

var defaultPreserve = []string{"b", "i", "em", "strong", "u", "small", "sub", "sup", "code"}

// Options configures a Policy. Tag names are matched case-insensitively.
type Options struct {
	// ExtraSkip extends the default skip set: tags whose subtrees are never
	// inspected or annotated.
	ExtraSkip []string
	// ExtraPreserve extends the default preserve-formatting set: inline tags
	// that are never whole-node annotated.
	ExtraPreserve []string
	// KeepAttributes retains original attributes next to their data-i18n-*
	// annotations instead of removing them.
	KeepAttributes bool
}

// Policy is the validated, read-only tag behavior table consulted during a
// walk.
type Policy struct {
	skip      map[string]bool
	preserve  map[string]bool
	keepAttrs bool
}

// NewPolicy builds the tag table from defaults plus opts and validates it.
// A tag configured both as skip and as preserve is contradictory and
// rejected.
func NewPolicy(opts Options) (*Policy, error) {
	p := &Policy{
		skip:      make(map[string]bool),
		preserve:  make(map[string]bool),
		keepAttrs: opts.KeepAttributes,
	}
	for _, t := range defaultSkip {
		p.skip[t] = true
	}
	for _, t := range opts.ExtraSkip {
		p.skip[strings.ToLower(strings.TrimSpace(t))] = true
	}
	for _, t := range defaultPreserve {
		p.preserve[t] = true
	}
	for _, t := range opts.ExtraPreserve {
		p.preserve[strings.ToLower(strings.TrimSpace(t))] = true
	}
	for t := range p.preserve {
		if p.skip[t] {
			return nil, fmt.Errorf("tag %q configured as both skip and preserve", t)
		}
	}
	return p, nil
}

// Skipped reports whether tag's entire subtree is off limits.
func (p *Policy) Skipped(tag string) bool { return p.skip[strings.ToLower(tag)] }

// Preserved reports whether tag is an inline formatting tag that must never
// be whole-node annotated.
func (p *Policy) Preserved(tag string) bool { return p.preserve[strings.ToLower(tag)] }
