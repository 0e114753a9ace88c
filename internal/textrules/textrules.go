// Package textrules decides which strings are translation candidates and
// normalizes them into stable dictionary keys.
package textrules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// templateMarkers are the bracket patterns of the templating systems whose
// output feeds this tool. A candidate containing any of them is an
// expression, not prose, and must survive verbatim.
var templateMarkers = []string{"{{", "}}", "{%", "%}", "@{", "%{"}

// letterRe matches ASCII letters plus Polish diacritics. Both cases are
// listed so no folding is needed.
var letterRe = regexp.MustCompile(`[A-Za-zĄąĆćĘęŁłŃńÓóŚśŹźŻż]`)

var spaceRe = regexp.MustCompile(`\s+`)

// Normalize collapses interior whitespace runs to single spaces, trims both
// ends and canonicalizes to NFC so byte-different but canonically equal
// strings map to one key. Idempotent.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(spaceRe.ReplaceAllString(s, " ")))
}

// Translatable reports whether s should be extracted for translation:
// no template markers, more than one rune after trimming, and at least one
// letter from the recognized set.
func Translatable(s string) bool {
	for _, m := range templateMarkers {
		if strings.Contains(s, m) {
			return false
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(s)) <= 1 {
		return false
	}
	return letterRe.MatchString(s)
}
