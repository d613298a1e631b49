// Package label normalizes the free-text labels that flow through the rule
// tables: category names, color names and heuristic keywords.
//
// Catalog text is Turkish and arrives from a scraper, so it may be in either
// composed or decomposed form. Every comparison goes through Fold, which
// applies NFC and full Unicode case folding.
package label

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the caseless, NFC-normalized form of s with surrounding
// whitespace removed.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// a Caser carries state, so one is built per call
	return cases.Fold().String(norm.NFC.String(s))
}

// Equal reports whether a and b are the same label ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// FoldAll folds every entry of in, dropping entries that fold to "".
func FoldAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if f := Fold(s); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ContainsAny reports whether the folded haystack contains at least one of
// the already folded needles.
func ContainsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// Set is a membership set of folded labels.
type Set map[string]struct{}

// NewSet folds labels into a Set.
func NewSet(labels ...string) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		if f := Fold(l); f != "" {
			s[f] = struct{}{}
		}
	}
	return s
}

// Has reports whether l (folded on the fly) is in the set.
func (s Set) Has(l string) bool {
	_, ok := s[Fold(l)]
	return ok
}

// HasAny reports whether any of labels is in the set.
func (s Set) HasAny(labels []string) bool {
	for _, l := range labels {
		if s.Has(l) {
			return true
		}
	}
	return false
}
