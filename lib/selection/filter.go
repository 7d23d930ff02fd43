// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package selection

import (
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func init() {
	algo.Init("default")
}

// Matcher decides whether an option label matches a keyword.
type Matcher interface {
	Match(label, keyword string) bool
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(label, keyword string) bool

// Match implements Matcher.
func (f MatcherFunc) Match(label, keyword string) bool {
	return f(label, keyword)
}

// MatchSubstring matches when the folded keyword occurs anywhere in
// the folded label, so "cafe" finds "Café" and "STRASSE" finds
// "Straße".
var MatchSubstring Matcher = MatcherFunc(func(label, keyword string) bool {
	return strings.Contains(Fold(label), Fold(keyword))
})

// Fold lower-cases s with Unicode case folding, strips combining marks,
// and maps Latin letters that have no decomposition (ø, ł, đ) to their
// base letter, so comparisons ignore case and diacritics. Case folding
// runs first so ß becomes "ss" before the letter mapping sees it.
func Fold(s string) string {
	folded := cases.Fold().String(s)
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), folded)
	if err != nil {
		stripped = folded
	}
	return string(algo.NormalizeRunes([]rune(stripped)))
}

// FuzzyMatcher matches labels with fzf's V2 algorithm: the keyword's
// characters must appear in order, not necessarily adjacent. It owns a
// scratch slab and must not be shared between goroutines.
type FuzzyMatcher struct {
	slab *util.Slab
}

// NewFuzzyMatcher creates a matcher with its own slab.
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{slab: util.MakeSlab(100*1024, 2048)}
}

// Match implements Matcher.
func (matcher *FuzzyMatcher) Match(label, keyword string) bool {
	_, ok := matcher.Score(label, keyword)
	return ok
}

// Score returns fzf's score for label; higher is better.
func (matcher *FuzzyMatcher) Score(label, keyword string) (int, bool) {
	pattern := []rune(Fold(strings.TrimSpace(keyword)))
	if len(pattern) == 0 {
		return 0, true
	}
	chars := util.ToChars([]byte(Fold(label)))
	result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, matcher.slab)
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}

// Filter returns the entries whose label matches keyword. Headers stay
// when one of their options matches, or when the group has no options
// at all. Group indices are rewritten for the returned slice. An empty
// keyword returns entries itself.
func Filter(entries []Entry, keyword string, matcher Matcher) []Entry {
	if keyword == "" {
		return entries
	}
	if matcher == nil {
		matcher = MatchSubstring
	}

	keep := make([]bool, len(entries))
	hasOptions := make([]bool, len(entries))
	for index, entry := range entries {
		if entry.Header {
			continue
		}
		matched := matcher.Match(entry.Label, keyword)
		keep[index] = matched
		for group := entry.Group; group >= 0; group = entries[group].Group {
			hasOptions[group] = true
			if matched {
				keep[group] = true
			}
		}
	}
	for index, entry := range entries {
		if entry.Header && !hasOptions[index] {
			keep[index] = true
		}
	}

	remapped := make([]int, len(entries))
	filtered := make([]Entry, 0, len(entries))
	for index, entry := range entries {
		if !keep[index] {
			continue
		}
		remapped[index] = len(filtered)
		if entry.Group >= 0 {
			if keep[entry.Group] {
				entry.Group = remapped[entry.Group]
			} else {
				entry.Group = -1
			}
		}
		filtered = append(filtered, entry)
	}
	return filtered
}
