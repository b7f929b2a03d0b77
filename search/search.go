// Package search provides full-text search over stored conversations.
// Based on: https://artem.krylysov.com/blog/2020/07/28/lets-build-a-full-text-search-engine/
package search

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
	snowballspa "github.com/kljensen/snowball/spanish"

	"github.com/smerlos/convoset/turn"
)

// Index is an inverted index mapping analyzed tokens to positions in the
// conversation list it was built from.
type Index map[string][]int

// Build indexes conversation titles and turn content. Positions refer to the
// given slice, so callers keep the slice around for lookups.
func Build(conversations []*turn.Conversation) Index {
	idx := make(Index)
	for pos, c := range conversations {
		idx.add(pos, c.Title)
		for _, t := range c.Turns {
			idx.add(pos, t.Content)
		}
	}
	return idx
}

func (idx Index) add(pos int, text string) {
	for _, token := range analyze(text) {
		for _, stemmed := range stemVariants(token) {
			if contains(idx[stemmed], pos) {
				continue
			}
			idx[stemmed] = append(idx[stemmed], pos)
		}
	}
}

// Search returns the positions of conversations containing ALL query terms.
// A term matches through any of its language-stem variants.
func (idx Index) Search(query string) []int {
	var r []int
	for _, token := range analyze(query) {
		var ids []int
		for _, stemmed := range stemVariants(token) {
			ids = union(ids, idx[stemmed])
		}
		if len(ids) == 0 {
			return nil
		}
		if r == nil {
			r = ids
		} else {
			r = intersection(r, ids)
		}
	}
	return r
}

// analyze runs the text analysis pipeline: tokenize, lowercase, drop stop
// words. Stemming happens per variant in stemVariants.
func analyze(text string) []string {
	tokens := tokenize(text)
	tokens = toLower(tokens)
	return removeCommonWords(tokens)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func toLower(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

// stopWords covers the common words of both dataset languages. "a" and "en"
// appear in both lists.
var stopWords = map[string]struct{}{
	"a":    {},
	"and":  {},
	"be":   {},
	"have": {},
	"i":    {},
	"in":   {},
	"of":   {},
	"that": {},
	"the":  {},
	"to":   {},
	"con":  {},
	"de":   {},
	"el":   {},
	"en":   {},
	"la":   {},
	"las":  {},
	"los":  {},
	"para": {},
	"por":  {},
	"que":  {},
	"un":   {},
	"una":  {},
	"y":    {},
}

func removeCommonWords(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopWords[token]; !ok {
			r = append(r, token)
		}
	}
	return r
}

// stemVariants stems a token in both dataset languages. Index and query run
// the same expansion, so two words match whenever they share a stem in either
// language.
func stemVariants(token string) []string {
	eng := snowballeng.Stem(token, false)
	spa := snowballspa.Stem(token, false)
	if spa == eng {
		return []string{eng}
	}
	return []string{eng, spa}
}

func contains(slice []int, val int) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}

// union merges two sorted posting lists without duplicates.
func union(a, b []int) []int {
	r := make([]int, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			r = append(r, a[i])
			i++
		case a[i] > b[j]:
			r = append(r, b[j])
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	r = append(r, a[i:]...)
	return append(r, b[j:]...)
}

// intersection finds common positions between two sorted posting lists.
func intersection(a, b []int) []int {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	r := make([]int, 0, maxLen)
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			i++
		} else if a[i] > b[j] {
			j++
		} else {
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}
