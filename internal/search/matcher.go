// Package search ranks short labels against a typed query with trigram
// matching. Every query word must match; accents and case are ignored.
package search

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minCoverage is the share of a word's trigrams an item must contain.
const minCoverage = 0.4

// Match is a matching item and its score.
type Match struct {
	Index int
	Score float64
}

// Matcher indexes a fixed list of values.
type Matcher struct {
	normalized []string
	trigrams   []map[string]struct{}
}

// NewMatcher indexes values.
func NewMatcher(values []string) *Matcher {
	m := &Matcher{
		normalized: make([]string, len(values)),
		trigrams:   make([]map[string]struct{}, len(values)),
	}
	for i, v := range values {
		text := Normalize(v)
		m.normalized[i] = text
		m.trigrams[i] = trigrams(text)
	}
	return m
}

// Len returns the number of indexed values.
func (m *Matcher) Len() int {
	return len(m.normalized)
}

// Search returns the matches of query, best first. Equal scores keep index
// order. A blank query matches everything with a zero score.
func (m *Matcher) Search(query string) []Match {
	words := strings.Fields(Normalize(query))
	if len(words) == 0 {
		all := make([]Match, len(m.normalized))
		for i := range all {
			all[i] = Match{Index: i}
		}
		return all
	}

	wordTris := make([]map[string]struct{}, len(words))
	for i, w := range words {
		wordTris[i] = trigrams(w)
	}

	var matches []Match
	for i := range m.normalized {
		if score := m.score(i, words, wordTris); score > 0 {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

func (m *Matcher) score(idx int, words []string, wordTris []map[string]struct{}) float64 {
	text := m.normalized[idx]
	total := 0.0

	for i, word := range words {
		// Too short for trigrams.
		if len([]rune(word)) <= 2 {
			if !strings.Contains(text, word) {
				return 0
			}
			total++
			continue
		}

		c := coverage(wordTris[i], m.trigrams[idx])
		if c < minCoverage {
			return 0
		}
		if strings.Contains(text, word) {
			c += 0.5
		}
		total += c
	}
	return total / float64(len(words))
}

var fold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s and strips diacritics, so "Café" matches "cafe".
func Normalize(s string) string {
	out, _, err := transform.String(fold, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// trigrams returns the trigram set of s, padded so prefixes and suffixes
// produce their own trigrams.
func trigrams(s string) map[string]struct{} {
	if s == "" {
		return nil
	}
	r := []rune("  " + s + "  ")
	tris := make(map[string]struct{}, len(r))
	for i := 0; i+3 <= len(r); i++ {
		tri := string(r[i : i+3])
		if strings.TrimSpace(tri) != "" {
			tris[tri] = struct{}{}
		}
	}
	return tris
}

// coverage returns |query ∩ item| / |query|.
func coverage(query, item map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	n := 0
	for tri := range query {
		if _, ok := item[tri]; ok {
			n++
		}
	}
	return float64(n) / float64(len(query))
}
