// Package fuzzy ranks registered option tokens against an unknown one so the
// parser can offer a "did you mean" hint.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultMaxDistance is the edit distance used by SuggestOption.
const DefaultMaxDistance = 2

// Candidate is a registered token that is close to the input.
type Candidate struct {
	Token    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// Matcher compares option tokens by their names, ignoring leading dashes.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher that accepts candidates within maxDistance edits.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // single letters match almost anything
	}
}

// StripDashes removes the leading '-' characters of an option token.
func StripDashes(tok string) string {
	return strings.TrimLeft(tok, "-")
}

// Rank returns the tokens close to input, best first. A token equal to input
// is never returned. Tokens are compared without their dashes, so "-verbose"
// ranks "--verbose" at distance zero.
func (m *Matcher) Rank(input string, tokens []string) []Candidate {
	name := StripDashes(input)
	if len(name) < m.minLength {
		return nil
	}

	var out []Candidate
	for _, tok := range tokens {
		if tok == input || tok == "" {
			continue
		}
		other := StripDashes(tok)
		d := m.distance(name, other)
		if d > m.maxDistance {
			continue
		}
		out = append(out, Candidate{
			Token:    tok,
			Distance: d,
			Score:    score(name, other, d),
		})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Distance, b.Distance)
	})
	return out
}

// Best returns the highest ranked token or "".
func (m *Matcher) Best(input string, tokens []string) string {
	ranked := m.Rank(input, tokens)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Token
}

// SuggestOption returns the registered token closest to an unknown option, or "".
func SuggestOption(tok string, known []string) string {
	return NewMatcher(DefaultMaxDistance).Best(tok, known)
}

// score favors small edit distance, then a shared prefix, then similar length.
func score(a, b string, d int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}
	s := 1.0 - float64(d)/float64(longest)

	if shortest := min(len(a), len(b)); shortest > 0 {
		s += 0.3 * float64(prefixLen(a, b)) / float64(shortest)
	}
	diff := len(a) - len(b)
	if diff < 0 {
		diff = -diff
	}
	s += 0.2 * (1.0 - float64(diff)/float64(longest))

	return min(s, 1.0)
}

func prefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// distance is the Levenshtein distance between a and b, or maxDistance+1 once
// it is known to exceed maxDistance.
func (m *Matcher) distance(a, b string) int {
	limit := m.maxDistance + 1
	if diff := len(a) - len(b); diff >= limit || -diff >= limit {
		return limit
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			sub := prev[j-1]
			if a[j-1] != b[i-1] {
				sub++
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, sub)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin >= limit {
			return limit
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}
