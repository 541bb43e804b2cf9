// Package edlib implements roster.Scorer with edit-distance based string
// similarity from github.com/hbollon/go-edlib.
package edlib

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/fwojciec/roster"
	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ensure TokenSortScorer implements roster.Scorer at compile time.
var _ roster.Scorer = (*TokenSortScorer)(nil)

// TokenSortScorer scores strings by comparing their sorted words, so word
// order does not affect the result ("smith jane" equals "jane smith").
type TokenSortScorer struct{}

// NewTokenSortScorer creates a new TokenSortScorer.
func NewTokenSortScorer() *TokenSortScorer {
	return &TokenSortScorer{}
}

// Score returns the similarity of a and b in [0,100]. Both strings are
// folded to ASCII, stripped of punctuation, lowercased, and their words
// sorted before comparison. Returns 0 when either side has no words.
func (s *TokenSortScorer) Score(a, b string) int {
	return Ratio(SortTokens(a), SortTokens(b))
}

// Ratio returns the indel similarity of a and b: twice the longest common
// subsequence over the combined length, as a rounded percentage.
func Ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	lcs := edlib.LCS(a, b)
	r := float64(2*lcs) / float64(len(a)+len(b))
	return int(math.RoundToEven(100 * r))
}

// SortTokens normalizes s and returns its words sorted and joined by single
// spaces.
func SortTokens(s string) string {
	tokens := strings.Fields(normalize(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// normalize folds accented letters to their base form, drops remaining
// non-ASCII runes, replaces anything but letters, digits and underscore
// with a space, and lowercases the result.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}
