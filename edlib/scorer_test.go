package edlib_test

import (
	"testing"

	"github.com/fwojciec/roster/edlib"
	"github.com/stretchr/testify/assert"
)

func TestTokenSortScorer_Score(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "jane smith", "jane smith", 100},
		{"word order ignored", "smith jane", "jane smith", 100},
		{"case ignored", "JANE SMITH", "jane smith", 100},
		{"punctuation ignored", "smith, jane!", "jane smith", 100},
		{"accents folded", "José Núñez", "jose nunez", 100},
		{"one letter off", "jane smyth", "jane smith", 90},
		{"nothing in common", "abc", "xyz", 0},
		{"empty side", "", "jane smith", 0},
		{"punctuation only", "?!", "jane smith", 0},
		{"half rounds to even", "abcdefgh", "hijklmno", 12},
		{"name inside longer question", "does jane smith hold a degree?", "jane smith", 51},
	}

	scorer := edlib.NewTokenSortScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, scorer.Score(tt.a, tt.b))
		})
	}
}

func TestTokenSortScorer_Symmetric(t *testing.T) {
	t.Parallel()

	scorer := edlib.NewTokenSortScorer()

	assert.Equal(t, scorer.Score("ada lovelace", "lovelace"), scorer.Score("lovelace", "ada lovelace"))
}

func TestSortTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a degree does hold jane smith", edlib.SortTokens("Does Jane Smith hold a degree?"))
	assert.Equal(t, "o reilly", edlib.SortTokens("O'Reilly"))
	assert.Empty(t, edlib.SortTokens("  "))
}

func TestRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, edlib.Ratio("abc", "abc"))
	assert.Equal(t, 0, edlib.Ratio("", ""))
	assert.Equal(t, 67, edlib.Ratio("ab", "abcd"))
}
