package goldmark_test

import (
	"testing"

	"github.com/fwojciec/roster/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "plain sentence becomes paragraph",
			input:    "Jane Smith is emeritus.",
			contains: []string{"<p>Jane Smith is emeritus.</p>"},
		},
		{
			name:     "emphasis",
			input:    "That is **very** *likely*.",
			contains: []string{"<strong>very</strong>", "<em>likely</em>"},
		},
		{
			name:     "list",
			input:    "- one\n- two",
			contains: []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:     "code block",
			input:    "```\nfmt.Println(1)\n```",
			contains: []string{"<pre><code>fmt.Println(1)\n</code></pre>"},
		},
		{
			name:     "raw HTML is dropped",
			input:    "<script>alert(1)</script>\n\nhello",
			contains: []string{"<p>hello</p>"},
			excludes: []string{"<script>"},
		},
		{
			name:     "single newline becomes line break",
			input:    "first\nsecond",
			contains: []string{"first<br>"},
		},
	}

	conv := goldmark.NewConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.Convert(tt.input)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestConverter_Convert_Empty(t *testing.T) {
	t.Parallel()

	got, err := goldmark.NewConverter().Convert("  \n ")

	require.NoError(t, err)
	assert.Empty(t, got)
}
