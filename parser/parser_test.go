package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    []Production
	}{
		{
			caption: "a single production with a single alternative",
			src:     "S -> a\n",
			want: []Production{
				{LHS: "S", Line: 1, Alternatives: [][]string{{"a"}}},
			},
		},
		{
			caption: "alternatives separated by |",
			src:     "S -> a b | a c\n",
			want: []Production{
				{LHS: "S", Line: 1, Alternatives: [][]string{{"a", "b"}, {"a", "c"}}},
			},
		},
		{
			caption: "eps denotes the empty alternative",
			src:     "A -> a\nA -> eps\n",
			want: []Production{
				{LHS: "A", Line: 1, Alternatives: [][]string{{"a"}}},
				{LHS: "A", Line: 2, Alternatives: [][]string{{"eps"}}},
			},
		},
		{
			caption: "comments and blank lines are skipped",
			src:     "# a comment\n\nS -> a\n  # another comment\n",
			want: []Production{
				{LHS: "S", Line: 3, Alternatives: [][]string{{"a"}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.src))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		wantLine int
	}{
		{
			caption:  "a line missing ->",
			src:      "S a\n",
			wantLine: 1,
		},
		{
			caption:  "an alternative with no tokens",
			src:      "S -> a | \n",
			wantLine: 1,
		},
		{
			caption:  "a grammar with no productions",
			src:      "# only a comment\n",
			wantLine: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if assert.Error(t, err) {
				synErr, ok := err.(*SyntaxError)
				if assert.True(t, ok, "expected a *SyntaxError") {
					assert.Equal(t, tt.wantLine, synErr.Line)
				}
			}
		})
	}
}
