package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFirst(t *testing.T) {
	tests := []struct {
		caption   string
		src       string
		nt        string
		terminals []string
		nullable  bool
	}{
		{
			caption:   "arithmetic grammar without operators",
			src:       "E -> T\nT -> F\nF -> ( E ) | id\n",
			nt:        "E",
			terminals: []string{"(", "id"},
			nullable:  false,
		},
		{
			caption:   "nullable propagation",
			src:       "S -> A B\nA -> a | eps\nB -> b\n",
			nt:        "S",
			terminals: []string{"a", "b"},
			nullable:  false,
		},
		{
			caption:   "A is nullable",
			src:       "S -> A B\nA -> a | eps\nB -> b\n",
			nt:        "A",
			terminals: []string{"a"},
			nullable:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := buildGrammar(t, tt.src)
			genSym := newTestSymbolGenerator(t, g)
			fst := ComputeFirst(g)

			var want []Symbol
			for _, text := range tt.terminals {
				want = append(want, genSym(text))
			}
			entry := fst.Of(genSym(tt.nt))
			assert.ElementsMatch(t, want, entry.Terminals())
			assert.Equal(t, tt.nullable, entry.Nullable())
		})
	}
}

func TestFirstOfBody(t *testing.T) {
	g := buildGrammar(t, "A -> a | eps\nB -> b\n")
	genSym := newTestSymbolGenerator(t, g)
	fst := ComputeFirst(g)

	t.Run("a nullable prefix lets the following symbol's FIRST through", func(t *testing.T) {
		entry := fst.OfBody([]Symbol{genSym("A"), genSym("B")})
		assert.ElementsMatch(t, []Symbol{genSym("a"), genSym("b")}, entry.Terminals())
		assert.False(t, entry.Nullable())
	})

	t.Run("an empty body is nullable", func(t *testing.T) {
		entry := fst.OfBody(nil)
		assert.True(t, entry.Nullable())
		assert.Empty(t, entry.Terminals())
	})
}
