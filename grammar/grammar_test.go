package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/ll1tab/parser"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	src := `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`
	g := buildGrammar(t, src)
	genSym := newTestSymbolGenerator(t, g)

	t.Run("the first non-terminal defined is the start symbol", func(t *testing.T) {
		assert.Equal(t, genSym("E"), g.Start)
		assert.True(t, g.Start.IsStart())
	})

	t.Run("every RHS token that is never a LHS is a terminal", func(t *testing.T) {
		for _, text := range []string{"+", "*", "(", ")", "id"} {
			sym, ok := g.FindTerminal(text)
			assert.True(t, ok, "expected %q to be a terminal", text)
			assert.True(t, sym.IsTerminal())
		}
	})

	t.Run("alternatives are recorded in insertion order", func(t *testing.T) {
		nt, ok := g.FindNonTerminal("E")
		assert.True(t, ok)
		assert.Equal(t, []Symbol{genSym("E"), genSym("+"), genSym("T")}, nt.Alternatives[0].Body)
		assert.Equal(t, []Symbol{genSym("T")}, nt.Alternatives[1].Body)
	})
}

func TestLoadEpsilon(t *testing.T) {
	g := buildGrammar(t, "A -> a\nA -> eps\n")
	nt, ok := g.FindNonTerminal("A")
	assert.True(t, ok)
	assert.True(t, nt.Alternatives[1].IsEpsilon())
}

func TestLoadRejectsReservedNames(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{"eps as a left-hand side", "eps -> a\n"},
		{"$ anywhere in the grammar", "S -> $\n"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			prods, err := parser.Parse(strings.NewReader(tt.src))
			assert.NoError(t, err)
			_, err = Load(prods)
			assert.Error(t, err)
		})
	}
}
