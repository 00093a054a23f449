package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	tab := newSymbolTable()
	s := tab.internNonTerminal("s", true)
	n := tab.internNonTerminal("n", false)
	tm := tab.InternTerminal("t")

	tests := []struct {
		caption       string
		sym           Symbol
		text          string
		isNil         bool
		isStart       bool
		isNonTerminal bool
		isTerminal    bool
	}{
		{"s is the start symbol", s, "s", false, true, true, false},
		{"n is a non-terminal symbol", n, "n", false, false, true, false},
		{"t is a terminal symbol", tm, "t", false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			assert.Equal(t, tt.isNil, tt.sym.IsNil())
			assert.Equal(t, tt.isStart, tt.sym.IsStart())
			assert.Equal(t, tt.isNonTerminal, tt.sym.IsNonTerminal())
			assert.Equal(t, tt.isTerminal, tt.sym.IsTerminal())

			text, ok := tab.ToText(tt.sym)
			assert.True(t, ok)
			assert.Equal(t, tt.text, text)
		})
	}

	t.Run("SymbolNil is the nil symbol", func(t *testing.T) {
		assert.True(t, SymbolNil.IsNil())
		assert.False(t, SymbolNil.IsNonTerminal())
		assert.False(t, SymbolNil.IsTerminal())
	})

	t.Run("SymbolEpsilon is epsilon and not a non-terminal", func(t *testing.T) {
		assert.True(t, SymbolEpsilon.IsEpsilon())
		assert.False(t, SymbolEpsilon.IsNonTerminal())
	})

	t.Run("SymbolEndMarker is the end marker and not a non-terminal", func(t *testing.T) {
		assert.True(t, SymbolEndMarker.IsEndMarker())
		assert.False(t, SymbolEndMarker.IsNonTerminal())
	})

	t.Run("interning the same name twice returns the same symbol", func(t *testing.T) {
		again := tab.internNonTerminal("n", false)
		assert.Equal(t, n, again)
	})
}
