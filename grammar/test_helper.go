package grammar

import (
	"strings"
	"testing"

	"github.com/nihei9/ll1tab/parser"
)

// buildGrammar parses src and loads it into a Grammar, failing the
// test on any error. It is the common entry point for every
// table-driven test in this package.
func buildGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	prods, err := parser.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("failed to parse test source: %v", err)
	}
	g, err := Load(prods)
	if err != nil {
		t.Fatalf("failed to load grammar: %v", err)
	}
	return g
}

type testSymbolGenerator func(text string) Symbol

func newTestSymbolGenerator(t *testing.T, g *Grammar) testSymbolGenerator {
	return func(text string) Symbol {
		t.Helper()

		sym, ok := g.Symbols.ToSymbol(text)
		if !ok {
			t.Fatalf("symbol was not found; text: %v", text)
		}
		return sym
	}
}
