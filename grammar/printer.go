package grammar

import (
	"fmt"
	"io"
)

// PrintGrammar writes a plain-text trace rendering of g, one
// non-terminal per line group, in definition order. It is used by the
// trace log only; human-facing output goes through the render
// package instead.
func PrintGrammar(w io.Writer, g *Grammar) {
	if w == nil {
		return
	}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		nt := g.NonTerminal(sym)
		name, _ := g.Symbols.ToText(sym)
		for _, prod := range nt.Alternatives {
			fmt.Fprintf(w, "%v ->", name)
			for _, bodySym := range prod.Body {
				fmt.Fprintf(w, " %v", symbolText(g, bodySym))
			}
			fmt.Fprintln(w)
		}
	}
}

// symbolText resolves a Symbol to its source text for trace output,
// falling back to its String() form for the reserved ε and $ symbols.
func symbolText(g *Grammar, sym Symbol) string {
	if text, ok := g.Symbols.ToText(sym); ok {
		return text
	}
	return sym.String()
}
