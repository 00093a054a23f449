package grammar

import "github.com/nihei9/ll1tab/log"

// RemoveLeftRecursion rewrites direct left recursion out of every
// non-terminal of g independently. For A -> A α1 | A α2 | ... | β1 |
// β2 | ... (no βj itself starting with A), each βj becomes βj A', and
// a fresh A' -> α1 A' | α2 A' | ... | ε is introduced. Indirect
// recursion (through some other non-terminal) is never touched.
func RemoveLeftRecursion(g *Grammar) {
	log.Stage("remove-left-recursion")
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		removeLeftRecursionOf(g, sym)
	}
	PrintGrammar(log.GetWriter(), g)
}

func removeLeftRecursionOf(g *Grammar, sym Symbol) {
	nt := g.NonTerminal(sym)

	var alphas [][]Symbol
	var betas [][]Symbol
	for _, p := range nt.Alternatives {
		if len(p.Body) > 0 && p.Body[0] == sym {
			if len(p.Body) == 1 {
				// A -> A alone: α is the empty string, but the rewrite
				// must not collapse to ε A' (that would make A' -> ε A'
				// indistinguishable from a non-recursive ε alternative).
				// The recursive tail becomes A' by itself.
				alphas = append(alphas, nil)
			} else {
				alphas = append(alphas, p.Body[1:])
			}
			continue
		}
		betas = append(betas, p.Body)
	}

	if len(alphas) == 0 {
		return
	}

	name, _ := g.Symbols.ToText(sym)
	aPrime := g.freshNonTerminal(name)
	aPrimeNT := g.NonTerminal(aPrime)

	var newBetas [][]Symbol
	for _, beta := range betas {
		newBetas = append(newBetas, append(append([]Symbol{}, beta...), aPrime))
	}
	nt.replaceAlternatives(newBetas)

	var primeAlts [][]Symbol
	for _, alpha := range alphas {
		if alpha == nil {
			primeAlts = append(primeAlts, []Symbol{aPrime})
			continue
		}
		primeAlts = append(primeAlts, append(append([]Symbol{}, alpha...), aPrime))
	}
	primeAlts = append(primeAlts, []Symbol{SymbolEpsilon})
	aPrimeNT.replaceAlternatives(primeAlts)
}
