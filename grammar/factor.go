package grammar

import "github.com/nihei9/ll1tab/log"

// LeftFactor performs one pass of left factoring over every
// non-terminal of g: for each non-terminal A, alternatives sharing a
// common leading symbol X are replaced by a single alternative
// [X, A_prime], with a fresh A_prime owning the suffixes. This is a
// single level of factoring, not a fixed point — a grammar needing
// several rounds of hoisting (e.g. "a | a b | a b c") only has its
// outermost common prefix factored out per call; callers wanting full
// factoring invoke LeftFactor repeatedly until the grammar stops
// changing.
func LeftFactor(g *Grammar) {
	log.Stage("left-factor")
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		leftFactorNonTerminal(g, sym)
	}
	PrintGrammar(log.GetWriter(), g)
}

func leftFactorNonTerminal(g *Grammar, sym Symbol) {
	nt := g.NonTerminal(sym)
	if len(nt.Alternatives) < 2 {
		return
	}

	original := nt.Alternatives
	processed := make([]bool, len(original))
	var rewritten [][]Symbol

	for i, p := range original {
		if processed[i] {
			continue
		}
		x := p.Body[0]

		group := []int{i}
		for j := i + 1; j < len(original); j++ {
			if processed[j] {
				continue
			}
			q := original[j]
			if len(q.Body) > 0 && q.Body[0] == x {
				group = append(group, j)
			}
		}

		if len(group) == 1 {
			processed[i] = true
			rewritten = append(rewritten, p.Body)
			continue
		}

		name, _ := g.Symbols.ToText(sym)
		fresh := g.freshNonTerminal(name)
		freshNT := g.NonTerminal(fresh)
		for _, idx := range group {
			q := original[idx]
			suffix := q.Body[1:]
			freshNT.addAlternative(suffix)
			processed[idx] = true
		}

		rewritten = append(rewritten, []Symbol{x, fresh})
	}

	nt.replaceAlternatives(rewritten)
}
