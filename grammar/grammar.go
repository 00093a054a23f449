package grammar

import (
	"fmt"

	"github.com/nihei9/ll1tab/log"
	"github.com/nihei9/ll1tab/parser"
	"golang.org/x/exp/slices"
)

// Grammar is a set of non-terminals with unique names, a set of
// terminals with unique names, and a designated start non-terminal.
// It is built once by Load, mutated in place by LeftFactor and
// RemoveLeftRecursion, and frozen thereafter: FIRST, FOLLOW, and the
// parse table are all derived from a Grammar no transformer touches
// again.
type Grammar struct {
	Symbols *SymbolTable
	Start   Symbol

	nonTerminals map[Symbol]*NonTerminal
	order        []Symbol
}

func newGrammar() *Grammar {
	return &Grammar{
		Symbols:      newSymbolTable(),
		nonTerminals: map[Symbol]*NonTerminal{},
	}
}

// AddNonTerminal is idempotent: it returns the existing rule head for
// name if one is already registered, interning a new one (marked as
// the start symbol on first call) otherwise.
func (g *Grammar) AddNonTerminal(name string) Symbol {
	_, existed := g.Symbols.ToSymbol(name)
	sym := g.Symbols.internNonTerminal(name, len(g.order) == 0)
	if !existed {
		g.nonTerminals[sym] = newNonTerminal(sym)
		g.order = append(g.order, sym)
		if sym.IsStart() {
			g.Start = sym
		}
	}
	return sym
}

// AddProduction appends body as a new alternative of the non-terminal
// head, unless an identical alternative already exists, in which case
// that one is returned. head must already be registered via
// AddNonTerminal.
func (g *Grammar) AddProduction(head Symbol, body []Symbol) (*Production, error) {
	nt, ok := g.nonTerminals[head]
	if !ok {
		return nil, fmt.Errorf("add production: unknown non-terminal head: %v", head)
	}
	return nt.addAlternative(body), nil
}

// FindNonTerminal looks up a non-terminal by name.
func (g *Grammar) FindNonTerminal(name string) (*NonTerminal, bool) {
	sym, ok := g.Symbols.ToSymbol(name)
	if !ok || !sym.IsNonTerminal() {
		return nil, false
	}
	nt, ok := g.nonTerminals[sym]
	return nt, ok
}

// FindTerminal looks up a terminal by name.
func (g *Grammar) FindTerminal(name string) (Symbol, bool) {
	sym, ok := g.Symbols.ToSymbol(name)
	if !ok || !sym.IsTerminal() {
		return SymbolNil, false
	}
	return sym, true
}

// NonTerminal returns the rule head for sym, or nil if sym is not a
// non-terminal of this grammar.
func (g *Grammar) NonTerminal(sym Symbol) *NonTerminal {
	return g.nonTerminals[sym]
}

// NonTerminalsInDefinitionOrder enumerates every non-terminal,
// including ones introduced later by a transformer, in the order each
// was first defined. Fresh non-terminals are appended at the position
// they were introduced, never reordered.
func (g *Grammar) NonTerminalsInDefinitionOrder() []Symbol {
	out := make([]Symbol, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals enumerates every interned terminal, in the order each was
// first interned.
func (g *Grammar) Terminals() []Symbol {
	var out []Symbol
	for _, sym := range g.Symbols.text2Sym {
		if sym.IsTerminal() {
			out = append(out, sym)
		}
	}
	// Map iteration order is randomized; sort by base index so the
	// terminal column order of a rendered table is stable across runs.
	slices.Sort(out)
	return out
}

// freshNonTerminal allocates a non-terminal derived from base by
// appending "_prime" repeatedly until the name is unused by the
// grammar, per the fresh-name collision-retry policy: two
// transformers producing a fresh name for the same base, or an input
// grammar that already defines "<base>_prime", must never collide.
func (g *Grammar) freshNonTerminal(base string) Symbol {
	name := base
	for {
		name += "_prime"
		if _, ok := g.Symbols.ToSymbol(name); !ok {
			if name != base+"_prime" {
				log.Log("name collision: %q already taken, retrying as %q", name[:len(name)-len("_prime")], name)
			}
			return g.AddNonTerminal(name)
		}
	}
}

const (
	reservedEpsilon   = "eps"
	reservedEndMarker = "$"
)

// Load builds a Grammar from a parsed production list. The first
// non-terminal defined becomes the start symbol. Any right-hand-side
// token that never appears as a left-hand side is classified as a
// terminal. The reserved tokens "eps" (legal only as an RHS symbol,
// where it denotes ε) and "$" (illegal anywhere in the input) are
// rejected per their special meanings.
func Load(prods []parser.Production) (*Grammar, error) {
	g := newGrammar()

	for _, p := range prods {
		if p.LHS == reservedEpsilon || p.LHS == reservedEndMarker {
			return nil, fmt.Errorf("line %v: %q is a reserved name and cannot be used as a non-terminal", p.Line, p.LHS)
		}
		g.AddNonTerminal(p.LHS)
	}

	for _, p := range prods {
		head, _ := g.Symbols.ToSymbol(p.LHS)
		for _, alt := range p.Alternatives {
			body, err := g.internBody(p.Line, alt)
			if err != nil {
				return nil, err
			}
			if _, err := g.AddProduction(head, body); err != nil {
				return nil, err
			}
		}
	}

	log.Stage("load")
	PrintGrammar(log.GetWriter(), g)

	return g, nil
}

func (g *Grammar) internBody(line int, tokens []string) ([]Symbol, error) {
	var body []Symbol
	for _, tok := range tokens {
		if tok == reservedEndMarker {
			return nil, fmt.Errorf("line %v: %q is a reserved name and cannot appear in a grammar", line, reservedEndMarker)
		}
		if tok == reservedEpsilon {
			body = append(body, SymbolEpsilon)
			continue
		}
		if sym, ok := g.Symbols.ToSymbol(tok); ok && sym.IsNonTerminal() {
			body = append(body, sym)
			continue
		}
		body = append(body, g.Symbols.InternTerminal(tok))
	}
	return body, nil
}
