package grammar

import (
	"fmt"

	"github.com/cnf/structhash"
)

// ProductionID identifies a production by the structural hash of its
// head and body, so two productions with identical symbol sequences
// collapse to the same entry regardless of which transformer produced
// them.
type ProductionID string

func genProductionID(head Symbol, body []Symbol) ProductionID {
	h, err := structhash.Hash(struct {
		Head Symbol
		Body []Symbol
	}{head, body}, 1)
	if err != nil {
		// structhash.Hash only fails to marshal unsupported types;
		// Symbol and []Symbol are always hashable, so this is
		// unreachable in practice.
		panic(fmt.Sprintf("failed to hash production: %v", err))
	}
	return ProductionID(h)
}

// Production is an ordered sequence of symbol references forming one
// alternative's right-hand side. An alternative that derives the empty
// string is normalised to the single-element body [SymbolEpsilon]; the
// empty slice and [ε] are never allowed to coexist as distinct
// representations of the same alternative.
type Production struct {
	id   ProductionID
	Head Symbol
	Body []Symbol
}

// normalizeBody maps a zero-length body to the canonical [ε] body; any
// other body is returned unchanged.
func normalizeBody(body []Symbol) []Symbol {
	if len(body) == 0 {
		return []Symbol{SymbolEpsilon}
	}
	return body
}

func newProduction(head Symbol, body []Symbol) *Production {
	body = normalizeBody(body)
	return &Production{
		id:   genProductionID(head, body),
		Head: head,
		Body: body,
	}
}

// IsEpsilon reports whether this production's body is the canonical
// empty-string form [ε].
func (p *Production) IsEpsilon() bool {
	return len(p.Body) == 1 && p.Body[0] == SymbolEpsilon
}

func (p *Production) String() string {
	s := p.Head.String() + " ->"
	for _, sym := range p.Body {
		s += " " + sym.String()
	}
	return s
}

// NonTerminal is a named rule head owning an ordered list of
// alternative productions. Ordering is insertion order and is
// preserved across transformations: it determines tie-breaks in
// rendering but carries no semantic significance of its own.
type NonTerminal struct {
	Sym          Symbol
	Alternatives []*Production
}

func newNonTerminal(sym Symbol) *NonTerminal {
	return &NonTerminal{Sym: sym}
}

// addAlternative appends body as a new alternative of nt, skipping it
// if an identical alternative (by ProductionID) is already present.
// Returns the stored Production (existing or newly appended).
func (nt *NonTerminal) addAlternative(body []Symbol) *Production {
	prod := newProduction(nt.Sym, body)
	for _, existing := range nt.Alternatives {
		if existing.id == prod.id {
			return existing
		}
	}
	nt.Alternatives = append(nt.Alternatives, prod)
	return prod
}

// replaceAlternatives discards the current alternative list and
// installs replacements in the given order, normalising each body.
func (nt *NonTerminal) replaceAlternatives(bodies [][]Symbol) {
	alts := make([]*Production, 0, len(bodies))
	seen := map[ProductionID]bool{}
	for _, body := range bodies {
		prod := newProduction(nt.Sym, body)
		if seen[prod.id] {
			continue
		}
		seen[prod.id] = true
		alts = append(alts, prod)
	}
	nt.Alternatives = alts
}
