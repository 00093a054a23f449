package grammar

import "github.com/nihei9/ll1tab/log"

// Conflict records two distinct productions competing for the same
// LL(1) table cell — the grammar is not LL(1) at (NonTerminal,
// Terminal). Only the first production to claim the cell stays in the
// table; Conflict records the second one that collided with it.
type Conflict struct {
	NonTerminal Symbol
	Terminal    Symbol
	First       *Production
	Second      *Production
}

// ParseTable is a two-dimensional partial mapping (non-terminal,
// terminal-or-end-marker) -> Production.
type ParseTable struct {
	cells map[Symbol]map[Symbol]*Production
}

func newParseTable() *ParseTable {
	return &ParseTable{cells: map[Symbol]map[Symbol]*Production{}}
}

// Get looks up the production stored at (nonTerminal, terminal); a
// false second result denotes a parse error in a driven parser.
func (t *ParseTable) Get(nonTerminal, terminal Symbol) (*Production, bool) {
	row, ok := t.cells[nonTerminal]
	if !ok {
		return nil, false
	}
	p, ok := row[terminal]
	return p, ok
}

func (t *ParseTable) set(nonTerminal, terminal Symbol, prod *Production) (*Production, bool) {
	row, ok := t.cells[nonTerminal]
	if !ok {
		row = map[Symbol]*Production{}
		t.cells[nonTerminal] = row
	}
	if existing, ok := row[terminal]; ok {
		return existing, true
	}
	row[terminal] = prod
	return nil, false
}

// BuildTable constructs the LL(1) parse table for g. For every
// production A -> α: every terminal in FIRST(α)\{ε} gets M[A,a] = A
// -> α; if α is nullable, every terminal in FOLLOW(A) (including $)
// also gets M[A,b] = A -> α. A cell that would receive a second,
// distinct production is left holding the first production to claim
// it, and the collision is appended to the returned conflict list —
// the table is always returned complete, never aborted by a
// conflicting grammar.
func BuildTable(g *Grammar, first *FirstSet, follow *FollowSet) (*ParseTable, []Conflict) {
	log.Stage("build-table")
	table := newParseTable()
	var conflicts []Conflict

	assign := func(nonTerminal, terminal Symbol, prod *Production) {
		existing, hadEntry := table.set(nonTerminal, terminal, prod)
		if hadEntry && existing.id != prod.id {
			conflicts = append(conflicts, Conflict{
				NonTerminal: nonTerminal,
				Terminal:    terminal,
				First:       existing,
				Second:      prod,
			})
		}
	}

	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		nt := g.NonTerminal(sym)
		for _, prod := range nt.Alternatives {
			alphaFirst := first.OfBody(prod.Body)
			for _, a := range alphaFirst.Terminals() {
				assign(sym, a, prod)
			}
			if alphaFirst.Nullable() {
				flw := follow.Of(sym)
				for _, b := range flw.Terminals() {
					assign(sym, b, prod)
				}
				if flw.HasEndMarker() {
					assign(sym, SymbolEndMarker, prod)
				}
			}
		}
	}

	for _, c := range conflicts {
		ntName, _ := g.Symbols.ToText(c.NonTerminal)
		log.Log("conflict at (%s, %s): %s vs %s", ntName, symbolText(g, c.Terminal), c.First, c.Second)
	}

	return table, conflicts
}
