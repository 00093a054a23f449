package grammar

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/nihei9/ll1tab/log"
)

// FirstEntry is FIRST(X) for a single symbol or symbol string: a set
// of terminals, plus a nullable flag standing in for ε membership.
// The terminal set is kept in a linkedhashset so two runs over the
// same grammar always iterate it in the same order, which in turn
// keeps table and set rendering stable.
type FirstEntry struct {
	terminals *linkedhashset.Set
	nullable  bool
}

func newFirstEntry() *FirstEntry {
	return &FirstEntry{terminals: linkedhashset.New()}
}

func (e *FirstEntry) add(sym Symbol) bool {
	if e.terminals.Contains(sym) {
		return false
	}
	e.terminals.Add(sym)
	return true
}

func (e *FirstEntry) addNullable() bool {
	if e.nullable {
		return false
	}
	e.nullable = true
	return true
}

func (e *FirstEntry) mergeTerminals(other *FirstEntry) bool {
	changed := false
	for _, sym := range other.terminals.Values() {
		if e.add(sym.(Symbol)) {
			changed = true
		}
	}
	return changed
}

// Terminals returns the entry's terminals in insertion order.
func (e *FirstEntry) Terminals() []Symbol {
	vals := e.terminals.Values()
	out := make([]Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(Symbol)
	}
	return out
}

// Nullable reports whether ε is a member of this entry.
func (e *FirstEntry) Nullable() bool {
	return e.nullable
}

// FirstSet maps every non-terminal of a Grammar to its FIRST entry.
type FirstSet struct {
	entries map[Symbol]*FirstEntry
}

// Of returns FIRST(sym) for a non-terminal sym. Terminals and ε are
// not stored in the set; callers should consult OfBody or Symbol.
func (fst *FirstSet) Of(sym Symbol) *FirstEntry {
	e, ok := fst.entries[sym]
	if !ok {
		return newFirstEntry()
	}
	return e
}

// OfBody computes FIRST(X1...Xn) per the §4.4 per-string rule: accumulate
// FIRST(Xi) minus ε while each Xi is nullable, stopping at the first
// Xi whose FIRST lacks ε; if every symbol is nullable (or the body is
// empty), the result is nullable.
func (fst *FirstSet) OfBody(body []Symbol) *FirstEntry {
	out := newFirstEntry()
	for _, sym := range body {
		e := fst.ofElement(sym)
		out.mergeTerminals(e)
		if !e.nullable {
			return out
		}
	}
	out.addNullable()
	return out
}

func (fst *FirstSet) ofElement(sym Symbol) *FirstEntry {
	switch {
	case sym.IsEpsilon():
		e := newFirstEntry()
		e.addNullable()
		return e
	case sym.IsNonTerminal():
		return fst.Of(sym)
	default:
		e := newFirstEntry()
		e.add(sym)
		return e
	}
}

// ComputeFirst runs the FIRST fixed-point over g: initialise FIRST(A)
// empty for every non-terminal, then repeatedly add FIRST(γ) of every
// alternative γ of every non-terminal to FIRST of its head, until a
// full sweep adds nothing. Each entry is bounded by the grammar's
// finite terminal universe plus ε, so the loop always terminates.
func ComputeFirst(g *Grammar) *FirstSet {
	log.Stage("compute-first")
	fst := &FirstSet{entries: map[Symbol]*FirstEntry{}}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		fst.entries[sym] = newFirstEntry()
	}

	for {
		changed := false
		for _, sym := range g.NonTerminalsInDefinitionOrder() {
			nt := g.NonTerminal(sym)
			acc := fst.entries[sym]
			for _, prod := range nt.Alternatives {
				body := fst.OfBody(prod.Body)
				if acc.mergeTerminals(body) {
					changed = true
				}
				if body.nullable && acc.addNullable() {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		name, _ := g.Symbols.ToText(sym)
		log.Log("FIRST(%s) = %v nullable=%v", name, fst.Of(sym).Terminals(), fst.Of(sym).Nullable())
	}
	return fst
}
