package grammar

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/nihei9/ll1tab/log"
)

// FollowEntry is FOLLOW(A): a set of terminals, plus an endMarker
// flag standing in for `$` membership. ε can never be a member.
type FollowEntry struct {
	terminals *linkedhashset.Set
	endMarker bool
}

func newFollowEntry() *FollowEntry {
	return &FollowEntry{terminals: linkedhashset.New()}
}

func (e *FollowEntry) add(sym Symbol) bool {
	if e.terminals.Contains(sym) {
		return false
	}
	e.terminals.Add(sym)
	return true
}

func (e *FollowEntry) addEndMarker() bool {
	if e.endMarker {
		return false
	}
	e.endMarker = true
	return true
}

// mergeFirst adds every terminal of a FIRST entry (never its nullable
// flag, since ε must never enter a FOLLOW set).
func (e *FollowEntry) mergeFirst(first *FirstEntry) bool {
	changed := false
	for _, sym := range first.Terminals() {
		if e.add(sym) {
			changed = true
		}
	}
	return changed
}

func (e *FollowEntry) mergeFollow(other *FollowEntry) bool {
	changed := false
	for _, sym := range other.terminals.Values() {
		if e.add(sym.(Symbol)) {
			changed = true
		}
	}
	if other.endMarker && e.addEndMarker() {
		changed = true
	}
	return changed
}

// Terminals returns the entry's terminals in insertion order.
func (e *FollowEntry) Terminals() []Symbol {
	vals := e.terminals.Values()
	out := make([]Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(Symbol)
	}
	return out
}

// HasEndMarker reports whether `$` is a member of this entry.
func (e *FollowEntry) HasEndMarker() bool {
	return e.endMarker
}

// FollowSet maps every non-terminal of a Grammar to its FOLLOW entry.
type FollowSet struct {
	entries map[Symbol]*FollowEntry
}

// Of returns FOLLOW(sym).
func (flw *FollowSet) Of(sym Symbol) *FollowEntry {
	e, ok := flw.entries[sym]
	if !ok {
		return newFollowEntry()
	}
	return e
}

// ComputeFollow runs the FOLLOW fixed-point over g using first:
// FOLLOW(start) always contains `$`; for every production B -> α A β,
// FOLLOW(A) gains FIRST(β)\{ε}, and additionally gains FOLLOW(B) when
// β is nullable (including when β is empty). Iteration continues
// until a full sweep adds nothing.
func ComputeFollow(g *Grammar, first *FirstSet) *FollowSet {
	log.Stage("compute-follow")
	flw := &FollowSet{entries: map[Symbol]*FollowEntry{}}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		flw.entries[sym] = newFollowEntry()
	}

	for {
		changed := false
		for _, sym := range g.NonTerminalsInDefinitionOrder() {
			acc := flw.entries[sym]
			if sym.IsStart() && acc.addEndMarker() {
				changed = true
			}
		}

		for _, headSym := range g.NonTerminalsInDefinitionOrder() {
			nt := g.NonTerminal(headSym)
			for _, prod := range nt.Alternatives {
				for i, sym := range prod.Body {
					if !sym.IsNonTerminal() {
						continue
					}
					beta := prod.Body[i+1:]
					betaFirst := first.OfBody(beta)
					acc := flw.entries[sym]
					if acc.mergeFirst(betaFirst) {
						changed = true
					}
					if betaFirst.Nullable() {
						if acc.mergeFollow(flw.entries[headSym]) {
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		name, _ := g.Symbols.ToText(sym)
		log.Log("FOLLOW(%s) = %v endMarker=%v", name, flw.Of(sym).Terminals(), flw.Of(sym).HasEndMarker())
	}
	return flw
}
