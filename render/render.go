// Package render turns a grammar, its FIRST/FOLLOW sets, and its
// parse table into human-readable text for the CLI, using rosed's
// fixed-width bordered table layout.
package render

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/nihei9/ll1tab/grammar"
)

// TableWidth is the column width rosed wraps table cells to. It is
// overridable from config for wide terminals.
var TableWidth = 100

// Grammar renders every non-terminal's alternatives, one production
// per line, in definition order.
func Grammar(g *grammar.Grammar) string {
	var b strings.Builder
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		nt := g.NonTerminal(sym)
		name, _ := g.Symbols.ToText(sym)
		for _, prod := range nt.Alternatives {
			fmt.Fprintf(&b, "%s ->", name)
			for _, bodySym := range prod.Body {
				fmt.Fprintf(&b, " %s", symbolText(g, bodySym))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FirstSet renders a FIRST-set table: one row per non-terminal, with
// its terminals and, where present, ε.
func FirstSet(g *grammar.Grammar, fst *grammar.FirstSet) string {
	data := [][]string{{"non-terminal", "FIRST"}}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		name, _ := g.Symbols.ToText(sym)
		entry := fst.Of(sym)
		set := linkedhashset.New()
		for _, t := range entry.Terminals() {
			set.Add(symbolText(g, t))
		}
		if entry.Nullable() {
			set.Add("ε")
		}
		data = append(data, []string{name, joinSet(set)})
	}
	return renderTable(data)
}

// FollowSet renders a FOLLOW-set table: one row per non-terminal, with
// its terminals and, where present, $.
func FollowSet(g *grammar.Grammar, flw *grammar.FollowSet) string {
	data := [][]string{{"non-terminal", "FOLLOW"}}
	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		name, _ := g.Symbols.ToText(sym)
		entry := flw.Of(sym)
		set := linkedhashset.New()
		for _, t := range entry.Terminals() {
			set.Add(symbolText(g, t))
		}
		if entry.HasEndMarker() {
			set.Add("$")
		}
		data = append(data, []string{name, joinSet(set)})
	}
	return renderTable(data)
}

// ParseTable renders the LL(1) parse table: one row per non-terminal,
// one column per terminal plus $, cells holding the chosen
// production's text (blank when absent).
func ParseTable(g *grammar.Grammar, table *grammar.ParseTable) string {
	terminals := g.Terminals()

	topRow := []string{""}
	for _, t := range terminals {
		topRow = append(topRow, symbolText(g, t))
	}
	topRow = append(topRow, "$")
	data := [][]string{topRow}

	for _, sym := range g.NonTerminalsInDefinitionOrder() {
		name, _ := g.Symbols.ToText(sym)
		row := []string{name}
		for _, t := range terminals {
			row = append(row, cellText(g, table, sym, t))
		}
		row = append(row, cellText(g, table, sym, grammar.SymbolEndMarker))
		data = append(data, row)
	}

	return renderTable(data)
}

func cellText(g *grammar.Grammar, table *grammar.ParseTable, nonTerminal, terminal grammar.Symbol) string {
	prod, ok := table.Get(nonTerminal, terminal)
	if !ok {
		return ""
	}
	name, _ := g.Symbols.ToText(nonTerminal)
	var b strings.Builder
	fmt.Fprintf(&b, "%s ->", name)
	for _, sym := range prod.Body {
		fmt.Fprintf(&b, " %s", symbolText(g, sym))
	}
	return b.String()
}

// Conflicts renders the conflict list produced by BuildTable, one
// line per conflict.
func Conflicts(g *grammar.Grammar, conflicts []grammar.Conflict) string {
	if len(conflicts) == 0 {
		return "no conflicts\n"
	}
	var b strings.Builder
	for _, c := range conflicts {
		ntName, _ := g.Symbols.ToText(c.NonTerminal)
		fmt.Fprintf(&b, "conflict at (%s, %s): %s  vs  %s\n",
			ntName, symbolText(g, c.Terminal), productionText(g, c.First), productionText(g, c.Second))
	}
	return b.String()
}

func productionText(g *grammar.Grammar, p *grammar.Production) string {
	name, _ := g.Symbols.ToText(p.Head)
	var b strings.Builder
	fmt.Fprintf(&b, "%s ->", name)
	for _, sym := range p.Body {
		fmt.Fprintf(&b, " %s", symbolText(g, sym))
	}
	return b.String()
}

func symbolText(g *grammar.Grammar, sym grammar.Symbol) string {
	if sym.IsEpsilon() {
		return "ε"
	}
	if sym.IsEndMarker() {
		return "$"
	}
	if text, ok := g.Symbols.ToText(sym); ok {
		return text
	}
	return sym.String()
}

func joinSet(set *linkedhashset.Set) string {
	var parts []string
	for _, v := range set.Values() {
		parts = append(parts, v.(string))
	}
	return strings.Join(parts, " ")
}

func renderTable(data [][]string) string {
	return rosed.Edit("").
		InsertTableOpts(0, data, TableWidth, rosed.Options{
			TableBorders: true,
		}).
		String()
}
