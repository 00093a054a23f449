package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTable(t *testing.T) {
	g := buildGrammar(t, "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | id\n")
	genSym := newTestSymbolGenerator(t, g)

	RemoveLeftRecursion(g)
	fst := ComputeFirst(g)
	flw := ComputeFollow(g, fst)
	table, conflicts := BuildTable(g, fst, flw)

	assert.Empty(t, conflicts)

	e, _ := g.FindNonTerminal("E")
	prod, ok := table.Get(e.Sym, genSym("id"))
	assert.True(t, ok)
	assert.NotNil(t, prod)

	_, ok = table.Get(e.Sym, genSym("*"))
	assert.False(t, ok)
}

func TestBuildTableLeftFactoringRequired(t *testing.T) {
	g := buildGrammar(t, "S -> a b | a c\n")
	genSym := newTestSymbolGenerator(t, g)
	LeftFactor(g)

	fst := ComputeFirst(g)
	flw := ComputeFollow(g, fst)
	table, conflicts := BuildTable(g, fst, flw)
	assert.Empty(t, conflicts)

	s, _ := g.FindNonTerminal("S")
	fresh := s.Alternatives[0].Body[1]

	prod, ok := table.Get(s.Sym, genSym("a"))
	assert.True(t, ok)
	assert.Equal(t, s.Alternatives[0], prod)

	bProd, ok := table.Get(fresh, genSym("b"))
	assert.True(t, ok)
	assert.Equal(t, []Symbol{genSym("b")}, bProd.Body)

	cProd, ok := table.Get(fresh, genSym("c"))
	assert.True(t, ok)
	assert.Equal(t, []Symbol{genSym("c")}, cProd.Body)
}

func TestBuildTableEmptySuffixFactoring(t *testing.T) {
	g := buildGrammar(t, "S -> a | a b\n")
	genSym := newTestSymbolGenerator(t, g)
	LeftFactor(g)

	fst := ComputeFirst(g)
	flw := ComputeFollow(g, fst)
	table, conflicts := BuildTable(g, fst, flw)
	assert.Empty(t, conflicts)

	s, _ := g.FindNonTerminal("S")
	fresh := s.Alternatives[0].Body[1]

	epsProd, ok := table.Get(fresh, SymbolEndMarker)
	assert.True(t, ok)
	assert.True(t, epsProd.IsEpsilon())

	bProd, ok := table.Get(fresh, genSym("b"))
	assert.True(t, ok)
	assert.Equal(t, []Symbol{genSym("b")}, bProd.Body)
}

func TestBuildTableDetectsConflict(t *testing.T) {
	g := buildGrammar(t, "S -> a b | a c\n")
	genSym := newTestSymbolGenerator(t, g)

	fst := ComputeFirst(g)
	flw := ComputeFollow(g, fst)
	_, conflicts := BuildTable(g, fst, flw)

	assert.Len(t, conflicts, 1)
	assert.Equal(t, g.Start, conflicts[0].NonTerminal)
	assert.Equal(t, genSym("a"), conflicts[0].Terminal)
}

func TestComputeFirstAfterRecursionRemoval(t *testing.T) {
	g := buildGrammar(t, "A -> A a | A b | c | d\n")
	genSym := newTestSymbolGenerator(t, g)
	RemoveLeftRecursion(g)

	fst := ComputeFirst(g)
	assert.ElementsMatch(t, []Symbol{genSym("c"), genSym("d")}, fst.Of(g.Start).Terminals())

	a, _ := g.FindNonTerminal("A")
	aPrime := a.Alternatives[0].Body[len(a.Alternatives[0].Body)-1]
	aPrimeFirst := fst.Of(aPrime)
	assert.ElementsMatch(t, []Symbol{genSym("a"), genSym("b")}, aPrimeFirst.Terminals())
	assert.True(t, aPrimeFirst.Nullable())
}
