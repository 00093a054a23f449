package grammar

import "fmt"

// SymbolKind classifies a Symbol. Every Symbol carries exactly one of
// these tags: a terminal, a non-terminal, the reserved epsilon value,
// or the reserved end-marker.
type SymbolKind uint8

const (
	SymbolKindNonTerminal SymbolKind = iota
	SymbolKindTerminal
	SymbolKindEpsilon
	SymbolKindEndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolKindNonTerminal:
		return "non-terminal"
	case SymbolKindTerminal:
		return "terminal"
	case SymbolKindEpsilon:
		return "epsilon"
	case SymbolKindEndMarker:
		return "end-marker"
	default:
		return "unknown"
	}
}

// Symbol is an interned reference to a terminal or non-terminal name.
// Identity is by integer value, not by name comparison: two Symbols are
// the same symbol iff they are the same uint32. The high bits encode
// SymbolKind and the start-symbol flag; the low bits are a per-kind
// base index handed out by a SymbolTable.
type Symbol uint32

const (
	symbolKindShift  = 30
	symbolStartShift = 29
	symbolStartMask  = uint32(1) << symbolStartShift
	symbolBaseMask   = symbolStartMask - 1
	symbolBaseMin    = uint32(1)
)

const (
	// SymbolNil is the zero value of Symbol and never refers to a
	// registered terminal or non-terminal.
	SymbolNil = Symbol(0)

	// SymbolEpsilon denotes the empty string. It is legal only inside
	// production bodies (as the sole element of an otherwise-empty
	// RHS) and in FIRST sets.
	SymbolEpsilon = Symbol(uint32(SymbolKindEpsilon)<<symbolKindShift | 1)

	// SymbolEndMarker ("$") denotes end-of-input. It is legal only in
	// FOLLOW sets and as a parse-table column.
	SymbolEndMarker = Symbol(uint32(SymbolKindEndMarker)<<symbolKindShift | 1)
)

func newSymbol(kind SymbolKind, isStart bool, base uint32) Symbol {
	v := uint32(kind)<<symbolKindShift | base
	if isStart {
		v |= symbolStartMask
	}
	return Symbol(v)
}

func (s Symbol) kind() SymbolKind {
	return SymbolKind(uint32(s) >> symbolKindShift)
}

// IsNil reports whether s is the zero Symbol.
func (s Symbol) IsNil() bool {
	return s == SymbolNil
}

// Kind returns the symbol's kind tag.
func (s Symbol) Kind() SymbolKind {
	return s.kind()
}

// IsStart reports whether s is the grammar's designated start symbol.
// Only non-terminals can carry this flag.
func (s Symbol) IsStart() bool {
	return !s.IsNil() && s.kind() == SymbolKindNonTerminal && uint32(s)&symbolStartMask != 0
}

// IsNonTerminal reports whether s is a non-terminal (the start symbol
// included).
func (s Symbol) IsNonTerminal() bool {
	return !s.IsNil() && s.kind() == SymbolKindNonTerminal
}

// IsTerminal reports whether s is an ordinary terminal, excluding the
// reserved ε and $ values (use IsEpsilon/IsEndMarker for those).
func (s Symbol) IsTerminal() bool {
	return !s.IsNil() && s.kind() == SymbolKindTerminal
}

// IsEpsilon reports whether s is the reserved ε symbol.
func (s Symbol) IsEpsilon() bool {
	return s == SymbolEpsilon
}

// IsEndMarker reports whether s is the reserved $ symbol.
func (s Symbol) IsEndMarker() bool {
	return s == SymbolEndMarker
}

// IsTerminalClass reports whether s belongs to the terminal universe in
// the broad sense used by the data model: ordinary terminals, ε, and $.
func (s Symbol) IsTerminalClass() bool {
	return !s.IsNonTerminal() && !s.IsNil()
}

func (s Symbol) String() string {
	if s.IsNil() {
		return "<nil>"
	}
	switch s.kind() {
	case SymbolKindEpsilon:
		return "ε"
	case SymbolKindEndMarker:
		return "$"
	case SymbolKindNonTerminal:
		if s.IsStart() {
			return fmt.Sprintf("s%d", uint32(s)&symbolBaseMask)
		}
		return fmt.Sprintf("n%d", uint32(s)&symbolBaseMask)
	case SymbolKindTerminal:
		return fmt.Sprintf("t%d", uint32(s)&symbolBaseMask)
	default:
		return fmt.Sprintf("?%d", uint32(s))
	}
}

// SymbolTable interns terminal and non-terminal names into canonical
// Symbol values. Two requests for the same name always return the same
// Symbol, so equality of Symbols collapses to equality of names without
// ever comparing strings again downstream.
type SymbolTable struct {
	text2Sym map[string]Symbol
	sym2Text map[Symbol]string
	ntOrder  []Symbol
	ntBase   uint32
	tBase    uint32
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		text2Sym: map[string]Symbol{},
		sym2Text: map[Symbol]string{},
		ntBase:   symbolBaseMin,
		tBase:    symbolBaseMin,
	}
}

// internNonTerminal returns the canonical non-terminal Symbol for name,
// creating it (and recording its definition order) on first sight.
// isStart marks the symbol as the grammar's start symbol; it is only
// honored the first time name is seen.
func (t *SymbolTable) internNonTerminal(name string, isStart bool) Symbol {
	if sym, ok := t.text2Sym[name]; ok {
		return sym
	}
	sym := newSymbol(SymbolKindNonTerminal, isStart, t.ntBase)
	t.ntBase++
	t.text2Sym[name] = sym
	t.sym2Text[sym] = name
	t.ntOrder = append(t.ntOrder, sym)
	return sym
}

// InternTerminal returns the canonical terminal Symbol for name,
// creating it on first sight.
func (t *SymbolTable) InternTerminal(name string) Symbol {
	if sym, ok := t.text2Sym[name]; ok {
		return sym
	}
	sym := newSymbol(SymbolKindTerminal, false, t.tBase)
	t.tBase++
	t.text2Sym[name] = sym
	t.sym2Text[sym] = name
	return sym
}

// ToSymbol looks up a previously interned name.
func (t *SymbolTable) ToSymbol(name string) (Symbol, bool) {
	sym, ok := t.text2Sym[name]
	return sym, ok
}

// ToText recovers the name a Symbol was interned under. The reserved ε
// and $ symbols are not registered in any table and are never found
// here; callers should special-case them with IsEpsilon/IsEndMarker.
func (t *SymbolTable) ToText(sym Symbol) (string, bool) {
	text, ok := t.sym2Text[sym]
	return text, ok
}

// nonTerminalsInDefinitionOrder enumerates every interned non-terminal
// in the order it was first defined, fresh non-terminals included.
func (t *SymbolTable) nonTerminalsInDefinitionOrder() []Symbol {
	out := make([]Symbol, len(t.ntOrder))
	copy(out, t.ntOrder)
	return out
}
