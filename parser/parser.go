// Package parser reads a grammar file and produces a structured list
// of productions for the grammar package to load. It never inspects
// symbol semantics beyond the reserved eps/$ tokens: classifying a
// token as a terminal or non-terminal is the grammar package's job.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Production is one grammar-file line: a left-hand-side non-terminal
// name and one or more alternatives, each a whitespace-separated
// sequence of symbol tokens. An alternative whose sole token is "eps"
// denotes the empty-string alternative.
type Production struct {
	LHS          string
	Line         int
	Alternatives [][]string
}

// SyntaxError reports a malformed grammar-file line, carrying the
// 1-based line number so the caller can point the user at it.
type SyntaxError struct {
	Line    int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Message)
}

// Parse reads a grammar file: blank lines and lines whose first
// non-whitespace rune is '#' are skipped; every other non-blank line
// must contain "->" and is split into a Production. The left-hand
// side is the whitespace-trimmed token before "->"; the right-hand
// side is split on "|" into alternatives, each split on whitespace
// into symbol tokens.
func Parse(r io.Reader) ([]Production, error) {
	var prods []Production
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lhsText, rhsText, ok := strings.Cut(trimmed, "->")
		if !ok {
			return nil, &SyntaxError{Line: lineNum, Message: fmt.Sprintf("expected \"->\" in line: %q", trimmed)}
		}
		lhs := strings.TrimSpace(lhsText)
		if lhs == "" {
			return nil, &SyntaxError{Line: lineNum, Message: "missing left-hand side"}
		}

		var alts [][]string
		for _, altText := range strings.Split(rhsText, "|") {
			tokens := strings.Fields(altText)
			if len(tokens) == 0 {
				return nil, &SyntaxError{Line: lineNum, Message: "empty alternative; use \"eps\" for the empty string"}
			}
			alts = append(alts, tokens)
		}

		prods = append(prods, Production{
			LHS:          lhs,
			Line:         lineNum,
			Alternatives: alts,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grammar: %w", err)
	}
	if len(prods) == 0 {
		return nil, &SyntaxError{Line: 0, Message: "grammar is empty"}
	}
	return prods, nil
}
