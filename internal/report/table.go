// Package report formats generator output for human consumption: automaton
// transition tables, token lists, and the text/binary automaton dump
// formats of spec §6. Table formatting is grounded on the teacher's use of
// github.com/dekarrin/rosed for its own parser-table dumps
// (internal/ictiobus/parse/slr.go) and debug output (internal/game/debug.go).
package report

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/lexgen/internal/lexer"
)

// AutomatonTable renders a's transition table: one row per state, one
// column per alphabet symbol, "*" markers for the start state and a
// state's pattern tag (if accepting).
func AutomatonTable(a *automaton.Automaton) string {
	alphabet := a.Alphabet()

	header := []string{"state"}
	for _, sym := range alphabet {
		header = append(header, string(sym))
	}
	header = append(header, "tag")

	data := [][]string{header}

	for _, s := range a.States() {
		row := []string{stateLabel(a, s)}
		for _, sym := range alphabet {
			cell := ""
			if dst, ok := a.NextDFA(s, sym); ok {
				cell = fmt.Sprintf("%d", dst)
			} else if dsts := a.Next(s, sym); !dsts.Empty() {
				ids := make([]int, 0, dsts.Len())
				for d := range dsts {
					ids = append(ids, int(d))
				}
				sort.Ints(ids)
				cell = fmt.Sprintf("%v", ids)
			}
			row = append(row, cell)
		}

		tag := ""
		if t, ok := a.Accept[s]; ok {
			tag = t.Name
		}
		row = append(row, tag)

		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func stateLabel(a *automaton.Automaton, s automaton.StateID) string {
	if s == a.Start {
		return fmt.Sprintf("*%d", s)
	}
	return fmt.Sprintf("%d", s)
}

// TokenTable renders a token list as a table of lexeme, pattern, line and
// column,
// the same way the CLI's interactive REPL echoes what a typed line scanned
// to.
func TokenTable(tokens []lexer.Token) string {
	data := [][]string{{"lexeme", "pattern", "line", "col"}}
	for _, t := range tokens {
		data = append(data, []string{t.Lexeme, t.Pattern, fmt.Sprintf("%d", t.Line), fmt.Sprintf("%d", t.Column)})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
