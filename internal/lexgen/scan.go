package lexgen

import (
	"github.com/dekarrin/lexgen/internal/lexer"
)

// Scan drives result's DFA over text using the maximal-munch scanner (C8),
// sharing result's SymbolTable across calls so reserved-word promotion and
// P6's monotonicity hold across multiple Scan calls against the same
// Result (e.g. one call per REPL line).
func Scan(result Result, text string) []lexer.Token {
	sc := lexer.New(result.DFA, result.SymbolTable)
	return sc.Scan(text)
}
