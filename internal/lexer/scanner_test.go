package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/lexgen/internal/symtab"
)

// idDFA builds a tiny DFA accepting one or more lowercase letters, tagged
// "id", for scanner-focused unit tests that don't need the full generator
// pipeline.
func idDFA() *automaton.Automaton {
	a := automaton.New(0)
	for c := byte('a'); c <= 'z'; c++ {
		a.AddTransition(0, c, 1)
		a.AddTransition(1, c, 1)
	}
	a.SetAccept(1, automaton.PatternTag{Name: "id", Index: 0})
	return a
}

func TestScanner_WhitespaceHaltsMidToken(t *testing.T) {
	dfa := idDFA()
	sc := New(dfa, symtab.New())

	tokens := sc.Scan("ab cd")
	assert.Len(t, tokens, 2)
	assert.Equal(t, "ab", tokens[0].Lexeme)
	assert.Equal(t, "cd", tokens[1].Lexeme)
}

func TestScanner_UnrecognizedCharEmitsErrorToken(t *testing.T) {
	dfa := idDFA()
	sc := New(dfa, symtab.New())

	tokens := sc.Scan("a1b")
	// "a" matches id, "1" has no transition from state 0 (digits aren't in
	// the alphabet of this tiny test DFA) so it's an error token, "b"
	// resumes as id.
	assert.Equal(t, []string{"<a, id>", "<1, erro!>", "<b, id>"}, tokenStringsOf(tokens))
}

func TestScanner_LineComment(t *testing.T) {
	dfa := idDFA()
	sc := New(dfa, symtab.New())

	tokens := sc.Scan("a // a whole comment\nb")
	assert.Equal(t, []string{"<a, id>", "<b, id>"}, tokenStringsOf(tokens))
}

func TestScanner_StringLiteral(t *testing.T) {
	dfa := idDFA()
	sc := New(dfa, symtab.New())

	tokens := sc.Scan(`"hello"`)
	assert.Len(t, tokens, 1)
	assert.Equal(t, `"hello"`, tokens[0].Lexeme)
	assert.Equal(t, StringTag, tokens[0].Pattern)
}

func TestScanner_UnterminatedString(t *testing.T) {
	dfa := idDFA()
	sc := New(dfa, symtab.New())

	tokens := sc.Scan(`"hello`)
	// the opening quote becomes an error token; scanning then resumes one
	// character later, so "hello" is scanned as an ordinary id.
	assert.Len(t, tokens, 2)
	assert.Equal(t, ErrorTag, tokens[0].Pattern)
	assert.Equal(t, `"`, tokens[0].Lexeme)
}

func TestScanner_LineAndColumnTracking(t *testing.T) {
	dfa := idDFA()
	sc := New(dfa, symtab.New())

	tokens := sc.Scan("a\nbc")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Column)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 1, tokens[1].Column)
}

func tokenStringsOf(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
