package lexer

import (
	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/lexgen/internal/symtab"
)

// Scanner drives a pattern-tagged DFA over input text using the
// maximal-munch algorithm of spec §4.7. Grounded in outer-loop shape on the
// Python original's token_analyzer.py (analyze/_get_next_token,
// max_final_pos/max_final_pattern, the in_string toggle) and in inner-loop
// bookkeeping concretely on shadowCow-cow-lang-go's tooling/lexer/lexer.go
// nextToken (lastAcceptState/lastAcceptOffset tracking, reset to last
// accept point on failed lookahead).
type Scanner struct {
	dfa    *automaton.Automaton
	symbol *symtab.SymbolTable
}

// New returns a Scanner over the given combined, determinized DFA. st
// accumulates lexeme classifications across every call to Scan, so a
// single SymbolTable can be shared across multiple inputs scanned in
// sequence.
func New(dfa *automaton.Automaton, st *symtab.SymbolTable) *Scanner {
	return &Scanner{dfa: dfa, symbol: st}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// advance walks n bytes of text starting at pos, returning the updated
// cursor and line/column, accounting for newlines the same way the
// teacher's lexer.go does for its own position tracking.
func advance(text string, pos, line, col, n int) (newPos, newLine, newCol int) {
	for i := 0; i < n; i++ {
		if text[pos+i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return pos + n, line, col
}

// Scan implements the outer loop of spec §4.7 end to end: whitespace
// skipping, line-comment skipping, delegating to nextToken for each
// candidate token, and emitting a one-character error token for any
// position nextToken can't extend into a match. Scan never returns a Go
// error — per spec §7/§8's P5, an unrecognized character is recovered
// locally as an erro! token, not propagated as a failure.
func (s *Scanner) Scan(text string) []Token {
	var tokens []Token

	pos, line, col := 0, 1, 1

	for pos < len(text) {
		for pos < len(text) && isWhitespace(text[pos]) {
			pos, line, col = advance(text, pos, line, col, 1)
		}
		if pos >= len(text) {
			break
		}

		if pos+1 < len(text) && text[pos] == '/' && text[pos+1] == '/' {
			for pos < len(text) && text[pos] != '\n' {
				pos, line, col = advance(text, pos, line, col, 1)
			}
			continue
		}

		if pos >= len(text) {
			break
		}

		startLine, startCol := line, col

		lexeme, pattern, length, ok := s.nextToken(text, pos)
		if ok {
			s.symbol.AddSymbol(lexeme, pattern)
			finalPattern, _ := s.symbol.GetPattern(lexeme)
			tokens = append(tokens, Token{
				Lexeme:  lexeme,
				Pattern: finalPattern,
				Line:    startLine,
				Column:  startCol,
			})
			pos, line, col = advance(text, pos, line, col, length)
		} else {
			tokens = append(tokens, Token{
				Lexeme:  string(text[pos]),
				Pattern: ErrorTag,
				Line:    startLine,
				Column:  startCol,
			})
			pos, line, col = advance(text, pos, line, col, 1)
		}
	}

	return tokens
}

// nextToken performs the DFA walk with longest-accepting memory described
// in spec §4.7. It returns ok=false if no prefix starting at start ends in
// an accepting state (the caller then emits a one-character error token).
func (s *Scanner) nextToken(text string, start int) (lexeme, pattern string, length int, ok bool) {
	if text[start] == '"' {
		return s.scanString(text, start)
	}

	state := s.dfa.Start
	bestEnd := -1
	var bestTag automaton.PatternTag
	haveBest := false

	p := start
	for p < len(text) && !isWhitespace(text[p]) {
		next, hasTrans := s.dfa.NextDFA(state, text[p])
		if !hasTrans {
			break
		}
		state = next
		p++

		if tag, accepting := s.dfa.Accept[state]; accepting {
			bestEnd = p - 1
			bestTag = tag
			haveBest = true
		}
	}

	if haveBest && bestEnd >= start {
		return text[start : bestEnd+1], bestTag.Name, bestEnd - start + 1, true
	}
	return "", "", 0, false
}

// scanString implements string mode (spec §4.7): once the opening quote is
// seen, the DFA is bypassed entirely. A backslash toggles an escaped flag;
// an unescaped quote terminates the literal. Reaching end-of-text first is
// reported as ok=false, which causes the outer loop to emit an error token
// for the opening quote (surfacing as ScanError per spec §7's
// UnterminatedString note).
func (s *Scanner) scanString(text string, start int) (lexeme, pattern string, length int, ok bool) {
	p := start + 1
	escaped := false

	for p < len(text) {
		c := text[p]
		if escaped {
			escaped = false
			p++
			continue
		}
		if c == '\\' {
			escaped = true
			p++
			continue
		}
		if c == '"' {
			p++
			return text[start:p], StringTag, p - start, true
		}
		p++
	}

	return "", "", 0, false
}
