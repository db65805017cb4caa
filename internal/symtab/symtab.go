// Package symtab implements the symbol table of spec §4.6: a mapping from
// lexeme to pattern name, plus a reserved-word set whose members always map
// to the literal pattern "PR" regardless of what the DFA classified them
// as. Grounded directly on the Python original's symbol_table.py.
package symtab

import (
	"sort"
	"strings"
)

// ReservedTag is the literal pattern name forced onto any lexeme in the
// reserved set, per spec §3/§4.6.
const ReservedTag = "PR"

// SymbolTable maps lexeme to pattern name and tracks which lexemes are
// reserved words. The zero value is ready to use.
type SymbolTable struct {
	entries  map[string]string
	reserved map[string]bool
}

// New returns an empty SymbolTable.
func New() *SymbolTable {
	return &SymbolTable{
		entries:  map[string]string{},
		reserved: map[string]bool{},
	}
}

// AddReserved inserts word mapped to ReservedTag and marks it reserved.
// Called once per word while loading a "pr"-named pattern (spec §4.6/§4.9).
func (st *SymbolTable) AddReserved(word string) {
	if st.entries == nil {
		st.entries = map[string]string{}
		st.reserved = map[string]bool{}
	}
	st.reserved[word] = true
	st.entries[word] = ReservedTag
}

// AddSymbol records lexeme as classified under pattern. If lexeme is
// reserved, its pattern is re-asserted as ReservedTag regardless of the
// pattern argument (reserved words override whatever the DFA decided).
// Otherwise, first write wins: an existing mapping is left untouched.
func (st *SymbolTable) AddSymbol(lexeme, pattern string) {
	if st.entries == nil {
		st.entries = map[string]string{}
		st.reserved = map[string]bool{}
	}

	if st.reserved[lexeme] {
		st.entries[lexeme] = ReservedTag
		return
	}

	if _, exists := st.entries[lexeme]; !exists {
		st.entries[lexeme] = pattern
	}
}

// GetPattern returns the pattern mapped to lexeme and whether it was
// present at all.
func (st *SymbolTable) GetPattern(lexeme string) (string, bool) {
	if st.entries == nil {
		return "", false
	}
	p, ok := st.entries[lexeme]
	return p, ok
}

// IsReserved reports whether word is in the reserved-words set.
func (st *SymbolTable) IsReserved(word string) bool {
	return st.reserved[word]
}

// String gives a deterministic, sorted dump of the table, one
// "lexeme: pattern" entry per line. Mirrors symbol_table.py's __str__;
// supplemented per SPEC_FULL.md §9 for the CLI's --dump-symbols flag.
func (st *SymbolTable) String() string {
	keys := make([]string, 0, len(st.entries))
	for k := range st.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(st.entries[k])
		sb.WriteString("\n")
	}
	return sb.String()
}
