package report

import (
	"os"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/lexgen/internal/automaton"
)

// DumpText writes a's text dump (spec §6) to path.
func DumpText(a *automaton.Automaton, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return automaton.Dump(f, a)
}

// LoadText reads an automaton back from a spec §6 text dump at path. The
// result's pattern tags are placeholders (the text format doesn't carry
// them); callers that need tags should use the binary dump instead.
func LoadText(path string) (*automaton.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return automaton.Load(f)
}

// DumpBinary persists a's full state — including pattern tags, which the
// text dump format omits — using github.com/dekarrin/rezi, the same
// library and EncBinary/DecBinary pairing the teacher uses to persist game
// state in its sqlite DAO layer (server/dao/sqlite/sqlite.go).
func DumpBinary(a *automaton.Automaton, path string) error {
	data := rezi.EncBinary(a)
	return os.WriteFile(path, data, 0o644)
}

// LoadBinary is the inverse of DumpBinary.
func LoadBinary(path string) (*automaton.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	a := &automaton.Automaton{}
	n, err := rezi.DecBinary(data, a)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errDecodedByteMismatch(n, len(data))
	}
	return a, nil
}
