package lexgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/lexgen/internal/lexgen/lexerr"
)

// Definition is a single named pattern from a definitions file, carrying
// its declaration-order Index — the value §4.5's pattern-priority rule
// compares to break ties between multiply-matching patterns.
type Definition struct {
	Name  string
	Regex string
	Index int
}

// LoadResult is everything the definitions loader (C9) produces: the
// ordered pattern definitions, any reserved words harvested from a
// "pr"-named pattern, and warnings for malformed lines (spec §7:
// malformed lines are warnings, not fatal, unless they leave zero valid
// patterns).
type LoadResult struct {
	Definitions   []Definition
	ReservedWords []string
	Warnings      []string
}

// LoadDefinitions implements C9: parses the "NAME: REGEX" definitions
// format of spec §4.9/§6. Blank lines and lines beginning with '#' are
// ignored. A malformed line (anything else not matching "NAME:REGEX") is
// collected as a warning and skipped, mirroring lexical_analyzer.py's
// load_regex_definitions ("Aviso: ..." warnings) rather than failing the
// whole file. A duplicate NAME overwrites the prior definition's regex
// (last wins) but keeps the original declaration Index, so pattern
// priority is anchored to where a name was *first* declared. If NAME is
// (case-insensitively) cfg.ReservedPatternName, REGEX is additionally
// split on '|' and each trimmed word is added to ReservedWords.
func LoadDefinitions(r io.Reader, cfg GeneratorConfig) (LoadResult, error) {
	var result LoadResult

	byName := map[string]*Definition{}
	var order []string

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: malformed definition (expected NAME: REGEX): %q", lineNo, line))
			continue
		}

		name := strings.TrimSpace(line[:idx])
		regex := strings.TrimSpace(line[idx+1:])
		if name == "" || regex == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: malformed definition (empty name or regex): %q", lineNo, line))
			continue
		}

		if existing, ok := byName[name]; ok {
			existing.Regex = regex
		} else {
			d := &Definition{Name: name, Regex: regex, Index: len(order)}
			byName[name] = d
			order = append(order, name)
		}

		if strings.EqualFold(name, cfg.ReservedPatternName) {
			for _, word := range strings.Split(regex, "|") {
				word = strings.TrimSpace(word)
				if word != "" {
					result.ReservedWords = append(result.ReservedWords, word)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return result, lexerr.New("read definitions", err, lexerr.ErrDefinitionsFile)
	}

	for _, name := range order {
		result.Definitions = append(result.Definitions, *byName[name])
	}

	if len(result.Definitions) == 0 {
		return result, lexerr.New("definitions file contains zero valid patterns", lexerr.ErrDefinitionsFile)
	}

	return result, nil
}
