package lexgen

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/lexgen/internal/lexgen/lexerr"
)

// BuildStrategy selects which of C3 (Thompson) or C4 (followpos) is used to
// turn each pattern's regex into a per-pattern automaton before they're
// combined. Both produce a language-equivalent automaton per spec §4.2/4.3;
// the choice is purely which construction path runs.
type BuildStrategy string

const (
	StrategyThompson  BuildStrategy = "thompson"
	StrategyFollowpos BuildStrategy = "followpos"
)

// GeneratorConfig is the optional, TOML-backed configuration surface of
// SPEC_FULL.md §3/§6 (C10): which construction strategy to use, the name of
// the reserved-word pattern, the default output file, and literal tag
// strings for reserved words, error tokens, and string literals. The three
// tag fields are loaded but not applied: the symbol table and scanner always
// emit "PR", "erro!" and "str". Absence of a config file is not an error —
// DefaultConfig applies.
type GeneratorConfig struct {
	BuildStrategy       BuildStrategy `toml:"build_strategy"`
	ReservedPatternName string        `toml:"reserved_pattern_name"`
	ReservedTag         string        `toml:"reserved_tag"`
	ErrorTag            string        `toml:"error_tag"`
	StringTag           string        `toml:"string_tag"`
	DefaultOutputFile   string        `toml:"default_output_file"`
}

// DefaultConfig returns the configuration SPEC_FULL.md §3 names as the
// default: Thompson construction, a reserved-pattern named "pr", and the
// literal tags spec.md uses throughout ("PR", "erro!", "str").
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		BuildStrategy:       StrategyThompson,
		ReservedPatternName: "pr",
		ReservedTag:         "PR",
		ErrorTag:            "erro!",
		StringTag:           "str",
		DefaultOutputFile:   "tokens.txt",
	}
}

// LoadConfig reads an optional lexgen.toml at path, applying it on top of
// DefaultConfig. A missing file is not an error; any other read or parse
// failure is wrapped in lexerr.ErrDefinitionsFile, since a broken config is
// effectively a broken generator setup in the same way a broken
// definitions file is.
func LoadConfig(path string) (GeneratorConfig, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, lexerr.New("read config file "+path, err, lexerr.ErrDefinitionsFile)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, lexerr.New("parse config file "+path, err, lexerr.ErrDefinitionsFile)
	}

	return cfg, nil
}
