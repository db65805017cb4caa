/*
Lexgen builds a lexical analyzer from a file of named regular-expression
definitions and uses it to tokenize an input file.

Usage:

	lexgen [flags] <definitions_file> <input_file> [output_file]

The flags are:

	-v, --version
		Give the current version of lexgen and then exit.

	-o, --output FILE
		Write tokens to FILE instead of the positional output_file argument
		(or tokens.txt if neither is given).

	-c, --config FILE
		Load generator configuration (build strategy, reserved-pattern
		name, default output file) from the given TOML file. Defaults to
		"lexgen.toml" if present in the current directory.

	-s, --strategy {thompson|followpos}
		Select the per-pattern automaton construction strategy, overriding
		whatever the config file says.

	-i, --interactive
		Drop into a line-editing REPL: build the lexer from the given
		definitions file, then scan one typed line at a time.

	--dump-automaton FILE
		Write the combined DFA's text dump (spec-format) to FILE.

	--dump-binary FILE
		Write the combined DFA's binary dump to FILE.

	--dump-symbols
		Print the final symbol table to stderr after scanning.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/lexgen/internal/lexgen"
	"github.com/dekarrin/lexgen/internal/report"
	"github.com/dekarrin/lexgen/internal/util"
	"github.com/dekarrin/lexgen/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates bad or missing CLI arguments.
	ExitUsageError

	// ExitGeneratorError indicates the definitions file failed to produce a
	// lexer (a fatal RegexParseError or DefinitionsFileError per spec §7).
	ExitGeneratorError

	// ExitInputError indicates the input file could not be read or the
	// output file could not be written.
	ExitInputError
)

var (
	returnCode = ExitSuccess

	flagVersion     = pflag.BoolP("version", "v", false, "Gives the version info")
	flagOutput      = pflag.StringP("output", "o", "", "Write tokens to this file instead of the positional output argument")
	flagConfig      = pflag.StringP("config", "c", "lexgen.toml", "Load generator config from this TOML file, if present")
	flagStrategy    = pflag.StringP("strategy", "s", "", "Construction strategy to use: thompson or followpos")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive REPL instead of batch-scanning a file")
	flagDumpAuto    = pflag.String("dump-automaton", "", "Write the combined DFA's text dump to this file")
	flagDumpBinary  = pflag.String("dump-binary", "", "Write the combined DFA's binary dump to this file")
	flagDumpSymbols = pflag.Bool("dump-symbols", false, "Print the final symbol table to stderr after scanning")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ERROR: missing definitions_file argument")
		fmt.Fprintln(os.Stderr, "usage: lexgen [flags] <definitions_file> <input_file> [output_file]")
		returnCode = ExitUsageError
		return
	}
	defsFile := args[0]

	cfg, err := lexgen.LoadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGeneratorError
		return
	}
	if *flagStrategy != "" {
		cfg.BuildStrategy = lexgen.BuildStrategy(*flagStrategy)
	}

	defsReader, err := os.Open(defsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not open definitions file: %s\n", err.Error())
		returnCode = ExitGeneratorError
		return
	}
	defer defsReader.Close()

	result, err := lexgen.Generate(defsReader, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGeneratorError
		return
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}

	patternNames := make([]string, len(result.PerPatternNFAs))
	for i, p := range result.PerPatternNFAs {
		patternNames[i] = p.PatternName
	}
	fmt.Fprintf(os.Stderr, "loaded patterns: %s\n", util.MakeTextList(patternNames))

	if *flagDumpAuto != "" {
		if err := report.DumpText(result.DFA, *flagDumpAuto); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not write automaton dump: %s\n", err.Error())
		}
	}
	if *flagDumpBinary != "" {
		if err := report.DumpBinary(result.DFA, *flagDumpBinary); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not write binary dump: %s\n", err.Error())
		}
	}

	if *flagInteractive {
		if err := runInteractive(result); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitGeneratorError
		}
		return
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "ERROR: missing input_file argument")
		returnCode = ExitUsageError
		return
	}
	inputFile := args[1]

	outputFile := cfg.DefaultOutputFile
	if len(args) >= 3 {
		outputFile = args[2]
	}
	if *flagOutput != "" {
		outputFile = *flagOutput
	}

	if err := runBatch(result, inputFile, outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInputError
		return
	}

	if *flagDumpSymbols {
		fmt.Fprint(os.Stderr, result.SymbolTable.String())
	}
}

// runBatch implements the batch CLI surface of spec §6: read the input
// file whole, scan it, write "<LEXEME, PATTERN>" lines to the output file.
func runBatch(result lexgen.Result, inputFile, outputFile string) error {
	text, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	tokens := lexgen.Scan(result, string(text))

	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer out.Close()

	for _, t := range tokens {
		if _, err := fmt.Fprintln(out, t.String()); err != nil {
			return fmt.Errorf("could not write output file: %w", err)
		}
	}

	return nil
}

// runInteractive implements the REPL mode (C11): each typed line is
// scanned against the already-built lexer and the resulting tokens are
// printed as a table. Grounded on the teacher's internal/input
// InteractiveCommandReader, built on github.com/chzyer/readline with the
// same Config/prompt/Close() resource-cleanup contract.
func runInteractive(result lexgen.Result) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}

		tokens := lexgen.Scan(result, line)
		fmt.Println(report.TokenTable(tokens))
	}
}
