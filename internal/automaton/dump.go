package automaton

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Dump renders the text form of an automaton per spec §6:
//
//	line 1: |Q|
//	line 2: q0
//	line 3: comma-separated sorted final-state ids
//	line 4: comma-separated sorted alphabet (excluding &)
//	lines 5+: one per edge, "src,symbol,dst"
//
// Grounded directly on lexical_analyzer.py's save_automaton_to_file.
func Dump(w io.Writer, a *Automaton) error {
	states := a.States()

	finals := make([]int, 0, len(a.Accept))
	for s := range a.Accept {
		finals = append(finals, int(s))
	}
	sort.Ints(finals)

	alphabet := a.Alphabet()

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, len(states))
	fmt.Fprintln(bw, int(a.Start))
	fmt.Fprintln(bw, joinInts(finals))
	fmt.Fprintln(bw, joinSymbols(alphabet))

	type edge struct {
		src StateID
		sym byte
		dst StateID
	}
	var edges []edge
	for src, byTransitions := range a.Transitions {
		for sym, dsts := range byTransitions {
			for dst := range dsts {
				edges = append(edges, edge{src, sym, dst})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].src != edges[j].src {
			return edges[i].src < edges[j].src
		}
		if edges[i].sym != edges[j].sym {
			return edges[i].sym < edges[j].sym
		}
		return edges[i].dst < edges[j].dst
	})

	for _, e := range edges {
		fmt.Fprintf(bw, "%d,%c,%d\n", e.src, e.sym, e.dst)
	}

	return bw.Flush()
}

// DumpString is Dump rendered directly to a string, for callers (such as
// the report package) that want the text without an io.Writer on hand.
func DumpString(a *Automaton) string {
	var sb strings.Builder
	// Dump never errors against a strings.Builder.
	_ = Dump(&sb, a)
	return sb.String()
}

func joinInts(vals []int) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ",")
}

func joinSymbols(syms []byte) string {
	strs := make([]string, 0, len(syms))
	for _, s := range syms {
		if s == Epsilon {
			continue
		}
		strs = append(strs, string(s))
	}
	return strings.Join(strs, ",")
}

// Load parses the text dump format produced by Dump. The automaton's state
// count and alphabet lines are read but not validated against the edge
// lines beyond what's needed to reconstruct the graph; pattern tags are not
// recoverable from the dump format (spec §6 doesn't carry them) so the
// result's Accept map is populated with a placeholder tag for every final
// state listed on line 3.
func Load(r io.Reader) (*Automaton, error) {
	sc := bufio.NewScanner(r)

	readLine := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("automaton: reading %s: %w", what, err)
			}
			return "", fmt.Errorf("automaton: unexpected end of input reading %s", what)
		}
		return sc.Text(), nil
	}

	numStatesLine, err := readLine("state count")
	if err != nil {
		return nil, err
	}
	if _, err := strconv.Atoi(strings.TrimSpace(numStatesLine)); err != nil {
		return nil, fmt.Errorf("automaton: malformed state count %q: %w", numStatesLine, err)
	}

	startLine, err := readLine("start state")
	if err != nil {
		return nil, err
	}
	startNum, err := strconv.Atoi(strings.TrimSpace(startLine))
	if err != nil {
		return nil, fmt.Errorf("automaton: malformed start state %q: %w", startLine, err)
	}

	finalsLine, err := readLine("final states")
	if err != nil {
		return nil, err
	}

	if _, err := readLine("alphabet"); err != nil {
		return nil, err
	}

	a := New(StateID(startNum))
	a.AddState(a.Start)

	if strings.TrimSpace(finalsLine) != "" {
		for _, tok := range strings.Split(finalsLine, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return nil, fmt.Errorf("automaton: malformed final state %q: %w", tok, err)
			}
			a.SetAccept(StateID(n), PatternTag{Name: "", Index: 0})
		}
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 || len(parts[1]) != 1 {
			return nil, fmt.Errorf("automaton: malformed edge line %q", line)
		}
		src, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("automaton: malformed edge source %q: %w", parts[0], err)
		}
		dst, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("automaton: malformed edge destination %q: %w", parts[2], err)
		}
		a.AddTransition(StateID(src), parts[1][0], StateID(dst))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("automaton: reading edges: %w", err)
	}

	return a, nil
}
