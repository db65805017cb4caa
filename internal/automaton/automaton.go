// Package automaton implements the core automaton type used across the
// generator: a mutable directed multigraph of integer state ids, an
// alphabet, and a transition relation keyed by (state, symbol). Both NFAs
// and DFAs are represented with the same underlying shape; a DFA is simply
// an NFA whose transition images never exceed one state and whose alphabet
// excludes Epsilon.
package automaton

import (
	"fmt"
	"sort"

	"github.com/dekarrin/lexgen/internal/util"
)

// Epsilon is the distinguished symbol denoting an empty transition. It must
// never appear in user regexes or input text.
const Epsilon byte = '&'

// EndMarker is the synthetic symbol appended by the followpos construction
// to mark the accepting position of an augmented regex tree. Like Epsilon,
// it is reserved and must not appear in user regex or input.
const EndMarker byte = '#'

// StateID identifies a single state in an Automaton. Ids are allocated by a
// Builder and are unique only within the automata that share that Builder.
type StateID int

// PatternTag names the pattern a state accepts, along with the declaration
// index of that pattern in its definitions file. Lower Index wins when a
// single DFA state inherits tags from more than one NFA state (§4.5's
// pattern-priority rule).
type PatternTag struct {
	Name  string
	Index int
}

// Automaton is a directed multigraph over StateIDs: Q is implicit in the
// keys of Transitions plus Start and the keys of Accept; Σ is the set of
// symbols seen in Transitions. Built once, never mutated after the pipeline
// hands it to the scanner.
type Automaton struct {
	Start       StateID
	Transitions map[StateID]map[byte]util.Set[StateID]
	Accept      map[StateID]PatternTag

	// PatternName is set on a per-pattern automaton before it is folded
	// into a combined automaton by Combine; combined/determinized
	// automata leave it empty and rely on per-state Accept tags instead.
	PatternName string
}

// New returns an empty Automaton with no states, rooted at start.
func New(start StateID) *Automaton {
	return &Automaton{
		Start:       start,
		Transitions: map[StateID]map[byte]util.Set[StateID]{},
		Accept:      map[StateID]PatternTag{},
	}
}

// AddState registers s as a member of Q, with no outgoing transitions yet.
// Safe to call more than once for the same state.
func (a *Automaton) AddState(s StateID) {
	if _, ok := a.Transitions[s]; !ok {
		a.Transitions[s] = map[byte]util.Set[StateID]{}
	}
}

// AddTransition adds an edge from src to dst on symbol. src and dst are
// registered as states if not already present.
func (a *Automaton) AddTransition(src StateID, symbol byte, dst StateID) {
	a.AddState(src)
	a.AddState(dst)

	if a.Transitions[src][symbol] == nil {
		a.Transitions[src][symbol] = util.NewSet[StateID]()
	}
	a.Transitions[src][symbol].Add(dst)
}

// SetAccept marks s as accepting under the given pattern tag. Overwrites
// any tag already on s — callers that need to preserve multiple competing
// tags (as happens transiently inside the determinizer) should not call
// this directly; see mergeTags in determinize.go.
func (a *Automaton) SetAccept(s StateID, tag PatternTag) {
	a.AddState(s)
	a.Accept[s] = tag
}

// IsAccepting reports whether s carries a pattern tag.
func (a *Automaton) IsAccepting(s StateID) bool {
	_, ok := a.Accept[s]
	return ok
}

// States returns every state id known to the automaton, sorted ascending.
func (a *Automaton) States() []StateID {
	states := util.NewSet[StateID]()
	for s := range a.Transitions {
		states.Add(s)
	}
	for s := range a.Accept {
		states.Add(s)
	}
	states.Add(a.Start)

	list := states.Elements()
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Alphabet returns every symbol used in a transition, sorted ascending.
// Epsilon is included only if at least one ε-edge exists.
func (a *Automaton) Alphabet() []byte {
	symSet := util.NewSet[byte]()
	for _, edges := range a.Transitions {
		for sym := range edges {
			symSet.Add(sym)
		}
	}
	syms := symSet.Elements()
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

// Next returns the set of states reachable from src on symbol. The returned
// set is empty (never nil) if no such transition exists.
func (a *Automaton) Next(src StateID, symbol byte) util.Set[StateID] {
	if edges, ok := a.Transitions[src]; ok {
		if dsts, ok := edges[symbol]; ok {
			return dsts
		}
	}
	return util.NewSet[StateID]()
}

// NextDFA is a convenience for DFA-shaped automata, where every image has
// at most one element. Returns (0, false) if there is no transition.
func (a *Automaton) NextDFA(src StateID, symbol byte) (StateID, bool) {
	dsts := a.Next(src, symbol)
	if dsts.Empty() {
		return 0, false
	}
	for s := range dsts {
		return s, true
	}
	return 0, false
}

// Validate checks the structural invariants from spec §3: every state
// referenced anywhere is registered, and (for callers that pass
// requireDFA) every transition image has cardinality ≤ 1 and Epsilon does
// not appear in the alphabet.
func (a *Automaton) Validate(requireDFA bool) error {
	known := util.NewSet[StateID]()
	for _, s := range a.States() {
		known.Add(s)
	}

	if !known.Has(a.Start) {
		return fmt.Errorf("automaton: start state %d is not a known state", a.Start)
	}

	for src, edges := range a.Transitions {
		if !known.Has(src) {
			return fmt.Errorf("automaton: transition source %d is not a known state", src)
		}
		for sym, dsts := range edges {
			if requireDFA && sym == Epsilon {
				return fmt.Errorf("automaton: epsilon transition present in supposedly-deterministic automaton (state %d)", src)
			}
			if requireDFA && dsts.Len() > 1 {
				return fmt.Errorf("automaton: state %d has %d destinations on symbol %q, want at most 1", src, dsts.Len(), sym)
			}
			for dst := range dsts {
				if !known.Has(dst) {
					return fmt.Errorf("automaton: transition destination %d is not a known state", dst)
				}
			}
		}
	}

	for s := range a.Accept {
		if !known.Has(s) {
			return fmt.Errorf("automaton: accepting state %d is not a known state", s)
		}
	}

	return nil
}

// Builder allocates fresh state ids, unique among everything built through
// the same Builder. Spec §9 calls out the
// source's reliance on a process-wide counter as a wart to fix; a Builder
// is that fix, passed explicitly so automata can be built in isolation
// (tests) without stepping on each other's ids.
type Builder struct {
	next StateID
}

// NewBuilder returns a Builder whose first allocated id is 0.
func NewBuilder() *Builder {
	return &Builder{next: 0}
}

// NewState allocates and returns a fresh StateID.
func (b *Builder) NewState() StateID {
	id := b.next
	b.next++
	return id
}
