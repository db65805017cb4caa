package automaton

import (
	"github.com/dekarrin/lexgen/internal/util"
)

// EpsilonClosure returns the set of states reachable from any state in s via
// zero or more ε-edges, inclusive of s itself.
func EpsilonClosure(a *Automaton, s util.Set[StateID]) util.Set[StateID] {
	closure := s.Copy()

	stack := closure.Elements()
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for next := range a.Next(cur, Epsilon) {
			if !closure.Has(next) {
				closure.Add(next)
				stack = append(stack, next)
			}
		}
	}

	return closure
}

// move computes ⋃_{q∈s} δ(q, symbol), the classic subset-construction move
// function, ignoring ε-edges (the caller takes the ε-closure separately).
func move(a *Automaton, s util.Set[StateID], symbol byte) util.Set[StateID] {
	result := util.NewSet[StateID]()
	for q := range s {
		result.AddAll(a.Next(q, symbol))
	}
	return result
}

// mergeTags resolves the pattern-priority rule of spec §4.5: of all tags
// carried by the NFA states in subset, the one with the lowest declaration
// Index wins.
func mergeTags(a *Automaton, subset util.Set[StateID]) (PatternTag, bool) {
	var best PatternTag
	found := false

	for q := range subset {
		tag, ok := a.Accept[q]
		if !ok {
			continue
		}
		if !found || tag.Index < best.Index {
			best = tag
			found = true
		}
	}

	return best, found
}

// Determinize implements C6: classical subset construction over an ε-NFA,
// producing a pattern-tagged DFA. Ties among multiply-tagged subsets are
// broken by mergeTags (declaration order, first-declared wins), per
// spec §4.5. Grounded on afnd_to_afd.py's determinize and generalized from
// the teacher's automaton.go ToDFA loop, subset states are memoized by the
// canonical sorted-id string of the NFA states they represent so that each
// frontier subset is processed exactly once (spec §9's memoization note).
func Determinize(b *Builder, nfa *Automaton) *Automaton {
	startClosure := EpsilonClosure(nfa, util.NewSet(nfa.Start))

	seen := map[string]StateID{}
	dfaStart := b.NewState()
	seen[startClosure.StringOrdered()] = dfaStart

	dfa := New(dfaStart)
	dfa.AddState(dfaStart)
	if tag, ok := mergeTags(nfa, startClosure); ok {
		dfa.SetAccept(dfaStart, tag)
	}

	subsetOf := map[StateID]util.Set[StateID]{dfaStart: startClosure}

	queue := []StateID{dfaStart}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSubset := subsetOf[cur]

		alphabet := util.NewSet[byte]()
		for q := range curSubset {
			for sym := range nfa.Transitions[q] {
				if sym != Epsilon {
					alphabet.Add(sym)
				}
			}
		}

		for sym := range alphabet {
			moved := move(nfa, curSubset, sym)
			if moved.Empty() {
				continue
			}
			closure := EpsilonClosure(nfa, moved)
			key := closure.StringOrdered()

			dst, ok := seen[key]
			if !ok {
				dst = b.NewState()
				seen[key] = dst
				dfa.AddState(dst)
				subsetOf[dst] = closure
				if tag, ok := mergeTags(nfa, closure); ok {
					dfa.SetAccept(dst, tag)
				}
				queue = append(queue, dst)
			}

			dfa.AddTransition(cur, sym, dst)
		}
	}

	return dfa
}
