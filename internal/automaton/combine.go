package automaton

// Combine implements C5: it unions a set of per-pattern automata, listed in
// declaration order, into one ε-NFA. A fresh start state gets an ε-edge to
// each input automaton's own start; every state is renumbered through b so
// the combined automaton's ids stay disjoint per sub-automaton, mirroring
// lexical_analyzer.py's combine_automata but with an explicit, deterministic
// renumbering instead of one keyed by Python object identity.
func Combine(b *Builder, patterns []*Automaton) *Automaton {
	start := b.NewState()
	combined := New(start)
	combined.AddState(start)

	for _, pat := range patterns {
		renum := map[StateID]StateID{}
		renumber := func(old StateID) StateID {
			if id, ok := renum[old]; ok {
				return id
			}
			id := b.NewState()
			renum[old] = id
			return id
		}

		for _, old := range pat.States() {
			renumber(old)
		}

		combined.AddTransition(start, Epsilon, renumber(pat.Start))

		for src, edges := range pat.Transitions {
			newSrc := renumber(src)
			for sym, dsts := range edges {
				for dst := range dsts {
					combined.AddTransition(newSrc, sym, renumber(dst))
				}
			}
		}

		for old, tag := range pat.Accept {
			combined.SetAccept(renumber(old), tag)
		}
	}

	return combined
}
