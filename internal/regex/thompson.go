package regex

import "github.com/dekarrin/lexgen/internal/automaton"

// fragment is a partially built NFA fragment: its own start and accept
// state, sharing one automaton's transition table with every other
// fragment built alongside it. Named and shaped after the helpers the
// teacher stubbed out in internal/ictiobus/lex/regex.go
// (createSingleSymbolFA, createJuxtapositionFA, createKleeneStarFA,
// createAlternationFA, getSingleAcceptState), with bodies completed per
// spec §4.2 and re_to_afnd.py's RegexToAFND.
type fragment struct {
	start, accept automaton.StateID
}

// ToNFA implements C3: Thompson-style construction of an ε-NFA from a regex
// AST, tagging the fragment's sole accept state with tag. b allocates state
// ids; per spec §9 this replaces the Python original's process-wide counter
// with an explicit builder object, so automata can be built in isolation
// (e.g. one per test, or one per pattern) without id collisions — Combine
// renumbers them disjointly regardless when folding patterns together.
func ToNFA(b *automaton.Builder, root Node, tag automaton.PatternTag) *automaton.Automaton {
	a := automaton.New(0)
	frag := buildFragment(b, a, root)
	a.Start = frag.start
	a.PatternName = tag.Name
	a.SetAccept(frag.accept, tag)
	return a
}

func buildFragment(b *automaton.Builder, a *automaton.Automaton, n Node) fragment {
	switch node := n.(type) {
	case *SymbolNode:
		return buildSymbol(b, a, node.Char)
	case *ConcatNode:
		return buildConcat(b, a, node)
	case *AltNode:
		return buildAlt(b, a, node)
	case *StarNode:
		return buildStar(b, a, node)
	case *PlusNode:
		return buildPlus(b, a, node)
	case *OptNode:
		return buildOpt(b, a, node)
	default:
		panic("regex: unknown AST node type in Thompson construction")
	}
}

// buildSymbol: two fresh states, a single edge labeled c between them.
func buildSymbol(b *automaton.Builder, a *automaton.Automaton, c byte) fragment {
	s := b.NewState()
	f := b.NewState()
	a.AddTransition(s, c, f)
	return fragment{start: s, accept: f}
}

// buildConcat: ε-edge from A's accept to B's start; accept = B's accept.
func buildConcat(b *automaton.Builder, a *automaton.Automaton, n *ConcatNode) fragment {
	left := buildFragment(b, a, n.Left)
	right := buildFragment(b, a, n.Right)
	a.AddTransition(left.accept, automaton.Epsilon, right.start)
	return fragment{start: left.start, accept: right.accept}
}

// buildAlt: fresh s, f; ε-edges s→A.start, s→B.start, A.accept→f, B.accept→f.
func buildAlt(b *automaton.Builder, a *automaton.Automaton, n *AltNode) fragment {
	left := buildFragment(b, a, n.Left)
	right := buildFragment(b, a, n.Right)

	s := b.NewState()
	f := b.NewState()

	a.AddTransition(s, automaton.Epsilon, left.start)
	a.AddTransition(s, automaton.Epsilon, right.start)
	a.AddTransition(left.accept, automaton.Epsilon, f)
	a.AddTransition(right.accept, automaton.Epsilon, f)

	return fragment{start: s, accept: f}
}

// buildStar: fresh s, f; ε-edges s→A.start, s→f, A.accept→A.start, A.accept→f.
func buildStar(b *automaton.Builder, a *automaton.Automaton, n *StarNode) fragment {
	child := buildFragment(b, a, n.Child)

	s := b.NewState()
	f := b.NewState()

	a.AddTransition(s, automaton.Epsilon, child.start)
	a.AddTransition(s, automaton.Epsilon, f)
	a.AddTransition(child.accept, automaton.Epsilon, child.start)
	a.AddTransition(child.accept, automaton.Epsilon, f)

	return fragment{start: s, accept: f}
}

// buildPlus: like Star but without the s→f shortcut — at least one pass
// through the child is mandatory.
func buildPlus(b *automaton.Builder, a *automaton.Automaton, n *PlusNode) fragment {
	child := buildFragment(b, a, n.Child)

	s := b.NewState()
	f := b.NewState()

	a.AddTransition(s, automaton.Epsilon, child.start)
	a.AddTransition(child.accept, automaton.Epsilon, child.start)
	a.AddTransition(child.accept, automaton.Epsilon, f)

	return fragment{start: s, accept: f}
}

// buildOpt: fresh s, f; ε-edges s→A.start, s→f, A.accept→f.
func buildOpt(b *automaton.Builder, a *automaton.Automaton, n *OptNode) fragment {
	child := buildFragment(b, a, n.Child)

	s := b.NewState()
	f := b.NewState()

	a.AddTransition(s, automaton.Epsilon, child.start)
	a.AddTransition(s, automaton.Epsilon, f)
	a.AddTransition(child.accept, automaton.Epsilon, f)

	return fragment{start: s, accept: f}
}
