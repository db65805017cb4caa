package regex

import (
	"github.com/dekarrin/lexgen/internal/automaton"
	"github.com/dekarrin/lexgen/internal/util"
)

// followposBuilder carries the per-position tables of spec §4.3 across one
// augmented tree: symbol(p), followpos(p), and the running position
// counter used to number each Symbol leaf (including the synthetic '#' end
// marker) left to right. Grounded on re_to_afd.py's RegexToAFD
// (_calculate_sets/_calculate_followpos/_build_afd).
type followposBuilder struct {
	nextPos   int
	symbolOf  map[int]byte
	followpos map[int]util.Set[int]
}

// ToDFA implements C4: builds a DFA directly from a regex AST via the
// nullable/firstpos/lastpos/followpos method, skipping the ε-NFA stage
// entirely. The tree is first augmented to (E)·# per spec §4.3, with '#' at
// the highest position (the end marker); the resulting DFA's accepting
// states are exactly those position-sets containing that marker position,
// each tagged with tag.
func ToDFA(b *automaton.Builder, root Node, tag automaton.PatternTag) *automaton.Automaton {
	fb := &followposBuilder{
		symbolOf:  map[int]byte{},
		followpos: map[int]util.Set[int]{},
	}

	augmented := &ConcatNode{Left: root, Right: &SymbolNode{Char: automaton.EndMarker}}
	fb.number(augmented)

	rootInfo := fb.calc(augmented)
	endMarkerPos := fb.nextPos // the '#' leaf is numbered last

	return fb.buildDFA(b, rootInfo.firstpos, endMarkerPos, tag)
}

// number assigns each Symbol leaf (including the augmenting '#') a unique,
// increasing position starting at 1, walking the tree left to right.
func (fb *followposBuilder) number(n Node) {
	switch node := n.(type) {
	case *SymbolNode:
		fb.nextPos++
		node.Pos = fb.nextPos
		fb.symbolOf[node.Pos] = node.Char
	case *ConcatNode:
		fb.number(node.Left)
		fb.number(node.Right)
	case *AltNode:
		fb.number(node.Left)
		fb.number(node.Right)
	case *StarNode:
		fb.number(node.Child)
	case *PlusNode:
		fb.number(node.Child)
	case *OptNode:
		fb.number(node.Child)
	}
}

// nodeInfo is the per-node nullable/firstpos/lastpos triple of the textbook
// algorithm, computed bottom-up while populating fb.followpos as a side
// effect.
type nodeInfo struct {
	nullable bool
	firstpos util.Set[int]
	lastpos  util.Set[int]
}

// calc computes nodeInfo for n, recursing into children first (the rules
// are defined bottom-up) and updating fb.followpos for Concat/Star/Plus
// nodes per spec §4.3.
func (fb *followposBuilder) calc(n Node) nodeInfo {
	switch node := n.(type) {
	case *SymbolNode:
		return nodeInfo{
			nullable: false,
			firstpos: util.NewSet(node.Pos),
			lastpos:  util.NewSet(node.Pos),
		}

	case *ConcatNode:
		left := fb.calc(node.Left)
		right := fb.calc(node.Right)

		for p := range left.lastpos {
			fb.addFollowpos(p, right.firstpos)
		}

		first := left.firstpos.Copy()
		if left.nullable {
			first.AddAll(right.firstpos)
		}

		last := right.lastpos.Copy()
		if right.nullable {
			last.AddAll(left.lastpos)
		}

		return nodeInfo{
			nullable: left.nullable && right.nullable,
			firstpos: first,
			lastpos:  last,
		}

	case *AltNode:
		left := fb.calc(node.Left)
		right := fb.calc(node.Right)
		return nodeInfo{
			nullable: left.nullable || right.nullable,
			firstpos: left.firstpos.Union(right.firstpos),
			lastpos:  left.lastpos.Union(right.lastpos),
		}

	case *StarNode:
		child := fb.calc(node.Child)
		for p := range child.lastpos {
			fb.addFollowpos(p, child.firstpos)
		}
		return nodeInfo{
			nullable: true,
			firstpos: child.firstpos.Copy(),
			lastpos:  child.lastpos.Copy(),
		}

	case *PlusNode:
		child := fb.calc(node.Child)
		for p := range child.lastpos {
			fb.addFollowpos(p, child.firstpos)
		}
		return nodeInfo{
			nullable: child.nullable,
			firstpos: child.firstpos.Copy(),
			lastpos:  child.lastpos.Copy(),
		}

	case *OptNode:
		child := fb.calc(node.Child)
		return nodeInfo{
			nullable: true,
			firstpos: child.firstpos.Copy(),
			lastpos:  child.lastpos.Copy(),
		}

	default:
		panic("regex: unknown AST node type in followpos construction")
	}
}

func (fb *followposBuilder) addFollowpos(p int, s util.Set[int]) {
	if fb.followpos[p] == nil {
		fb.followpos[p] = util.NewSet[int]()
	}
	fb.followpos[p].AddAll(s)
}

// buildDFA runs the position-subset BFS of spec §4.3/§4.5: states are
// subsets of positions, starting from firstpos(root); for each unprocessed
// state S and symbol a appearing in S\{endMarkerPos}, the next state is
// ⋃{followpos(p) : p∈S, symbol(p)=a}. A state is accepting iff it contains
// endMarkerPos.
func (fb *followposBuilder) buildDFA(b *automaton.Builder, start util.Set[int], endMarkerPos int, tag automaton.PatternTag) *automaton.Automaton {
	seen := map[string]automaton.StateID{}
	subsetOf := map[automaton.StateID]util.Set[int]{}

	startID := b.NewState()
	seen[start.StringOrdered()] = startID
	subsetOf[startID] = start

	dfa := automaton.New(startID)
	dfa.AddState(startID)
	if start.Has(endMarkerPos) {
		dfa.SetAccept(startID, tag)
	}
	dfa.PatternName = tag.Name

	queue := []automaton.StateID{startID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curSubset := subsetOf[cur]

		bySymbol := map[byte]util.Set[int]{}
		for p := range curSubset {
			if p == endMarkerPos {
				continue
			}
			sym := fb.symbolOf[p]
			if bySymbol[sym] == nil {
				bySymbol[sym] = util.NewSet[int]()
			}
			if fp := fb.followpos[p]; fp != nil {
				bySymbol[sym].AddAll(fp)
			}
		}

		for sym, next := range bySymbol {
			if next.Empty() {
				continue
			}
			key := next.StringOrdered()
			dst, ok := seen[key]
			if !ok {
				dst = b.NewState()
				seen[key] = dst
				subsetOf[dst] = next
				dfa.AddState(dst)
				if next.Has(endMarkerPos) {
					dfa.SetAccept(dst, tag)
				}
				queue = append(queue, dst)
			}
			dfa.AddTransition(cur, sym, dst)
		}
	}

	return dfa
}
