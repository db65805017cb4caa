package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/lexgen/internal/util"
)

func TestAutomaton_AddTransitionAndStates(t *testing.T) {
	assert := assert.New(t)

	a := New(0)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(1, 'b', 2)
	a.SetAccept(2, PatternTag{Name: "p", Index: 0})

	assert.ElementsMatch([]StateID{0, 1, 2}, a.States())
	assert.True(a.IsAccepting(2))
	assert.False(a.IsAccepting(1))

	dst, ok := a.NextDFA(0, 'a')
	assert.True(ok)
	assert.Equal(StateID(1), dst)
}

func TestAutomaton_Validate_RejectsEpsilonInDFA(t *testing.T) {
	a := New(0)
	a.AddTransition(0, Epsilon, 1)

	err := a.Validate(true)
	assert.Error(t, err)

	err = a.Validate(false)
	assert.NoError(t, err)
}

func TestEpsilonClosure(t *testing.T) {
	assert := assert.New(t)

	a := New(0)
	a.AddTransition(0, Epsilon, 1)
	a.AddTransition(1, Epsilon, 2)
	a.AddTransition(2, 'a', 3)

	closure := EpsilonClosure(a, util.NewSet[StateID](0))
	assert.True(closure.Has(0))
	assert.True(closure.Has(1))
	assert.True(closure.Has(2))
	assert.False(closure.Has(3))
}

func TestCombineAndDeterminize_PatternPriority(t *testing.T) {
	assert := assert.New(t)

	// pattern "id" (declared first): reduced here to exactly "if"
	idNFA := New(0)
	idNFA.AddTransition(0, 'i', 1)
	idNFA.AddTransition(1, 'f', 2)
	idNFA.SetAccept(2, PatternTag{Name: "id", Index: 0})

	// pattern "pr" (declared second): matches exactly "if" too
	prNFA := New(0)
	prNFA.AddTransition(0, 'i', 1)
	prNFA.AddTransition(1, 'f', 2)
	prNFA.SetAccept(2, PatternTag{Name: "pr", Index: 1})

	b := NewBuilder()
	combined := Combine(b, []*Automaton{idNFA, prNFA})
	dfa := Determinize(b, combined)

	state := dfa.Start
	for _, c := range "if" {
		next, ok := dfa.NextDFA(state, byte(c))
		if !assert.True(ok) {
			return
		}
		state = next
	}

	tag, ok := dfa.Accept[state]
	if !assert.True(ok) {
		return
	}
	assert.Equal("id", tag.Name, "lowest-index declared pattern should win on a tie")
}
