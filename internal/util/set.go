package util

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a generic unordered collection of comparable elements. It backs
// the state-id bookkeeping used throughout the automaton package:
// ε-closures, NFA-state subsets visited during determinization, alphabet
// tracking, and followpos position sets.
type Set[E comparable] map[E]bool

// NewSet returns an empty Set, optionally seeded with the given elements.
func NewSet[E comparable](of ...E) Set[E] {
	s := Set[E]{}
	for _, e := range of {
		s.Add(e)
	}
	return s
}

// SetOf builds a Set from a slice.
func SetOf[E comparable](elems []E) Set[E] {
	s := Set[E]{}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add adds element to the set. No effect if already present.
func (s Set[E]) Add(element E) {
	s[element] = true
}

// AddAll adds every element of o to s.
func (s Set[E]) AddAll(o Set[E]) {
	for e := range o {
		s.Add(e)
	}
}

// Remove removes element from the set. No effect if not present.
func (s Set[E]) Remove(element E) {
	delete(s, element)
}

// Has returns whether element is in the set.
func (s Set[E]) Has(element E) bool {
	return s[element]
}

// Len returns the number of elements in the set.
func (s Set[E]) Len() int {
	return len(s)
}

// Empty returns whether the set has no elements.
func (s Set[E]) Empty() bool {
	return len(s) == 0
}

// Copy returns a shallow duplicate of s.
func (s Set[E]) Copy() Set[E] {
	newS := make(Set[E], len(s))
	for e := range s {
		newS[e] = true
	}
	return newS
}

// Union returns a new Set containing every element of s and o.
func (s Set[E]) Union(o Set[E]) Set[E] {
	newS := s.Copy()
	newS.AddAll(o)
	return newS
}

// Difference returns a new Set containing the elements of s not in o.
func (s Set[E]) Difference(o Set[E]) Set[E] {
	newS := s.Copy()
	for e := range o {
		newS.Remove(e)
	}
	return newS
}

// Any returns whether any element of s satisfies predicate.
func (s Set[E]) Any(predicate func(E) bool) bool {
	for e := range s {
		if predicate(e) {
			return true
		}
	}
	return false
}

// Elements returns the members of s in no particular order.
func (s Set[E]) Elements() []E {
	elems := make([]E, 0, len(s))
	for e := range s {
		elems = append(elems, e)
	}
	return elems
}

// StringOrdered gives a canonical string representation of the set: its
// elements sorted and comma-joined inside braces. Two sets with the same
// members always produce the same string, which makes it usable as a map key
// when memoizing subset-construction states. Elements are compared as
// strings (via fmt), not numerically, but that's enough for canonical
// equality: two equal sets always yield the same sorted string list
// regardless of iteration order.
func (s Set[E]) StringOrdered() string {
	strs := make([]string, 0, len(s))
	for e := range s {
		strs = append(strs, fmt.Sprintf("%v", e))
	}
	sort.Strings(strs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(strs, ", "))
	sb.WriteRune('}')
	return sb.String()
}

// OrderedKeys returns the keys of m sorted ascending.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
