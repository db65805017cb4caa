package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_SingleChar(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse("a")
	if !assert.NoError(err) {
		return
	}

	sym, ok := n.(*SymbolNode)
	if !assert.True(ok, "expected *SymbolNode, got %T", n) {
		return
	}
	assert.Equal(byte('a'), sym.Char)
}

func TestParse_Concat(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse("ab")
	if !assert.NoError(err) {
		return
	}

	_, ok := n.(*ConcatNode)
	assert.True(ok, "expected *ConcatNode, got %T", n)
}

func TestParse_Alt(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse("a|b")
	if !assert.NoError(err) {
		return
	}

	_, ok := n.(*AltNode)
	assert.True(ok, "expected *AltNode, got %T", n)
}

func TestParse_StarPlusOpt(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"star", "a*"},
		{"plus", "a+"},
		{"opt", "a?"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			n, err := Parse(tc.src)
			if !assert.NoError(err) {
				return
			}

			switch tc.name {
			case "star":
				_, ok := n.(*StarNode)
				assert.True(ok, "expected *StarNode, got %T", n)
			case "plus":
				_, ok := n.(*PlusNode)
				assert.True(ok, "expected *PlusNode, got %T", n)
			case "opt":
				_, ok := n.(*OptNode)
				assert.True(ok, "expected *OptNode, got %T", n)
			}
		})
	}
}

func TestParse_Group(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse("(a|b)c")
	if !assert.NoError(err) {
		return
	}

	concat, ok := n.(*ConcatNode)
	if !assert.True(ok, "expected *ConcatNode, got %T", n) {
		return
	}
	_, ok = concat.Left.(*AltNode)
	assert.True(ok, "expected left of concat to be *AltNode, got %T", concat.Left)
}

func TestParse_CharacterClass(t *testing.T) {
	assert := assert.New(t)

	// [ac-e] should desugar to (a|c|d|e)
	n, err := Parse("[ac-e]")
	if !assert.NoError(err) {
		return
	}

	var chars []byte
	var collect func(Node)
	collect = func(n Node) {
		switch node := n.(type) {
		case *SymbolNode:
			chars = append(chars, node.Char)
		case *AltNode:
			collect(node.Left)
			collect(node.Right)
		}
	}
	collect(n)

	assert.ElementsMatch([]byte{'a', 'c', 'd', 'e'}, chars)
}

func TestParse_Escape(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse(`\*`)
	if !assert.NoError(err) {
		return
	}

	sym, ok := n.(*SymbolNode)
	if !assert.True(ok, "expected *SymbolNode, got %T", n) {
		return
	}
	assert.Equal(byte('*'), sym.Char)
}

func TestParse_WhitespaceStripped(t *testing.T) {
	assert := assert.New(t)

	n1, err := Parse("a b")
	if !assert.NoError(err) {
		return
	}
	n2, err := Parse("ab")
	if !assert.NoError(err) {
		return
	}

	assert.IsType(n2, n1)
}

func TestParse_Errors(t *testing.T) {
	testCases := []string{
		"(a",     // unbalanced paren
		"a)",     // unbalanced paren
		"[a",     // unterminated class
		"[]",     // empty class
		`a\`,     // trailing backslash
		"*a",     // operator with no preceding atom
		"",       // empty expression
	}

	for _, src := range testCases {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src)
			assert.Error(t, err, "expected parse error for %q", src)
		})
	}
}
