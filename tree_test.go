package texmath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64) *Node { return NewNode(Number, v) }
func letter(r rune) *Node { return NewNode(Letter, r) }

func TestNodeEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"same", NewNode(Plus, nil, num(1), letter('x')), NewNode(Plus, nil, num(1), letter('x')), true},
		{"symbol", NewNode(Plus, nil, num(1), num(2)), NewNode(Minus, nil, num(1), num(2)), false},
		{"value", num(1), num(2), false},
		{"order", NewNode(Minus, nil, num(1), num(2)), NewNode(Minus, nil, num(2), num(1)), false},
		{"arity", NewNode(Minus, nil, num(1)), NewNode(Minus, nil, num(1), num(2)), false},
		{"nil", nil, nil, true},
		{"nil-left", nil, num(1), false},
		{"nil-right", num(1), nil, false},
		// A node without a value matches any value, but not the reverse.
		{"wildcard", NewNode(Letter, nil), letter('x'), true},
		{"wildcard-reverse", letter('x'), NewNode(Letter, nil), false},
		{"wildcard-deep", NewNode(Plus, nil, NewNode(Number, nil), letter('x')), NewNode(Plus, nil, num(7), letter('x')), true},
		// Arguments are not compared.
		{"arguments", NewNode(Root, nil, letter('x')).AppendArgument(num(2)), NewNode(Root, nil, letter('x')).AppendArgument(num(3)), true},
		{"arguments-missing", NewNode(Root, nil, letter('x')).AppendArgument(num(2)), NewNode(Root, nil, letter('x')), true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Equal(c.b))
		})
	}
}

func TestNodeParents(t *testing.T) {
	x := letter('x')
	two := num(2)
	r := NewNode(RaiseToIndex, nil, x, two)
	assert.True(t, r.IsRoot())
	assert.Nil(t, r.Parent())
	assert.Same(t, r, x.Parent())
	assert.Same(t, r, two.Parent())
	assert.Equal(t, 0, x.childIndex())
	assert.Equal(t, 1, two.childIndex())
	assert.Equal(t, -1, r.childIndex())

	idx := num(3)
	f := NewNode(Root, nil, r).AppendArgument(idx)
	assert.Same(t, f, r.Parent())
	assert.Same(t, f, idx.Parent())
	assert.Equal(t, -1, idx.childIndex(), "arguments are not children")
	assert.False(t, r.IsRoot())

	y := letter('y')
	r.setChild(0, y)
	assert.Same(t, r, y.Parent())
	assert.Equal(t, "Root[3](RaiseToIndex(y, 2))", f.String())
}

func TestNodeString(t *testing.T) {
	cases := []struct {
		name string
		n    *Node
		want string
	}{
		{"number", num(1.5), "1.5"},
		{"letter", letter('x'), "x"},
		{"greek", NewNode(GreekLetter, "alpha"), "alpha"},
		{"text", NewNode(Text, "a b"), `"a b"`},
		{"bare", NewNode(Plus, nil), "Plus"},
		{"nil", nil, "<nil>"},
		{"operator", NewNode(Minus, nil, NewNode(Minus, nil, num(1), num(2)), num(3)), "Minus(Minus(1, 2), 3)"},
		{"arguments", NewNode(Sum, nil, letter('i')).AppendArgument(NewNode(LowerToIndex, nil, letter('i'))), "Sum[LowerToIndex(i)](i)"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.n.String())
		})
	}
}

func TestNodeDump(t *testing.T) {
	n, err := ParseTree(`\sqrt[3]{x+1}`)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, n.Dump(&b))
	want := "Root\n" +
		"  @Number 3\n" +
		"  Plus\n" +
		"    Letter x\n" +
		"    Number 1\n"
	assert.Equal(t, want, b.String())
}

func TestParseNodeDump(t *testing.T) {
	pn, err := ParseString("x!")
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, pn.Dump(&b))
	want := "Infix\n" +
		"  Infix\n" +
		"    Infix\n" +
		"      Prefix\n" +
		"        Infix\n" +
		"          Postfix\n" +
		"            Postfix\n" +
		"              Letter:x@1\n" +
		"              Indices\n" +
		"            Factorial@2\n"
	assert.Equal(t, want, b.String())
}
