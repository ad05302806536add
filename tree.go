package texmath

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is a node in an expression tree. Operators hold their operands in
// Children. Functions, big operators, and roots may also hold Arguments: the
// ^ and _ limits of a function, or the index of a root.
//
// Each node records the node holding it. Use AppendChild and AppendArgument to
// keep that record consistent when building trees by hand.
type Node struct {
	Symbol Symbol
	// Value is the value of a Number, Letter, GreekLetter, or Text node, with
	// the same types as Token values.
	Value     interface{}
	Children  []*Node
	Arguments []*Node

	parent *Node
}

// NewNode creates a detached node with the given children.
func NewNode(s Symbol, value interface{}, children ...*Node) *Node {
	n := &Node{Symbol: s, Value: value}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// AppendChild adds c as the last child of n and returns n.
func (n *Node) AppendChild(c *Node) *Node {
	c.parent = n
	n.Children = append(n.Children, c)
	return n
}

// AppendArgument adds a as the last argument of n and returns n.
func (n *Node) AppendArgument(a *Node) *Node {
	a.parent = n
	n.Arguments = append(n.Arguments, a)
	return n
}

// setChild replaces the ith child of n.
func (n *Node) setChild(i int, c *Node) {
	c.parent = n
	n.Children[i] = c
}

// Parent returns the node holding n as a child or argument, or nil if n is
// the root of its tree.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// childIndex returns the index of n in its parent's children, or -1 if n is
// an argument or the root.
func (n *Node) childIndex() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Equal reports whether two trees have the same structure. Values are
// compared only when n's value is non-nil, so a node without a value matches
// any value in m. Arguments are not compared.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Symbol != m.Symbol {
		return false
	}
	if n.Value != nil && n.Value != m.Value {
		return false
	}
	if len(n.Children) != len(m.Children) {
		return false
	}
	for i, c := range n.Children {
		if !c.Equal(m.Children[i]) {
			return false
		}
	}
	return true
}

// String formats the tree in function notation, e.g. Minus(Minus(1, 2), 3).
// Arguments are written in square brackets before the children.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.Value != nil || (len(n.Children) == 0 && len(n.Arguments) == 0) {
		b.WriteString(n.valueString())
		return
	}
	b.WriteString(n.Symbol.String())
	if len(n.Arguments) > 0 {
		b.WriteByte('[')
		for i, a := range n.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(']')
	}
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.fmt(b)
	}
	b.WriteByte(')')
}

// valueString formats the value of a leaf node.
func (n *Node) valueString() string {
	switch v := n.Value.(type) {
	case nil:
		return n.Symbol.String()
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case rune:
		return string(v)
	case string:
		if n.Symbol == Text {
			return strconv.Quote(v)
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Dump writes the tree to w with one node per line, indenting children two
// spaces deeper than their parents. Arguments are listed before children and
// marked with @.
func (n *Node) Dump(w io.Writer) error {
	var b strings.Builder
	n.dump(&b, false, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func (n *Node) dump(b *strings.Builder, arg bool, level int) {
	b.WriteString(strings.Repeat("  ", level))
	if arg {
		b.WriteByte('@')
	}
	b.WriteString(n.Symbol.String())
	if n.Value != nil {
		b.WriteByte(' ')
		b.WriteString(n.valueString())
	}
	b.WriteByte('\n')
	for _, a := range n.Arguments {
		a.dump(b, true, level+1)
	}
	for _, c := range n.Children {
		c.dump(b, false, level+1)
	}
}
