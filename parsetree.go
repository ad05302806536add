package texmath

import (
	"io"
	"strconv"
	"strings"
)

// ParseKind is the kind of a parse tree node.
type ParseKind int8

const (
	// TokenNode is a leaf holding a single token.
	TokenNode ParseKind = iota
	// InfixOperator is either a single operand or operand, operator token,
	// operand.
	InfixOperator
	// PrefixOperator is an operator or function token followed by its
	// operands and arguments, or a single operand.
	PrefixOperator
	// PostfixOperator is an operand followed by a postfix operator token or
	// by an Indices node, or a single operand.
	PostfixOperator
	// Indices holds zero, one, or two pairs of ^ or _ token and index.
	Indices
)

var parseKindNames = [...]string{
	TokenNode:       "Token",
	InfixOperator:   "Infix",
	PrefixOperator:  "Prefix",
	PostfixOperator: "Postfix",
	Indices:         "Indices",
}

func (k ParseKind) String() string {
	if k < 0 || int(k) >= len(parseKindNames) {
		return "ParseKind(" + strconv.Itoa(int(k)) + ")"
	}
	return parseKindNames[k]
}

// ParseNode is a node in the concrete parse tree. Parse trees follow the
// grammar closely; BuildTree converts them to expression trees.
type ParseNode struct {
	Kind ParseKind
	// Token is the token of a TokenNode. It is NullToken for other kinds.
	Token    Token
	Children []*ParseNode
	// IsArgument marks an optional bracketed argument of a function, such as
	// the index of a root or the limits of a sum.
	IsArgument bool
	// IsSubExpression marks the right-recursive tail of an operator chain.
	IsSubExpression bool
}

func tokenNode(tok Token) *ParseNode {
	return &ParseNode{Kind: TokenNode, Token: tok}
}

func kindNode(kind ParseKind, children ...*ParseNode) *ParseNode {
	return &ParseNode{Kind: kind, Token: NullToken, Children: children}
}

// String formats the parse tree on one line. Token nodes are written as their
// tokens without positions and other nodes as Kind[children...].
func (n *ParseNode) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *ParseNode) fmt(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.IsArgument {
		b.WriteByte('@')
	}
	if n.Kind == TokenNode {
		tok := n.Token
		tok.Pos = -1
		b.WriteString(tok.String())
		return
	}
	b.WriteString(n.Kind.String())
	if n.IsSubExpression {
		b.WriteByte('*')
	}
	b.WriteByte('[')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.fmt(b)
	}
	b.WriteByte(']')
}

// Dump writes the parse tree to w with one node per line, indenting children
// two spaces deeper than their parents.
func (n *ParseNode) Dump(w io.Writer) error {
	var b strings.Builder
	n.dump(&b, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func (n *ParseNode) dump(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat("  ", level))
	if n.IsArgument {
		b.WriteByte('@')
	}
	if n.Kind == TokenNode {
		b.WriteString(n.Token.String())
	} else {
		b.WriteString(n.Kind.String())
		if n.IsSubExpression {
			b.WriteByte('*')
		}
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.dump(b, level+1)
	}
}
