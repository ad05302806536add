package texmath

import "strconv"

// BuildTree converts a parse tree into an expression tree. The operator
// chains that the grammar parses right-recursively become left-associative.
func BuildTree(pn *ParseNode) (*Node, error) {
	n, err := build(pn)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, &BuildError{Node: pn, Msg: "no expression"}
	}
	return n, nil
}

// ParseTree lexes, parses, and builds an expression tree from source text.
func ParseTree(src string, opts ...Option) (*Node, error) {
	pn, err := ParseString(src, opts...)
	if err != nil {
		return nil, err
	}
	return BuildTree(pn)
}

// build converts one parse node. The result is nil only for an empty Indices
// node.
func build(pn *ParseNode) (*Node, error) {
	if pn == nil {
		return nil, &BuildError{Node: pn, Msg: "nil parse node"}
	}
	switch pn.Kind {
	case TokenNode:
		if len(pn.Children) != 0 {
			return nil, arity(pn)
		}
		return &Node{Symbol: pn.Token.Symbol, Value: pn.Token.Value}, nil
	case InfixOperator:
		return buildInfix(pn)
	case PrefixOperator:
		return buildPrefix(pn)
	case PostfixOperator:
		return buildPostfix(pn)
	case Indices:
		return nil, &BuildError{Node: pn, Msg: "indices outside of an indexed value"}
	default:
		return nil, &BuildError{Node: pn, Msg: "invalid parse node kind " + pn.Kind.String()}
	}
}

func arity(pn *ParseNode) error {
	return &BuildError{Node: pn, Msg: pn.Kind.String() + " node cannot have " + strconv.Itoa(len(pn.Children)) + " children"}
}

// operator returns the token of a parse node that must be a single token.
func operator(pn *ParseNode) (Token, error) {
	if pn == nil || pn.Kind != TokenNode {
		return NullToken, &BuildError{Node: pn, Msg: "expected an operator token"}
	}
	return pn.Token, nil
}

func buildInfix(pn *ParseNode) (*Node, error) {
	switch len(pn.Children) {
	case 1:
		return build(pn.Children[0])
	case 3:
	default:
		return nil, arity(pn)
	}
	op, err := operator(pn.Children[1])
	if err != nil {
		return nil, err
	}
	left, err := build(pn.Children[0])
	if err != nil {
		return nil, err
	}
	tail := pn.Children[2]
	right, err := build(tail)
	if err != nil {
		return nil, err
	}
	n := &Node{Symbol: op.Symbol}
	n.AppendChild(left)
	if !op.Symbol.IsBinary() || !tail.IsSubExpression {
		return n.AppendChild(right), nil
	}
	// The tail is a chain that has already been rotated into a
	// left-associative tree. Its leftmost operation is as many levels down as
	// the chain has operators after the first; n takes that operation's first
	// operand.
	at := right
	for k := chainLength(tail); k > 1; k-- {
		if len(at.Children) != 2 {
			break
		}
		at = at.Children[0]
	}
	if len(at.Children) != 2 {
		return n.AppendChild(right), nil
	}
	n.AppendChild(at.Children[0])
	at.setChild(0, n)
	return right, nil
}

// chainLength counts the operators in a right-recursive chain.
func chainLength(pn *ParseNode) int {
	k := 0
	for len(pn.Children) == 3 {
		k++
		pn = pn.Children[2]
	}
	return k
}

func buildPrefix(pn *ParseNode) (*Node, error) {
	switch len(pn.Children) {
	case 0:
		return nil, arity(pn)
	case 1:
		return build(pn.Children[0])
	case 2:
		if f := pn.Children[0]; f.Kind == TokenNode && f.Token.Symbol == Dot {
			// A lone implicit multiplication marker.
			return build(pn.Children[1])
		}
	}
	op, err := operator(pn.Children[0])
	if err != nil {
		return nil, err
	}
	n := &Node{Symbol: op.Symbol, Value: op.Value}
	for _, c := range pn.Children[1:] {
		if c.Kind == Indices {
			args, err := buildArgIndices(c)
			if err != nil {
				return nil, err
			}
			for _, a := range args {
				n.AppendArgument(a)
			}
			continue
		}
		e, err := build(c)
		if err != nil {
			return nil, err
		}
		if c.IsArgument {
			n.AppendArgument(e)
		} else {
			n.AppendChild(e)
		}
	}
	return n, nil
}

func buildPostfix(pn *ParseNode) (*Node, error) {
	switch len(pn.Children) {
	case 0:
		return nil, arity(pn)
	case 1:
		return build(pn.Children[0])
	case 2:
		if pn.Children[1].Kind == Indices {
			return buildIndexed(pn.Children[0], pn.Children[1])
		}
	}
	last := len(pn.Children) - 1
	op, err := operator(pn.Children[last])
	if err != nil {
		return nil, err
	}
	n := &Node{Symbol: op.Symbol}
	for _, c := range pn.Children[:last] {
		e, err := build(c)
		if err != nil {
			return nil, err
		}
		n.AppendChild(e)
	}
	return n, nil
}

// indexPairs checks the shape of an Indices node and returns its operator
// tokens.
func indexPairs(pn *ParseNode) ([]Token, error) {
	switch len(pn.Children) {
	case 0, 2, 4:
	default:
		return nil, arity(pn)
	}
	var ops []Token
	for i := 0; i < len(pn.Children); i += 2 {
		op, err := operator(pn.Children[i])
		if err != nil {
			return nil, err
		}
		if !op.Symbol.IsRaiseOrLower() {
			return nil, &BuildError{Node: pn, Msg: "index operator is " + op.Symbol.String()}
		}
		ops = append(ops, op)
	}
	if len(ops) == 2 && ops[0].Symbol == ops[1].Symbol {
		return nil, &BuildError{Node: pn, Msg: "repeated index " + ops[0].Symbol.String()}
	}
	return ops, nil
}

// buildArgIndices converts the indices of a function into arguments, each a
// raise or lower node whose only child is the index.
func buildArgIndices(pn *ParseNode) ([]*Node, error) {
	ops, err := indexPairs(pn)
	if err != nil {
		return nil, err
	}
	args := make([]*Node, 0, len(ops))
	for i, op := range ops {
		idx, err := build(pn.Children[2*i+1])
		if err != nil {
			return nil, err
		}
		args = append(args, NewNode(op.Symbol, nil, idx))
	}
	return args, nil
}

// buildIndexed attaches indices to a value. With both indices, the raise is
// the outer node and the lower holds the value: x_i^2 and x^2_i are both
// RaiseToIndex(LowerToIndex(x, i), 2).
func buildIndexed(value, indices *ParseNode) (*Node, error) {
	ops, err := indexPairs(indices)
	if err != nil {
		return nil, err
	}
	v, err := build(value)
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return v, nil
	}
	idx := make([]*Node, len(ops))
	for i := range ops {
		idx[i], err = build(indices.Children[2*i+1])
		if err != nil {
			return nil, err
		}
	}
	if len(ops) == 1 {
		return NewNode(ops[0].Symbol, nil, v, idx[0]), nil
	}
	outer, inner := 0, 1
	if ops[0].Symbol == LowerToIndex {
		outer, inner = 1, 0
	}
	in := NewNode(ops[inner].Symbol, nil, v, idx[inner])
	return NewNode(ops[outer].Symbol, nil, in, idx[outer]), nil
}
