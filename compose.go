package texmath

import "strconv"

// Binding strength of operators in composed text. The parser binds \over
// more loosely than + and -, so it sits below them here.
const (
	precNone = iota
	precRelation
	precOver
	precAdd
	precSign
	precMul
	precIndex
)

func precedence(n *Node) int {
	switch s := n.Symbol; {
	case s.IsRelation():
		return precRelation
	case s == Over:
		return precOver
	case s.IsPlusOrMinus():
		if len(n.Children) == 1 {
			return precSign
		}
		return precAdd
	case isTermOp(s):
		return precMul
	case s.IsRaiseOrLower():
		return precIndex
	}
	return precNone
}

type composer struct {
	toks []Token
	cfg  config
}

// Compose converts an expression tree to tokens. Brackets appear only where
// parsing the written tokens would otherwise produce a different tree.
func Compose(n *Node, opts ...Option) ([]Token, error) {
	c := composer{cfg: newConfig(opts)}
	if err := c.node(n, true, false); err != nil {
		return nil, err
	}
	return c.toks, nil
}

func (c *composer) emit(s Symbol) {
	c.toks = append(c.toks, symbolToken(s))
}

// node composes n. last is whether nothing follows n before the end of the
// output or of an enclosing bracket. groupOpen is whether n is directly
// inside group brackets written by its parent.
func (c *composer) node(n *Node, last, groupOpen bool) error {
	if n == nil {
		return &ComposeError{Node: &Node{Symbol: Null}, Msg: "nil node"}
	}
	open, close := brackets(n, last)
	if open == GroupOpen && groupOpen {
		open, close = Null, Null
	}
	if open != Null {
		c.emit(open)
		last = true
	}
	var err error
	switch s := n.Symbol; {
	case s.IsRelation(), s.IsBinary():
		err = c.infix(n, last)
	case s.IsBracketedFunction():
		err = c.bracketedFunction(n)
	case s.IsFunction(), s.IsBigOperator():
		err = c.prefix(n, last)
	case s.IsPostfix():
		err = c.postfix(n)
	case s.IsValue():
		err = c.value(n)
	default:
		err = &ComposeError{Node: n, Msg: "unrecognized node symbol"}
	}
	if err != nil {
		return err
	}
	if close != Null {
		c.emit(close)
	}
	return nil
}

// brackets decides the brackets that must surround n for it to parse back
// into the same place in the tree.
func brackets(n *Node, last bool) (open, close Symbol) {
	p := n.parent
	if p == nil {
		return Null, Null
	}
	np, pp := precedence(n), precedence(p)
	if np != precNone && pp != precNone && !p.Symbol.IsRaiseOrLower() {
		// Relations and \over do not chain at all. Other operators chain to
		// the left, so an operand of equal precedence needs brackets on the
		// right.
		switch {
		case np < pp,
			np == pp && (np <= precOver || len(p.Children) == 1 || n.childIndex() == 1):
			return RoundBracketOpen, RoundBracketClose
		}
		return Null, Null
	}
	if n.Symbol.IsFunction() || n.Symbol.IsBigOperator() {
		// A function's operand extends as far as it can, so the function
		// needs a group unless nothing follows it.
		if last {
			return Null, Null
		}
		return GroupOpen, GroupClose
	}
	if p.Symbol.IsRaiseOrLower() || p.Symbol.IsPostfix() {
		if !needsGroup(n, p) {
			return Null, Null
		}
		return GroupOpen, GroupClose
	}
	return Null, Null
}

// needsGroup decides whether n, an operand of a raise, lower, or postfix node
// p, must be grouped.
func needsGroup(n, p *Node) bool {
	switch n.Symbol {
	case Number, Letter, GreekLetter:
		return len(n.Children) != 0
	}
	base := n.childIndex() == 0 && (p.Symbol.IsPostfix() || len(p.Children) == 2)
	if !base {
		return true
	}
	switch {
	case n.Symbol == Text, n.Symbol.IsBracketedFunction():
		return false
	case n.Symbol == LowerToIndex && p.Symbol == RaiseToIndex:
		// x_i^2
		return false
	case n.Symbol.IsRaiseOrLower() && p.Symbol.IsPostfix():
		// x^2!
		return false
	}
	return true
}

func (c *composer) infix(n *Node, last bool) error {
	switch len(n.Children) {
	case 1:
		if !n.Symbol.IsPlusOrMinus() {
			return c.arity(n)
		}
		c.emit(n.Symbol)
		return c.node(n.Children[0], last, false)
	case 2:
	default:
		return c.arity(n)
	}
	if err := c.node(n.Children[0], false, false); err != nil {
		return err
	}
	s := n.Symbol
	if s != Dot || !implicitProduct(n.Children[1]) {
		pad := s.IsLongOperator() || (!c.cfg.nopad && s.IsPlusOrMinus())
		if pad {
			c.emit(Space)
		}
		c.emit(s)
		if pad {
			c.emit(Space)
		}
	}
	// An index is never last: a function there must be grouped so that its
	// operand stays inside the index.
	return c.node(n.Children[1], last && !s.IsRaiseOrLower(), false)
}

// implicitProduct reports whether multiplication by r can be written by
// juxtaposition. That fails when r is written starting with a number, which
// would merge with a preceding number, or when r is compound.
func implicitProduct(r *Node) bool {
	for (r.Symbol == Dot || r.Symbol.IsRaiseOrLower() || r.Symbol.IsPostfix()) && len(r.Children) > 0 {
		r = r.Children[0]
	}
	switch r.Symbol {
	case Number, Text:
		return false
	}
	return len(r.Children) <= 1
}

func (c *composer) bracketedFunction(n *Node) error {
	if len(n.Children) == 0 {
		return c.arity(n)
	}
	c.emit(n.Symbol)
	for _, a := range n.Arguments {
		c.emit(SquareBracketOpen)
		if err := c.node(a, true, true); err != nil {
			return err
		}
		c.emit(SquareBracketClose)
	}
	for _, ch := range n.Children {
		c.emit(GroupOpen)
		if err := c.node(ch, true, true); err != nil {
			return err
		}
		c.emit(GroupClose)
	}
	return nil
}

func (c *composer) prefix(n *Node, last bool) error {
	if len(n.Children) == 0 {
		return c.arity(n)
	}
	c.emit(n.Symbol)
	for _, a := range n.Arguments {
		if !a.Symbol.IsRaiseOrLower() {
			return &ComposeError{Node: a, Msg: "function argument must be an index"}
		}
		if len(a.Children) != 1 {
			return c.arity(a)
		}
		c.emit(a.Symbol)
		if err := c.node(a.Children[0], false, false); err != nil {
			return err
		}
	}
	c.emit(Space)
	for i, ch := range n.Children {
		if err := c.node(ch, last && i == len(n.Children)-1, false); err != nil {
			return err
		}
	}
	return nil
}

func (c *composer) postfix(n *Node) error {
	if len(n.Children) == 0 {
		return c.arity(n)
	}
	for _, ch := range n.Children {
		if err := c.node(ch, false, false); err != nil {
			return err
		}
	}
	c.emit(n.Symbol)
	return nil
}

func (c *composer) value(n *Node) error {
	if len(n.Children) != 0 {
		return c.arity(n)
	}
	ok := false
	switch v := n.Value.(type) {
	case float64:
		ok = n.Symbol == Number
	case rune:
		ok = n.Symbol == Letter
	case string:
		ok = (n.Symbol == GreekLetter || n.Symbol == Text) && v != ""
	}
	if !ok {
		return &ComposeError{Node: n, Msg: "invalid value for " + n.Symbol.String()}
	}
	c.toks = append(c.toks, Token{Symbol: n.Symbol, Value: n.Value, Pos: -1})
	return nil
}

func (c *composer) arity(n *Node) error {
	return &ComposeError{Node: n, Msg: "cannot have " + strconv.Itoa(len(n.Children)) + " children"}
}
