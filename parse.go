package texmath

import (
	"errors"
	"io"
	"strings"
)

// RelationalExpr = FractionalExpr [ RelOp FractionalExpr ]
// FractionalExpr = AddExpr [ '\over' AddExpr ]
// AddExpr        = SignedTerm [ AddOp AddExpr ]
// SignedTerm     = [ AddOp ] Term
// Term           = FactorialValue [ [ TermOp ] Term ]
// FactorialValue = IndexedValue [ '!' ]
// IndexedValue   = Value IndicesPair
// IndicesPair    = [ ('^' | '_') Index [ ('_' | '^') Index ] ]
// Index          = Number | Letter | GreekLetter | Group
// Value          = Number | Letter | GreekLetter | Group | BracketedExpr
//                | Fraction | Binomial | Root | Function | BigOperator | Text
// Group          = '{' RelationalExpr '}'
// BracketedExpr  = Open RelationalExpr Close
// Fraction       = '\frac' Group Group
// Binomial       = '\binom' Group Group
// Root           = '\sqrt' [ '[' RelationalExpr ']' ] Group
// Function       = FunctionName IndicesPair RelationalExpr
// BigOperator    = BigOperatorName IndicesPair RelationalExpr
// Text           = '\text' '{' Letter { Letter } '}'
//
// AddOp is one of + - \pm \mp, and TermOp is one of \times \cdot * / \bmod.
// A Term followed directly by another Term is an implicit multiplication.

// parseState tracks which ambiguous brackets are open. It is passed by value
// so that sibling subtrees never see each other's brackets.
type parseState struct {
	modulusOpen bool
	normOpen    bool
}

type parser struct {
	ts  TokenStream
	cur Token
}

// Parse parses a complete expression from a token stream. Formatting tokens
// are ignored. The stream must end with EndOfStream directly after the
// expression.
func Parse(ts TokenStream) (*ParseNode, error) {
	p := parser{ts: ts}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.relational(parseState{})
	if err != nil {
		return nil, err
	}
	if p.cur.Symbol != EndOfStream {
		return nil, p.expected(EndOfStream)
	}
	return n, nil
}

// ParseString lexes and parses an expression. The options are passed to the
// lexer.
func ParseString(src string, opts ...Option) (*ParseNode, error) {
	return Parse(Tokenize(src, opts...))
}

// advance reads the next token that is not a formatting token.
func (p *parser) advance() error {
	for {
		tok, err := p.ts.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &ParseError{Token: NullToken, Msg: "token stream ended without EndOfStream"}
			}
			return err
		}
		if tok.Symbol.IsFormatting() {
			continue
		}
		p.cur = tok
		return nil
	}
}

// take returns the current token as a parse node and advances.
func (p *parser) take() (*ParseNode, error) {
	n := tokenNode(p.cur)
	return n, p.advance()
}

// expect consumes a token with the given symbol.
func (p *parser) expect(s Symbol) error {
	if p.cur.Symbol != s {
		return p.expected(s)
	}
	return p.advance()
}

func (p *parser) expected(s ...Symbol) error {
	return &ParseError{Token: p.cur, Expected: s}
}

func (p *parser) relational(st parseState) (*ParseNode, error) {
	left, err := p.fractional(st)
	if err != nil {
		return nil, err
	}
	n := kindNode(InfixOperator, left)
	if !p.cur.Symbol.IsRelation() {
		return n, nil
	}
	op, err := p.take()
	if err != nil {
		return nil, err
	}
	right, err := p.fractional(st)
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, op, right)
	return n, nil
}

func (p *parser) fractional(st parseState) (*ParseNode, error) {
	left, err := p.additive(st)
	if err != nil {
		return nil, err
	}
	n := kindNode(InfixOperator, left)
	if p.cur.Symbol != Over {
		return n, nil
	}
	op, err := p.take()
	if err != nil {
		return nil, err
	}
	right, err := p.additive(st)
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, op, right)
	return n, nil
}

func (p *parser) additive(st parseState) (*ParseNode, error) {
	left, err := p.signedTerm(st)
	if err != nil {
		return nil, err
	}
	n := kindNode(InfixOperator, left)
	if !p.cur.Symbol.IsPlusOrMinus() {
		return n, nil
	}
	op, err := p.take()
	if err != nil {
		return nil, err
	}
	tail, err := p.additive(st)
	if err != nil {
		return nil, err
	}
	tail.IsSubExpression = len(tail.Children) == 3
	n.Children = append(n.Children, op, tail)
	return n, nil
}

func (p *parser) signedTerm(st parseState) (*ParseNode, error) {
	n := kindNode(PrefixOperator)
	if p.cur.Symbol.IsPlusOrMinus() {
		sign, err := p.take()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, sign)
	}
	t, err := p.term(st)
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, t)
	return n, nil
}

func isTermOp(s Symbol) bool {
	switch s {
	case Cross, Dot, Star, Divide, InlineModulo:
		return true
	}
	return false
}

func (p *parser) term(st parseState) (*ParseNode, error) {
	first, err := p.factorialValue(st, true)
	if err != nil {
		return nil, err
	}
	return p.termRest(first, st)
}

// termRest parses the remainder of a term whose first factor has already been
// parsed.
func (p *parser) termRest(first *ParseNode, st parseState) (*ParseNode, error) {
	n := kindNode(InfixOperator, first)
	var op, tail *ParseNode
	if isTermOp(p.cur.Symbol) {
		var err error
		op, err = p.take()
		if err != nil {
			return nil, err
		}
		tail, err = p.term(st)
		if err != nil {
			return nil, err
		}
	} else {
		pos := p.cur.Pos
		next, err := p.factorialValue(st, false)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return n, nil
		}
		op = tokenNode(Token{Symbol: Dot, Pos: pos})
		tail, err = p.termRest(next, st)
		if err != nil {
			return nil, err
		}
	}
	tail.IsSubExpression = len(tail.Children) == 3
	n.Children = append(n.Children, op, tail)
	return n, nil
}

func (p *parser) factorialValue(st parseState, required bool) (*ParseNode, error) {
	v, err := p.indexedValue(st, required)
	if v == nil || err != nil {
		return nil, err
	}
	n := kindNode(PostfixOperator, v)
	if p.cur.Symbol == Factorial {
		f, err := p.take()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, f)
	}
	return n, nil
}

func (p *parser) indexedValue(st parseState, required bool) (*ParseNode, error) {
	v, err := p.value(st, required)
	if v == nil || err != nil {
		return nil, err
	}
	idx, err := p.indices(st)
	if err != nil {
		return nil, err
	}
	return kindNode(PostfixOperator, v, idx), nil
}

func (p *parser) indices(st parseState) (*ParseNode, error) {
	n := kindNode(Indices)
	first := p.cur.Symbol
	if !first.IsRaiseOrLower() {
		return n, nil
	}
	for i := 0; i < 2 && p.cur.Symbol.IsRaiseOrLower(); i++ {
		if i > 0 && p.cur.Symbol == first {
			other := LowerToIndex
			if first == LowerToIndex {
				other = RaiseToIndex
			}
			return nil, p.expected(other)
		}
		op, err := p.take()
		if err != nil {
			return nil, err
		}
		idx, err := p.index(st)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, op, idx)
	}
	if p.cur.Symbol.IsRaiseOrLower() {
		return nil, &ParseError{Token: p.cur, Msg: "too many indices"}
	}
	return n, nil
}

func (p *parser) index(st parseState) (*ParseNode, error) {
	if p.cur.Symbol.IsValue() && p.cur.Symbol != Text {
		return p.take()
	}
	n, err := p.group(st)
	if n == nil && err == nil {
		return nil, p.expected(Number, Letter, GreekLetter, GroupOpen)
	}
	return n, err
}

// value parses any value. If required is false and the current token cannot
// start a value, the result is nil with no error and nothing is consumed.
func (p *parser) value(st parseState, required bool) (*ParseNode, error) {
	alts := [...]func(parseState) (*ParseNode, error){
		p.rawValue,
		p.group,
		p.bracketed,
		p.fraction,
		p.root,
		p.function,
		p.text,
	}
	for _, alt := range alts {
		n, err := alt(st)
		if n != nil || err != nil {
			return n, err
		}
	}
	if required {
		return nil, &ParseError{Token: p.cur, Msg: "expected a value"}
	}
	return nil, nil
}

func (p *parser) rawValue(st parseState) (*ParseNode, error) {
	switch p.cur.Symbol {
	case Number, Letter, GreekLetter:
		return p.take()
	}
	return nil, nil
}

func (p *parser) group(st parseState) (*ParseNode, error) {
	if p.cur.Symbol != GroupOpen {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.relational(st)
	if err != nil {
		return nil, err
	}
	if err := p.expect(GroupClose); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) requireGroup(st parseState) (*ParseNode, error) {
	n, err := p.group(st)
	if n == nil && err == nil {
		return nil, p.expected(GroupOpen)
	}
	return n, err
}

func (p *parser) bracketed(st parseState) (*ParseNode, error) {
	closer, ok := closers[p.cur.Symbol]
	if !ok {
		return nil, nil
	}
	// Modulus and norm brackets close rather than open while one is already
	// open.
	switch p.cur.Symbol {
	case ModulusBracket:
		if st.modulusOpen {
			return nil, nil
		}
		st.modulusOpen = true
	case NormBracket:
		if st.normOpen {
			return nil, nil
		}
		st.normOpen = true
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.relational(st)
	if err != nil {
		return nil, err
	}
	if err := p.expect(closer); err != nil {
		return nil, err
	}
	return n, nil
}

// fraction parses \frac and \binom, which both take two groups.
func (p *parser) fraction(st parseState) (*ParseNode, error) {
	if p.cur.Symbol != Fraction && p.cur.Symbol != Binomial {
		return nil, nil
	}
	fn, err := p.take()
	if err != nil {
		return nil, err
	}
	a, err := p.requireGroup(st)
	if err != nil {
		return nil, err
	}
	b, err := p.requireGroup(st)
	if err != nil {
		return nil, err
	}
	return kindNode(PrefixOperator, fn, a, b), nil
}

func (p *parser) root(st parseState) (*ParseNode, error) {
	if p.cur.Symbol != Root {
		return nil, nil
	}
	fn, err := p.take()
	if err != nil {
		return nil, err
	}
	n := kindNode(PrefixOperator, fn)
	if p.cur.Symbol == SquareBracketOpen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.relational(st)
		if err != nil {
			return nil, err
		}
		if err := p.expect(SquareBracketClose); err != nil {
			return nil, err
		}
		arg.IsArgument = true
		n.Children = append(n.Children, arg)
	}
	g, err := p.requireGroup(st)
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, g)
	return n, nil
}

// function parses named functions and big operators. Both take optional
// indices as arguments followed by an operand that extends as far as possible.
func (p *parser) function(st parseState) (*ParseNode, error) {
	if !p.cur.Symbol.IsFunction() && !p.cur.Symbol.IsBigOperator() {
		return nil, nil
	}
	fn, err := p.take()
	if err != nil {
		return nil, err
	}
	idx, err := p.indices(st)
	if err != nil {
		return nil, err
	}
	idx.IsArgument = true
	body, err := p.relational(st)
	if err != nil {
		return nil, err
	}
	return kindNode(PrefixOperator, fn, idx, body), nil
}

func (p *parser) text(st parseState) (*ParseNode, error) {
	if p.cur.Symbol != Text {
		return nil, nil
	}
	tok := p.cur
	if s, ok := tok.Value.(string); ok {
		// Composed token streams carry the text in the token itself.
		if s == "" {
			return nil, &ParseError{Token: tok, Msg: "empty text"}
		}
		return p.take()
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(GroupOpen); err != nil {
		return nil, err
	}
	var b strings.Builder
	for p.cur.Symbol == Letter {
		r, _ := p.cur.Value.(rune)
		b.WriteRune(r)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.cur.Symbol != GroupClose {
		return nil, p.expected(GroupClose)
	}
	if b.Len() == 0 {
		return nil, &ParseError{Token: p.cur, Msg: "empty text"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	tok.Value = b.String()
	return tokenNode(tok), nil
}
