package texmath

import (
	"errors"
	"io"
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helpers to spell out parse trees in their String form. Each wraps a node in
// the levels of the grammar above it that have no operator.
func fv(v string) string   { return "Postfix[Postfix[" + v + " Indices[]]]" }
func term(v string) string { return "Infix[" + fv(v) + "]" }
func add(t string) string  { return "Infix[Prefix[" + t + "]]" }
func frac(a string) string { return "Infix[" + a + "]" }
func rel(f string) string  { return "Infix[" + f + "]" }
func atom(v string) string { return rel(frac(add(term(v)))) }

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"number", "1", atom("Number:1")},
		{"letter", "x", atom("Letter:x")},
		{"greek", `\pi`, atom(`GreekLetter:"pi"`)},
		{"text", `\text{ab}`, atom(`Text:"ab"`)},
		{"implicit", "2x", rel(frac(add("Infix[" + fv("Number:2") + " Dot " + term("Letter:x") + "]")))},
		{"explicit", `2\cdot x`, rel(frac(add("Infix[" + fv("Number:2") + " Dot " + term("Letter:x") + "]")))},
		{"sign", "-x", rel(frac("Infix[Prefix[Minus " + term("Letter:x") + "]]"))},
		{"chain", "1-2-3", rel(frac("Infix[Prefix[" + term("Number:1") + "] Minus Infix*[Prefix[" + term("Number:2") + "] Minus " + add(term("Number:3")) + "]]"))},
		{"relation", "a=b", "Infix[" + frac(add(term("Letter:a"))) + " Equals " + frac(add(term("Letter:b"))) + "]"},
		{"over", `a \over b`, rel("Infix[" + add(term("Letter:a")) + " Over " + add(term("Letter:b")) + "]")},
		{"raise", "x^2", rel(frac(add("Infix[Postfix[Postfix[Letter:x Indices[RaiseToIndex Number:2]]]]")))},
		{"indices", "x_i^2", rel(frac(add("Infix[Postfix[Postfix[Letter:x Indices[LowerToIndex Letter:i RaiseToIndex Number:2]]]]")))},
		{"factorial", "x!", rel(frac(add("Infix[Postfix[Postfix[Letter:x Indices[]] Factorial]]")))},
		{"round", "(x)", atom(atom("Letter:x"))},
		{"group", "{x}", atom(atom("Letter:x"))},
		{"modulus", "|x|", atom(atom("Letter:x"))},
		{"fraction", `\frac{1}{2}`, atom("Prefix[Fraction " + atom("Number:1") + " " + atom("Number:2") + "]")},
		{"binomial", `\binom{n}{k}`, atom("Prefix[Binomial " + atom("Letter:n") + " " + atom("Letter:k") + "]")},
		{"sqrt", `\sqrt{x}`, atom("Prefix[Root " + atom("Letter:x") + "]")},
		{"root", `\sqrt[3]{x}`, atom("Prefix[Root @" + atom("Number:3") + " " + atom("Letter:x") + "]")},
		{"function", `\sin x`, atom("Prefix[Sine @Indices[] " + atom("Letter:x") + "]")},
		{"bigop", `\sum_i i`, atom("Prefix[Sum @Indices[LowerToIndex Letter:i] " + atom("Letter:i") + "]")},
		{"formatting", `\left(x\,\right)`, atom(atom("Letter:x"))},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseString(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

// additive digs the AddExpr out of a parse tree with no relation or \over.
func additive(pn *ParseNode) *ParseNode {
	return pn.Children[0].Children[0]
}

func TestParseSubExpressions(t *testing.T) {
	pn, err := ParseString("1-2+3")
	require.NoError(t, err)
	a := additive(pn)
	require.Len(t, a.Children, 3)
	tail := a.Children[2]
	assert.True(t, tail.IsSubExpression)
	require.Len(t, tail.Children, 3)
	assert.False(t, tail.Children[2].IsSubExpression, "last link of the chain is not a subexpression")

	pn, err = ParseString("a*b^2")
	require.NoError(t, err)
	tm := additive(pn).Children[0].Children[0]
	require.Len(t, tm.Children, 3)
	assert.False(t, tm.Children[2].IsSubExpression, "single factor tail is not a subexpression")
}

func TestParseImplicitDot(t *testing.T) {
	pn, err := ParseString("2 x")
	require.NoError(t, err)
	tm := additive(pn).Children[0].Children[0]
	require.Len(t, tm.Children, 3)
	op := tm.Children[1]
	assert.Equal(t, TokenNode, op.Kind)
	assert.Equal(t, Token{Symbol: Dot, Pos: 3}, op.Token)
}

func TestParseArguments(t *testing.T) {
	pn, err := ParseString(`\lim_{x} f`)
	require.NoError(t, err)
	fn := additive(pn).Children[0].Children[0].Children[0].Children[0].Children[0]
	require.Equal(t, PrefixOperator, fn.Kind)
	require.Len(t, fn.Children, 3)
	assert.Equal(t, Limit, fn.Children[0].Token.Symbol)
	assert.True(t, fn.Children[1].IsArgument)
	assert.Equal(t, Indices, fn.Children[1].Kind)
	assert.False(t, fn.Children[2].IsArgument)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		pos  int
		res  []string
	}{
		{"empty", "", new(ParseError), 1, []string{`(?i)\bvalue\b`, `\bend of input\b`}},
		{"dangling", "x+", new(ParseError), 3, []string{`(?i)\bvalue\b`, `\bend of input\b`}},
		{"raise-raise", "x^2^3", new(ParseError), 4, []string{`expected LowerToIndex`, `RaiseToIndex`}},
		{"lower-lower", "x_2_3", new(ParseError), 4, []string{`expected RaiseToIndex`}},
		{"three-indices", "x^2_3^4", new(ParseError), 6, []string{`(?i)too many indices`}},
		{"index-text", `x^\text{a}`, new(ParseError), 3, []string{`Number, Letter, GreekLetter, or GroupOpen`, `\bText\b`}},
		{"empty-text", `\text{}`, new(ParseError), 7, []string{`(?i)\bempty text\b`}},
		{"text-no-group", `\text x`, new(ParseError), 7, []string{`expected GroupOpen`, `Letter:x`}},
		{"modulus-nested", "|x+|y||", new(ParseError), 4, []string{`(?i)\bvalue\b`, `ModulusBracket`}},
		{"unclosed", "(x", new(ParseError), 3, []string{`expected RoundBracketClose`, `\bend of input\b`}},
		{"mismatch", "(x]", new(ParseError), 3, []string{`expected RoundBracketClose`, `SquareBracketClose`}},
		{"unopened", "x)", new(ParseError), 2, []string{`expected EndOfStream`, `RoundBracketClose`}},
		{"fraction-group", `\frac{1}2`, new(ParseError), 9, []string{`expected GroupOpen`, `Number:2`}},
		{"root-unclosed", `\sqrt[2{x}`, new(ParseError), 11, []string{`expected SquareBracketClose`}},
		{"double-factorial", "x!!", new(ParseError), 3, []string{`expected EndOfStream`, `Factorial`}},
		{"relation-chain", "x=y=z", new(ParseError), 4, []string{`expected EndOfStream`, `Equals`}},
		{"lexer", "x+$", new(LexError), 3, []string{`\$`}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			pn, err := ParseString(c.src)
			assert.Nil(t, pn)
			require.Error(t, err)
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			var ie InputError
			if assert.True(t, errors.As(err, &ie)) {
				assert.Equal(t, c.pos, ie.Pos(), "wrong error position")
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

type endless struct{}

func (endless) Next() (Token, error) { return Token{}, io.EOF }

func TestParseStreamWithoutEnd(t *testing.T) {
	_, err := Parse(endless{})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, NullToken, perr.Token)
	assert.Equal(t, -1, perr.Pos())
	assert.Equal(t, "token stream ended without EndOfStream", err.Error())
}

func TestParseComposedText(t *testing.T) {
	// Text tokens from the composer already carry their string.
	pn, err := Parse(Tokens([]Token{{Symbol: Text, Value: "hi", Pos: -1}}))
	require.NoError(t, err)
	assert.Equal(t, atom(`Text:"hi"`), pn.String())

	_, err = Parse(Tokens([]Token{{Symbol: Text, Value: "", Pos: -1}}))
	assert.Error(t, err)
}

func TestParseErrorMessage(t *testing.T) {
	cases := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Token: Token{Symbol: Plus, Pos: 2}, Msg: "expected a value"}, "2: expected a value, found Plus@2"},
		{&ParseError{Token: Token{Symbol: EndOfStream, Pos: 5}, Expected: []Symbol{GroupOpen}}, "5: expected GroupOpen but found end of input"},
		{&ParseError{Token: Token{Symbol: Comma, Pos: 1}, Expected: []Symbol{Number, Letter}}, "1: expected Number or Letter but found Comma@1"},
		{&ParseError{Token: Token{Symbol: Comma, Pos: -1}, Expected: []Symbol{Number, Letter, GroupOpen}}, "expected Number, Letter, or GroupOpen but found Comma"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Error())
	}
}

func BenchmarkParse(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"arith", "1+2*8-3/27+4-13*([4-2]*5)"},
		{"implicit", "2xyz^2 a_i b_j"},
		{"functions", `\sum_{i=1}^n \frac{\sin i}{\sqrt[3]{i}}`},
		{"nested", "((((((((x))))))))"},
	}
	for _, c := range cases {
		c := c
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := ParseString(c.src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
