package texmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolClasses(t *testing.T) {
	cases := []struct {
		name string
		is   func(Symbol) bool
		yes  []Symbol
		no   []Symbol
	}{
		{"value", Symbol.IsValue, []Symbol{Number, Letter, GreekLetter, Text}, []Symbol{EndOfStream, GroupOpen, Plus}},
		{"relation", Symbol.IsRelation, []Symbol{Equals, LessThanOrEqualTo, DashVLine}, []Symbol{NormBracket, Fraction, Over}},
		{"bracketed-function", Symbol.IsBracketedFunction, []Symbol{Fraction, Binomial, Root}, []Symbol{Sine, DashVLine}},
		{"function", Symbol.IsFunction, []Symbol{Minimum, Sine, ArHypCotangent}, []Symbol{Root, InlineModulo, IdentityModulo, Sum}},
		{"big-operator", Symbol.IsBigOperator, []Symbol{Sum, Integral, BigWedge}, []Symbol{IdentityModulo, Plus}},
		{"binary", Symbol.IsBinary, []Symbol{Plus, Minus, Cross, Dot, Over, RaiseToIndex, LowerToIndex, InlineModulo}, []Symbol{Equals, Factorial, IdentityModulo, BigWedge}},
		{"postfix", Symbol.IsPostfix, []Symbol{Factorial}, []Symbol{Prime, LowerToIndex}},
		{"left-associative", Symbol.IsLeftAssociative, []Symbol{Minus, Divide, Over, RaiseToIndex}, []Symbol{Plus, Dot, Star, Cross}},
		{"long-operator", Symbol.IsLongOperator, []Symbol{Dot, Over, InlineModulo, Equals, Member}, []Symbol{Plus, Star, Cross}},
		{"formatting", Symbol.IsFormatting, []Symbol{Space, Separator, Left, Right}, []Symbol{Factorial, EndOfStream}},
		{"plus-minus", Symbol.IsPlusOrMinus, []Symbol{Plus, Minus, PlusMinus, MinusPlus}, []Symbol{Cross, BigWedge}},
		{"raise-lower", Symbol.IsRaiseOrLower, []Symbol{RaiseToIndex, LowerToIndex}, []Symbol{Over, Factorial}},
		{"open", Symbol.IsOpenBracket, []Symbol{RoundBracketOpen, AngleBracketOpen, ModulusBracket, NormBracket}, []Symbol{GroupOpen, RoundBracketClose}},
		{"close", Symbol.IsCloseBracket, []Symbol{RoundBracketClose, CeilingBracketClose, ModulusBracket, NormBracket}, []Symbol{GroupClose, RoundBracketOpen}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			for _, s := range c.yes {
				assert.True(t, c.is(s), "%v", s)
			}
			for _, s := range c.no {
				assert.False(t, c.is(s), "%v", s)
			}
		})
	}
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "Null", Null.String())
	assert.Equal(t, "LessThanOrEqualTo", LessThanOrEqualTo.String())
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "Symbol(-1)", Symbol(-1).String())
	assert.Equal(t, "Symbol(1000)", Symbol(1000).String())
}
