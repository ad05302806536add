package texmath

// Symbol is the kind of a token or of an expression tree node.
type Symbol int16

const (
	Null Symbol = iota
	// Unknown is a long symbol whose name is not recognized.
	Unknown
	// EndOfStream terminates every token stream.
	EndOfStream

	Prime
	Colon
	Comma

	// Values. Number tokens carry a float64, Letter tokens a rune, and
	// GreekLetter and Text tokens a string.
	Number
	Letter
	GreekLetter
	Text

	// Brackets. Group brackets are the { } used for arguments. Modulus and
	// norm brackets use the same glyph to open and close.
	GroupOpen
	GroupClose
	RoundBracketOpen
	RoundBracketClose
	SquareBracketOpen
	SquareBracketClose
	CurlyBracketOpen
	CurlyBracketClose
	AngleBracketOpen
	AngleBracketClose
	FloorBracketOpen
	FloorBracketClose
	CeilingBracketOpen
	CeilingBracketClose
	ModulusBracket
	NormBracket

	// Relations.
	Equals
	NotEquals
	DotEquals
	Approximates
	Equivalent
	LessThan
	LessThanOrEqualTo
	GreaterThan
	GreaterThanOrEqualTo
	MuchLessThan
	MuchGreaterThan
	Proportional
	Asymptotic
	Bowtie
	Models
	Precedes
	PrecedesOrEquals
	Succedes
	SuccedesOrEquals
	Congruent
	Similar
	SimilarOrEquals
	Perpendicular
	Parallel
	Middle
	Subset
	SubsetOrEqualTo
	Superset
	SupersetOrEqualTo
	SquareSubset
	SquareSubsetOrEqualTo
	SquareSuperset
	SquareSupersetOrEqualTo
	Member
	NotMember
	Contains
	NotContains
	Smile
	Frown
	VLineDash
	DashVLine

	// Functions whose operands are all bracketed.
	Fraction
	Binomial
	Root

	// Named functions.
	Minimum
	Maximum
	GreatestCommonDenominator
	LowestCommonMultiple
	Exponent
	Log
	NaturalLog
	Argument
	Limit
	LimitInferior
	LimitSuperior
	Sine
	Cosine
	Tangent
	Secant
	Cosecant
	Cotangent
	ArcSine
	ArcCosine
	ArcTangent
	ArcSecant
	ArcCosecant
	ArcCotangent
	HypSine
	HypCosine
	HypTangent
	HypSecant
	HypCosecant
	HypCotangent
	ArHypSine
	ArHypCosine
	ArHypTangent
	ArHypSecant
	ArHypCosecant
	ArHypCotangent
	InlineModulo
	IdentityModulo

	// Big operators.
	Sum
	Product
	Coproduct
	Integral
	DoubleIntegral
	TripleIntegral
	QuadrupleIntegral
	NtupleIntegral
	ClosedIntegral
	ClosedDoubleIntegral
	ClosedTripleIntegral
	ClosedQuadrupleIntegral
	ClosedNtupleIntegral
	BigOPlus
	BigOTimes
	BigODot
	BigCup
	BigCap
	BigCupPlus
	BigSquareCup
	BigSquareCap
	BigVee
	BigWedge

	// Binary operators.
	Plus
	Minus
	PlusMinus
	MinusPlus
	Cross
	Dot
	Star
	Divide
	Over
	RaiseToIndex
	LowerToIndex

	Factorial

	// Formatting. The parser ignores these.
	Space
	Separator
	Left
	Right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Symbol

// IsValue reports whether s is a symbol that carries a value.
func (s Symbol) IsValue() bool {
	return Number <= s && s <= Text
}

// IsRelation reports whether s is a relation operator.
func (s Symbol) IsRelation() bool {
	return Equals <= s && s <= DashVLine
}

// IsBracketedFunction reports whether s is \frac, \binom, or \sqrt.
func (s Symbol) IsBracketedFunction() bool {
	return Fraction <= s && s <= Root
}

// IsFunction reports whether s is a named function such as \sin or \lim.
// The modulo operators are not functions.
func (s Symbol) IsFunction() bool {
	return Minimum <= s && s <= ArHypCotangent
}

// IsBigOperator reports whether s is a big operator such as \sum or \int.
func (s Symbol) IsBigOperator() bool {
	return Sum <= s && s <= BigWedge
}

// IsBinary reports whether s is a binary (infix) operator. Relations are not
// binary operators.
func (s Symbol) IsBinary() bool {
	return Plus <= s && s <= LowerToIndex || s == InlineModulo
}

// IsPostfix reports whether s is a postfix operator.
func (s Symbol) IsPostfix() bool {
	return s == Factorial
}

// IsLeftAssociative reports whether an operator with symbol s groups
// left-to-right when it is not commutative with itself.
func (s Symbol) IsLeftAssociative() bool {
	switch s {
	case Minus, PlusMinus, MinusPlus, Divide, Over, Fraction, InlineModulo, RaiseToIndex, LowerToIndex:
		return true
	}
	return false
}

// IsLongOperator reports whether s is written as a command that needs
// surrounding space.
func (s Symbol) IsLongOperator() bool {
	switch s {
	case Dot, InlineModulo, Over:
		return true
	}
	return s.IsRelation()
}

// IsFormatting reports whether s only affects layout.
func (s Symbol) IsFormatting() bool {
	return Space <= s && s <= Right
}

// IsPlusOrMinus reports whether s is one of the additive operators, which are
// also the sign operators.
func (s Symbol) IsPlusOrMinus() bool {
	return Plus <= s && s <= MinusPlus
}

// IsRaiseOrLower reports whether s is ^ or _.
func (s Symbol) IsRaiseOrLower() bool {
	return s == RaiseToIndex || s == LowerToIndex
}

// IsOpenBracket reports whether s opens a bracketed expression. Modulus and
// norm brackets both open and close.
func (s Symbol) IsOpenBracket() bool {
	_, ok := closers[s]
	return ok
}

// IsCloseBracket reports whether s closes a bracketed expression.
func (s Symbol) IsCloseBracket() bool {
	for _, c := range closers {
		if c == s {
			return true
		}
	}
	return false
}

// closers maps each open bracket to its close bracket.
var closers = map[Symbol]Symbol{
	RoundBracketOpen:   RoundBracketClose,
	SquareBracketOpen:  SquareBracketClose,
	CurlyBracketOpen:   CurlyBracketClose,
	AngleBracketOpen:   AngleBracketClose,
	FloorBracketOpen:   FloorBracketClose,
	CeilingBracketOpen: CeilingBracketClose,
	ModulusBracket:     ModulusBracket,
	NormBracket:        NormBracket,
}
