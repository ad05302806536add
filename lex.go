package texmath

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// shortSymbols maps the single characters that are symbols by themselves.
// Letters not listed here are Letter tokens.
var shortSymbols = map[rune]Symbol{
	'^':  RaiseToIndex,
	'_':  LowerToIndex,
	'\'': Prime,
	':':  Colon,
	',':  Comma,
	'=':  Equals,
	'<':  LessThan,
	'>':  GreaterThan,
	'+':  Plus,
	'-':  Minus,
	'*':  Star,
	'/':  Divide,
	'!':  Factorial,
	'{':  GroupOpen,
	'}':  GroupClose,
	'(':  RoundBracketOpen,
	')':  RoundBracketClose,
	'[':  SquareBracketOpen,
	']':  SquareBracketClose,
	'|':  ModulusBracket,
}

// longSymbols maps the names of long symbols, without the leading backslash.
// Greek letters, \infty, and \text are handled separately.
var longSymbols = map[string]Symbol{
	"{":      CurlyBracketOpen,
	"}":      CurlyBracketClose,
	"langle": AngleBracketOpen,
	"rangle": AngleBracketClose,
	"lfloor": FloorBracketOpen,
	"rfloor": FloorBracketClose,
	"lceil":  CeilingBracketOpen,
	"rceil":  CeilingBracketClose,
	"|":      NormBracket,

	"neq":        NotEquals,
	"doteq":      DotEquals,
	"approx":     Approximates,
	"equiv":      Equivalent,
	"leq":        LessThanOrEqualTo,
	"geq":        GreaterThanOrEqualTo,
	"ll":         MuchLessThan,
	"gg":         MuchGreaterThan,
	"propto":     Proportional,
	"asymp":      Asymptotic,
	"bowtie":     Bowtie,
	"models":     Models,
	"prec":       Precedes,
	"preceq":     PrecedesOrEquals,
	"succ":       Succedes,
	"succeq":     SuccedesOrEquals,
	"cong":       Congruent,
	"sim":        Similar,
	"simeq":      SimilarOrEquals,
	"perp":       Perpendicular,
	"parallel":   Parallel,
	"mid":        Middle,
	"subset":     Subset,
	"subseteq":   SubsetOrEqualTo,
	"supset":     Superset,
	"supseteq":   SupersetOrEqualTo,
	"sqsubset":   SquareSubset,
	"sqsubseteq": SquareSubsetOrEqualTo,
	"sqsupset":   SquareSuperset,
	"sqsupseteq": SquareSupersetOrEqualTo,
	"in":         Member,
	"nin":        NotMember,
	"ni":         Contains,
	"nni":        NotContains,
	"smile":      Smile,
	"frown":      Frown,
	"vdash":      VLineDash,
	"dashv":      DashVLine,

	"pm":    PlusMinus,
	"mp":    MinusPlus,
	"times": Cross,
	"cdot":  Dot,
	"div":   Divide,
	"over":  Over,

	"frac":    Fraction,
	"binom":   Binomial,
	"sqrt":    Root,
	"min":     Minimum,
	"max":     Maximum,
	"gcd":     GreatestCommonDenominator,
	"lcm":     LowestCommonMultiple,
	"exp":     Exponent,
	"log":     Log,
	"ln":      NaturalLog,
	"arg":     Argument,
	"lim":     Limit,
	"liminf":  LimitInferior,
	"limsup":  LimitSuperior,
	"sin":     Sine,
	"cos":     Cosine,
	"tan":     Tangent,
	"sec":     Secant,
	"csc":     Cosecant,
	"cot":     Cotangent,
	"arcsin":  ArcSine,
	"arccos":  ArcCosine,
	"arctan":  ArcTangent,
	"arcsec":  ArcSecant,
	"arccsc":  ArcCosecant,
	"arccot":  ArcCotangent,
	"sinh":    HypSine,
	"cosh":    HypCosine,
	"tanh":    HypTangent,
	"sech":    HypSecant,
	"csch":    HypCosecant,
	"coth":    HypCotangent,
	"arcsinh": ArHypSine,
	"arccosh": ArHypCosine,
	"arctanh": ArHypTangent,
	"arcsech": ArHypSecant,
	"arccsch": ArHypCosecant,
	"arccoth": ArHypCotangent,
	"bmod":    InlineModulo,
	"pmod":    IdentityModulo,

	"sum":        Sum,
	"prod":       Product,
	"coprod":     Coproduct,
	"int":        Integral,
	"iint":       DoubleIntegral,
	"iiint":      TripleIntegral,
	"iiiint":     QuadrupleIntegral,
	"idotsint":   NtupleIntegral,
	"oint":       ClosedIntegral,
	"oiint":      ClosedDoubleIntegral,
	"oiiint":     ClosedTripleIntegral,
	"oiiiint":    ClosedQuadrupleIntegral,
	"oidotsint":  ClosedNtupleIntegral,
	"bigoplus":   BigOPlus,
	"bigotimes":  BigOTimes,
	"bigodot":    BigODot,
	"bigcup":     BigCup,
	"bigcap":     BigCap,
	"bigcupplus": BigCupPlus,
	"bigsqcup":   BigSquareCup,
	"bigsqcap":   BigSquareCap,
	"bigvee":     BigVee,
	"bigwedge":   BigWedge,

	",":     Separator,
	"left":  Left,
	"right": Right,
}

// greekLetters is the set of Greek letter names. GreekLetter tokens carry the
// name as their value.
var greekLetters = map[string]bool{
	"alpha": true, "Alpha": true,
	"beta": true, "Beta": true,
	"gamma": true, "Gamma": true,
	"delta": true, "Delta": true,
	"epsilon": true, "Epsilon": true, "varepsilon": true,
	"zeta": true, "Zeta": true,
	"eta": true, "Eta": true,
	"theta": true, "Theta": true, "vartheta": true,
	"iota": true, "Iota": true,
	"kappa": true, "Kappa": true,
	"lambda": true, "Lambda": true,
	"mu": true, "Mu": true,
	"nu": true, "Nu": true,
	"xi": true, "Xi": true,
	"omicron": true, "Omicron": true,
	"pi": true, "Pi": true,
	"rho": true, "Rho": true, "varrho": true,
	"sigma": true, "Sigma": true, "varsigma": true,
	"tau": true, "Tau": true,
	"upsilon": true, "Upsilon": true,
	"phi": true, "Phi": true, "varphi": true,
	"chi": true, "Chi": true,
	"psi": true, "Psi": true,
	"omega": true, "Omega": true,
}

// textState tracks scanning the literal argument of \text.
type textState int8

const (
	textNone textState = iota
	// textOpen follows a \text token; the next rune should be {.
	textOpen
	// textBody is inside the braces of \text.
	textBody
)

// Lexer scans source text into tokens. It implements TokenStream.
type Lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	cfg  config
	// text is the \text scanning state and depth the brace depth inside it.
	text  textState
	depth int
	eos   bool
}

// NewLexer creates a lexer reading from src. The options are applied in
// order.
func NewLexer(src io.RuneScanner, opts ...Option) *Lexer {
	return &Lexer{
		src:  src,
		rune: 1,
		cfg:  newConfig(opts),
	}
}

// Tokenize creates a lexer reading from a string.
func Tokenize(src string, opts ...Option) *Lexer {
	return NewLexer(strings.NewReader(src), opts...)
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *Lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *Lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// Next scans the next token from the input. At the end of the input, the
// result is an EndOfStream token. Subsequent calls return io.EOF.
func (l *Lexer) Next() (Token, error) {
	if l.eos {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	if l.text == textBody {
		return l.textRune()
	}
	for {
		tok := Token{Pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eos = true
				tok.Symbol = EndOfStream
				return tok, nil
			}
			return tok, err
		}
		if l.text == textOpen && !unicode.IsSpace(r) {
			l.text = textNone
			if r == '{' {
				l.text = textBody
				l.depth = 0
				tok.Symbol = GroupOpen
				return tok, nil
			}
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			v, err := l.scanNum()
			if err != nil {
				return tok, err
			}
			tok.Symbol = Number
			tok.Value = v
			return tok, nil
		case r == '\\':
			s, v, err := l.scanLong(tok.Pos)
			if err != nil {
				return tok, err
			}
			if s == Unknown {
				// Dropped by IgnoreUnknownSymbols.
				l.buf.Reset()
				continue
			}
			if s == Text {
				l.text = textOpen
			}
			tok.Symbol = s
			tok.Value = v
			return tok, nil
		default:
			if s, ok := shortSymbols[r]; ok {
				tok.Symbol = s
				return tok, nil
			}
			if unicode.IsLetter(r) {
				tok.Symbol = Letter
				tok.Value = r
				return tok, nil
			}
			return tok, &LexError{Col: tok.Pos, Text: string(r), Msg: "illegal character"}
		}
	}
}

// textRune scans one rune of the literal argument of \text. Every rune up to
// the matching } is a Letter, including spaces and nested braces.
func (l *Lexer) textRune() (Token, error) {
	tok := Token{Pos: l.rune}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.eos = true
			l.text = textNone
			tok.Symbol = EndOfStream
			return tok, nil
		}
		return tok, err
	}
	switch r {
	case '{':
		l.depth++
	case '}':
		if l.depth == 0 {
			l.text = textNone
			tok.Symbol = GroupClose
			return tok, nil
		}
		l.depth--
	}
	tok.Symbol = Letter
	tok.Value = r
	return tok, nil
}

func (l *Lexer) scanNum() (float64, error) {
	col := l.rune
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if r == '.' && !dot {
			dot = true
		} else if r < '0' || '9' < r {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil {
		return 0, &LexError{Col: col, Text: l.buf.String(), Msg: "invalid number"}
	}
	return v, nil
}

// scanLong scans the name of a long symbol after its backslash and resolves
// it. The name is either a run of letters or a single other character.
func (l *Lexer) scanLong(col int) (Symbol, interface{}, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Null, nil, &LexError{Col: col, Text: `\`, Msg: "incomplete command"}
		}
		return Null, nil, err
	}
	l.buf.WriteRune(r)
	if unicode.IsLetter(r) {
		for {
			r, err := l.readRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return Null, nil, err
			}
			if !unicode.IsLetter(r) {
				l.unreadRune()
				break
			}
			l.buf.WriteRune(r)
		}
	}
	name := l.buf.String()
	switch {
	case name == "infty":
		return Number, math.Inf(1), nil
	case name == "text":
		return Text, nil, nil
	case greekLetters[name]:
		return GreekLetter, name, nil
	}
	if s, ok := longSymbols[name]; ok {
		return s, nil, nil
	}
	if l.cfg.strictSymbols {
		return Null, nil, &LexError{Col: col, Text: `\` + name, Msg: "illegal symbol"}
	}
	return Unknown, nil, nil
}
