package texmath

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Token is a single lexical item. The type of Value depends on Symbol:
// float64 for Number, rune for Letter, string for GreekLetter and Text, and
// nil otherwise.
type Token struct {
	Symbol Symbol
	Value  interface{}
	// Pos is the 1-based rune column at which the token starts, or -1 for
	// tokens that do not come from source text.
	Pos int
}

// NullToken is the token standing in for no token.
var NullToken = Token{Symbol: Null, Pos: -1}

// symbolToken creates a token with no value and no source position.
func symbolToken(s Symbol) Token {
	return Token{Symbol: s, Pos: -1}
}

func (t Token) String() string {
	s := t.Symbol.String()
	if t.Value != nil {
		switch v := t.Value.(type) {
		case rune:
			s += ":" + string(v)
		case string:
			s += ":" + strconv.Quote(v)
		default:
			s += fmt.Sprintf(":%v", v)
		}
	}
	if t.Pos >= 0 {
		s += "@" + strconv.Itoa(t.Pos)
	}
	return s
}

// TokenStream is a pull-based sequence of tokens. A well-formed stream ends
// with an EndOfStream token, after which Next returns io.EOF.
type TokenStream interface {
	Next() (Token, error)
}

type sliceStream struct {
	toks []Token
	eos  bool
}

// Tokens adapts a slice of tokens to a TokenStream. If the slice does not end
// with EndOfStream, the stream supplies one.
func Tokens(toks []Token) TokenStream {
	return &sliceStream{toks: toks}
}

func (s *sliceStream) Next() (Token, error) {
	if s.eos {
		return Token{}, io.EOF
	}
	if len(s.toks) == 0 {
		s.eos = true
		return Token{Symbol: EndOfStream, Pos: -1}, nil
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	if tok.Symbol == EndOfStream {
		s.eos = true
	}
	return tok, nil
}

// Collect reads every token from ts up to and including EndOfStream.
func Collect(ts TokenStream) ([]Token, error) {
	var toks []Token
	for {
		tok, err := ts.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Symbol == EndOfStream {
			return toks, nil
		}
	}
}
