package texmath

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// shortNames and longNames invert the lexer's tables. Short names take
// precedence.
var (
	shortNames = invertShort()
	longNames  = invertLong()
)

func invertShort() map[Symbol]string {
	m := make(map[Symbol]string, len(shortSymbols)+1)
	for r, s := range shortSymbols {
		m[s] = string(r)
	}
	m[Space] = " "
	return m
}

func invertLong() map[Symbol]string {
	m := make(map[Symbol]string, len(longSymbols))
	for name, s := range longSymbols {
		m[s] = `\` + name
	}
	return m
}

// Write writes the tokens from ts to w as text. Writing stops at EndOfStream
// or at the end of the stream.
func Write(w io.Writer, ts TokenStream, opts ...Option) error {
	cfg := newConfig(opts)
	bw := bufio.NewWriter(w)
	var prev string
	index := false
	for {
		tok, err := ts.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if tok.Symbol == EndOfStream {
			break
		}
		lex, err := lexeme(tok, cfg)
		if err != nil {
			return err
		}
		if lex == "" {
			continue
		}
		if index && !cfg.lax && utf8.RuneCountInString(lex) > 1 {
			// Only the first character after ^ or _ is the index unless it is
			// grouped.
			lex = "{" + lex + "}"
		}
		if merges(prev, lex) {
			bw.WriteByte(' ')
		}
		bw.WriteString(lex)
		prev = lex
		index = tok.Symbol.IsRaiseOrLower()
	}
	return bw.Flush()
}

// WriteString writes the tokens from ts to a string.
func WriteString(ts TokenStream, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Write(&b, ts, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// merges reports whether writing next directly after prev would extend the
// name of a command in prev.
func merges(prev, next string) bool {
	if !strings.HasPrefix(prev, `\`) {
		return false
	}
	p, _ := utf8.DecodeLastRuneInString(prev)
	n, _ := utf8.DecodeRuneInString(next)
	return unicode.IsLetter(p) && unicode.IsLetter(n)
}

// lexeme returns the text of a token. The result is empty for tokens that are
// skipped.
func lexeme(tok Token, cfg config) (string, error) {
	switch tok.Symbol {
	case Number:
		v, ok := tok.Value.(float64)
		switch {
		case !ok, math.IsNaN(v), math.IsInf(v, -1):
			return "", &WriteError{Token: tok, Msg: "invalid number"}
		case math.IsInf(v, 1):
			return `\infty`, nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case Letter:
		r, ok := tok.Value.(rune)
		if !ok {
			return "", &WriteError{Token: tok, Msg: "letter without a rune"}
		}
		return string(r), nil
	case GreekLetter:
		name, ok := tok.Value.(string)
		if !ok || !greekLetters[name] {
			return "", &WriteError{Token: tok, Msg: "unknown Greek letter"}
		}
		return `\` + name, nil
	case Text:
		s, ok := tok.Value.(string)
		if !ok {
			return "", &WriteError{Token: tok, Msg: "text without a string"}
		}
		return `\text{` + s + `}`, nil
	}
	if s, ok := shortNames[tok.Symbol]; ok {
		return s, nil
	}
	if s, ok := longNames[tok.Symbol]; ok {
		return s, nil
	}
	if cfg.strictSymbols {
		return "", &WriteError{Token: tok, Msg: "symbol has no text"}
	}
	return "", nil
}
