package texmath

import (
	"strconv"
	"strings"
)

// LexError is an error indicating an invalid character or an unrecognized
// long symbol. It implements InputError.
type LexError struct {
	// Col is the position of the start of the offending text.
	Col int
	// Text is the offending text, including the backslash of a long symbol.
	Text string
	// Msg describes the error.
	Msg string
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Msg+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError is an error indicating a token that does not fit the grammar.
// It implements InputError.
type ParseError struct {
	// Token is the token read when the error occurred. It is NullToken if the
	// token stream ended without an EndOfStream token.
	Token Token
	// Expected is the list of symbols that would have been accepted in place
	// of Token. It may be empty if Msg describes the error instead.
	Expected []Symbol
	// Msg describes the error when Expected is empty.
	Msg string
}

func (err *ParseError) Error() string {
	if len(err.Expected) == 0 {
		if err.Token.Symbol == Null {
			return errpos(err.Token.Pos, err.Msg)
		}
		return errpos(err.Token.Pos, err.Msg+", found "+describe(err.Token))
	}
	var b strings.Builder
	b.WriteString("expected ")
	for i, s := range err.Expected {
		switch {
		case i == 0:
		case i == len(err.Expected)-1 && i == 1:
			b.WriteString(" or ")
		case i == len(err.Expected)-1:
			b.WriteString(", or ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString(" but found ")
	b.WriteString(describe(err.Token))
	return errpos(err.Token.Pos, b.String())
}

func (err *ParseError) Pos() int {
	return err.Token.Pos
}

// describe names a token for an error message.
func describe(tok Token) string {
	switch tok.Symbol {
	case EndOfStream, Null:
		return "end of input"
	}
	return tok.String()
}

// BuildError is an error indicating a parse node with a shape that the tree
// builder does not understand. Parse trees produced by Parse never cause it.
type BuildError struct {
	// Node is the offending parse node.
	Node *ParseNode
	// Msg describes the error.
	Msg string
}

func (err *BuildError) Error() string {
	return "building " + err.Node.String() + ": " + err.Msg
}

// ComposeError is an error indicating an expression node that cannot be
// written as tokens, usually because it has the wrong number of children.
type ComposeError struct {
	// Node is the offending expression node.
	Node *Node
	// Msg describes the error.
	Msg string
}

func (err *ComposeError) Error() string {
	return "composing " + err.Node.Symbol.String() + ": " + err.Msg
}

// WriteError is an error indicating a token that has no textual form.
type WriteError struct {
	// Token is the offending token.
	Token Token
	// Msg describes the error.
	Msg string
}

func (err *WriteError) Error() string {
	return "writing " + err.Token.String() + ": " + err.Msg
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos < 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid source text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused the error, or -1 if the error is at a token that did
	// not come from source text.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
