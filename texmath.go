package texmath

// Render composes an expression tree and writes it as text.
func Render(n *Node, opts ...Option) (string, error) {
	toks, err := Compose(n, opts...)
	if err != nil {
		return "", err
	}
	return RenderTokens(toks, opts...)
}

// RenderTokens writes a token sequence as text.
func RenderTokens(toks []Token, opts ...Option) (string, error) {
	return WriteString(Tokens(toks), opts...)
}

// Format parses source text and renders it again in canonical form.
func Format(src string, opts ...Option) (string, error) {
	n, err := ParseTree(src, opts...)
	if err != nil {
		return "", err
	}
	return Render(n, opts...)
}
