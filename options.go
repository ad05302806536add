package texmath

// Option is an option for lexing, composing, or writing. Each stage reads
// only the options that concern it, so the same list can be passed to every
// stage.
type Option interface {
	option(config) config
}

// config holds the options for all stages. Its zero value is the default
// configuration. It is also an Option.
type config struct {
	// strictSymbols makes unknown symbols an error in the lexer and writer
	// instead of being dropped.
	strictSymbols bool
	// lax disables bracing multi-character lexemes after ^ and _.
	lax bool
	// nopad disables spaces around binary plus and minus signs.
	nopad bool
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		c = opt.option(c)
	}
	return c
}

type (
	ignoreopt bool
	strictopt bool
	padopt    bool
)

// IgnoreUnknownSymbols sets whether the lexer drops unrecognized long symbols
// and the writer skips symbols it cannot write. When false, both are errors.
// The default is true.
func IgnoreUnknownSymbols(ignore bool) Option {
	return ignoreopt(ignore)
}

func (o ignoreopt) option(c config) config {
	c.strictSymbols = !bool(o)
	return c
}

// StrictMode sets whether the writer wraps a lexeme longer than one character
// in group brackets when it directly follows ^ or _. The default is true.
func StrictMode(strict bool) Option {
	return strictopt(strict)
}

func (o strictopt) option(c config) config {
	c.lax = !bool(o)
	return c
}

// PadPlusMinusSigns sets whether the composer surrounds binary +, -, \pm,
// and \mp with spaces. The default is true.
func PadPlusMinusSigns(pad bool) Option {
	return padopt(pad)
}

func (o padopt) option(c config) config {
	c.nopad = !bool(o)
	return c
}

// Preset combines options into one. A preset panics when it would change an
// option that is already set away from the default, but it is safe to apply
// other options after a preset.
func Preset(opts ...Option) Option {
	c := newConfig(opts)
	return &c
}

func (o *config) option(c config) config {
	if c != (config{}) {
		panic("texmath: preset applied to non-default config")
	}
	return *o
}
