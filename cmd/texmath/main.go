// Command texmath lexes, parses, and formats LaTeX-like math expressions.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gopkg.in/urfave/cli.v1"

	"github.com/zephyrtronium/texmath"
)

const demo = "1+2*8-3/27+4-13*([4-2]*5)"

var (
	logger = zerolog.Nop()
	cfg    = defaultConfig()
)

func main() {
	app := cli.NewApp()
	app.Name = "texmath"
	app.Usage = "process LaTeX-like math expressions"
	app.Flags = []cli.Flag{
		configFileFlag,
		strictFlag,
		laxFlag,
		noPadFlag,
		verboseFlag,
	}
	app.Commands = []cli.Command{
		tokensCommand,
		parseCommand,
		treeCommand,
		formatCommand,
		checkCommand,
		replCommand,
	}
	app.Before = setup
	app.Action = format
	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(ctx *cli.Context) error {
	c, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	cfg = c
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05"
	})).Level(level).With().Timestamp().Logger()
	logger.Debug().
		Bool("strict", cfg.Strict).
		Bool("lax", cfg.Lax).
		Bool("nopad", cfg.NoPad).
		Msg("configured")
	return nil
}

// input returns the expression given on the command line. With no arguments,
// it is the demo expression. An argument of - reads all of stdin.
func input(ctx *cli.Context) (string, error) {
	args := ctx.Args()
	switch {
	case len(args) == 0:
		return demo, nil
	case len(args) == 1 && args[0] == "-":
		b, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	default:
		return strings.Join(args, " "), nil
	}
}

// stage runs f and logs how long it took.
func stage(name string, f func() error) error {
	start := time.Now()
	err := f()
	ev := logger.Debug()
	if err != nil {
		ev = logger.Warn().Err(err)
	}
	ev.Str("stage", name).Dur("took", time.Since(start)).Send()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// tree parses src to an expression tree, logging each stage.
func tree(src string) (*texmath.Node, error) {
	opt := cfg.options()
	var toks []texmath.Token
	err := stage("lex", func() (err error) {
		toks, err = texmath.Collect(texmath.Tokenize(src, opt))
		return err
	})
	if err != nil {
		return nil, err
	}
	var pn *texmath.ParseNode
	err = stage("parse", func() (err error) {
		pn, err = texmath.Parse(texmath.Tokens(toks))
		return err
	})
	if err != nil {
		return nil, err
	}
	var n *texmath.Node
	err = stage("build", func() (err error) {
		n, err = texmath.BuildTree(pn)
		return err
	})
	return n, err
}

// render composes and writes n, logging each stage.
func render(n *texmath.Node) (string, error) {
	opt := cfg.options()
	var toks []texmath.Token
	err := stage("compose", func() (err error) {
		toks, err = texmath.Compose(n, opt)
		return err
	})
	if err != nil {
		return "", err
	}
	var s string
	err = stage("write", func() (err error) {
		s, err = texmath.RenderTokens(toks, opt)
		return err
	})
	return s, err
}

// showError prints err, with a caret under the offending column when the
// error is positioned in src.
func showError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	var ie texmath.InputError
	if errors.As(err, &ie) && ie.Pos() > 0 && ie.Pos() <= utf8.RuneCountInString(src)+1 {
		fmt.Fprintln(w, src)
		red.Fprintln(w, strings.Repeat(" ", ie.Pos()-1)+"^")
	}
	red.Fprintln(w, err)
}
