package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/zephyrtronium/texmath"
	"github.com/zephyrtronium/texmath/internal/testcases"
)

var jsonFlag = cli.BoolFlag{
	Name:  "json",
	Usage: "print the tree as JSON",
}

var (
	tokensCommand = cli.Command{
		Action:    tokens,
		Name:      "tokens",
		Usage:     "Print the tokens of an expression",
		ArgsUsage: "[expression | -]",
	}
	parseCommand = cli.Command{
		Action:    parse,
		Name:      "parse",
		Usage:     "Print the parse tree of an expression",
		ArgsUsage: "[expression | -]",
	}
	treeCommand = cli.Command{
		Action:    printTree,
		Name:      "tree",
		Usage:     "Print the expression tree of an expression",
		ArgsUsage: "[expression | -]",
		Flags:     []cli.Flag{jsonFlag},
	}
	formatCommand = cli.Command{
		Action:    format,
		Name:      "format",
		Usage:     "Print an expression in canonical form",
		ArgsUsage: "[expression | -]",
	}
	checkCommand = cli.Command{
		Action:    check,
		Name:      "check",
		Usage:     "Round-trip every expression in test case files",
		ArgsUsage: "file...",
		Description: `The check command parses each expression in the given .yaml or .txt
files, composes it, and parses the result again. It reports every
expression that fails to round-trip or differs from its expectations.`,
	}
)

// withInput adapts a function of the command input to a command action,
// printing positioned errors against the input.
func withInput(f func(src string) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		src, err := input(ctx)
		if err != nil {
			return err
		}
		logger.Debug().Str("src", src).Msg("input")
		if err := f(src); err != nil {
			showError(os.Stderr, src, err)
			return cli.NewExitError("", 1)
		}
		return nil
	}
}

func tokens(ctx *cli.Context) error {
	return withInput(func(src string) error {
		var toks []texmath.Token
		err := stage("lex", func() (err error) {
			toks, err = texmath.Collect(texmath.Tokenize(src, cfg.options()))
			return err
		})
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Pos", "Symbol", "Value"})
		for _, tok := range toks {
			v := ""
			switch x := tok.Value.(type) {
			case nil:
			case rune:
				v = string(x)
			case string:
				v = strconv.Quote(x)
			default:
				v = fmt.Sprint(x)
			}
			table.Append([]string{strconv.Itoa(tok.Pos), tok.Symbol.String(), v})
		}
		table.Render()
		return nil
	})(ctx)
}

func parse(ctx *cli.Context) error {
	return withInput(func(src string) error {
		var pn *texmath.ParseNode
		err := stage("parse", func() (err error) {
			pn, err = texmath.ParseString(src, cfg.options())
			return err
		})
		if err != nil {
			return err
		}
		return pn.Dump(os.Stdout)
	})(ctx)
}

func printTree(ctx *cli.Context) error {
	asJSON := ctx.Bool(jsonFlag.Name)
	return withInput(func(src string) error {
		n, err := tree(src)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(os.Stdout, n)
		}
		return n.Dump(os.Stdout)
	})(ctx)
}

func format(ctx *cli.Context) error {
	return withInput(func(src string) error {
		n, err := tree(src)
		if err != nil {
			return err
		}
		s, err := render(n)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	})(ctx)
}

// jsonNode is the JSON form of an expression tree node.
type jsonNode struct {
	Symbol    string      `json:"symbol"`
	Value     interface{} `json:"value,omitempty"`
	Arguments []*jsonNode `json:"arguments,omitempty"`
	Children  []*jsonNode `json:"children,omitempty"`
}

func toJSON(n *texmath.Node) *jsonNode {
	r := &jsonNode{Symbol: n.Symbol.String()}
	switch v := n.Value.(type) {
	case rune:
		r.Value = string(v)
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			r.Value = strconv.FormatFloat(v, 'g', -1, 64)
		} else {
			r.Value = v
		}
	default:
		r.Value = v
	}
	for _, a := range n.Arguments {
		r.Arguments = append(r.Arguments, toJSON(a))
	}
	for _, c := range n.Children {
		r.Children = append(r.Children, toJSON(c))
	}
	return r
}

func writeJSON(w io.Writer, n *texmath.Node) error {
	b, err := json.MarshalIndent(toJSON(n), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func check(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("check: no files given")
	}
	var failed, total int
	for _, file := range ctx.Args() {
		set, err := testcases.Load(file)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		logger.Debug().Str("file", file).Int("groups", len(set)).Int("cases", set.Len()).Msg("loaded")
		for _, g := range set {
			for _, c := range g.Cases {
				total++
				if err := checkCase(c); err != nil {
					failed++
					where := file
					if c.Line > 0 {
						where += ":" + strconv.Itoa(c.Line)
					}
					fmt.Printf("%s %s [%s] %q: %v\n", color.RedString("FAIL"), where, g.Name, c.Expr, err)
				}
			}
		}
	}
	if failed > 0 {
		return cli.NewExitError(fmt.Sprintf("%d of %d cases failed", failed, total), 1)
	}
	fmt.Printf("%s %d cases\n", color.GreenString("ok"), total)
	return nil
}

// checkCase round-trips one case and checks its expectations.
func checkCase(c testcases.Case) error {
	want, err := tree(c.Expr)
	if err != nil {
		return err
	}
	if c.Tree != "" && want.String() != c.Tree {
		return fmt.Errorf("tree is %s, want %s", want, c.Tree)
	}
	s, err := render(want)
	if err != nil {
		return err
	}
	if c.Want != "" && s != c.Want {
		return fmt.Errorf("formatted as %q, want %q", s, c.Want)
	}
	got, err := tree(s)
	if err != nil {
		return fmt.Errorf("reparsing %q: %w", s, err)
	}
	if !want.Equal(got) {
		return fmt.Errorf("%q parses as %v instead of %v", s, got, want)
	}
	return nil
}
