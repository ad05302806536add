package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lmorg/readline"
	"gopkg.in/urfave/cli.v1"
)

var replCommand = cli.Command{
	Action: repl,
	Name:   "repl",
	Usage:  "Format expressions interactively",
	Description: `The repl command reads expressions line by line and prints each in
canonical form followed by its expression tree. An empty line or
end of input exits.`,
}

func repl(ctx *cli.Context) error {
	rline := readline.NewInstance()
	rline.SetPrompt(cfg.Prompt)
	dim := color.New(color.Faint)
	for {
		line, err := rline.Readline()
		if err != nil {
			logger.Debug().Err(err).Msg("readline stopped")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		n, err := tree(line)
		if err != nil {
			showError(os.Stdout, line, err)
			continue
		}
		s, err := render(n)
		if err != nil {
			showError(os.Stdout, line, err)
			continue
		}
		fmt.Println(s)
		dim.Println(n)
	}
}
