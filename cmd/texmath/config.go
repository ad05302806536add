package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/zephyrtronium/texmath"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	strictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "reject unknown symbols instead of dropping them",
	}
	laxFlag = cli.BoolFlag{
		Name:  "lax",
		Usage: "don't brace multi-character lexemes after ^ and _",
	}
	noPadFlag = cli.BoolFlag{
		Name:  "no-pad",
		Usage: "don't put spaces around binary + and -",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log each stage of processing",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

type texmathConfig struct {
	// Strict makes unknown symbols an error.
	Strict bool
	// Lax disables bracing of long index lexemes.
	Lax bool
	// NoPad disables padding around binary plus and minus signs.
	NoPad bool
	// Prompt is the prompt of the repl.
	Prompt string
	// Level is the log level name.
	Level string
}

func defaultConfig() texmathConfig {
	return texmathConfig{
		Prompt: "texmath> ",
		Level:  "info",
	}
}

func loadConfig(file string, cfg *texmathConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the config file, if any, and applies command-line flags
// over it.
func makeConfig(ctx *cli.Context) (texmathConfig, error) {
	cfg := defaultConfig()
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
	}
	if ctx.GlobalIsSet(strictFlag.Name) {
		cfg.Strict = ctx.GlobalBool(strictFlag.Name)
	}
	if ctx.GlobalIsSet(laxFlag.Name) {
		cfg.Lax = ctx.GlobalBool(laxFlag.Name)
	}
	if ctx.GlobalIsSet(noPadFlag.Name) {
		cfg.NoPad = ctx.GlobalBool(noPadFlag.Name)
	}
	if ctx.GlobalBool(verboseFlag.Name) {
		cfg.Level = "debug"
	}
	return cfg, nil
}

// options converts the config to a single preset option.
func (cfg *texmathConfig) options() texmath.Option {
	return texmath.Preset(
		texmath.IgnoreUnknownSymbols(!cfg.Strict),
		texmath.StrictMode(!cfg.Lax),
		texmath.PadPlusMinusSigns(!cfg.NoPad),
	)
}
