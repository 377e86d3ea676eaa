/*
Command shorthand expands CSS-module element shorthand on the command line.

    shorthand expand 'div.card>h2.title{Hello}+p.body'

prints

    <div className={css.card}>
      <h2 className={css.title}>Hello</h2>
      <p className={css.body}></p>
    </div>

Other sub-commands print the element tree, an HTML preview, check class
names against a CSS module or act as a line filter for editors. Run
`shorthand help` for details.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shorthand/config"
	cli "github.com/urfave/cli/v3"
)

// tracer traces with key 'shorthand.cli'.
func tracer() tracing.Trace {
	return tracing.Select("shorthand.cli")
}

// traceKeys are the tracers a --trace flag applies to.
var traceKeys = []string{
	"root",
	"shorthand.parser",
	"shorthand.expand",
	"shorthand.stylemodule",
	"shorthand.preview",
	"shorthand.config",
	"shorthand.cli",
}

type envKey struct{}

// appEnv keeps the program state shared between sub-commands.
type appEnv struct {
	cfg      *config.Config
	teardown func()
}

func envFromContext(ctx context.Context) *appEnv {
	if env, ok := ctx.Value(envKey{}).(*appEnv); ok {
		return env
	}
	panic("application environment not found in context")
}

func contextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &appEnv{})
}

// initializeAppContext loads the configuration, applies global flags and
// configures tracing. It runs after the command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.IsSet("prefix") {
		cfg.Prefix = cmd.String("prefix")
	}
	if level := cmd.String("trace"); level != "" {
		for _, key := range traceKeys {
			cfg.SetTraceLevel(key, level)
		}
	}
	if err = cfg.Validate(); err != nil {
		return ctx, err
	}
	env.cfg = cfg
	if env.teardown, err = config.ConfigureTracing(cfg); err != nil {
		return ctx, err
	}
	tracer().Debugf("program started with args %v", os.Args)
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	env := envFromContext(ctx)
	if env.teardown != nil {
		tracer().Debugf("program ended")
		env.teardown()
		env.teardown = nil
	}
	return nil
}

// Errors are returned from sub-commands and reported by main; urfave's exit
// handling is not used.
func exitErrHandler(context.Context, *cli.Command, error) {}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "shorthand",
		Usage:           "expand element shorthand into JSX using CSS modules",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Sources: cli.EnvVars("SHORTHAND_CONFIG"),
				TakesFile: true, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "style-module `ALIAS` used in className expressions"},
			&cli.StringFlag{Name: "trace", Usage: "trace `LEVEL` (Debug, Info, Error)"},
		},
		Commands: []*cli.Command{
			{
				Name:         "expand",
				Usage:        "Prints the JSX markup for shorthand strings",
				ArgsUsage:    "SHORTHAND...",
				OnUsageError: usageErrorHandler,
				Action:       runExpand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "indent", Usage: "base indentation `STR` for all lines but the first"},
				},
			},
			{
				Name:         "tree",
				Usage:        "Prints the element tree of a shorthand string",
				ArgsUsage:    "SHORTHAND",
				OnUsageError: usageErrorHandler,
				Action:       runTree,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text",
						Usage: "output `FORMAT` (text, yaml, dot)", Validator: validateFormat},
				},
			},
			{
				Name:         "preview",
				Usage:        "Prints an HTML preview of a shorthand string",
				ArgsUsage:    "SHORTHAND",
				OnUsageError: usageErrorHandler,
				Action:       runPreview,
			},
			{
				Name:         "check",
				Usage:        "Checks class names of a shorthand string against a CSS module",
				ArgsUsage:    "SHORTHAND",
				OnUsageError: usageErrorHandler,
				Action:       runCheck,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "module", Aliases: []string{"m"}, TakesFile: true,
						Usage: "CSS module `FILE`, overrides style_module of the configuration"},
				},
			},
			{
				Name:         "line",
				Usage:        "Expands the token before the cursor for every line read from stdin",
				OnUsageError: usageErrorHandler,
				Action:       runLine,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "column", Value: -1, Usage: "cursor `COLUMN` (byte offset), default is end of line"},
					&cli.BoolFlag{Name: "mark", Usage: "mark the resulting cursor position with '|'"},
				},
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps the actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       runDumpConfig,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "shorthand: %v\n", err)
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func input(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
