package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/shorthand/element"
	"github.com/npillmayer/shorthand/expand"
	"github.com/npillmayer/shorthand/jsx"
	"github.com/npillmayer/shorthand/preview"
	"github.com/npillmayer/shorthand/shorthand"
	"github.com/npillmayer/shorthand/stylemodule"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
)

var (
	errNoArgument = errors.New("missing shorthand argument")
	errNoElements = errors.New("shorthand does not describe any element")
	errNoModule   = errors.New("no CSS module given")
)

// parseArg parses the single shorthand argument of a sub-command.
func parseArg(cmd *cli.Command) (*element.Node, error) {
	if cmd.NArg() == 0 {
		return nil, errNoArgument
	}
	if cmd.NArg() > 1 {
		tracer().Infof("ignoring extra arguments %v", cmd.Args().Slice()[1:])
	}
	arg := cmd.Args().First()
	tree := shorthand.ParseShorthand(arg)
	if tree == nil {
		return nil, fmt.Errorf("%w: %q", errNoElements, arg)
	}
	return tree, nil
}

func runExpand(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errNoArgument
	}
	env := envFromContext(ctx)
	w := output(cmd)
	var err error
	for _, arg := range cmd.Args().Slice() {
		tree := shorthand.ParseShorthand(arg)
		if tree == nil {
			err = multierr.Append(err, fmt.Errorf("%w: %q", errNoElements, arg))
			continue
		}
		fmt.Fprintln(w, jsx.Render(tree, env.cfg.Prefix, cmd.String("indent")))
	}
	return err
}

func validateFormat(format string) error {
	switch format {
	case "text", "yaml", "dot":
		return nil
	}
	return fmt.Errorf("unknown tree format %q", format)
}

func runTree(_ context.Context, cmd *cli.Command) error {
	tree, err := parseArg(cmd)
	if err != nil {
		return err
	}
	w := output(cmd)
	switch cmd.String("format") {
	case "yaml":
		data, err := element.YAML(tree)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "dot":
		return element.ToGraphViz(tree, w)
	}
	_, err = fmt.Fprint(w, element.Print(tree))
	return err
}

func runPreview(_ context.Context, cmd *cli.Command) error {
	tree, err := parseArg(cmd)
	if err != nil {
		return err
	}
	out, err := preview.HTML(tree)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output(cmd), out)
	return err
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	tree, err := parseArg(cmd)
	if err != nil {
		return err
	}
	path := cmd.String("module")
	if path == "" {
		path = envFromContext(ctx).cfg.StyleModule
	}
	if path == "" {
		return errNoModule
	}
	module, err := stylemodule.Load(path)
	if err != nil {
		return err
	}
	w := output(cmd)
	for _, sel := range module.Matching(preview.Document(tree)) {
		fmt.Fprintf(w, "matches: %s\n", sel)
	}
	return module.Check(tree)
}

func runLine(ctx context.Context, cmd *cli.Command) error {
	settings := envFromContext(ctx).cfg.Settings()
	column := cmd.Int("column")
	mark := cmd.Bool("mark")
	w := output(cmd)
	scanner := bufio.NewScanner(input(cmd))
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		cursor := column
		if cursor < 0 || cursor > len(line) {
			cursor = len(line)
		}
		text, pos := expand.ExpandOrIndent(line, cursor, settings)
		if mark {
			text = text[:pos] + "|" + text[pos:]
		}
		fmt.Fprintln(w, text)
	}
	return scanner.Err()
}

func runDumpConfig(ctx context.Context, cmd *cli.Command) error {
	data, err := envFromContext(ctx).cfg.Dump()
	if err != nil {
		return err
	}
	_, err = output(cmd).Write(data)
	return err
}
