// Command enumcheck inspects enumeration declarations in Go packages.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/broady/enumeration/cmd/enumcheck/internal/lint"
	"github.com/broady/enumeration/cmd/enumcheck/internal/list"
	"github.com/broady/enumeration/cmd/enumcheck/internal/report"
)

type CLI struct {
	Verbose bool `help:"Enable debug logging." short:"v"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	List    list.Cmd   `cmd:"" help:"List enumeration types and constant-keyed members."`
	Lint    lint.Cmd   `cmd:"" help:"Report members of one type that share a key."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintln(out, Version())
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "enumcheck: %v\n", err)
		os.Exit(1)
	}
}

func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("enumcheck"),
		kong.Description("Inspect enumeration declarations in Go packages."),
		kong.UsageOnError(),
		kong.Vars{"formats": report.Formats},
		kong.Writers(stdout, stderr),
	)
}

func run(args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := newParser(cli, stdout, stderr)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx.BindTo(stdout, (*io.Writer)(nil))
	return ctx.Run(newLogger(stderr, cli.Verbose))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
