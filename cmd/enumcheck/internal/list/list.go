package list

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/broady/enumeration/cmd/enumcheck/internal/report"
	"github.com/broady/enumeration/internal/discover"
)

type Cmd struct {
	Package string `help:"Package to scan (default: current directory)." short:"p" default:"." env:"ENUMCHECK_PACKAGE"`
	Dir     string `help:"Directory to resolve the package from." short:"C" type:"existingdir"`
	Format  string `help:"Output format (${enum})." short:"f" enum:"${formats}" default:"text" env:"ENUMCHECK_FORMAT"`
}

func (c *Cmd) Run(logger *slog.Logger, out io.Writer) error {
	logger.Debug("scanning package", slog.String("package", c.Package), slog.String("dir", c.Dir))

	result, err := discover.FindDir(c.Package, c.Dir)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}

	logger.Debug("scan complete",
		slog.String("package", result.PackagePath),
		slog.Int("types", len(result.Declarations)),
		slog.Int("members", len(result.Members)))

	return report.Write(out, c.Format, report.New(result))
}
