package lint

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/broady/enumeration/cmd/enumcheck/internal/report"
	"github.com/broady/enumeration/internal/discover"
)

// ErrDuplicates is returned when the scanned package has duplicate keys.
var ErrDuplicates = errors.New("duplicate enumeration keys")

type Cmd struct {
	Package string `help:"Package to scan (default: current directory)." short:"p" default:"." env:"ENUMCHECK_PACKAGE"`
	Dir     string `help:"Directory to resolve the package from." short:"C" type:"existingdir"`
}

func (c *Cmd) Run(logger *slog.Logger, out io.Writer) error {
	logger.Debug("scanning package", slog.String("package", c.Package), slog.String("dir", c.Dir))

	result, err := discover.FindDir(c.Package, c.Dir)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}

	return Check(out, report.New(result))
}

// Check prints one line per duplicated member and returns ErrDuplicates if
// there were any.
func Check(out io.Writer, r *report.Report) error {
	for _, d := range r.Duplicates {
		first := d.Positions[0]
		for _, p := range d.Positions[1:] {
			fmt.Fprintf(out, "%s: %s key %q duplicates %s\n", p, d.Owner, d.Key, first)
		}
	}
	if n := len(r.Duplicates); n > 0 {
		return fmt.Errorf("%w: %d in %s", ErrDuplicates, n, r.Package)
	}
	return nil
}
