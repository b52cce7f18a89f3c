package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/service"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	filter string
	out    string
}

// SetFormat sets the format flag (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOut sets the output path flag (for testing).
func (c *ExportCmd) SetOut(path string) {
	c.out = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write the view as json, csv or pdf" }
func (c *ExportCmd) Usage() string {
	return "export [--format json|csv|pdf] [--filter <filter>] [--out <path>]"
}
func (c *ExportCmd) Scope() Scope       { return ScopeAny }
func (c *ExportCmd) NeedsSession() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", output.FormatJSON, "")
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
	fs.StringVar(&c.out, "out", "", "")
	fs.StringVar(&c.out, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: too many arguments")
		return exitcode.UserError
	}

	f, ok := resolveFilter(c.filter, sess, errOut)
	if !ok {
		return exitcode.UserError
	}

	format := c.format
	if format == "" {
		format = output.FormatJSON
	}

	var buf bytes.Buffer
	if err := output.Export(&buf, sess.Apply(f), format, f); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.out == "" {
		if _, err := out.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(errOut, "error: failed to write export: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	}

	if err := os.WriteFile(c.out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(errOut, "error: failed to write %s: %v\n", c.out, err)
		return exitcode.UserError
	}

	cfg.Log().Debug("view exported", "session", sess.ID, "format", format, "path", c.out)
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
