package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
	"tasktrack/internal/ui"
)

func init() {
	Register(&TuiCmd{})
}

// TuiCmd opens the interactive tracker. It is what runs with no arguments.
type TuiCmd struct {
	in io.Reader
}

// SetInput sets the reader key presses come from (for testing). Defaults to stdin.
func (c *TuiCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *TuiCmd) Name() string       { return "tui" }
func (c *TuiCmd) Aliases() []string  { return nil }
func (c *TuiCmd) Synopsis() string   { return "Open the interactive task tracker" }
func (c *TuiCmd) Usage() string      { return "tasktrack tui [common flags]" }
func (c *TuiCmd) Scope() Scope       { return ScopeCLI }
func (c *TuiCmd) NeedsSession() bool { return true }

func (c *TuiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TuiCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: too many arguments")
		return exitcode.UserError
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}

	log := cfg.Log().With("session", sess.ID)
	log.Debug("tui started", "tasks", len(sess.Tasks()))

	if err := ui.Run(ctx, sess, in, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	log.Debug("tui finished", "tasks", len(sess.Tasks()), "filter", sess.Filter.String())
	return exitcode.Success
}
