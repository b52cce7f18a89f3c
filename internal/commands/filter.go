package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/service"
	"tasktrack/internal/task"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command.
// With no argument it prints the selectors; with one it selects the session view.
type FilterCmd struct{}

func (c *FilterCmd) Name() string       { return "filter" }
func (c *FilterCmd) Aliases() []string  { return nil }
func (c *FilterCmd) Synopsis() string   { return "Show or select the view filter" }
func (c *FilterCmd) Usage() string      { return "filter [all|active|completed]" }
func (c *FilterCmd) Scope() Scope       { return ScopeShell }
func (c *FilterCmd) NeedsSession() bool { return true }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	switch len(args) {
	case 0:
		output.FormatFilterBar(out, sess.Filter)
		return exitcode.Success
	case 1:
	default:
		fmt.Fprintln(errOut, "error: too many arguments")
		return exitcode.UserError
	}

	f, err := task.ParseFilter(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	sess.Filter = f
	cfg.Log().Debug("filter selected", "session", sess.ID, "filter", f.String())
	if !cfg.Quiet {
		output.FormatFilterBar(out, sess.Filter)
	}
	return exitcode.Success
}
