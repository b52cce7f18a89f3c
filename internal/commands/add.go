package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/output"
	"tasktrack/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Add a task" }
func (c *AddCmd) Usage() string      { return "add <title...>" }
func (c *AddCmd) Scope() Scope       { return ScopeShell }
func (c *AddCmd) NeedsSession() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

// TakesLine makes the shell pass the typed title unsplit, so inner spacing
// and a leading "-" survive.
func (c *AddCmd) TakesLine() bool { return true }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	// Join args to form title; the store trims and rejects blanks
	added, ok := sess.Add(strings.Join(args, " "))
	if !ok {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	cfg.Log().Debug("task added", "session", sess.ID, "id", added.ID)
	if !cfg.Quiet {
		output.FormatTask(out, added)
	}
	return exitcode.Success
}
