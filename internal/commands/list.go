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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Without --filter it shows the session's current view.
type ListCmd struct {
	filter string
}

// SetFilter sets the filter flag (for testing).
func (c *ListCmd) SetFilter(name string) {
	c.filter = name
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "list [--filter all|active|completed]" }
func (c *ListCmd) Scope() Scope       { return ScopeAny }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.filter, "filter", "", "")
	fs.StringVar(&c.filter, "f", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: too many arguments")
		return exitcode.UserError
	}

	f, ok := resolveFilter(c.filter, sess, errOut)
	if !ok {
		return exitcode.UserError
	}

	tasks := sess.Apply(f)
	output.FormatTasks(out, tasks)

	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}

// resolveFilter returns the filter named by a --filter flag, or the session
// filter when the flag is empty.
func resolveFilter(name string, sess *service.Session, errOut io.Writer) (task.Filter, bool) {
	if name == "" {
		return sess.Filter, true
	}
	f, err := task.ParseFilter(name)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return task.All, false
	}
	return f, true
}
