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
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Flip a task between open and completed" }
func (c *ToggleCmd) Usage() string      { return "toggle <id>" }
func (c *ToggleCmd) Scope() Scope       { return ScopeShell }
func (c *ToggleCmd) NeedsSession() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintln(errOut, reportTaskIDError(err))
		return exitcode.UserError
	}

	if !sess.Toggle(id) {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}

	cfg.Log().Debug("task toggled", "session", sess.ID, "id", id)
	if !cfg.Quiet {
		for _, t := range sess.Tasks() {
			if t.ID == id {
				output.FormatTask(out, t)
			}
		}
	}
	return exitcode.Success
}

// findTask returns the first task with the given id.
func findTask(sess *service.Session, id int) (task.Task, bool) {
	for _, t := range sess.Tasks() {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}
