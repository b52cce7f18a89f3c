package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tasktrack help" }
func (c *HelpCmd) Scope() Scope       { return ScopeCLI }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasktrack                                          Open the interactive task tracker
  tasktrack tui [common flags]                       Open the interactive task tracker
  tasktrack shell [common flags]                     Run commands line by line on one session
  tasktrack list [common flags] [--filter <filter>]  Print the starting tasks
  tasktrack export [common flags] [--format json|csv|pdf] [--filter <filter>] [--out <path>]
  tasktrack login [common flags]
  tasktrack logout [common flags]
  tasktrack help
  tasktrack version

Shell commands:
  add <title...>                  Add a task
  toggle <id>                     Flip a task between open and completed
  rm <id>                         Delete a task
  filter [all|active|completed]   Show or select the view filter
  list, export                    As above, on the current session
  quit

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --seed <source>  Starting tasks: builtin, google:<list name> or a JSON file
  --ids <policy>   Id assignment: sequential (default) or length
`
