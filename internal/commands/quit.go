package commands

import (
	"context"
	"flag"
	"io"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
)

func init() {
	Register(&QuitCmd{})
}

// QuitCmd ends a shell session. The shell stops reading after it runs.
type QuitCmd struct{}

func (c *QuitCmd) Name() string       { return "quit" }
func (c *QuitCmd) Aliases() []string  { return []string{"exit"} }
func (c *QuitCmd) Synopsis() string   { return "Leave the shell" }
func (c *QuitCmd) Usage() string      { return "quit" }
func (c *QuitCmd) Scope() Scope       { return ScopeShell }
func (c *QuitCmd) NeedsSession() bool { return false }

func (c *QuitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *QuitCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	return exitcode.Success
}
