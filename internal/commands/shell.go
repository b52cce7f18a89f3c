package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
)

// Prompt is printed on errOut before each shell line.
const Prompt = "tasktrack> "

func init() {
	Register(&ShellCmd{})
}

// ShellCmd runs a line-oriented session: each input line is one command
// run against the same task collection until EOF or quit.
type ShellCmd struct {
	in       io.Reader
	registry *Registry
}

// SetInput sets the reader lines come from (for testing). Defaults to stdin.
func (c *ShellCmd) SetInput(r io.Reader) {
	c.in = r
}

// SetRegistry sets the registry lines are resolved in. Defaults to DefaultRegistry.
func (c *ShellCmd) SetRegistry(r *Registry) {
	c.registry = r
}

func (c *ShellCmd) Name() string       { return "shell" }
func (c *ShellCmd) Aliases() []string  { return nil }
func (c *ShellCmd) Synopsis() string   { return "Run commands line by line on one session" }
func (c *ShellCmd) Usage() string      { return "tasktrack shell [common flags]" }
func (c *ShellCmd) Scope() Scope       { return ScopeCLI }
func (c *ShellCmd) NeedsSession() bool { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: too many arguments")
		return exitcode.UserError
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}
	registry := c.registry
	if registry == nil {
		registry = DefaultRegistry
	}

	log := cfg.Log().With("session", sess.ID)
	log.Debug("shell started", "tasks", len(sess.Tasks()))

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			break
		}
		if !cfg.Quiet {
			fmt.Fprint(errOut, Prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if fields[0] == "help" || fields[0] == "?" {
			printShellHelp(out, registry)
			continue
		}

		cmd, ok := registry.Find(fields[0])
		if !ok {
			fmt.Fprintf(errOut, "error: unknown command: %s\n", fields[0])
			continue
		}
		if cmd.Scope()&ScopeShell == 0 {
			fmt.Fprintf(errOut, "error: %s is not available in the shell\n", cmd.Name())
			continue
		}

		var code int
		if lc, ok := cmd.(LineCommand); ok && lc.TakesLine() {
			rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
			code = cmd.Run(ctx, cfg, sess, []string{rest}, out, errOut)
		} else {
			code = Exec(ctx, cmd, cfg, sess, fields[1:], out, errOut)
		}
		log.Debug("shell command", "command", cmd.Name(), "code", code)

		if _, quit := cmd.(*QuitCmd); quit {
			break
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(errOut)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: failed to read input: %v\n", err)
		return exitcode.UserError
	}

	log.Debug("shell finished", "tasks", len(sess.Tasks()))
	return exitcode.Success
}

// printShellHelp lists the commands a shell line can run.
func printShellHelp(w io.Writer, registry *Registry) {
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range registry.In(ScopeShell) {
		fmt.Fprintf(w, "  %-44s %s\n", cmd.Usage(), cmd.Synopsis())
	}
	fmt.Fprintf(w, "  %-44s %s\n", "help", "Print this list")
}
