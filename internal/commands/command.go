// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tasktrack/internal/config"
	"tasktrack/internal/service"
)

// Scope says where a command can be invoked from.
type Scope int

const (
	// ScopeCLI commands run from the process command line.
	ScopeCLI Scope = 1 << iota

	// ScopeShell commands run from a line inside `tasktrack shell`.
	ScopeShell

	// ScopeAny commands run from both.
	ScopeAny = ScopeCLI | ScopeShell
)

// Command defines the interface for CLI and shell commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Scope returns where the command may be invoked.
	Scope() Scope

	// NeedsSession returns true if the command works on a task session.
	// Commands like help, version, login, logout return false.
	NeedsSession() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths, logger).
	// sess is nil if NeedsSession() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int
}

// LineCommand is implemented by shell commands that take the rest of the
// line verbatim as their single argument, without flag parsing or splitting.
type LineCommand interface {
	Command
	TakesLine() bool
}
