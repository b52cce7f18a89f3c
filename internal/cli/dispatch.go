// Package cli turns command-line arguments into a command run.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"tasktrack/internal/backend/googletasks"
	"tasktrack/internal/commands"
	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/logging"
	"tasktrack/internal/seed"
	"tasktrack/internal/service"
	"tasktrack/internal/task"
)

// DefaultCommand runs when no arguments are given.
const DefaultCommand = "tui"

// ErrAuth marks errors caused by missing or unusable credentials.
var ErrAuth = errors.New("auth error")

// SessionFactory creates the session a command runs against.
// Used to inject the seed source during dispatch.
type SessionFactory func(ctx context.Context, cfg *config.Config) (*service.Session, error)

// NewSessionFactory returns a factory that resolves cfg.Seed (importing
// google lists through importer) into a fresh in-memory store.
func NewSessionFactory(importer seed.ImporterFactory) SessionFactory {
	return func(ctx context.Context, cfg *config.Config) (*service.Session, error) {
		tasks, err := seed.Resolve(ctx, cfg, cfg.Seed, importer)
		if err != nil {
			return nil, err
		}
		store := task.NewStore(tasks, task.WithIDPolicy(cfg.IDPolicy))
		sess := service.NewSession(store)
		cfg.Log().Debug("session created", "session", sess.ID, "tasks", store.Len(), "ids", cfg.IDPolicy.String())
		return sess, nil
	}
}

// GoogleImporter opens the Google Tasks client once the credential files
// are known to be present.
func GoogleImporter(ctx context.Context, cfg *config.Config) (seed.Importer, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: oauth_client.json not found in %s", ErrAuth, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("%w: not logged in (run: tasktrack login)", ErrAuth)
	}
	client, err := googletasks.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return client, nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SessionFactory
}

// NewDispatcher creates a new dispatcher with the given registry and session factory.
func NewDispatcher(registry *commands.Registry, factory SessionFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> open the tracker
	if len(args) == 0 {
		args = []string{DefaultCommand}
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmd.Scope()&commands.ScopeCLI == 0 {
		fmt.Fprintf(errOut, "error: %s only runs inside a session (run: tasktrack shell)\n", cmd.Name())
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)

	// Common flags
	var configDir, seedSpec, ids string
	var quiet, debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.StringVar(&seedSpec, "seed", "", "")
	fs.StringVar(&ids, "ids", "", "")

	// Command-specific flags
	cmd.RegisterFlags(fs)

	positional, code, ok := commands.ParseFlags(fs, args, errOut)
	if !ok {
		return code
	}

	policy, err := task.ParseIDPolicy(ids)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.Seed = seedSpec
	cfg.IDPolicy = policy
	cfg.Logger = logging.New(errOut, cfg.Debug)

	cfg.Log().Debug("dispatch", "command", cmd.Name(), "config", cfg.Dir)

	var sess *service.Session
	if cmd.NeedsSession() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no task source configured")
			return exitcode.BackendError
		}
		sess, err = d.factory(ctx, cfg)
		if err != nil {
			return reportSessionError(err, errOut)
		}
	}

	return cmd.Run(ctx, cfg, sess, positional, out, errOut)
}

// reportSessionError prints a session setup failure and returns its exit code.
func reportSessionError(err error, errOut io.Writer) int {
	switch {
	case errors.Is(err, ErrAuth):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	case errors.Is(err, seed.ErrInvalidSeed),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, googletasks.ErrListNotFound),
		errors.Is(err, googletasks.ErrAmbiguousList):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth"):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}
