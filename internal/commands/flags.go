package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/exitcode"
	"tasktrack/internal/service"
)

// ParseFlags parses args into fs and reports errors on errOut.
// On failure it returns ok=false and the exit code to use.
func ParseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) (positional []string, code int, ok bool) {
	fs.SetOutput(io.Discard) // We handle errors ourselves

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return nil, exitcode.UserError, false
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError, false
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError, false
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positional = fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") && positional[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return nil, exitcode.UserError, false
	}

	return positional, exitcode.Success, true
}

// Exec registers the command's flags on a fresh flag set, parses args and runs it.
func Exec(ctx context.Context, cmd Command, cfg *config.Config, sess *service.Session, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.RegisterFlags(fs)

	positional, code, ok := ParseFlags(fs, args, errOut)
	if !ok {
		return code
	}
	return cmd.Run(ctx, cfg, sess, positional, out, errOut)
}
