// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by tasktrack.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, bad seed).
	UserError = 1

	// AuthError indicates missing or unusable Google credentials.
	AuthError = 2

	// BackendError indicates a Google Tasks API/network error during import.
	BackendError = 3
)
