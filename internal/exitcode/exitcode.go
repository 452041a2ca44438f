// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes. Problems inside the menu are reported and the loop goes on;
// only startup failures produce a non-zero code.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad flags, arguments, or config file).
	UserError = 1

	// DataError indicates the task document exists but is corrupt.
	DataError = 2

	// StorageError indicates the task document or input could not be read.
	StorageError = 3
)
