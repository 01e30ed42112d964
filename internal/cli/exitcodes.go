package cli

// Exit codes for mdcallout.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a command failure.
	ExitFailure = 1
)
