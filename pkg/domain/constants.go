package domain

const (
	// DefaultCommand is the name of the external audit executable.
	DefaultCommand = "bundler-audit"

	// SubcommandCheck scans the lock file for insecure dependencies.
	SubcommandCheck = "check"

	// SubcommandUpdate refreshes the advisory database.
	SubcommandUpdate = "update"

	// FallbackExitCode is used when the child's exit status cannot be determined.
	FallbackExitCode = 1
)
