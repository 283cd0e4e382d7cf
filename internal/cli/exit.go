package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/bundleaudit/pkg/domain"
	"github.com/muesli/termenv"
)

// ExitCode maps a task error to the status the process should exit with.
// A halted audit keeps the tool's own status. Any other error is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := domain.HaltCode(err); ok {
		return code
	}
	return 1
}

// Report prints err for the user.
// Halts print nothing: the audit tool already wrote its findings.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	if _, ok := domain.HaltCode(err); ok {
		return
	}

	out := termenv.NewOutput(w)
	prefix := out.String("Error:").Foreground(out.Color("#fb7185")).Bold()

	var notFound *domain.CommandNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(w, "%s %v\n", prefix, err)
		fmt.Fprintf(w, "Is %s installed? Try `gem install bundler-audit`.\n", notFound.Command)
		return
	}
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
