/*
Package bundleaudit wires the bundler-audit dependency scanner into a host task table.

It defines two tasks, bundle:audit:check and bundle:audit:update, plus the
legacy bundler:* aliases. Each task runs the external bundler-audit
executable with a fixed subcommand and forwards any extra arguments.

# Failure Contract

  - The tool exits zero: the task returns nil.
  - The tool exits non-zero: the task returns *domain.HaltError carrying the
    same status. Only the outermost boundary (the CLI) turns it into os.Exit,
    so CI pipelines see the scanner's own exit code.
  - The tool cannot be started: the task returns *domain.CommandNotFoundError.

# Usage

	reg := registry.NewRegistry()
	audit := bundleaudit.NewTask(process.NewRunner())

	if err := audit.Define(reg); err != nil {
		log.Fatal(err)
	}

	err := reg.Invoke(ctx, bundleaudit.TaskCheck)
	if code, ok := domain.HaltCode(err); ok {
		os.Exit(code)
	}
*/
package bundleaudit
