package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/math-tools/internal/application"
	"github.com/eugenenazirov/math-tools/internal/config"
	"github.com/eugenenazirov/math-tools/internal/logging"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := newCLI()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return exitFailure
	}

	logger, err := logging.New(stderr, cfg.Level(), cfg.LogEncoding)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	// ParseContext never runs flag actions, so kingpin's built-in help, man
	// page and completion flags cannot write to the process stdout.
	if _, err := kingpinApp.ParseContext(args); err != nil {
		logger.Debug("ignoring command-line arguments", zap.Strings("args", args), zap.Error(err))
	} else if len(args) > 0 {
		logger.Debug("ignoring command-line arguments", zap.Strings("args", args))
	}

	if err := application.New(logger).Run(stdout); err != nil {
		logger.Debug("run failed", zap.Error(err))
		return exitFailure
	}
	return exitSuccess
}

// newCLI declares the command-line surface. Arguments are accepted but have no
// effect, so usage and parse errors are never printed and never terminate.
func newCLI() *kingpin.Application {
	app := kingpin.New("math-tools", "Prints a greeting and evaluates e^(-ix) for x = 1").
		UsageWriter(io.Discard).
		ErrorWriter(io.Discard).
		Terminate(nil)
	app.Arg("args", "Accepted and ignored").Strings()
	return app
}
