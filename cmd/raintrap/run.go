package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/raintrap/internal/cli"
	"github.com/katalvlaran/raintrap/internal/input"
	"github.com/katalvlaran/raintrap/internal/logging"
	"github.com/katalvlaran/raintrap/profile"
	"github.com/katalvlaran/raintrap/trap"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitInvalidInput = 1
	ExitUsage        = 2
)

// run is main without the process: it takes the arguments (including the
// program name) and standard streams, and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cliArgs, command, err := cli.ParseCLI(args[1:], stdout, stderr)
	// Kong prints help itself; with exit disabled it may still report an error afterwards.
	if helpRequested(args[1:]) {
		return ExitOK
	}
	if err != nil {
		slog.New(logging.NewTerminalHandler(stderr, slog.LevelInfo, cliArgs.NoColor)).
			Error("invalid arguments", "error", err)
		return ExitUsage
	}

	level, err := logging.ParseLevel(cliArgs.LogLevel)
	if err != nil {
		slog.New(logging.NewTerminalHandler(stderr, slog.LevelInfo, cliArgs.NoColor)).
			Error("invalid arguments", "error", err)
		return ExitUsage
	}
	logger := slog.New(logging.NewTerminalHandler(stderr, level, cliArgs.NoColor))

	switch command {
	case cli.CommandGenerate:
		return runGenerate(logger, cliArgs.Generate, stdout)
	default:
		return runTrap(ctx, logger, cliArgs.Trap, stdin, stdout)
	}
}

func runTrap(ctx context.Context, logger *slog.Logger, cmd cli.TrapCmd, stdin io.Reader, stdout io.Writer) int {
	var (
		height []int
		err    error
	)
	if cmd.Heights != nil {
		height, err = input.ParseHeights(cmd.Heights, cmd.Permissive)
	} else {
		opts := input.Options{Permissive: cmd.Permissive}
		if logging.IsTerminal(stdin) {
			opts.Prompt = stdout
		}
		height, err = input.Read(stdin, opts)
	}
	if err != nil {
		logger.Error("could not read bar heights", "error", err)
		return ExitInvalidInput
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("cancelled before computing", "error", err)
		return ExitUsage
	}

	units := trap.Trap(height)
	logger.Debug("computed trapped volume", "bars", len(height), "units", units, "permissive", cmd.Permissive)

	fmt.Fprintf(stdout, "Total trapped rainwater: %d units\n", units)
	if cmd.Levels {
		fmt.Fprintf(stdout, "Water levels: %s\n", joinInts(trap.Levels(height)))
	}

	return ExitOK
}

func runGenerate(logger *slog.Logger, cmd cli.GenerateCmd, stdout io.Writer) int {
	if err := cmd.Validate(); err != nil {
		logger.Error("invalid arguments", "error", err)
		return ExitUsage
	}

	height, err := profile.ByKind(cmd.Kind, cmd.Count,
		profile.WithSeed(cmd.Seed),
		profile.WithMaxHeight(cmd.MaxHeight),
		profile.WithPeriod(cmd.Period),
	)
	if err != nil {
		logger.Error("could not generate profile", "kind", cmd.Kind, "error", err)
		return ExitUsage
	}
	logger.Debug("generated profile", "kind", cmd.Kind, "bars", len(height), "seed", cmd.Seed)

	if len(height) == 0 {
		fmt.Fprintln(stdout, 0)
		return ExitOK
	}
	fmt.Fprintf(stdout, "%d %s\n", len(height), joinInts(height))

	return ExitOK
}

func helpRequested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--help" || arg == "-h" {
			return true
		}
	}

	return false
}

func joinInts(values []int) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = strconv.Itoa(v)
	}

	return strings.Join(fields, " ")
}
