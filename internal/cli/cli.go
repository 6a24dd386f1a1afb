// Package cli defines the raintrap command line.
package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

// Command names as reported by ParseCLI.
const (
	CommandTrap     = "trap"
	CommandGenerate = "generate"
)

// CLI is the root command-line model.
type CLI struct {
	LogLevel string `kong:"name='log-level',env='RAINTRAP_LOG_LEVEL',default='info',help='Log level (debug, info, warn, error; any case).'"`
	NoColor  bool   `kong:"name='no-color',env='RAINTRAP_NO_COLOR',help='Disable coloured log output.'"`

	Trap     TrapCmd     `kong:"cmd,default='withargs',help='Compute trapped rainwater (default).'"`
	Generate GenerateCmd `kong:"cmd,help='Print a generated height profile in the trap input format.'"`
}

// TrapCmd computes the trapped volume for one profile.
type TrapCmd struct {
	Heights    []string `kong:"sep=',',help='Bar heights, comma separated. Read from stdin when omitted.'"`
	Permissive bool     `kong:"env='RAINTRAP_PERMISSIVE',help='Accept negative heights and pad missing ones with 0.'"`
	Levels     bool     `kong:"help='Also print the water level above each bar.'"`
}

// GenerateCmd prints a generated profile as trap input.
type GenerateCmd struct {
	Kind      string `kong:"default='random',enum='pulse,random,staircase,valley',help='Profile shape.'"`
	Count     int    `kong:"short='n',default='12',help='Number of bars.'"`
	Seed      int64  `kong:"default='1',help='Seed for the random shape.'"`
	MaxHeight int    `kong:"name='max-height',default='10',help='Tallest bar.'"`
	Period    int    `kong:"default='4',help='Wall spacing for the pulse shape.'"`
}

// ParseCLI parses args (without the program name) and returns the model
// together with the selected command name.
func ParseCLI(args []string, stdout, stderr io.Writer) (CLI, string, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("raintrap"),
		kong.Description("Compute the rainwater trapped between bars of given heights"),
		kong.UsageOnError(),
		kong.Exit(func(int) {}), // Prevent os.Exit during testing
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return cli, "", err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return cli, "", err
	}

	switch cmd := ctx.Command(); cmd {
	case CommandTrap, CommandGenerate:
		return cli, cmd, nil
	default:
		return cli, "", fmt.Errorf("cli: unexpected command %q", cmd)
	}
}

// Validate rejects generate values kong tags cannot express.
func (g GenerateCmd) Validate() error {
	if g.Count < 0 {
		return fmt.Errorf("--count must be non-negative, got %d", g.Count)
	}
	if g.MaxHeight < 0 {
		return fmt.Errorf("--max-height must be non-negative, got %d", g.MaxHeight)
	}
	if g.Period < 2 {
		return fmt.Errorf("--period must be at least 2, got %d", g.Period)
	}

	return nil
}
