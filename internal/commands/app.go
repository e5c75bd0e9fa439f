package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// NewApp builds the paramgen command around ctrl. Logs and diagnostics go to
// stderr; stdout only carries help and version output.
func NewApp(ctrl *Controller, version string, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "paramgen",
		Usage:     "Generate EPICS database records and asyn driver parameter code from a parameter schema",
		ArgsUsage: "<schema-file>",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Value:       "warn",
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "optional YAML configuration file",
				Destination: &ctrl.Flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "out-dir",
				Usage:       "directory the generated files are written to (default \".\")",
				Destination: &ctrl.Flags.OutDir,
			},
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "file name prefix of the generated files (default \"gc_t4u\")",
				Destination: &ctrl.Flags.Prefix,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			ctrl.Flags.LogLevel = c.String("log-level")
			level, err := zerolog.ParseLevel(ctrl.Flags.LogLevel)
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			ctrl.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
				Level(level).
				With().
				Timestamp().
				Logger()

			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return &UsageError{Args: c.Args().Len()}
			}
			return ctrl.Generate(ctx, c.Args().First())
		},
	}
}

// Run executes the command line and returns the process exit code
func Run(ctx context.Context, args []string, version string, stdout, stderr io.Writer) int {
	app := NewApp(NewController(), version, stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(stderr, "paramgen: %v\n", err)

		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(stderr, UsageText)
		}
		return 1
	}
	return 0
}
