package main

import (
	"context"
	"fmt"
	isatty "github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"io"
	"os"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// globalFlags are the flags that should be available on all commands
var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "Path to a YAML or JSON config file.",
	},
	&cli.StringFlag{
		Name:    "technique",
		Aliases: []string{"t"},
		Usage:   "Collision resolution technique.  One of: quadratic, chaining.",
	},
	&cli.IntFlag{
		Name:    "capacity",
		Aliases: []string{"c"},
		Usage:   "Initial capacity, rounded up to the next odd prime.",
	},
	&cli.StringFlag{
		Name:  "hash",
		Usage: "Hash function.  One of: sum, weighted, crc32, xxhash.",
	},
	&cli.BoolFlag{
		Name:  "json",
		Usage: "Output logs as JSON.  Set to true if stdout is not a TTY.",
	},
	&cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "Set the log level.  One of: trace, debug, info, warn, error.",
	},
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "primehashmap",
		Usage:   "Count, dump and inspect words stored in a prime capacity hash map",
		Version: version,
		Flags:   globalFlags,
		Commands: []*cli.Command{
			modeCommand(),
			dumpCommand(),
			statsCommand(),
			versionCommand(),
		},
	}
}

func execute() {
	app := newApp()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		// Always use JSON when not in a terminal
		_ = os.Setenv("LOG_HANDLER", "json")
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stdout - Returns the writer commands print their results to
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// stderr - Returns the writer logs go to
func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Shows the primehashmap version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(stdout(cmd), version)
			return err
		},
	}
}
