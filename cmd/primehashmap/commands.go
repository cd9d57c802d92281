package main

import (
	"context"
	"fmt"
	"github.com/gostonefire/primehashmap"
	"github.com/gostonefire/primehashmap/internal/logger"
	"github.com/gostonefire/primehashmap/metrics"
	"github.com/urfave/cli/v3"
	"os"
	"slices"
	"strings"
)

func modeCommand() *cli.Command {
	return &cli.Command{
		Name:      "mode",
		Usage:     "Prints the most frequent words and how often they occur",
		ArgsUsage: "[words...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Read whitespace separated words from `FILE`, can be repeated.",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, _, err := setup(ctx, cmd)
			if err != nil {
				return err
			}
			log := logger.FromContext(ctx)

			words := cmd.Args().Slice()
			for _, path := range cmd.StringSlice("file") {
				b, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("error reading words: %w", err)
				}
				words = append(words, strings.Fields(string(b))...)
			}

			mode, frequency := primehashmap.FindMode(words)
			slices.Sort(mode)

			log.Debug("found mode", "words", len(words), "modes", len(mode), "frequency", frequency)

			w := stdout(cmd)
			if _, err := fmt.Fprintf(w, "mode: %s\n", strings.Join(mode, " ")); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "frequency: %d\n", frequency)

			return err
		},
	}
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Puts every word with its position and prints the bucket contents",
		ArgsUsage: "[words...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			hm, err := newWordMap(ctx, cmd, cmd.Args().Slice())
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(stdout(cmd), hm.String())

			return err
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Puts every word with its position and prints occupancy metrics in Prometheus text format",
		ArgsUsage: "[words...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			hm, err := newWordMap(ctx, cmd, cmd.Args().Slice())
			if err != nil {
				return err
			}

			return metrics.WriteText(stdout(cmd), metrics.NewCollector("words", hm))
		},
	}
}
