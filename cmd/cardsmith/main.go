// Package main provides the entry point for the cardsmith CLI.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/paykit/cardsmith/cmd/cardsmith/commands"
	"github.com/paykit/cardsmith/internal/config"
)

func main() {
	cmd := &cli.Command{
		Name:    "cardsmith",
		Usage:   "Generate and check synthetic payment card data for testing",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate synthetic card records for an issuer prefix",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "bin",
						Aliases: []string{"b"},
						Usage:   "6-digit issuer prefix (BIN) to generate from",
					},
					&cli.StringFlag{
						Name:    "preset",
						Aliases: []string{"p"},
						Usage:   "Named issuer preset (see the presets command)",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "Number of records to generate",
					},
					&cli.IntFlag{
						Name:  "seed",
						Usage: "Seed for deterministic output (omit for random records)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
					&cli.StringFlag{
						Name:  "presets-file",
						Usage: "YAML file replacing the built-in presets",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					logger := commands.NewLogger(cfg)
					engine := commands.NewEngine(logger, int64(cmd.Int("seed")), cmd.IsSet("seed"))
					catalog, err := commands.LoadCatalog(cmd.String("presets-file"), cfg)
					if err != nil {
						return err
					}
					req := commands.GenerateRequest{
						BIN:    cmd.String("bin"),
						Preset: cmd.String("preset"),
						Count:  int(cmd.Int("count")),
						Format: cmd.String("format"),
					}
					return commands.RunGenerate(cfg, logger, engine, catalog, req, commands.DefaultIO())
				},
			},
			{
				Name:      "validate",
				Usage:     "Check a card number (and optional expiration) for well-formedness",
				ArgsUsage: "NUMBER",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "exp",
						Usage: "Expiration to check, as MM/YY or MMYY",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					logger := commands.NewLogger(cfg)
					req := commands.ValidateRequest{
						Number: cmd.Args().First(),
						Exp:    cmd.String("exp"),
						Format: cmd.String("format"),
					}
					return commands.RunValidate(logger, req, time.Now(), commands.DefaultIO())
				},
			},
			{
				Name:  "presets",
				Usage: "List the named issuer prefixes available to generate",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
					&cli.StringFlag{
						Name:  "presets-file",
						Usage: "YAML file replacing the built-in presets",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					catalog, err := commands.LoadCatalog(cmd.String("presets-file"), cfg)
					if err != nil {
						return err
					}
					req := commands.PresetsRequest{Format: cmd.String("format")}
					return commands.RunPresets(catalog, req, commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
