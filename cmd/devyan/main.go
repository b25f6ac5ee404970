package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/ChronoRixun/devyan/src"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "devyan",
		Usage: "Generate complete Go projects from a plain-text description",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "model",
				Usage: "override the configured model name",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "override the configured server base URL",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "override the output directory",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "generate",
				Usage:     "Run one generation without the TUI",
				ArgsUsage: "<project description>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					request := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
					if request == "" {
						return fmt.Errorf("generate needs a project description")
					}
					cfg := loadConfig(cmd)
					client := src.NewOpenAIClient(cfg)
					result, err := src.RunHeadless(ctx, cfg, client, request, os.Stdout)
					if err != nil {
						return err
					}
					if !result.Success {
						return fmt.Errorf("generation finished with missing files in %s", result.Dir)
					}
					return nil
				},
			},
			{
				Name:  "doctor",
				Usage: "Check that the model server is reachable",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := loadConfig(cmd)
					fmt.Printf("🔍 Probing %s ...\n", cfg.BaseURL)
					version, err := src.ProbeServer(ctx, cfg.BaseURL)
					if err != nil {
						return fmt.Errorf("server check failed: %w", err)
					}
					fmt.Printf("✅ Server is up, version %s\n", version)
					fmt.Printf("🤖 Configured model: %s\n", cfg.Model)
					return nil
				},
			},
			{
				Name:  "tui",
				Usage: "Launch the interactive terminal interface",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return src.RunTUI(ctx, loadConfig(cmd))
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return src.RunTUI(ctx, loadConfig(cmd))
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cli.Command) src.Config {
	cfg := src.LoadConfig()
	if v := cmd.String("model"); v != "" {
		cfg.Model = v
	}
	if v := cmd.String("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := cmd.String("output"); v != "" {
		cfg.OutputDir = v
	}
	return cfg
}
