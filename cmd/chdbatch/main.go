// Package main provides the chdbatch command-line interface: batch
// compression, decompression and inspection of disc images through the
// external chdman executable.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Cyclone1070/chdbatch/internal/batch"
	"github.com/Cyclone1070/chdbatch/internal/config"
	"github.com/Cyclone1070/chdbatch/internal/disc"
	"github.com/Cyclone1070/chdbatch/internal/executil"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "chdbatch",
		Usage:   "Batch chdman jobs: compress, decompress and inspect disc images",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "chdman-path", Usage: "Path to the chdman executable"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print commands instead of running them"},
			&cli.BoolFlag{Name: "keep-going", Aliases: []string{"k"}, Usage: "Continue a batch past per-file failures"},
		},
		Commands: []*cli.Command{
			{
				Name:  "compress",
				Usage: "Compress a disc image (or a directory of images) into CHD",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "Input file or directory"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "Output file or directory"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "auto", Usage: "Output CHD format (auto, cd, dvd, hd, ld, raw)"},
					&cli.BoolFlag{Name: "delete-input", Usage: "Delete source files after successful compression"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					format, err := disc.ParseFormat(c.String("format"))
					if err != nil {
						return err
					}
					p, err := buildProcessor(c)
					if err != nil {
						return err
					}
					report, err := p.Compress(ctx, c.String("input"), c.String("output"), format, c.Bool("delete-input"))
					printSummary(report)
					return err
				},
			},
			{
				Name:  "decompress",
				Usage: "Decompress a CHD file (or a directory of them) into disc images",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "Input file or directory"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "Output file or directory"},
					&cli.BoolFlag{Name: "delete-input", Usage: "Delete source files after successful decompression"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					p, err := buildProcessor(c)
					if err != nil {
						return err
					}
					report, err := p.Decompress(ctx, c.String("input"), c.String("output"), c.Bool("delete-input"))
					printSummary(report)
					return err
				},
			},
			{
				Name:  "info",
				Usage: "Display information about a CHD file (or a directory of them)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "Input file or directory"},
					&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose mode"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					p, err := buildProcessor(c)
					if err != nil {
						return err
					}
					report, err := p.Info(ctx, c.String("input"), c.Bool("verbose"))
					printSummary(report)
					return err
				},
			},
		},
	}
}

// buildProcessor loads configuration, applies flag overrides and wires
// the executor into a batch processor.
func buildProcessor(c *cli.Command) (*batch.Processor, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	if path := c.String("chdman-path"); path != "" {
		cfg.Tool.ChdmanPath = path
	}
	if cfg.Tool.ChdmanPath == "" {
		return nil, fmt.Errorf("must specify chdman path: --chdman-path or tool.chdman_path in config")
	}
	if c.Bool("keep-going") {
		cfg.Batch.StrictAbort = false
	}

	executor := executil.NewOSCommandExecutor(cfg)
	p := batch.New(cfg, executor, os.Stdout, os.Stderr)
	p.DryRun = c.Bool("dry-run")
	return p, nil
}

// printSummary reports skipped and failed files after a batch. Nothing
// is printed for a fully clean run.
func printSummary(report *batch.Report) {
	if report == nil {
		return
	}
	failed := report.Failed() + report.ToolFailed()
	if failed == 0 {
		return
	}
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("%d of %d file(s) failed", failed, len(report.Results))))
}
