package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/allsafeASM/assetspec/internal/app"
	"github.com/allsafeASM/assetspec/internal/config"
	"github.com/allsafeASM/assetspec/internal/logging"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
)

type cliOptions struct {
	targets       goflags.StringSlice
	listFile      string
	mode          string
	failOnInvalid bool
	silent        bool
}

func parseOptions() *cliOptions {
	opts := &cliOptions{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("assetspec classifies, validates and normalizes asset inventory targets.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.targets, "target", "t", nil, "targets to validate (comma separated or file)", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.listFile, "list", "l", "", "file containing targets, one per line"),
	)
	flagSet.CreateGroup("behavior", "Behavior",
		flagSet.StringVarP(&opts.mode, "mode", "m", "target", "validation mode (target, domain, subdomain, endpoint, group)"),
		flagSet.BoolVar(&opts.failOnInvalid, "fail-on-invalid", false, "exit with status 2 when any input is rejected"),
	)
	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVar(&opts.silent, "silent", false, "only write the JSON report"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not parse flags: %v", err)
	}
	return opts
}

func main() {
	opts := parseOptions()

	cfg := config.Load()
	application, err := app.NewApplication(cfg)
	if err != nil {
		gologger.Fatal().Msgf("Configuration error: %v", err)
	}
	if opts.silent {
		logging.Silence()
	}

	gologger.Info().Msgf("Starting assetspec in %s mode", opts.mode)
	gologger.Debug().Msgf("  Batch workers: %d", cfg.App.BatchWorkers)
	gologger.Debug().Msgf("  Max batch size: %d", cfg.App.MaxBatchSize)
	gologger.Debug().Msgf("  Suffix provider: %s", cfg.Suffix.Provider)

	// Cancel the batch on interrupt or terminate signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := application.Run(ctx, app.Options{
		Mode:     opts.mode,
		Targets:  opts.targets,
		ListFile: opts.listFile,
	}, os.Stdin, os.Stdout)
	if err != nil {
		gologger.Error().Msgf("Import failed: %v", err)
		stop()
		os.Exit(1)
	}

	if opts.failOnInvalid && report.HasInvalid() {
		gologger.Warning().Msgf("%d of %d inputs were rejected", report.InvalidCount, report.Total)
		stop()
		os.Exit(2)
	}
}
