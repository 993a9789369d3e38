package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vanshika/recordfactory/internal/config"
	"github.com/vanshika/recordfactory/internal/generator"
	"github.com/vanshika/recordfactory/internal/logging"
	"github.com/vanshika/recordfactory/internal/plan"
	"github.com/vanshika/recordfactory/pkg/factory"
)

const allKinds = "all"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var (
		kind        = flag.String("kind", allKinds, "record kind to generate, or \"all\"")
		count       = flag.Int("count", 10, "number of records per kind")
		seed        = flag.Int64("seed", cfg.Factory.Seed, "random seed for deterministic generation (0 = random)")
		workers     = flag.Int("workers", cfg.Factory.Workers, "number of concurrent generation workers")
		countryCode = flag.String("country-code", cfg.Factory.CountryCode, "phone prefix for users and orders")
		country     = flag.String("country", "", "fixed country for addresses (default: generated)")
		planPath    = flag.String("plan", "", "YAML generation plan; overrides -kind and -count")
		outputDir   = flag.String("output-dir", "data", "directory to write one <kind>.json per kind")
		writeStdout = flag.Bool("stdout", false, "write JSON lines to stdout instead of files")
	)
	flag.Parse()

	logger := logging.New(cfg.Logging, os.Stderr).With("component", "datagen")

	genCfg, err := buildConfig(*planPath, *kind, *count, *countryCode, *country)
	if err != nil {
		logger.Error("invalid generation request", "error", err)
		os.Exit(1)
	}
	if genCfg.Seed == 0 {
		genCfg.Seed = *seed
	}
	if genCfg.Workers == 0 {
		genCfg.Workers = *workers
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := generator.New(genCfg)
	start := time.Now()
	dataset, err := gen.Generate(ctx)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := generator.WriteJSONLines(dataset, os.Stdout); err != nil {
			logger.Error("failed to write dataset to stdout", "error", err)
			os.Exit(1)
		}
	} else if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		logger.Error("failed to write dataset", "error", err, "dir", *outputDir)
		os.Exit(1)
	}

	logSummary(logger, dataset, gen.Seed(), time.Since(start))
}

func buildConfig(planPath, kind string, count int, countryCode, country string) (generator.Config, error) {
	if planPath != "" {
		p, err := plan.LoadFile(planPath)
		if err != nil {
			return generator.Config{}, err
		}
		return p.Config(), nil
	}

	if count < 0 {
		return generator.Config{}, fmt.Errorf("count: %w", generator.ErrInvalidCount)
	}

	opts := factory.Options{factory.OptionCountryCode: countryCode}
	if country != "" {
		opts[factory.OptionCountry] = country
	}

	if strings.EqualFold(strings.TrimSpace(kind), allKinds) {
		return generator.Config{Requests: generator.AllKinds(count, opts)}, nil
	}
	k, err := factory.ParseKind(kind)
	if err != nil {
		return generator.Config{}, err
	}
	return generator.Config{Requests: []generator.Request{{Kind: k, Count: count, Options: opts}}}, nil
}

func logSummary(logger *slog.Logger, dataset generator.Dataset, seed int64, elapsed time.Duration) {
	for _, k := range dataset.Kinds {
		logger.Debug("generated kind", "kind", k, "count", humanize.Comma(int64(len(dataset.Records[k]))))
	}
	logger.Info("generation complete",
		"records", humanize.Comma(int64(dataset.Count())),
		"kinds", len(dataset.Kinds),
		"seed", seed,
		"duration", elapsed.String(),
	)
}
