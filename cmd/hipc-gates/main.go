// Package main implements the entry point for the hipc-gates tool: batch
// normalization of reported cell population descriptions, an interactive
// validation server, and PRO short-label extraction.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jamesaoverton/hipc-gates/batch"
	"github.com/jamesaoverton/hipc-gates/config"
	gatewayhttp "github.com/jamesaoverton/hipc-gates/gateway/http"
	"github.com/jamesaoverton/hipc-gates/metric"
	"github.com/jamesaoverton/hipc-gates/ontology"
	"github.com/jamesaoverton/hipc-gates/reference"
	"github.com/jamesaoverton/hipc-gates/validate"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "hipc-gates"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	if cliCfg.Mode == "extract" {
		return runExtract(cliCfg)
	}

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cliCfg.Addr != "" {
		cfg.HTTP.Addr = cliCfg.Addr
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid", "path", cliCfg.ConfigPath)
		return nil
	}

	slog.Info("Starting hipc-gates",
		"version", Version,
		"mode", cliCfg.Mode,
		"config_path", cliCfg.ConfigPath)

	bundle, err := reference.LoadBundle(cfg.Paths())
	if err != nil {
		return fmt.Errorf("load reference tables: %w", err)
	}

	switch cliCfg.Mode {
	case "serve":
		return runServe(cfg, bundle, logger, cliCfg.ShutdownTimeout)
	default:
		return runNormalize(cfg, bundle, cliCfg, logger)
	}
}

// runNormalize reads the source table, normalizes it, and writes the result.
func runNormalize(cfg *config.Config, bundle *reference.Bundle, cliCfg *CLIConfig, logger *slog.Logger) error {
	excluded := map[string]bool{}
	if cfg.Reference.Excluded != "" {
		f, err := os.Open(cfg.Reference.Excluded)
		if err != nil {
			return fmt.Errorf("open excluded experiments: %w", err)
		}
		defer f.Close()
		if excluded, err = reference.LoadExcludedAccessions(f); err != nil {
			return fmt.Errorf("load excluded experiments: %w", err)
		}
	}

	source, closeSource, err := openInput(cliCfg.SourcePath)
	if err != nil {
		return fmt.Errorf("open source table: %w", err)
	}
	defer closeSource()

	table, err := batch.ReadTable(source)
	if err != nil {
		return fmt.Errorf("read source table: %w", err)
	}

	registry := metric.NewRegistry()
	normalizer := batch.NewNormalizer(bundle, excluded, cfg.Columns(), logger, registry.CoreMetrics())

	out, err := normalizer.Normalize(table)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	output, closeOutput, err := openOutput(cliCfg.OutputPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer closeOutput()

	if err := out.Write(output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// runServe runs the interactive validation gateway until a signal arrives.
func runServe(cfg *config.Config, bundle *reference.Bundle, logger *slog.Logger, shutdownTimeout time.Duration) error {
	registry := metric.NewRegistry()
	service := validate.NewService(bundle, logger)
	gateway := gatewayhttp.NewGateway(gatewayhttp.Config{
		Addr:            cfg.HTTP.Addr,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
	}, service, registry, logger)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- gateway.Start(context.Background())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case s := <-sig:
		slog.Info("Shutting down", "signal", s.String())
		if err := gateway.Stop(shutdownTimeout); err != nil {
			return err
		}
		return <-serveErr
	}
}

// runExtract scans an N-triples dump for PRO short labels and writes them as
// a two-column TSV.
func runExtract(cliCfg *CLIConfig) error {
	in, closeIn, err := openInput(cliCfg.TriplesPath)
	if err != nil {
		return fmt.Errorf("open triples: %w", err)
	}
	defer closeIn()

	labels, err := ontology.ScanShortLabels(in)
	if err != nil {
		return fmt.Errorf("scan short labels: %w", err)
	}

	output, closeOutput, err := openOutput(cliCfg.OutputPath)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer closeOutput()

	w := csv.NewWriter(output)
	w.Comma = '\t'
	for _, sl := range labels {
		if err := w.Write([]string{sl.IRI, sl.Label}); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
