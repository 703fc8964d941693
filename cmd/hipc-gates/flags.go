package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	Mode            string
	ConfigPath      string
	SourcePath      string
	OutputPath      string
	TriplesPath     string
	Addr            string
	LogLevel        string
	LogFormat       string
	Debug           bool
	ShutdownTimeout time.Duration
	ShowVersion     bool
	ShowHelp        bool
	Validate        bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	flag.StringVar(&cfg.Mode, "mode",
		getEnv("HIPC_GATES_MODE", "normalize"),
		"Run mode: normalize, serve, extract (env: HIPC_GATES_MODE)")

	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("HIPC_GATES_CONFIG", "configs/hipc-gates.json"),
		"Path to configuration file (env: HIPC_GATES_CONFIG)")

	flag.StringVar(&cfg.SourcePath, "source",
		getEnv("HIPC_GATES_SOURCE", ""),
		"Source TSV file for normalize mode, - for stdin (env: HIPC_GATES_SOURCE)")

	flag.StringVar(&cfg.OutputPath, "output",
		getEnv("HIPC_GATES_OUTPUT", "-"),
		"Output file for normalize and extract modes, - for stdout (env: HIPC_GATES_OUTPUT)")

	flag.StringVar(&cfg.TriplesPath, "triples",
		getEnv("HIPC_GATES_TRIPLES", ""),
		"N-triples file for extract mode, - for stdin (env: HIPC_GATES_TRIPLES)")

	flag.StringVar(&cfg.Addr, "addr",
		getEnv("HIPC_GATES_ADDR", ""),
		"Listen address for serve mode, overrides the config file (env: HIPC_GATES_ADDR)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("HIPC_GATES_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: HIPC_GATES_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("HIPC_GATES_LOG_FORMAT", "text"),
		"Log format: json, text (env: HIPC_GATES_LOG_FORMAT)")

	flag.BoolVar(&cfg.Debug, "debug",
		getEnvBool("HIPC_GATES_DEBUG", false),
		"Enable debug mode (env: HIPC_GATES_DEBUG)")

	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout",
		getEnvDuration("HIPC_GATES_SHUTDOWN_TIMEOUT", 10*time.Second),
		"Graceful shutdown timeout for serve mode (env: HIPC_GATES_SHUTDOWN_TIMEOUT)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	validModes := []string{"normalize", "serve", "extract"}
	if !contains(validModes, cfg.Mode) {
		return fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	// extract mode needs no reference tables, so no config file either
	if cfg.Mode != "extract" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	if cfg.Mode == "normalize" && cfg.SourcePath == "" {
		return fmt.Errorf("normalize mode requires -source")
	}
	if cfg.Mode == "extract" && cfg.TriplesPath == "" {
		return fmt.Errorf("extract mode requires -triples")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - cell population gate normalization

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Normalize a source table
  %s -mode=normalize -source=source.tsv -output=normalized.tsv

  # Serve the interactive validation API
  %s -mode=serve -config=/etc/hipc-gates/config.json

  # Extract PRO short labels from an N-triples dump
  %s -mode=extract -triples=pro.nt -output=pr-labels.tsv

  # Validate configuration only
  %s -validate

Version: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
