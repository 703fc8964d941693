package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jamesaoverton/hipc-gates/batch"
	"github.com/jamesaoverton/hipc-gates/errors"
	"github.com/jamesaoverton/hipc-gates/reference"
)

// Config is the complete application configuration: where the reference
// tables live, which source columns the batch path reads, and how the HTTP
// gateway listens.
type Config struct {
	Version   string          `json:"version,omitempty"`
	Reference ReferenceConfig `json:"reference"`
	Batch     BatchConfig     `json:"batch,omitempty"`
	HTTP      HTTPConfig      `json:"http,omitempty"`
}

// ReferenceConfig names the reference-table files. The scale, mappings and
// special-gates tables are required; the cell tables are only needed for the
// interactive path.
type ReferenceConfig struct {
	ValueScale   string `json:"value_scale"`
	GateMappings string `json:"gate_mappings"`
	SpecialGates string `json:"special_gates"`
	MarkerLabels string `json:"marker_labels,omitempty"`
	MarkerSyns   string `json:"marker_synonyms,omitempty"`
	CellLabels   string `json:"cell_labels,omitempty"`
	CellSynonyms string `json:"cell_synonyms,omitempty"`
	CellGates    string `json:"cell_gates,omitempty"`
	CellParents  string `json:"cell_parents,omitempty"`
	Excluded     string `json:"excluded_experiments,omitempty"`
}

// BatchConfig names the source columns of the batch input table.
type BatchConfig struct {
	ProjectColumn   string `json:"project_column,omitempty"`
	ReportedColumn  string `json:"reported_column,omitempty"`
	AccessionColumn string `json:"accession_column,omitempty"`
}

// HTTPConfig defines the gateway listener.
type HTTPConfig struct {
	Addr            string   `json:"addr,omitempty"`
	CORSOrigins     []string `json:"cors_origins,omitempty"`
	MaxRequestBytes int64    `json:"max_request_bytes,omitempty"`
}

// Default returns the default configuration. Reference paths have no
// defaults; they must come from the file or flags.
func Default() *Config {
	return &Config{
		Batch: BatchConfig{
			ProjectColumn:   "NAME",
			ReportedColumn:  "POPULATION_DEFNITION_REPORTED",
			AccessionColumn: "EXPERIMENT_ACCESSION",
		},
		HTTP: HTTPConfig{
			Addr:            ":5000",
			MaxRequestBytes: 1 << 20,
		},
	}
}

// Load reads a JSON configuration file, validates the raw document against
// the embedded schema, and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapInvalid(errors.ErrConfigNotFound, "config", "Load",
				fmt.Sprintf("no config file at %s", path))
		}
		return nil, errors.Wrap(err, "config", "Load", "failed to read config file")
	}
	return Parse(data)
}

// Parse validates and decodes a raw JSON configuration document.
func Parse(data []byte) (*Config, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Parse", "failed to decode config JSON")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants the schema cannot express.
func (c *Config) Validate() error {
	for _, required := range []struct {
		name, value string
	}{
		{"reference.value_scale", c.Reference.ValueScale},
		{"reference.gate_mappings", c.Reference.GateMappings},
		{"reference.special_gates", c.Reference.SpecialGates},
	} {
		if required.value == "" {
			return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
				fmt.Sprintf("%s is required", required.name))
		}
	}

	if c.HTTP.Addr == "" {
		return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate",
			"http.addr is required")
	}
	if c.HTTP.MaxRequestBytes < 0 {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Config", "Validate",
			"http.max_request_bytes cannot be negative")
	}
	return nil
}

// Paths converts the reference section into loader paths.
func (c *Config) Paths() reference.Paths {
	return reference.Paths{
		ValueScale:   c.Reference.ValueScale,
		GateMappings: c.Reference.GateMappings,
		SpecialGates: c.Reference.SpecialGates,
		MarkerLabels: c.Reference.MarkerLabels,
		MarkerSyns:   c.Reference.MarkerSyns,
		CellLabels:   c.Reference.CellLabels,
		CellSynonyms: c.Reference.CellSynonyms,
		CellGates:    c.Reference.CellGates,
		CellParents:  c.Reference.CellParents,
	}
}

// Columns converts the batch section into source column names.
func (c *Config) Columns() batch.Columns {
	return batch.Columns{
		Project:   c.Batch.ProjectColumn,
		Reported:  c.Batch.ReportedColumn,
		Accession: c.Batch.AccessionColumn,
	}
}
