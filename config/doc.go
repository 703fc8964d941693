// Package config loads and validates the application configuration.
//
// Configuration is a single JSON document with three sections: reference
// (paths of the reference-table files), batch (source column names for the
// batch path), and http (gateway listener settings). Load merges the
// document over built-in defaults after checking it against an embedded
// JSON Schema, then enforces the invariants the schema cannot express
// (required reference tables, a listen address).
//
// Command-line flags and HIPC_GATES_* environment variables may override
// individual settings after loading; that wiring lives in the command.
package config
