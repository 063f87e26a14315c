package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for chronotrack, stored in
// ~/.chronotrack/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Insight InsightConfig `json:"insight"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is "file" (one JSON document per key) or "sqlite".
	Backend string `json:"backend"`
	// Path is the data directory for the file backend, or the database file
	// for the sqlite backend. Empty = default under ~/.chronotrack.
	Path string `json:"path"`
}

// InsightConfig holds settings for the AI insight service.
type InsightConfig struct {
	// Model is the Gemini model used for productivity insights.
	Model string `json:"model"`
	// TimeoutSeconds bounds each insight request.
	TimeoutSeconds int `json:"timeout_seconds"`
}

const (
	// DefaultBackend stores documents as JSON files.
	DefaultBackend = "file"
	// DefaultModel is the insight model used when none is configured.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTimeoutSeconds bounds an insight request.
	DefaultTimeoutSeconds = 30
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Backend: DefaultBackend,
			Path:    "",
		},
		Insight: InsightConfig{
			Model:          DefaultModel,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// chronotrack configuration – ~/.chronotrack/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise chronotrack behaviour.
{
  // ── Persistence ──────────────────────────────────────────────────────────
  "storage": {
    // Storage backend:
    // • "file"   – one JSON document per key under the data directory (default)
    // • "sqlite" – a single database file with a key/value table
    "backend": "file",

    // Data directory (file backend) or database file (sqlite backend).
    // Leave empty for the default under ~/.chronotrack.
    "path": ""
  },

  // ── AI productivity insights ─────────────────────────────────────────────
  // The API key is read from the GEMINI_API_KEY environment variable
  // (a .env file next to the working directory is also honoured).
  "insight": {
    // Gemini model used for the analysis request.
    "model": "gemini-2.5-flash",

    // Per-request timeout in seconds. The request always resolves: on
    // timeout or failure a fixed fallback insight is shown instead.
    "timeout_seconds": 30
  }
}
`

// configFilePath returns the path to ~/.chronotrack/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".chronotrack", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.chronotrack/config.json, creating it with annotated defaults
// on first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}
	if cfg.Insight.Model == "" {
		cfg.Insight.Model = DefaultModel
	}
	if cfg.Insight.TimeoutSeconds <= 0 {
		cfg.Insight.TimeoutSeconds = DefaultTimeoutSeconds
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
