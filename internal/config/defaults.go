package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Tool     ToolConfig     `json:"tool"`
	Compress CompressConfig `json:"compress"`
	Batch    BatchConfig    `json:"batch"`
}

type ToolConfig struct {
	// ChdmanPath is the explicit path to the chdman executable. There
	// is no implicit discovery; an empty value must be filled in by a
	// command-line flag before any operation runs.
	ChdmanPath string `json:"chdman_path"`

	// TimeoutSeconds bounds each chdman invocation. 0 means unbounded.
	TimeoutSeconds int `json:"timeout_seconds"` // Default: 0

	// MaxOutputBytes caps captured stdout/stderr per invocation.
	MaxOutputBytes int64 `json:"max_output_bytes"` // Default: 10 * 1024 * 1024 (10MB)

	// GracefulShutdownMs is the SIGINT-to-SIGKILL grace period on timeout.
	GracefulShutdownMs int `json:"graceful_shutdown_ms"` // Default: 2000
}

type CompressConfig struct {
	// AutoPolicy picks the rule resolving format "auto" for plain
	// image files: "extension" (iso is always dvd) or "size"
	// (dvd at or above CDThresholdBytes, cd below).
	AutoPolicy string `json:"auto_policy"` // Default: "extension"

	// CDThresholdBytes is the dvd-vs-cd cutoff under the "size" policy.
	CDThresholdBytes int64 `json:"cd_threshold_bytes"` // Default: 783216000 (one CD)
}

type BatchConfig struct {
	// StrictAbort stops a directory batch at the first per-file
	// validation or inference error. When false the error is recorded
	// in the batch report and siblings keep processing.
	StrictAbort bool `json:"strict_abort"` // Default: true

	// Progress enables the progress bar over directory batches.
	Progress bool `json:"progress"` // Default: true
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tool: ToolConfig{
			TimeoutSeconds:     0,
			MaxOutputBytes:     10 * 1024 * 1024,
			GracefulShutdownMs: 2000,
		},
		Compress: CompressConfig{
			AutoPolicy:       "extension",
			CDThresholdBytes: 783216000,
		},
		Batch: BatchConfig{
			StrictAbort: true,
			Progress:    true,
		},
	}
}
