package config

import (
	"fmt"

	"github.com/Cyclone1070/chdbatch/internal/disc"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
// ChdmanPath is deliberately not required here: a command-line flag may
// still supply it after loading.
func (c *Config) Validate() error {
	var errs []string

	if c.Tool.TimeoutSeconds < 0 {
		errs = append(errs, "tool.timeout_seconds must be >= 0")
	}
	if c.Tool.MaxOutputBytes < 1 {
		errs = append(errs, "tool.max_output_bytes must be >= 1")
	}
	if c.Tool.GracefulShutdownMs < 1 {
		errs = append(errs, "tool.graceful_shutdown_ms must be >= 1")
	}

	if _, err := disc.ParseAutoPolicy(c.Compress.AutoPolicy); err != nil {
		errs = append(errs, `compress.auto_policy must be "extension" or "size"`)
	}
	if c.Compress.CDThresholdBytes < 1 {
		errs = append(errs, "compress.cd_threshold_bytes must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
