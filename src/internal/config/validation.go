// FILE: src/internal/config/validation.go
package config

import "fmt"

// validate is the centralized validator for the entire configuration.
func (c *Config) validate() error {
	if err := validateLogConfig(&c.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Server.ReceiveTimeoutSeconds < 1 {
		return fmt.Errorf("receive timeout must be at least 1 second, got %d", c.Server.ReceiveTimeoutSeconds)
	}

	if c.Admin.Enabled {
		if c.Admin.Port < 1 || c.Admin.Port > 65535 {
			return fmt.Errorf("admin port out of range: %d", c.Admin.Port)
		}
		if c.Admin.Port == c.Server.Port {
			return fmt.Errorf("admin port %d conflicts with server port", c.Admin.Port)
		}
		if err := validatePath(c.Admin.StatusPath, "status_path"); err != nil {
			return err
		}
		if err := validatePath(c.Admin.HealthPath, "health_path"); err != nil {
			return err
		}
		if c.Admin.StatusPath == c.Admin.HealthPath {
			return fmt.Errorf("admin status_path and health_path must differ")
		}
	}

	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	return nil
}

func validatePath(path, name string) error {
	if path == "" || path[0] != '/' {
		return fmt.Errorf("admin %s must start with '/': %q", name, path)
	}
	return nil
}
