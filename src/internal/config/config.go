// FILE: src/internal/config/config.go
package config

// Config is the root configuration for the rulegate service.
type Config struct {
	Quiet bool `toml:"quiet"`

	Logging LogConfig    `toml:"logging"`
	Server  ServerConfig `toml:"server"`
	Admin   AdminConfig  `toml:"admin"`
}

// ServerConfig controls the policy TCP listener.
type ServerConfig struct {
	Port int64 `toml:"port"`

	// Seconds a connection may wait for its request before being
	// closed without a response.
	ReceiveTimeoutSeconds int64 `toml:"receive_timeout_seconds"`

	// Run gnet event loops across all cores
	Multicore bool `toml:"multicore"`
}

// AdminConfig controls the optional HTTP status endpoint.
type AdminConfig struct {
	Enabled    bool   `toml:"enabled"`
	Port       int64  `toml:"port"`
	StatusPath string `toml:"status_path"`
	HealthPath string `toml:"health_path"`
}

// LogConfig controls operational logging (not the wire protocol).
type LogConfig struct {
	Output string `toml:"output"` // file, stdout, stderr, both, none
	Level  string `toml:"level"`  // debug, info, warn, error
	File   string `toml:"file"`
	Dir    string `toml:"dir"`
}

func defaults() *Config {
	return &Config{
		Quiet: false,
		Logging: LogConfig{
			Output: "stderr",
			Level:  "info",
		},
		Server: ServerConfig{
			Port:                  8080,
			ReceiveTimeoutSeconds: 10,
			Multicore:             true,
		},
		Admin: AdminConfig{
			Enabled:    false,
			Port:       9090,
			StatusPath: "/status",
			HealthPath: "/healthz",
		},
	}
}
