package netdata

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all adapter configuration. Immutable after Init.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	MCPPort string
}

// HasAuth returns true if an API key is configured.
func (c Config) HasAuth() bool {
	return c.APIKey != ""
}

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	MCPPort string `yaml:"mcp_port"`
	Timeout int    `yaml:"timeout"`
}

// Init loads config from an optional YAML file and environment variables.
// Environment variables win over file values.
func Init() Config {
	cfg := Config{
		BaseURL: "http://localhost:19999",
		Timeout: 30 * time.Second,
		MCPPort: "8765",
	}

	if path := env("NETDATA_CONFIG", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "netdata-mcp: config file %s: %v\n", path, err)
		}
	}

	cfg.BaseURL = env("NETDATA_URL", cfg.BaseURL)
	cfg.APIKey = env("NETDATA_API_KEY", cfg.APIKey)
	cfg.MCPPort = env("NETDATA_MCP_PORT", cfg.MCPPort)
	cfg.Timeout = envDuration("NETDATA_TIMEOUT", cfg.Timeout)
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.APIKey != "" {
		c.APIKey = fc.APIKey
	}
	if fc.MCPPort != "" {
		c.MCPPort = fc.MCPPort
	}
	if fc.Timeout > 0 {
		c.Timeout = time.Duration(fc.Timeout) * time.Second
	}
	return nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDuration parses seconds from env.
func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
