package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"brainball/api/internal/common/fsutil"
)

// Config holds runtime parameters for the gateway.
// Zero values mean "unspecified" and are filled in by Default before the
// file and environment overlays run.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	// BackendAddr is the word2animal gRPC address.
	BackendAddr string `json:"backend_addr" yaml:"backend_addr" toml:"backend_addr"`
	// RequestDeadline bounds one inference request end to end, including any
	// reconnect the handler performs.
	RequestDeadline Duration `json:"request_deadline" yaml:"request_deadline" toml:"request_deadline"`
	// LogLevel is a zerolog level name (debug, info, warn, error) or "off".
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
	// MaxBodyBytes caps inbound JSON bodies.
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	// CORSOrigins enables CORS for the listed origins when non-empty.
	CORSOrigins []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
	// NATSURL enables NATS event publishing when non-empty.
	NATSURL string `json:"nats_url" yaml:"nats_url" toml:"nats_url"`
	// EventsSubject is the NATS subject for request outcome events.
	EventsSubject string `json:"events_subject" yaml:"events_subject" toml:"events_subject"`
}

// Default returns the built-in configuration: the conventional local ports
// for the gateway and the word2animal service, and the 2 second per-request
// budget.
func Default() Config {
	return Config{
		Addr:            ":8080",
		BackendAddr:     "localhost:50051",
		RequestDeadline: Duration(2 * time.Second),
		LogLevel:        "info",
		MaxBodyBytes:    1 << 20,
		EventsSubject:   "brainball.gateway.inference",
	}
}

// Load builds the effective configuration: defaults, then the optional file
// at path, then environment variables. Later layers win.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.merge(fileCfg)
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading '~' is expanded.
func LoadFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	path, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// merge overlays non-zero fields of other onto c.
func (c *Config) merge(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.BackendAddr != "" {
		c.BackendAddr = other.BackendAddr
	}
	if other.RequestDeadline != 0 {
		c.RequestDeadline = other.RequestDeadline
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.MaxBodyBytes != 0 {
		c.MaxBodyBytes = other.MaxBodyBytes
	}
	if len(other.CORSOrigins) != 0 {
		c.CORSOrigins = other.CORSOrigins
	}
	if other.NATSURL != "" {
		c.NATSURL = other.NATSURL
	}
	if other.EventsSubject != "" {
		c.EventsSubject = other.EventsSubject
	}
}

// applyEnv overlays recognized environment variables onto c.
func (c *Config) applyEnv() {
	c.Addr = getEnv("HTTP_ADDR", c.Addr)
	c.BackendAddr = getEnv("WORD2ANIMAL_GRPC_ADDR", c.BackendAddr)
	c.RequestDeadline = Duration(getEnvDuration("REQUEST_DEADLINE", time.Duration(c.RequestDeadline)))
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.MaxBodyBytes = getEnvInt64("MAX_BODY_BYTES", c.MaxBodyBytes)
	c.CORSOrigins = getEnvList("CORS_ORIGINS", c.CORSOrigins)
	c.NATSURL = getEnv("NATS_URL", c.NATSURL)
	c.EventsSubject = getEnv("EVENTS_SUBJECT", c.EventsSubject)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
