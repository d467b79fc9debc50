package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "menusys.yaml"

// EnvPrefix prefixes environment overrides, e.g. MENUSYS_STORE_KIND.
const EnvPrefix = "MENUSYS_"

// Store kinds.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config is the CLI configuration.
type Config struct {
	Format    string       `mapstructure:"format"`
	Strict    bool         `mapstructure:"strict"`
	Debug     bool         `mapstructure:"debug"`
	LogFormat string       `mapstructure:"log_format"`
	Store     StoreConfig  `mapstructure:"store"`
	Server    ServerConfig `mapstructure:"server"`
}

// StoreConfig selects and configures the document store.
type StoreConfig struct {
	Kind          string        `mapstructure:"kind"`
	Path          string        `mapstructure:"path"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	Prefix        string        `mapstructure:"prefix"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// ServerConfig configures `menusys serve`.
type ServerConfig struct {
	Addr    string `mapstructure:"addr"`
	Metrics bool   `mapstructure:"metrics"`
}

// keys lists every setting that can be overridden from the environment.
var keys = []string{
	"format", "strict", "debug", "log_format",
	"store.kind", "store.path", "store.redis_addr", "store.redis_password",
	"store.redis_db", "store.prefix", "store.ttl",
	"server.addr", "server.metrics",
}

func defaults() map[string]any {
	return map[string]any{
		"format":     "",
		"log_format": "text",
		"store": map[string]any{
			"kind":       StoreFile,
			"path":       ".menusys/menus",
			"redis_addr": "localhost:6379",
			"prefix":     "menusys:menu:",
		},
		"server": map[string]any{
			"addr":    ":8080",
			"metrics": true,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// MENUSYS_* environment variables, in increasing precedence.
// An empty path reads DefaultFile when it exists.
func Load(path string) (*Config, error) {
	settings := defaults()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
		var fromFile map[string]any
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", file, err)
		}
		merge(settings, fromFile)
	}

	merge(settings, fromEnv(os.LookupEnv))

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return fmt.Errorf("invalid store kind %q", c.Store.Kind)
	}
	switch strings.ToLower(c.Format) {
	case "", "auto", "xml", "yaml", "yml":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.Store.Kind == StoreRedis && c.Store.RedisAddr == "" {
		return errors.New("store.redis_addr is required for the redis store")
	}
	return nil
}

func fromEnv(lookup func(string) (string, bool)) map[string]any {
	out := make(map[string]any)
	for _, key := range keys {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		val, ok := lookup(name)
		if !ok {
			continue
		}
		parts := strings.Split(key, ".")
		node := out
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[p] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = val
	}
	return out
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
