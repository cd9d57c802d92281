package main

import (
	"context"
	"fmt"
	"github.com/gostonefire/primehashmap"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/logger"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const envPrefix = "PRIMEHASHMAP_"

// configKeys are the keys that can be set from a config file, the environment and flags alike
var configKeys = []string{"technique", "capacity", "hash", "log-level"}

// configNames are looked for in the working directory when no --config is given
var configNames = []string{"primehashmap.yaml", "primehashmap.yml", "primehashmap.json"}

// Config represents the configuration of the hash map the commands build
type Config struct {
	Technique string `koanf:"technique"`
	Capacity  int    `koanf:"capacity"`
	Hash      string `koanf:"hash"`
	LogLevel  string `koanf:"log-level"`
}

func defaultConfig() Config {
	return Config{
		Technique: "chaining",
		Capacity:  11,
		Hash:      "sum",
		LogLevel:  "info",
	}
}

// loadConfig loads configuration from multiple sources in priority order:
// 1. Config file given by path, or found in the working directory (lowest priority)
// 2. Environment variables with PRIMEHASHMAP_ prefix
// 3. flags, only keys present in the map are applied (highest priority)
func loadConfig(path string, flags map[string]any) (Config, error) {
	k := koanf.New(".")

	if path == "" {
		for _, name := range configNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
	}

	if path != "" {
		if err := loadConfigFromPath(k, path); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := loadEnvironmentVariables(k); err != nil {
		return Config{}, fmt.Errorf("error loading environment variables: %w", err)
	}

	for key, value := range flags {
		if err := k.Set(key, value); err != nil {
			return Config{}, fmt.Errorf("error applying flag %s: %w", key, err)
		}
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// loadConfigFromPath loads a YAML or JSON config file, picking the parser by extension
func loadConfigFromPath(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch filepath.Ext(path) {
	case ".json":
		parser = json.Parser()
	default:
		parser = yaml.Parser()
	}

	return k.Load(file.Provider(path), parser)
}

// loadEnvironmentVariables loads environment variables with PRIMEHASHMAP_ prefix,
// PRIMEHASHMAP_LOG_LEVEL becomes log-level
func loadEnvironmentVariables(k *koanf.Koanf) error {
	return k.Load(env.ProviderWithValue(envPrefix, "", func(key, value string) (string, interface{}) {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, envPrefix), "_", "-")), value
	}), nil)
}

// flagValues returns the values of the config flags that were set on the command line
func flagValues(cmd *cli.Command) map[string]any {
	flags := make(map[string]any)
	for _, key := range configKeys {
		if !cmd.IsSet(key) {
			continue
		}
		if key == "capacity" {
			flags[key] = cmd.Int(key)
		} else {
			flags[key] = cmd.String(key)
		}
	}

	return flags
}

// technique maps a configured technique name to its crt identifier
func technique(name string) (int, error) {
	switch strings.ToLower(name) {
	case "quadratic", "quadratic-probing", "qp":
		return crt.QuadraticProbing, nil
	case "chaining", "separate-chaining", "sc":
		return crt.SeparateChaining, nil
	default:
		return 0, fmt.Errorf("unknown technique %q, use quadratic or chaining", name)
	}
}

// hashMapConf turns the configuration into a primehashmap.Conf
func (c Config) hashMapConf(log *slog.Logger) (primehashmap.Conf, error) {
	t, err := technique(c.Technique)
	if err != nil {
		return primehashmap.Conf{}, err
	}

	hf, ok := hashfunc.ByName(c.Hash)
	if !ok {
		return primehashmap.Conf{}, fmt.Errorf("unknown hash function %q, use sum, weighted, crc32 or xxhash", c.Hash)
	}

	return primehashmap.Conf{
		CollisionResolutionTechnique: t,
		Capacity:                     c.Capacity,
		HashFunction:                 hf,
		Logger:                       log,
	}, nil
}

// setup loads the configuration for cmd and returns ctx carrying a logger configured from it
func setup(ctx context.Context, cmd *cli.Command) (context.Context, Config, error) {
	cfg, err := loadConfig(cmd.String("config"), flagValues(cmd))
	if err != nil {
		return ctx, Config{}, err
	}

	opts := []logger.LoggerOpt{
		logger.WithLoggerLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithLoggerWriter(stderr(cmd)),
	}
	if cmd.Bool("json") {
		opts = append(opts, logger.WithHandler(logger.JSONHandler))
	}

	return logger.WithLogger(ctx, logger.New(opts...)), cfg, nil
}

// newWordMap creates a hash map from the configuration of cmd and puts every word with its position
func newWordMap(ctx context.Context, cmd *cli.Command, words []string) (*primehashmap.HashMap[int], error) {
	ctx, cfg, err := setup(ctx, cmd)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	conf, err := cfg.hashMapConf(log)
	if err != nil {
		return nil, err
	}

	hm, err := primehashmap.NewHashMap[int](conf)
	if err != nil {
		return nil, err
	}

	for i, word := range words {
		hm.Put(word, i)
	}

	log.Debug("built word map",
		"technique", crt.Name(conf.CollisionResolutionTechnique),
		"words", len(words),
		"size", hm.Size(),
		"capacity", hm.Capacity(),
	)

	return hm, nil
}
