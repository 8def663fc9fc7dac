package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix marks environment variables read into the config.
	// NLP_SERVER_PORT maps to server.port.
	EnvPrefix = "NLP_"

	// DefaultConfigFile is looked up in the working directory when no
	// explicit file is given.
	DefaultConfigFile = "gonlp.yaml"
)

// sections are the nested config blocks; an env var whose first segment
// names one of them is split into "<section>.<rest>".
var sections = map[string]bool{"server": true, "log": true, "batch": true}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"log-level":  "log.level",
	"log-format": "log.format",
	"namespace":  "namespace",
}

// Load builds a Config.
// Precedence (highest to lowest): flags > NLP_ env > EXECUTOR_ env > file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	source, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", source, err)
		}
	}

	// 3. Executor variables understood by existing deployments:
	// EXECUTOR_HOST, EXECUTOR_PORT.
	if err := k.Load(env.Provider("EXECUTOR_", ".", func(s string) string {
		switch s {
		case "EXECUTOR_HOST":
			return "server.host"
		case "EXECUTOR_PORT":
			return "server.port"
		}
		return ""
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load executor env vars: %w", err)
	}

	// 4. NLP_ variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 5. Explicitly set flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey transforms NLP_SERVER_READ_TIMEOUT into server.read_timeout and
// NLP_NAMESPACE into namespace.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && sections[section] {
		return section + "." + rest
	}
	return key
}

// findConfigFile returns the file to load. An explicit path must exist;
// otherwise DefaultConfigFile is used when present.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}
	return "", nil
}

func defaultsMap() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		"namespace":               d.Namespace,
		"server.host":             d.Server.Host,
		"server.port":             d.Server.Port,
		"server.read_timeout":     d.Server.ReadTimeout.String(),
		"server.write_timeout":    d.Server.WriteTimeout.String(),
		"server.idle_timeout":     d.Server.IdleTimeout.String(),
		"server.shutdown_timeout": d.Server.ShutdownTimeout.String(),
		"server.max_body_bytes":   d.Server.MaxBodyBytes,
		"log.level":               d.Log.Level,
		"log.format":              d.Log.Format,
		"batch.max_items":         d.Batch.MaxItems,
		"batch.max_concurrency":   d.Batch.MaxConcurrency,
	}
}
