// Package config resolves CLI and server settings from flags, environment
// variables, an optional budget-tool.yaml and a local .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BUDGET_TOOL"
	FileName  = "budget-tool"

	KeyOut            = "out"
	KeyFormat         = "format"
	KeyLogLevel       = "log.level"
	KeyLogDevelopment = "log.development"
	KeyServeAddr      = "serve.addr"
)

type Config struct {
	Out            string
	Format         string
	LogLevel       string
	LogDevelopment bool
	ServeAddr      string
}

// Load reads configuration into v. An explicit file must exist; otherwise
// budget-tool.yaml is looked up in the working directory and is optional.
// Keys map to env vars as BUDGET_TOOL_LOG_LEVEL and so on.
func Load(v *viper.Viper, file string) (Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Out:            v.GetString(KeyOut),
		Format:         v.GetString(KeyFormat),
		LogLevel:       v.GetString(KeyLogLevel),
		LogDevelopment: v.GetBool(KeyLogDevelopment),
		ServeAddr:      v.GetString(KeyServeAddr),
	}
	return cfg, cfg.Validate()
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOut, "")
	v.SetDefault(KeyFormat, "md,json")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyServeAddr, "127.0.0.1:8080")
}

func (c Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Format) == "" {
		errs = append(errs, "format is required")
	}
	if strings.TrimSpace(c.ServeAddr) == "" {
		errs = append(errs, "serve.addr is required")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Values already present in the environment win over the .env file.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
