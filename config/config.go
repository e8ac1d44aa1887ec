package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "QRTABLE"

type Config struct {
	Format   string
	Wrap     bool
	Debug    bool
	TimeZone string
	// File is the config file that was read, empty if none.
	File string
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("qrtable", pflag.ContinueOnError)
	fs.String("format", "brackets", "output format: brackets, full or yaml")
	fs.Bool("wrap", false, "enclose the output in an outer pair of brackets")
	fs.Bool("debug", false, "enable debug logging")
	fs.String("timezone", "", "time zone of log timestamps")
	fs.String("config", "", "path to a YAML config file (default ./qrtable.yaml if present)")
	return fs
}

// Get resolves the configuration from flags, environment, an optional
// config file and defaults, in that order of precedence.
func Get(args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("output.format", "brackets")
	v.SetDefault("output.wrap", false)
	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.timezone", "")

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	bindings := map[string]string{
		"output.format":     "format",
		"output.wrap":       "wrap",
		"settings.debug":    "debug",
		"settings.timezone": "timezone",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, _ := fs.GetString("config")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("qrtable")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return &Config{
		Format:   v.GetString("output.format"),
		Wrap:     v.GetBool("output.wrap"),
		Debug:    v.GetBool("settings.debug"),
		TimeZone: v.GetString("settings.timezone"),
		File:     v.ConfigFileUsed(),
	}, nil
}
