package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// Backend selects the clipboard system: auto, native, portable,
	// command or none.
	Backend      string   `mapstructure:"backend"`
	CopyCommand  []string `mapstructure:"copy_command"`
	PasteCommand []string `mapstructure:"paste_command"`
	// Print also writes the translated text to stdout.
	Print     bool   `mapstructure:"print"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

func Default() *Config {
	return &Config{
		Backend:   "auto",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"backend":    "backend",
	"print":      "print",
	"log_level":  "log-level",
	"log_format": "log-format",
}

// Load reads cfgFile, or transunico.yaml from the user config directory or
// the working directory when cfgFile is empty. TRANSUNICO_* environment
// variables override the file and flags that were set override both.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	v := viper.New()

	v.SetDefault("backend", cfg.Backend)
	v.SetDefault("print", cfg.Print)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("transunico")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TRANSUNICO")
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"copy_command", "paste_command"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "transunico")
}
