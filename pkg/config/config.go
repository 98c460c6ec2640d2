package config

import (
	"errors"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/xisnul/pkg/debounce"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Dataset is a JSON or YAML file; empty selects the bundled collection.
	Dataset string `json:"dataset"`
	// Strict turns dataset validation problems into a startup error.
	Strict bool `json:"strict"`
	// Persist keeps favorites, bookmarks, recent and fonts between runs.
	Persist bool `json:"persist"`
	// Path is the preference store directory.
	Path string `json:"path"`
	// Profile is auto, small or regular.
	Profile  string        `json:"profile"`
	Debounce time.Duration `json:"debounce"`
	Splash   time.Duration `json:"splash"`
	LogFile  string        `json:"logFile"`
	Verbose  bool          `json:"verbose"`
}

// BasePath satisfies store.Config.
func (c *Config) BasePath() string {
	return c.Path
}

// Load reads .xisnul.yaml from $XISNUL_CONFIG_PATH, the working directory or
// the home directory, overlaid with XISNUL_* environment variables. A missing
// file is not an error.
func Load() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("dataset", "")
	v.SetDefault("strict", false)
	v.SetDefault("persist", false)
	v.SetDefault("path", "~/.xisnul")
	v.SetDefault("profile", "auto")
	v.SetDefault("debounce", debounce.DefaultDelay)
	v.SetDefault("splash", 1500*time.Millisecond)
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", false)

	v.SetConfigName(".xisnul") // .yaml is implicit
	v.SetEnvPrefix("XISNUL")
	v.AutomaticEnv()

	if override := os.Getenv("XISNUL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Dataset:  v.GetString("dataset"),
		Strict:   v.GetBool("strict"),
		Persist:  v.GetBool("persist"),
		Path:     path,
		Profile:  v.GetString("profile"),
		Debounce: v.GetDuration("debounce"),
		Splash:   v.GetDuration("splash"),
		LogFile:  v.GetString("log_file"),
		Verbose:  v.GetBool("verbose"),
	}, nil
}
