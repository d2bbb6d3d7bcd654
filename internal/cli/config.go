package cli

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	dof "github.com/reoring/godof"
)

// configEnv names the variable consulted when --config is not given.
const configEnv = "DOF_CONFIG"

// Config is the optional TOML configuration. Command-line flags take
// precedence over it.
type Config struct {
	Lang     string `toml:"lang"`
	FailFast bool   `toml:"fail_fast"`
	Unknown  string `toml:"unknown"` // "reject" or "strip"
	MaxBytes int64  `toml:"max_bytes"`
	Workers  int    `toml:"workers"`
}

func defaultConfig() Config {
	return Config{Lang: "en", Unknown: "reject", Workers: runtime.NumCPU()}
}

// loadConfig reads path, or $DOF_CONFIG when path is empty. No file means
// the defaults. Keys the file sets override the defaults; unknown keys are
// an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Unknown {
	case "reject", "strip":
	default:
		return fmt.Errorf("config: unknown must be \"reject\" or \"strip\", got %q", c.Unknown)
	}
	if c.MaxBytes < 0 {
		return fmt.Errorf("config: max_bytes must not be negative")
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1")
	}
	return nil
}

// parseOpt projects the configuration onto parse options.
func (c Config) parseOpt() dof.ParseOpt {
	opt := dof.DefaultParseOpt()
	opt.FailFast = c.FailFast
	opt.MaxBytes = c.MaxBytes
	if c.Unknown == "strip" {
		opt.Unknown = dof.UnknownStrip
	}
	return opt
}
