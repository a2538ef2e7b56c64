package config

import (
	"strings"

	"github.com/jxsl13/attr-diff/ignore"
	"github.com/jxsl13/attr-diff/model"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"
)

const EnvPrefix = "ATTRDIFF_"

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

type Config struct {
	Left  string `koanf:"left"`
	Right string `koanf:"right"`

	Reverse     bool     `koanf:"reverse" short:"R" description:"also report entries of the right tree that are missing in the left tree"`
	Ignore      string   `koanf:"ignore" short:"I" flag:"once" description:"skip paths containing this substring (may be given once)"`
	Exclude     []string `koanf:"exclude" short:"e" description:"skip paths matching this doublestar glob (repeatable)"`
	MaxDepth    int      `koanf:"max-depth" short:"l" description:"maximum recursion depth, 0 means unlimited"`
	SpecialBits bool     `koanf:"special-bits" short:"s" description:"also compare setuid, setgid and sticky bits"`
	Format      string   `koanf:"format" short:"f" description:"output format: text or yaml"`
	NoColor     bool     `koanf:"no-color" description:"disable colored output"`
	Summary     bool     `koanf:"summary" description:"print a summary table after the report"`
	NoArchives  bool     `koanf:"no-archives" description:"treat archive files as plain files instead of trees"`
	Verbose     int      `koanf:"verbose" short:"v" flag:"count" description:"log the walk to stderr, repeat for more detail"`

	Filter *ignore.Filter `koanf:"-"`
}

func Default() Config {
	return Config{
		Format: FormatText,
	}
}

// Validate checks the values and derives Filter.
func (c *Config) Validate() error {
	if c.Left == "" || c.Right == "" {
		return model.NewConfigError("both a left and a right root are required")
	}

	if c.MaxDepth < 0 {
		return model.NewConfigError("max-depth must not be negative: %d", c.MaxDepth)
	}

	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return model.NewConfigError("unknown output format %q: expected %s or %s", c.Format, FormatText, FormatYAML)
	}

	f, err := ignore.New(c.Ignore, c.Exclude...)
	if err != nil {
		return model.NewConfigError("%v", err)
	}
	c.Filter = f

	return nil
}

// Load merges defaults, ATTRDIFF_* environment variables, flags and the
// positional root arguments, in this order of precedence.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errors.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Errorf("failed to load environment: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return nil, errors.Errorf("failed to load flags: %w", err)
		}
	}

	positional := make(map[string]interface{}, 2)
	if len(args) > 0 {
		positional["left"] = args[0]
	}
	if len(args) > 1 {
		positional["right"] = args[1]
	}
	if err := k.Load(confmap.Provider(positional, "."), nil); err != nil {
		return nil, errors.Errorf("failed to load arguments: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps ATTRDIFF_MAX_DEPTH to max-depth.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
}
