package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/avatar"
	"github.com/gogpu/avatar/palette"
	"github.com/gogpu/avatar/theme"
)

// envPrefix prefixes environment variables, e.g. AVATARGEN_SIZE or
// AVATARGEN_LOG_LEVEL.
const envPrefix = "AVATARGEN"

// Config is the avatargen configuration, assembled from defaults, an
// optional config file, AVATARGEN_* environment variables and flags (in
// increasing precedence).
type Config struct {
	// Theme is the theme to render with.
	Theme string `mapstructure:"theme" json:"theme" toml:"theme"`
	// Size is the avatar edge length in pixels.
	Size int `mapstructure:"size" json:"size" toml:"size"`
	// Scale upscales the rendered avatar by an integer factor without
	// smoothing, which keeps pixel-art themes crisp.
	Scale int `mapstructure:"scale" json:"scale" toml:"scale"`
	// Workers is the batch concurrency; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers" json:"workers" toml:"workers"`
	// Normalize canonicalizes identifiers before hashing.
	Normalize bool `mapstructure:"normalize" json:"normalize" toml:"normalize"`
	// Log configures logging.
	Log LogConfig `mapstructure:"log" json:"log" toml:"log"`
	// Colors configures the palettes.
	Colors palette.Options `mapstructure:"colors" json:"colors" toml:"colors"`
	// Params are theme parameters by name, see avatar.WithParams.
	Params map[string]any `mapstructure:"params" json:"params" toml:"params"`
}

// LogConfig configures the text logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error or none.
	Level string `mapstructure:"level" json:"level" toml:"level"`
}

var defaults = map[string]any{
	"theme":     "digidoodle",
	"size":      128,
	"scale":     1,
	"workers":   0,
	"normalize": false,
	"log.level": "warn",
}

// boundFlags are the flags that override configuration keys of the same name.
var boundFlags = []string{"theme", "size", "scale", "workers", "normalize", "log.level"}

func defineRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("theme", "t", "digidoodle", "theme to render with")
	cmd.Flags().IntP("size", "s", 128, "avatar size in pixels")
	cmd.Flags().IntP("scale", "", 1, "integer upscaling factor applied after rendering")
	cmd.Flags().BoolP("normalize", "", false, "normalize identifiers (trim, NFC, case fold) before hashing")
	cmd.Flags().StringArrayP("param", "p", nil, "theme parameter as key=value, may be repeated")
}

// loadConfig reads the configuration for cmd. A missing config file is not
// an error.
func loadConfig(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		palette.DecodeHook(),
		theme.ParamDecodeHook(),
		mapstructure.TextUnmarshallerHookFunc(),
	)))

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, flag := range boundFlags {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(flag, f)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound *os.PathError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
			avatar.Logger().Warn("config file not found", "path", configFile)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cmd != nil {
		if f := cmd.Flags().Lookup("param"); f != nil {
			values, err := cmd.Flags().GetStringArray("param")
			if err != nil {
				return Config{}, err
			}
			params, err := parseParams(values)
			if err != nil {
				return Config{}, err
			}
			if conf.Params == nil {
				conf.Params = make(map[string]any, len(params))
			}
			for k, val := range params {
				conf.Params[k] = val
			}
		}
	}
	return conf, nil
}

// Validate checks the fields Generate does not check itself.
func (c Config) Validate() error {
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if !slices.Contains(avatar.Themes(), c.Theme) {
		return fmt.Errorf("%w: %q (available: %s)", avatar.ErrUnknownTheme, c.Theme, strings.Join(avatar.Themes(), ", "))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Options returns the Generate options the configuration describes.
func (c Config) Options() []avatar.Option {
	var opts []avatar.Option
	if !colorsUnset(c.Colors) {
		opts = append(opts, avatar.WithColors(c.Colors))
	}
	if len(c.Params) > 0 {
		opts = append(opts, avatar.WithParams(c.Params))
	}
	if c.Normalize {
		opts = append(opts, avatar.WithNormalizedID())
	}
	return opts
}

func colorsUnset(o palette.Options) bool {
	return o.Background.IsZero() && o.Foreground.IsZero() && !o.Discrete && o.Interpolate == nil &&
		o.HueVariation == 0 && o.SaturationVariation == 0 && o.LightnessVariation == 0
}

// parseParams turns key=value pairs into a parameter map. Values stay
// strings; the theme decoder converts them.
func parseParams(values []string) (map[string]any, error) {
	params := make(map[string]any, len(values))
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed parameter %q, want key=value", kv)
		}
		params[key] = strings.TrimSpace(value)
	}
	return params, nil
}

// levelNone disables logging.
const levelNone = slog.Level(100)

func parseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "none") {
		return levelNone, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// setupLogging installs a text logger on stderr as the avatar logger.
func setupLogging(level string) error {
	l, err := parseLevel(level)
	if err != nil {
		return err
	}
	if l == levelNone {
		avatar.SetLogger(nil)
		return nil
	}
	avatar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
