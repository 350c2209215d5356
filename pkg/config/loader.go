package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/icons"
	"github.com/arthur-debert/fileicons/pkg/logging"
	"github.com/arthur-debert/fileicons/pkg/ui"
)

// EnvPrefix marks the environment variables read as configuration
const EnvPrefix = "FILEICONS_"

// configNames are tried in order under $XDG_CONFIG_HOME and $XDG_CONFIG_DIRS
var configNames = []string{
	"fileicons/config.toml",
	"fileicons/config.yaml",
	"fileicons/config.yml",
}

// LoadOptions selects the sources layered over the embedded defaults
type LoadOptions struct {
	// ConfigPath is an explicit config file. It must exist when set.
	ConfigPath string
	// Overrides are dotted keys, such as "classify.color_mode", set from
	// command line flags
	Overrides map[string]interface{}
}

// Load builds the effective configuration. Sources are applied in order,
// later ones winning: embedded defaults, the config file, FILEICONS_
// environment variables, then opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. Config file
	path, err := resolveConfigPath(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
		logger.Debug().Int("count", len(opts.Overrides)).Msg("Applied flag overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToColorModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcessConfig(&cfg)
	return &cfg, nil
}

// envKey maps FILEICONS_CLASSIFY_COLOR_MODE to classify.color_mode. Only
// the first underscore separates the section; keys keep theirs.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// resolveConfigPath returns the config file to load, or "" when there is none
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	for _, name := range configNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// UserConfigPath is where a new user config file belongs
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, configNames[0])
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func stringToColorModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(icons.ColorMode("")) {
			return data, nil
		}
		return icons.ParseColorMode(reflect.ValueOf(data).String()), nil
	}
}

// postProcessConfig replaces values that cannot be used with defaults.
// Bad values are never fatal.
func postProcessConfig(cfg *Config) {
	logger := logging.GetLogger("config")

	if _, err := ui.ParseFormat(cfg.Output.Format); err != nil {
		logger.Warn().Str("format", cfg.Output.Format).Msg("Unknown output format, using auto")
		cfg.Output.Format = ui.FormatAuto.String()
	}

	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Output.Styles = expandHome(cfg.Output.Styles)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}
