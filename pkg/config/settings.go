package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/netscript/gencisco/pkg/errors"
	"github.com/netscript/gencisco/pkg/logging"
	"github.com/netscript/gencisco/pkg/profiles"
)

const envPrefix = "GENCISCO_"

// userConfigFiles are searched, in order, under the XDG config directories.
var userConfigFiles = []string{"gencisco/config.toml", "gencisco/config.yaml", "gencisco/config.yml"}

// Header controls the decorative section banner.
type Header struct {
	Delimiter string `koanf:"delimiter"`
	Width     int    `koanf:"width"`
}

// Output controls the assembled script.
type Output struct {
	Separator string `koanf:"separator"`
	Extension string `koanf:"extension"`
}

// Templates locates the template tree.
type Templates struct {
	// Dir overrides the embedded templates when set.
	Dir string `koanf:"dir"`
}

// Settings is the fully merged tool configuration.
type Settings struct {
	Header    Header                      `koanf:"header"`
	Output    Output                      `koanf:"output"`
	Templates Templates                   `koanf:"templates"`
	Profiles  map[string]profiles.Profile `koanf:"profiles"`
}

// ProfileSet validates the profile tables and returns them as a set.
func (s *Settings) ProfileSet() (*profiles.Set, error) {
	return profiles.NewSet(s.Profiles)
}

// LoadOptions selects the optional layers.
type LoadOptions struct {
	// ConfigFile replaces the XDG lookup when set.
	ConfigFile string
	// SkipUserConfig ignores the XDG user file (tests, reproducible runs).
	SkipUserConfig bool
	// Overrides are applied last, keyed by dotted path ("templates.dir").
	Overrides map[string]interface{}
}

// Load merges all layers into Settings.
func Load(opts LoadOptions) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: profilesConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load device profiles")
	}

	// 2. User file
	userFile := opts.ConfigFile
	if userFile == "" && !opts.SkipUserConfig {
		userFile = findUserConfig()
	}
	if userFile != "" {
		if err := k.Load(file.Provider(userFile), parserFor(userFile)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "failed to load settings from %s", userFile)
		}
		logger.Debug().Str("path", userFile).Msg("Loaded user settings")
	}

	// 3. Environment
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to load environment")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to apply overrides")
		}
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "failed to unmarshal settings")
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("profiles", len(settings.Profiles)).
		Str("templates", settings.Templates.Dir).
		Msg("Settings loaded")

	return &settings, nil
}

func (s *Settings) validate() error {
	if s.Header.Delimiter == "" {
		return errors.New(errors.ErrSettingsLoad, "header.delimiter cannot be empty")
	}
	if s.Header.Width <= 0 {
		return errors.Newf(errors.ErrSettingsLoad, "header.width must be positive, got %d", s.Header.Width)
	}
	if !strings.HasPrefix(s.Output.Extension, ".") {
		return errors.Newf(errors.ErrSettingsLoad, "output.extension must start with a dot, got %q", s.Output.Extension)
	}
	return nil
}

func findUserConfig() string {
	for _, rel := range userConfigFiles {
		if path, err := xdg.SearchConfigFile(rel); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
