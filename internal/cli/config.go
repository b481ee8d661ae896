package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
)

// EnvPrefix is prepended to every environment override, e.g.
// SDL3GO_LOG_LEVEL or SDL3GO_FORMAT.
const EnvPrefix = "SDL3GO"

// Config is the on-disk CLI configuration. Files may be TOML or YAML.
type Config struct {
	Subsystems    []string          `mapstructure:"subsystems"`
	AppName       string            `mapstructure:"app_name"`
	AppIdentifier string            `mapstructure:"app_identifier"`
	Hints         map[string]string `mapstructure:"hints"`
	Format        string            `mapstructure:"format"`
	Log           LogConfig         `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// Native routes SDL_Log output through the CLI logger.
	Native bool `mapstructure:"native"`
}

// DefaultConfig is used for every key the file and environment leave unset.
var DefaultConfig = Config{
	Subsystems:    []string{"events"},
	AppName:       "sdl3-go",
	AppIdentifier: "io.github.hsiuhsiu.sdl3-go",
	Hints:         map[string]string{},
	Format:        "table",
	Log:           LogConfig{Level: "info"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("subsystems", DefaultConfig.Subsystems)
	v.SetDefault("app_name", DefaultConfig.AppName)
	v.SetDefault("app_identifier", DefaultConfig.AppIdentifier)
	v.SetDefault("hints", DefaultConfig.Hints)
	v.SetDefault("format", DefaultConfig.Format)
	v.SetDefault("log.level", DefaultConfig.Log.Level)
	v.SetDefault("log.native", DefaultConfig.Log.Native)
}

// newViper returns a viper instance reading path, or sdl3-go.{toml,yaml}
// from the user config directory and the working directory when path is
// empty.
func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		return v
	}
	v.SetConfigName("sdl3-go")
	if dir, err := userConfigDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	return v
}

// LoadConfig reads the configuration. A missing file is not an error when
// path is empty.
func LoadConfig(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Library converts the CLI configuration into library options, with extra
// subsystems a command needs on top of the configured ones.
func (c Config) Library(extra sdl.InitFlags) (sdl.Config, error) {
	flags, err := sdl.ParseInitFlags(c.Subsystems)
	if err != nil {
		return sdl.Config{}, err
	}
	hints := make(map[string]string, len(c.Hints))
	for name, value := range c.Hints {
		hints[hintName(name)] = value
	}
	return sdl.Config{
		Flags:         flags | extra,
		AppName:       c.AppName,
		AppVersion:    sdl.WrapperVersion(),
		AppIdentifier: c.AppIdentifier,
		Hints:         hints,
	}, nil
}

// hintName restores the SDL_ prefix and upper case that viper's key
// folding loses.
func hintName(key string) string {
	name := strings.ToUpper(key)
	if !strings.HasPrefix(name, "SDL_") {
		name = "SDL_" + name
	}
	return name
}
