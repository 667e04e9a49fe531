package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ConvertSettings holds the conversion parameters.
type ConvertSettings struct {
	RootDir    string `yaml:"root_dir"    env:"TMXCONV_ROOT_DIR"`
	SourceLang string `yaml:"source_lang" env:"TMXCONV_SOURCE_LANG"`
	TargetLang string `yaml:"target_lang" env:"TMXCONV_TARGET_LANG"`
	// Formats is the raw comma-separated format list.
	Formats string `yaml:"formats" env:"TMXCONV_FORMATS"`
	// OutputDir defaults to <root>/output when empty.
	OutputDir string `yaml:"output_dir" env:"TMXCONV_OUTPUT_DIR"`
}

// SanitizeSettings controls control-character stripping.
type SanitizeSettings struct {
	// InPlace persists the sanitized text back to the source file.
	InPlace bool `yaml:"in_place" env:"TMXCONV_SANITIZE_IN_PLACE"`
	// KeepRawControls disables removal of literal C0 control characters;
	// only the escaped character references are stripped then.
	KeepRawControls bool `yaml:"keep_raw_controls" env:"TMXCONV_KEEP_RAW_CONTROLS"`
}

// LogSettings holds logging settings.
type LogSettings struct {
	Level  string `yaml:"level"  env:"TMXCONV_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"TMXCONV_LOG_FORMAT" env-default:"text"`
}

// Config holds the full application configuration.
type Config struct {
	Convert  ConvertSettings  `yaml:"convert"`
	Sanitize SanitizeSettings `yaml:"sanitize"`
	Log      LogSettings      `yaml:"log"`
}

// OutputDirName is the directory created under the root for artifacts.
const OutputDirName = "output"

// Default returns a Config with hardcoded defaults.
func Default() *Config {
	return &Config{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from an optional YAML file and TMXCONV_*
// environment variables. A .env file in the working directory is loaded
// first when present. An empty path falls back to TMXCONV_CONFIG; an
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("TMXCONV_CONFIG")
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
