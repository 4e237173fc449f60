package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces the environment variables read by Load.
const EnvPrefix = "CHAINCRAFT_"

// Config holds runtime wiring options for building the app.
// Precedence (lowest to highest): defaults, environment, overrides.
type Config struct {
	DataDir       string `koanf:"data_dir" validate:"datadir"`
	FormatVersion int    `koanf:"format_version" validate:"oneof=1"`
	LogLevel      string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat     string `koanf:"log_format" validate:"oneof=text json"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	dir := ".chaincraft"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".chaincraft")
	}
	return Config{
		DataDir:       dir,
		FormatVersion: 1,
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// Swapped in tests.
var (
	defaultLoader = func(k *koanf.Koanf) error {
		return k.Load(structs.Provider(DefaultConfig(), "koanf"), nil)
	}
	envLoader = func(k *koanf.Koanf) error {
		return k.Load(env.Provider(".", env.Opt{
			Prefix: EnvPrefix,
			TransformFunc: func(k, v string) (string, any) {
				return strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), v
			},
		}), nil)
	}
	registerValidators = func(v *validator.Validate) error {
		return v.RegisterValidation("datadir", validDataDir)
	}
)

// Load merges defaults, CHAINCRAFT_* environment variables and overrides
// (keyed by koanf tag, typically from CLI flags), then validates the result.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")
	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("override %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	v := validator.New()
	if err := registerValidators(v); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	if err := v.Struct(&cfg); err != nil {
		return nil, configError(err)
	}
	return &cfg, nil
}

// configError flattens validator output into one readable error.
func configError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// validDataDir rejects empty paths, the current directory, the filesystem
// root and any path with a ".." segment.
func validDataDir(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if strings.TrimSpace(p) == "" {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		if seg == ".." {
			return false
		}
	}
	switch filepath.Clean(p) {
	case ".", string(filepath.Separator):
		return false
	}
	return true
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
