package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/phuslu/log"

	"github.com/jakoblorz/go-keil2cmake/internal/filesystem"
)

// EnvConfigPath overrides the location of the settings file.
const EnvConfigPath = "KEIL2CMAKE_CONFIG_PATH"

// DefaultPath returns $KEIL2CMAKE_CONFIG_PATH or ~/.keil2cmake/path.toml.
func DefaultPath() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return filepath.Clean(override), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".keil2cmake", "path.toml"), nil
}

// Store reads and writes the settings file.
type Store struct {
	fs       filesystem.FileSystem
	path     string
	logger   *log.Logger
	validate *validator.Validate
}

func NewStore(fs filesystem.FileSystem, path string, logger *log.Logger) *Store {
	validate := validator.New()
	err := validate.RegisterValidation("cmake_version", func(fl validator.FieldLevel) bool {
		return isCMakeVersion(fl.Field().String())
	})
	if err != nil {
		panic("settings: cannot register cmake_version rule: " + err.Error())
	}
	return &Store{fs: fs, path: path, logger: logger, validate: validate}
}

func (s *Store) Path() string {
	return s.path
}

// Read returns the stored configuration merged over the defaults without
// touching the file.
func (s *Store) Read() (*Config, error) {
	cfg := Default()
	if !s.fs.Exists(s.path) {
		return cfg, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", s.path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	return cfg, nil
}

// Load reads the settings file, fills in missing keys with defaults and
// writes the healed file back. A missing file is created.
func (s *Store) Load() (*Config, error) {
	cfg, err := s.Read()
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(cfg); err != nil {
		s.logger.Warn().Str("path", s.path).Err(err).Msg("settings contain unexpected values")
	}

	if err := s.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Store) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", s.path, err)
	}
	s.logger.Debug().Str("path", s.path).Msg("settings saved")
	return nil
}

// Edit applies one KEY=VALUE assignment. The key is case-insensitive and
// the value is everything after the first '='. Input is checked before the
// file is touched, so a *ConfigError leaves the store as it was.
func (s *Store) Edit(assignment string) (key, value string, err error) {
	rawKey, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return "", "", &ConfigError{Kind: ErrorFormat, Input: assignment}
	}
	key = strings.ToUpper(strings.TrimSpace(rawKey))

	k, found := findKey(key)
	if !found {
		return "", "", &ConfigError{Kind: ErrorInvalidKey, Input: assignment, Key: key}
	}
	if k.rule != "" {
		if err := s.validate.Var(value, k.rule); err != nil {
			return "", "", &ConfigError{Kind: ErrorInvalidValue, Input: assignment, Key: key, Value: value, Err: err}
		}
	}

	cfg, err := s.Load()
	if err != nil {
		return "", "", err
	}
	*k.field(cfg) = value
	if err := s.Save(cfg); err != nil {
		return "", "", err
	}
	return key, value, nil
}

// isCMakeVersion accepts the MAJOR.MINOR[.PATCH] forms cmake_minimum_required
// takes. semver alone would also let through "v3.20" and "3.20.0-rc1".
func isCMakeVersion(v string) bool {
	if strings.Count(v, ".") < 1 || v[0] < '0' || v[0] > '9' {
		return false
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() == "" && parsed.Metadata() == ""
}
