package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Input    InputConfig    `toml:"input"`
	Output   OutputConfig   `toml:"output"`
	Import   ImportConfig   `toml:"import"`
	Database DatabaseConfig `toml:"database"`
}

// InputConfig contains the paths of the two source spreadsheets.
type InputConfig struct {
	Members  string `toml:"members" validate:"required"`
	Accounts string `toml:"accounts" validate:"required"`
}

// OutputConfig contains the paths the import document is written to.
type OutputConfig struct {
	Path    string `toml:"path" validate:"required"`
	CSVPath string `toml:"csv_path"`
}

// ImportConfig contains the rules applied while building records.
type ImportConfig struct {
	ExcludedEmails []string `toml:"excluded_emails" validate:"dive,email"`
}

// DatabaseConfig contains run history database settings.
//
// An empty Path disables run history.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `toml:"max_idle_conns" validate:"gte=0"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// configValidator reports fields by their TOML keys.
var configValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		return name
	})
	return v
}()

// Validate reports the first invalid setting, named by its TOML key (e.g. "output.path").
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	fe := fieldErrs[0]
	_, key, _ := strings.Cut(fe.Namespace(), ".")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, key)
	case "email":
		return fmt.Errorf("%w: %s: %q is not an email address", ErrInvalidConfig, key, fe.Value())
	default:
		return fmt.Errorf("%w: %s fails %q", ErrInvalidConfig, key, fe.Tag())
	}
}

// HistoryEnabled reports whether import runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return strings.TrimSpace(c.Database.Path) != ""
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
