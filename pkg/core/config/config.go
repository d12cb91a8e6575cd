// Package config loads the termio configuration.
//
// Values come from three layers, later ones winning: the TOML file, a .env
// file in the working directory, and TERMIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	"github.com/msto63/termio/foundation/core/log"
)

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = "TERMIO_CONFIG"

// UI modes
const (
	UIPlain = "plain"
	UITUI   = "tui"
	UIAuto  = "auto"
)

// Config holds the complete application configuration
type Config struct {
	Console  ConsoleConfig  `toml:"console"`
	Logging  LoggingConfig  `toml:"logging"`
	Employee EmployeeConfig `toml:"employee"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-"`
}

// ConsoleConfig holds settings of the validated reader
type ConsoleConfig struct {
	Locale         string `toml:"locale" env:"TERMIO_LOCALE"`
	LegacyMessages bool   `toml:"legacy_messages" env:"TERMIO_LEGACY_MESSAGES"`
	UI             string `toml:"ui" env:"TERMIO_UI"`
}

// LoggingConfig holds diagnostic log settings. Output is "discard",
// "stderr" or a file path.
type LoggingConfig struct {
	Level  string `toml:"level" env:"TERMIO_LOG_LEVEL"`
	Format string `toml:"format" env:"TERMIO_LOG_FORMAT"`
	Output string `toml:"output" env:"TERMIO_LOG_OUTPUT"`
}

// EmployeeConfig overrides the employee demo policy
type EmployeeConfig struct {
	MinID       int64    `toml:"min_id" env:"TERMIO_EMPLOYEE_MIN_ID"`
	MaxID       int64    `toml:"max_id" env:"TERMIO_EMPLOYEE_MAX_ID"`
	MinSalary   int      `toml:"min_salary" env:"TERMIO_EMPLOYEE_MIN_SALARY"`
	MaxSalary   int      `toml:"max_salary" env:"TERMIO_EMPLOYEE_MAX_SALARY"`
	MinAge      int      `toml:"min_age" env:"TERMIO_EMPLOYEE_MIN_AGE"`
	MaxAge      int      `toml:"max_age" env:"TERMIO_EMPLOYEE_MAX_AGE"`
	Departments []string `toml:"departments" env:"TERMIO_EMPLOYEE_DEPARTMENTS" envSeparator:","`

	MaxNameLength int `toml:"max_name_length" env:"TERMIO_EMPLOYEE_MAX_NAME_LENGTH"`
}

// MaxExactID is the largest employee ID the field reader can represent
// exactly, since numbers are read as float64.
const MaxExactID = 1 << 53

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the TOML file at path on top of the defaults, applies
// environment overrides and validates the result. Keys present in the file
// win over defaults, including explicit zero values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		return nil, mdwerror.Wrap(err, "config file not found").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.Path = path

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads .env, then the config file named by explicit, by
// TERMIO_CONFIG or found in the default locations. Without any file the
// defaults plus environment overrides are returned.
func LoadDefault(explicit string) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	path := explicit
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		return Load(path)
	}

	cfg := Default()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the locations probed for a config file
func SearchPaths() []string {
	paths := []string{
		"./configs/termio.toml",
		"./termio.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "termio", "termio.toml"))
	}
	return paths
}

func (c *Config) finish() error {
	if err := env.Parse(c); err != nil {
		return mdwerror.Wrap(err, "failed to parse environment").
			WithCode(mdwerror.CodeEnvironmentError).
			WithOperation("config.env")
	}
	c.expandEnvVars()
	return c.Validate()
}

// applyDefaults fills zero values with defaults. It runs only on a fresh
// Config, so explicit zeros read from a file are kept.
func (c *Config) applyDefaults() {
	// Console
	if c.Console.Locale == "" {
		c.Console.Locale = "en"
	}
	if c.Console.UI == "" {
		c.Console.UI = UIPlain
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "discard"
	}

	// Employee
	if c.Employee.MinID == 0 {
		c.Employee.MinID = 100000
	}
	if c.Employee.MaxID == 0 {
		c.Employee.MaxID = 999999
	}
	if c.Employee.MinSalary == 0 {
		c.Employee.MinSalary = 5000
	}
	if c.Employee.MaxSalary == 0 {
		c.Employee.MaxSalary = 30000
	}
	if c.Employee.MinAge == 0 {
		c.Employee.MinAge = 18
	}
	if c.Employee.MaxAge == 0 {
		c.Employee.MaxAge = 70
	}
	if len(c.Employee.Departments) == 0 {
		c.Employee.Departments = []string{"QA", "Audit", "Development", "Management"}
	}
	if c.Employee.MaxNameLength == 0 {
		c.Employee.MaxNameLength = 64
	}
}

// expandEnvVars expands environment variables in path-like fields
func (c *Config) expandEnvVars() {
	c.Logging.Output = os.ExpandEnv(c.Logging.Output)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	var problems []string

	switch c.Console.UI {
	case UIPlain, UITUI, UIAuto:
	default:
		problems = append(problems, fmt.Sprintf("console.ui must be plain, tui or auto, got %q", c.Console.UI))
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		problems = append(problems, "logging.level: "+err.Error())
	}
	if _, err := log.ParseFormat(c.Logging.Format); err != nil {
		problems = append(problems, "logging.format: "+err.Error())
	}
	if c.Employee.MinID > c.Employee.MaxID {
		problems = append(problems, "employee.min_id is greater than employee.max_id")
	}
	if c.Employee.MinID < -MaxExactID || c.Employee.MaxID > MaxExactID {
		problems = append(problems, fmt.Sprintf("employee ids must lie within ±%d", int64(MaxExactID)))
	}
	if c.Employee.MinSalary > c.Employee.MaxSalary {
		problems = append(problems, "employee.min_salary is greater than employee.max_salary")
	}
	if c.Employee.MinAge > c.Employee.MaxAge {
		problems = append(problems, "employee.min_age is greater than employee.max_age")
	}
	if len(c.Employee.Departments) == 0 {
		problems = append(problems, "employee.departments must not be empty")
	}
	if c.Employee.MaxNameLength < 1 {
		problems = append(problems, "employee.max_name_length must be positive")
	}

	if len(problems) > 0 {
		return mdwerror.New("invalid configuration: " + strings.Join(problems, "; ")).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("path", c.Path)
	}
	return nil
}
