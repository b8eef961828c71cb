package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ConfigError aggregates the configuration problems found at startup. All
// problems are reported together so operators can fix them in one pass.
type ConfigError struct {
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, "; "))
}

// Config is the immutable run configuration, resolved once at startup from
// the environment (optionally seeded from a .env file) and command flags,
// and passed down to every component explicitly.
type Config struct {
	Credentials      string
	AssetsID         string
	AssetsSheet      string
	DepartmentsID    string
	DepartmentsSheet string
	Folder           string
	Template         string
	OutputDir        string
	Upload           bool
}

// LoadConfig resolves the run configuration from the environment. A .env
// file, if present, seeds unset variables; a missing .env is not an error.
func LoadConfig(envfile string) Config {
	if envfile != "" {
		godotenv.Load(envfile)
	} else {
		godotenv.Load()
	}

	return Config{
		Credentials:      env("GOOGLE_CREDS_PATH", DEFAULT_CREDENTIALS),
		AssetsID:         env("ASSETS_SHEET_ID", ""),
		AssetsSheet:      env("ASSETS_SHEET_NAME", "list"),
		DepartmentsID:    env("DEPARTMENTS_SHEET_ID", ""),
		DepartmentsSheet: env("DEPARTMENTS_SHEET_NAME", "Department"),
		Folder:           env("SHARED_DRIVE_ID", ""),
		Template:         env("TEMPLATE_PATH", DEFAULT_TEMPLATE),
		OutputDir:        env("OUTPUT_DIR", DEFAULT_OUTPUT_DIR),
		Upload:           true,
	}
}

// Validate checks the configuration before any network call.
func (c Config) Validate() error {
	problems := []string{}

	if _, err := os.Stat(c.Credentials); err != nil {
		problems = append(problems, fmt.Sprintf("credentials file not found: %s", c.Credentials))
	}

	if _, err := os.Stat(c.Template); err != nil {
		problems = append(problems, fmt.Sprintf("template file not found: %s", c.Template))
	}

	if c.AssetsID == "" {
		problems = append(problems, "missing assets spreadsheet ID")
	}

	if c.DepartmentsID == "" {
		problems = append(problems, "missing departments spreadsheet ID")
	}

	if c.Upload && c.Folder == "" {
		problems = append(problems, "missing shared drive folder ID")
	}

	if len(problems) > 0 {
		return &ConfigError{Problems: problems}
	}

	return nil
}

func env(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return fallback
}
