package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings for merge request creation.
// It is constructed once at startup and read-only afterwards.
type Config struct {
	// Username is the GitLab username assigned to created merge requests.
	Username string
	// ProjectDir is the absolute path to the git working copy.
	ProjectDir string
	// TargetBranch is the branch merge requests are opened against.
	TargetBranch string
	// Remote is the git remote branches are pushed to.
	Remote string
	// LogLevel controls diagnostic verbosity ("debug", "info", "warn", "error").
	LogLevel string
}

// ConfigurationError reports a missing or invalid configuration value.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// Load reads configuration from the environment. A .env file in the current
// directory is folded into the environment first; real environment variables
// take precedence over .env entries.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Username:     os.Getenv("GITLAB_USERNAME"),
		ProjectDir:   os.Getenv("PROJECT_DIR"),
		TargetBranch: getEnv("TARGET_BRANCH", "staging"),
		Remote:       getEnv("GIT_REMOTE", "origin"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks that all required values are present and that the project
// directory exists. It returns a *ConfigurationError describing the first
// problem found.
func (c *Config) Validate() error {
	var missing []string
	if c.Username == "" {
		missing = append(missing, "GITLAB_USERNAME")
	}
	if c.ProjectDir == "" {
		missing = append(missing, "PROJECT_DIR")
	}
	if len(missing) > 0 {
		return &ConfigurationError{
			Reason: fmt.Sprintf("%s must be set in the environment or .env", strings.Join(missing, " and ")),
		}
	}

	info, err := os.Stat(c.ProjectDir)
	if err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("PROJECT_DIR %q: %v", c.ProjectDir, err)}
	}
	if !info.IsDir() {
		return &ConfigurationError{Reason: fmt.Sprintf("PROJECT_DIR %q is not a directory", c.ProjectDir)}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
