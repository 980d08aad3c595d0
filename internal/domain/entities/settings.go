package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBackend     = "ollama"
	DefaultModel       = "mistral"
	DefaultTemperature = 0.3

	githubTokenEnv = "GITHUB_TOKEN"
)

// ErrSettingsNotFound is returned by FindConfigFile when no file exists.
var ErrSettingsNotFound = errors.New("config file not found in default locations")

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the process-wide configuration. It is loaded once at startup
// and treated as read-only afterwards.
type Settings struct {
	GitHubToken string          `yaml:"GITHUB_TOKEN"`
	Model       ModelSettings   `yaml:"model"`
	Sampler     SamplerSettings `yaml:"sampler"`
}

// ModelSettings selects and parameterizes the text-generation backend.
type ModelSettings struct {
	Backend     string  `yaml:"backend"`     // "ollama" or "gemini"
	Name        string  `yaml:"name"`        // model identifier, e.g. "mistral"
	Temperature float64 `yaml:"temperature"` // sampling temperature
	Host        string  `yaml:"host"`        // ollama base URL, empty uses OLLAMA_HOST
	APIKey      string  `yaml:"api_key"`     // gemini only; inline, ${ENV_VAR}, or file path
}

// DefaultSettings returns the configuration used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Model: ModelSettings{
			Backend:     DefaultBackend,
			Name:        DefaultModel,
			Temperature: DefaultTemperature,
		},
		Sampler: DefaultSamplerSettings(),
	}
}

// NewSettings reads and parses a configuration file. Both JSON and YAML
// documents are accepted. Missing values fall back to DefaultSettings.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.normalize()
	return settings, nil
}

// LoadSettings loads the file at path, or searches the default locations
// when path is empty. Having no config file at all is not an error.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			settings := DefaultSettings()
			settings.normalize()
			return settings, nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or ErrSettingsNotFound.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		"config.json",
		"config.yaml",
		".localguide.json",
		".localguide.yaml",
		".localguide.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrSettingsNotFound
}

// IsAnonymous reports whether GitHub will be accessed without a token.
func (s *Settings) IsAnonymous() bool {
	return s.GitHubToken == ""
}

func (s *Settings) normalize() {
	s.GitHubToken = ResolveToken(s.GitHubToken)
	if s.GitHubToken == "" {
		s.GitHubToken = os.Getenv(githubTokenEnv)
	}
	s.Model.APIKey = ResolveToken(s.Model.APIKey)

	if s.Model.Backend == "" {
		s.Model.Backend = DefaultBackend
	}
	if s.Model.Name == "" {
		s.Model.Name = DefaultModel
	}
	if len(s.Sampler.Extensions) == 0 {
		s.Sampler.Extensions = DefaultExtensions()
	}
	if s.Sampler.MaxFiles <= 0 {
		s.Sampler.MaxFiles = DefaultMaxFiles
	}
	if s.Sampler.MaxChars <= 0 {
		s.Sampler.MaxChars = DefaultMaxChars
	}
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
