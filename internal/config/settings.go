package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load. A .env file in the working directory
// is merged in first, without overriding the real environment.
const (
	EnvAPIKey    = "API_KEY"
	EnvBaseURL   = "NASA_BASE_URL"
	EnvOutputDir = "NASA_OUTPUT_DIR"
	EnvRover     = "NASA_ROVER"
	EnvTimeout   = "NASA_HTTP_TIMEOUT"
)

// Default values
const (
	DefaultBaseURL = "https://api.nasa.gov"
	DefaultRover   = "curiosity"
	DefaultTimeout = 20 * time.Second
)

// ErrMissingAPIKey means no API key was found in the environment or .env.
var ErrMissingAPIKey = errors.New("API key not set, export API_KEY or add it to .env")

// Settings holds the resolved application configuration.
type Settings struct {
	apiKey    string
	baseURL   string
	outputDir string
	rover     string
	timeout   time.Duration
}

// Load resolves settings from the environment. Sign up for an API key at
// https://api.nasa.gov, or use DEMO_KEY for a rate-limited trial.
func Load() (*Settings, error) {
	// Ignore the error: a missing .env file just means env-only config.
	_ = godotenv.Load()

	s := &Settings{
		apiKey:    strings.TrimSpace(os.Getenv(EnvAPIKey)),
		baseURL:   strings.TrimRight(os.Getenv(EnvBaseURL), "/"),
		outputDir: os.Getenv(EnvOutputDir),
		rover:     strings.ToLower(os.Getenv(EnvRover)),
		timeout:   DefaultTimeout,
	}

	if s.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.outputDir == "" {
		s.outputDir = "."
	}
	if s.rover == "" {
		s.rover = DefaultRover
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			s.timeout = d
		}
	}

	return s, nil
}

// APIKey returns the NASA API key.
func (s *Settings) APIKey() string { return s.apiKey }

// BaseURL returns the API base URL, without a trailing slash.
func (s *Settings) BaseURL() string { return s.baseURL }

// OutputDir returns the directory output files are written to.
func (s *Settings) OutputDir() string { return s.outputDir }

// Rover returns the Mars rover whose photo archive is queried.
func (s *Settings) Rover() string { return s.rover }

// Timeout returns the per-request HTTP timeout.
func (s *Settings) Timeout() time.Duration { return s.timeout }
