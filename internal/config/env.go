package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvYTDLPPath    = "YTGRAB_YTDLP_PATH"
	EnvCookiesFile  = "YTGRAB_COOKIES_FILE"
	EnvSettingsPath = "YTGRAB_SETTINGS_PATH"
	EnvLogLevel     = "YTGRAB_LOG_LEVEL"
	EnvServerAddr   = "YTGRAB_SERVER_ADDR"
	EnvProbeTimeout = "YTGRAB_PROBE_TIMEOUT"

	EnvAllowedOrigins = "YTGRAB_ALLOWED_ORIGINS"
)

// Default values
const (
	DefaultYTDLPPath    = "yt-dlp"
	DefaultLogLevel     = "INFO"
	DefaultServerAddr   = "127.0.0.1:8080"
	DefaultProbeTimeout = 60 * time.Second
)

var validLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
	"FATAL": true,
}

// AppConfig holds process-level configuration shared by all front-ends
type AppConfig struct {
	YTDLPPath    string        // yt-dlp executable
	CookiesFile  string        // optional Netscape cookie file for the probe retry
	SettingsPath string        // JSON settings file
	LogLevel     string        // DEBUG, INFO, WARN, ERROR or FATAL
	ServerAddr   string        // listen address of the HTTP API
	ProbeTimeout time.Duration // bound for one metadata probe

	// AllowedOrigins are the browser origins the HTTP API accepts besides
	// its own. Empty means same-origin and non-browser clients only.
	AllowedOrigins []string
}

// LoadAppConfig loads the given .env files (".env" when none are named) if
// they exist and reads configuration from the environment
func LoadAppConfig(envFiles ...string) (*AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &AppConfig{
		YTDLPPath:    getEnv(EnvYTDLPPath, DefaultYTDLPPath),
		CookiesFile:  strings.TrimSpace(os.Getenv(EnvCookiesFile)),
		SettingsPath: getEnv(EnvSettingsPath, DefaultSettingsFile),
		LogLevel:     strings.ToUpper(getEnv(EnvLogLevel, DefaultLogLevel)),
		ServerAddr:   getEnv(EnvServerAddr, DefaultServerAddr),
		ProbeTimeout: DefaultProbeTimeout,

		AllowedOrigins: splitList(os.Getenv(EnvAllowedOrigins)),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvProbeTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvProbeTimeout, raw, err)
		}
		cfg.ProbeTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration
func (c *AppConfig) Validate() error {
	if c.YTDLPPath == "" {
		return errors.New("yt-dlp path cannot be empty")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s. Valid levels are: DEBUG, INFO, WARN, ERROR, FATAL", c.LogLevel)
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got: %s", c.ProbeTimeout)
	}
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return fmt.Errorf("%s cannot contain a wildcard; list origins explicitly", EnvAllowedOrigins)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma separated value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
