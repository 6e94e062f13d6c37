package odfgen

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains all configuration options for an Assembler.
// A Config is passed to each assembler; there is no process-wide serializer state.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictMode turns unsupported fragments into build errors instead of warnings
	StrictMode bool
	// Indent is the per-level indentation of the written XML parts. Empty
	// takes the default; set NoIndent to write parts without indentation.
	Indent   string
	NoIndent bool

	// FontName and FontSize describe the default font face declared in styles.xml
	FontName string
	FontSize string
	// PageWidth, PageHeight and PageMargin describe the default page layout
	PageWidth  string
	PageHeight string
	PageMargin string

	// CacheMaxSize is the maximum number of fragment files to cache. 0 takes
	// the default; set NoCache to disable caching.
	CacheMaxSize int
	NoCache      bool
	// CacheTTL is the time-to-live for cached fragment files. 0 means no expiration.
	CacheTTL time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		StrictMode:   false,
		Indent:       "  ",
		FontName:     "Helvetica",
		FontSize:     "12pt",
		PageWidth:    "10cm",
		PageHeight:   "12cm",
		PageMargin:   "1cm",
		CacheMaxSize: 100,
		CacheTTL:     0,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// ODFGEN_LOG_LEVEL
	if val := os.Getenv("ODFGEN_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// ODFGEN_STRICT_MODE
	if val := os.Getenv("ODFGEN_STRICT_MODE"); val != "" {
		config.StrictMode = parseBool(val)
	}

	// ODFGEN_INDENT, number of spaces; 0 switches indentation off
	if val := os.Getenv("ODFGEN_INDENT"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			config.Indent = strings.Repeat(" ", n)
			config.NoIndent = n == 0
		}
	}

	// ODFGEN_CACHE_MAX_SIZE; 0 switches caching off
	if val := os.Getenv("ODFGEN_CACHE_MAX_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			config.CacheMaxSize = size
			config.NoCache = size == 0
		}
	}

	// ODFGEN_CACHE_TTL
	if val := os.Getenv("ODFGEN_CACHE_TTL"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			config.CacheTTL = duration
		}
	}

	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.FontName == "" {
		config.FontName = defaults.FontName
	}
	if config.FontSize == "" {
		config.FontSize = defaults.FontSize
	}
	if config.PageWidth == "" {
		config.PageWidth = defaults.PageWidth
	}
	if config.PageHeight == "" {
		config.PageHeight = defaults.PageHeight
	}
	if config.PageMargin == "" {
		config.PageMargin = defaults.PageMargin
	}
	if config.Indent == "" && !config.NoIndent {
		config.Indent = defaults.Indent
	}
	if config.CacheMaxSize == 0 && !config.NoCache {
		config.CacheMaxSize = defaults.CacheMaxSize
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.CacheMaxSize < 0 {
		return errors.New("cache max size cannot be negative")
	}

	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	if _, ok := logLevels[c.LogLevel]; !ok {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if strings.Trim(c.Indent, " \t") != "" {
		return errors.New("indent may only contain spaces and tabs")
	}

	for field, val := range map[string]string{
		"font name":   c.FontName,
		"font size":   c.FontSize,
		"page width":  c.PageWidth,
		"page height": c.PageHeight,
		"page margin": c.PageMargin,
	} {
		if strings.TrimSpace(val) == "" {
			return errors.New(field + " cannot be empty")
		}
	}

	return nil
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
