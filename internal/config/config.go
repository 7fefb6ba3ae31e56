// Package config resolves CLI settings from flags, environment, an optional
// config file and defaults.
//
// Precedence, highest first: command-line flags, METAWEBLOG_* environment
// variables (a .env file in the working directory is loaded into the
// environment first), $HOME/.metaweblog/config.yaml, built-in defaults.
// Credentials missing here may still come from the encrypted profile.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"metaweblog/internal/client"
	"metaweblog/internal/domain"
	"metaweblog/internal/logger"
)

// Keys understood by viper. Flags are bound to the same names.
const (
	KeyHome        = "home"
	KeyServer      = "server"
	KeyAppKey      = "app_key"
	KeyUsername    = "username"
	KeyPassword    = "password"
	KeyBlogID      = "blog_id"
	KeyPassphrase  = "passphrase"
	KeyDumpRequest = "dump_request"
	KeyRate        = "rate"
	KeyTimeout     = "timeout"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyLogFile     = "log.file"
)

const envPrefix = "METAWEBLOG"

// ErrNoEndpoint is returned when no app key or username is configured.
var ErrNoEndpoint = errors.New("app key and username are required (flags, METAWEBLOG_* env or a saved profile)")

// Config is the resolved CLI configuration. Credentials left empty here may
// be filled from the saved profile with Merge.
type Config struct {
	Home        string
	ServerURL   string
	Credentials domain.Credentials
	Passphrase  string

	DumpRequest string
	Rate        float64 // calls per second, 0 means unlimited
	Timeout     time.Duration

	Log logger.Options
}

// New returns a viper instance with defaults and environment binding set up.
// A .env file in the working directory is loaded first when present.
func New() *viper.Viper {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyServer, client.DefaultServerURL)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyRate, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "dev")
	return v
}

// ResolveHome returns the configured home directory, defaulting to
// ~/.metaweblog.
func ResolveHome(v *viper.Viper) (string, error) {
	if home := strings.TrimSpace(v.GetString(KeyHome)); home != "" {
		return home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".metaweblog"), nil
}

// ReadFile merges home/config.yaml into v. A missing file is not an error.
func ReadFile(v *viper.Viper, home string) error {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load produces a typed Config from v.
func Load(v *viper.Viper) (*Config, error) {
	home, err := ResolveHome(v)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Home:      home,
		ServerURL: strings.TrimSpace(v.GetString(KeyServer)),
		Credentials: domain.Credentials{
			AppKey:   strings.TrimSpace(v.GetString(KeyAppKey)),
			Username: strings.TrimSpace(v.GetString(KeyUsername)),
			Password: v.GetString(KeyPassword),
			BlogID:   strings.TrimSpace(v.GetString(KeyBlogID)),
		},
		Passphrase:  v.GetString(KeyPassphrase),
		DumpRequest: v.GetString(KeyDumpRequest),
		Rate:        v.GetFloat64(KeyRate),
		Timeout:     v.GetDuration(KeyTimeout),
		Log: logger.Options{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
			File:   v.GetString(KeyLogFile),
		},
	}
	if cfg.Rate < 0 {
		return nil, fmt.Errorf("rate must not be negative, got %v", cfg.Rate)
	}
	return cfg, nil
}

// Merge fills every credential still empty in c from the saved profile.
func (c *Config) Merge(p domain.Profile) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	if p.ServerURL != "" && (c.ServerURL == "" || c.ServerURL == client.DefaultServerURL) {
		c.ServerURL = p.ServerURL
	}
	fill(&c.Credentials.AppKey, p.Credentials.AppKey)
	fill(&c.Credentials.Username, p.Credentials.Username)
	fill(&c.Credentials.Password, p.Credentials.Password)
	fill(&c.Credentials.BlogID, p.Credentials.BlogID)
}

// Validate returns warnings and a fatal error when no endpoint can be formed.
func (c *Config) Validate() (warnings []string, err error) {
	if c.Credentials.AppKey == "" || c.Credentials.Username == "" {
		return nil, ErrNoEndpoint
	}
	if c.Credentials.Password == "" {
		warnings = append(warnings, "password is empty")
	}
	if c.Credentials.BlogID == "" {
		warnings = append(warnings, "blog id is empty; only blogs and delete will work")
	}
	if c.Timeout <= 0 {
		warnings = append(warnings, "timeout disabled")
	}
	return warnings, nil
}

// Profile returns the credentials of c as a savable profile.
func (c *Config) Profile() domain.Profile {
	return domain.Profile{ServerURL: c.ServerURL, Credentials: c.Credentials}
}
