package mailrify

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"

	"github.com/mailrify/mailrify-go/internal/api"
	"github.com/mailrify/mailrify-go/internal/apierrors"
)

// EnvPrefix is the prefix of the environment variables read by New.
const EnvPrefix = "MAILRIFY_"

// Settings is the resolved client configuration.
type Settings struct {
	APIKey     string        `koanf:"api_key"`
	BaseURL    string        `koanf:"base_url"`
	Timeout    time.Duration `koanf:"timeout"`
	MaxRetries int           `koanf:"max_retries"`
	Debug      bool          `koanf:"debug"`
	UserAgent  string        `koanf:"user_agent"`
}

// loadSettings resolves configuration with priority:
// 1. Explicit arguments and options (highest priority)
// 2. MAILRIFY_* environment variables
// 3. Default values (lowest priority)
func loadSettings(apiKey string, cfg *clientConfig) (Settings, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return Settings{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	environ := cfg.environ
	if environ == nil {
		environ = os.Environ
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
		EnvironFunc:   environ,
	}), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	overrides := make(map[string]any, len(cfg.overrides)+1)
	for key, v := range cfg.overrides {
		overrides[key] = v
	}
	if strings.TrimSpace(apiKey) != "" {
		overrides["api_key"] = apiKey
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load options: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, &apierrors.ValidationError{Errors: []string{fmt.Sprintf("invalid configuration: %v", err)}}
	}
	return s, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"base_url":    api.DefaultBaseURL,
		"timeout":     api.DefaultTimeout.String(),
		"max_retries": api.DefaultMaxRetries,
		"debug":       false,
		"user_agent":  api.DefaultUserAgent,
	}
	return k.Load(confmap.Provider(defaults, "."), nil)
}

// transformEnv maps MAILRIFY_BASE_URL to base_url. A bare number in
// MAILRIFY_TIMEOUT is read as seconds.
func transformEnv(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if key == "timeout" {
		if secs, err := strconv.ParseFloat(value, 64); err == nil {
			return key, time.Duration(secs * float64(time.Second)).String()
		}
	}
	return key, value
}
