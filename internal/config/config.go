package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/nakamotosai/jp/internal/domain"
)

// Engine identifiers accepted for JP_TRANSLATOR_ENGINE.
const (
	EngineGTX    = "gtx"
	EngineOpenAI = "openai"
)

// Config stores runtime configuration for the overlay.
type Config struct {
	// Core timing.
	DebounceWindow   time.Duration `env:"JP_DEBOUNCE_WINDOW" envDefault:"350ms"`
	TranslateTimeout time.Duration `env:"JP_TRANSLATE_TIMEOUT" envDefault:"10s"`
	PasteSettle      time.Duration `env:"JP_PASTE_SETTLE" envDefault:"100ms"`

	// Display defaults; overridden by persisted settings when present.
	Theme      string `env:"JP_THEME" envDefault:"dark"`
	FontFamily string `env:"JP_FONT_FAMILY" envDefault:"sans"`

	// Translation backend.
	Engine string `env:"JP_TRANSLATOR_ENGINE" envDefault:"gtx"`
	GTX    GTXConfig
	OpenAI OpenAIConfig

	// Desktop integration.
	Notifications bool   `env:"JP_NOTIFICATIONS" envDefault:"true"`
	SettingsPath  string `env:"JP_SETTINGS_FILE"`
	Debug         bool   `env:"JP_DEBUG"`
}

// GTXConfig configures the Google web-translate endpoint.
type GTXConfig struct {
	BaseURL    string `env:"JP_GTX_BASE_URL" envDefault:"https://translate.googleapis.com/translate_a/single"`
	SourceLang string `env:"JP_GTX_SOURCE_LANG" envDefault:"zh-CN"`
	TargetLang string `env:"JP_GTX_TARGET_LANG" envDefault:"ja"`
}

// OpenAIConfig configures the LLM translation engine.
type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"JP_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load resolves configuration from .env and environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	// A misconfigured engine falls back to the keyless online engine
	// rather than refusing to start.
	cfg.Engine = strings.ToLower(strings.TrimSpace(cfg.Engine))
	switch cfg.Engine {
	case EngineGTX:
	case EngineOpenAI:
		if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
			cfg.Engine = EngineGTX
		}
	default:
		cfg.Engine = EngineGTX
	}

	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = 350 * time.Millisecond
	}
	if cfg.TranslateTimeout <= 0 {
		cfg.TranslateTimeout = 10 * time.Second
	}
	if cfg.PasteSettle < 0 {
		cfg.PasteSettle = 0
	}

	return cfg, nil
}

// ThemeValue maps the configured theme onto the domain type, defaulting
// to dark for unknown values.
func (c Config) ThemeValue() domain.Theme {
	if strings.EqualFold(c.Theme, string(domain.ThemeLight)) {
		return domain.ThemeLight
	}
	return domain.ThemeDark
}

// FontFamilyValue maps the configured font family onto the domain type,
// defaulting to sans for unknown values.
func (c Config) FontFamilyValue() domain.FontFamily {
	if strings.EqualFold(c.FontFamily, string(domain.FontSerif)) {
		return domain.FontSerif
	}
	return domain.FontSans
}
