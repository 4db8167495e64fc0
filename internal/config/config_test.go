package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakamotosai/jp/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"JP_DEBOUNCE_WINDOW", "JP_TRANSLATE_TIMEOUT", "JP_PASTE_SETTLE",
		"JP_THEME", "JP_FONT_FAMILY", "JP_TRANSLATOR_ENGINE",
		"JP_GTX_BASE_URL", "JP_GTX_SOURCE_LANG", "JP_GTX_TARGET_LANG",
		"OPENAI_API_KEY", "JP_OPENAI_MODEL",
		"JP_NOTIFICATIONS", "JP_SETTINGS_FILE", "JP_DEBUG",
	} {
		// Register restoration, then actually unset so envDefault applies.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 350*time.Millisecond, cfg.DebounceWindow)
	assert.Equal(t, 10*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, 100*time.Millisecond, cfg.PasteSettle)
	assert.Equal(t, EngineGTX, cfg.Engine)
	assert.Equal(t, "https://translate.googleapis.com/translate_a/single", cfg.GTX.BaseURL)
	assert.Equal(t, "zh-CN", cfg.GTX.SourceLang)
	assert.Equal(t, "ja", cfg.GTX.TargetLang)
	assert.True(t, cfg.Notifications)
	assert.Equal(t, domain.ThemeDark, cfg.ThemeValue())
	assert.Equal(t, domain.FontSans, cfg.FontFamilyValue())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JP_DEBOUNCE_WINDOW", "200ms")
	t.Setenv("JP_THEME", "light")
	t.Setenv("JP_FONT_FAMILY", "serif")
	t.Setenv("JP_NOTIFICATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 200*time.Millisecond, cfg.DebounceWindow)
	assert.Equal(t, domain.ThemeLight, cfg.ThemeValue())
	assert.Equal(t, domain.FontSerif, cfg.FontFamilyValue())
	assert.False(t, cfg.Notifications)
}

func TestLoadUnknownEngineFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("JP_TRANSLATOR_ENGINE", "babelfish")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EngineGTX, cfg.Engine)
}

func TestLoadOpenAIEngineRequiresKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("JP_TRANSLATOR_ENGINE", "openai")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EngineGTX, cfg.Engine)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, EngineOpenAI, cfg.Engine)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestLoadEngineIsCaseInsensitive(t *testing.T) {
	clearEnv(t)
	t.Setenv("JP_TRANSLATOR_ENGINE", "GTX")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, EngineGTX, cfg.Engine)
}

func TestDisplayValueFallbacks(t *testing.T) {
	cfg := Config{Theme: "sepia", FontFamily: "monospace"}
	assert.Equal(t, domain.ThemeDark, cfg.ThemeValue())
	assert.Equal(t, domain.FontSans, cfg.FontFamilyValue())
}
