package bootstrap

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/nakamotosai/jp/internal/config"
	"github.com/nakamotosai/jp/internal/ports"
	"github.com/nakamotosai/jp/internal/providers/gtx"
	"github.com/nakamotosai/jp/internal/providers/openai"
	"github.com/nakamotosai/jp/internal/settings"
	"github.com/nakamotosai/jp/internal/system"
	"github.com/nakamotosai/jp/internal/usecase"
)

// Services is the assembled runtime graph.
type Services struct {
	Controller *usecase.OverlayController
	Config     config.Config
	Settings   settings.Settings
	Store      *settings.Store
	Log        *zap.Logger
}

// Build wires all backend dependencies for the current runtime.
func Build(eventSink ports.EventSink) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		return Services{}, err
	}

	store, saved, err := loadSettings(cfg, log)
	if err != nil {
		return Services{}, err
	}

	translator, err := newTranslator(cfg)
	if err != nil {
		return Services{}, err
	}

	controller := usecase.NewOverlayController(
		translator,
		system.NewClipboard(),
		system.NewKeystroker(),
		system.NewNotifier("AI Japanese Input", cfg.Notifications, log),
		eventSink,
		clockwork.NewRealClock(),
		log,
		usecase.Config{
			DebounceWindow:   cfg.DebounceWindow,
			TranslateTimeout: cfg.TranslateTimeout,
			PasteSettle:      cfg.PasteSettle,
			Theme:            saved.Theme,
			FontFamily:       saved.FontFamily,
			Position:         saved.Position(),
		},
	)

	return Services{
		Controller: controller,
		Config:     cfg,
		Settings:   saved,
		Store:      store,
		Log:        log,
	}, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadSettings resolves the settings file and reads it. A corrupt file is
// logged and replaced with defaults rather than blocking startup.
func loadSettings(cfg config.Config, log *zap.Logger) (*settings.Store, settings.Settings, error) {
	path := cfg.SettingsPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, settings.Settings{}, err
		}
	}

	store := settings.NewStore(path)
	saved, err := store.Load()
	if err != nil {
		log.Warn("settings file unreadable, starting from defaults",
			zap.String("path", path), zap.Error(err))
		saved = applyConfigDefaults(settings.Defaults(), cfg)
		return store, saved, nil
	}
	if !saved.Placed() {
		saved = applyConfigDefaults(saved, cfg)
	}
	return store, saved, nil
}

// applyConfigDefaults lets environment overrides win until the user has
// made a persisted choice of their own.
func applyConfigDefaults(s settings.Settings, cfg config.Config) settings.Settings {
	if cfg.Theme != "" {
		s.Theme = cfg.ThemeValue()
	}
	if cfg.FontFamily != "" {
		s.FontFamily = cfg.FontFamilyValue()
	}
	return s
}

func newTranslator(cfg config.Config) (ports.Translator, error) {
	switch cfg.Engine {
	case config.EngineOpenAI:
		return openai.NewClient(openai.Config{
			APIKey: cfg.OpenAI.APIKey,
			Model:  cfg.OpenAI.Model,
		}), nil
	case config.EngineGTX:
		return gtx.NewClient(gtx.Config{
			BaseURL:    cfg.GTX.BaseURL,
			SourceLang: cfg.GTX.SourceLang,
			TargetLang: cfg.GTX.TargetLang,
		}), nil
	default:
		return nil, fmt.Errorf("unknown translator engine %q", cfg.Engine)
	}
}
