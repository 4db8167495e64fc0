package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/nakamotosai/jp/internal/autostart"
	"github.com/nakamotosai/jp/internal/bootstrap"
	"github.com/nakamotosai/jp/internal/config"
	"github.com/nakamotosai/jp/internal/domain"
	"github.com/nakamotosai/jp/internal/settings"
	"github.com/nakamotosai/jp/internal/usecase"
)

const (
	eventSession  = "jp:session"
	eventPending  = "jp:pending"
	eventReady    = "jp:ready"
	eventDisplay  = "jp:display"
	eventScale    = "jp:scale"
	eventPosition = "jp:position"
	eventError    = "jp:error"
)

// App is the Wails application root.
type App struct {
	ctx context.Context

	controller *usecase.OverlayController
	cfg        config.Config
	log        *zap.Logger
	bootErr    error

	mu    sync.Mutex
	store *settings.Store
	saved settings.Settings
}

func NewApp() *App {
	return &App{log: zap.NewNop()}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	services, err := bootstrap.Build(a)
	if err != nil {
		a.bootErr = err
		a.SessionError(domain.ErrorCodeStartup, err.Error())
		return
	}

	a.cfg = services.Config
	a.controller = services.Controller
	a.log = services.Log
	a.store = services.Store
	a.saved = services.Settings

	if a.saved.Placed() {
		runtime.WindowSetPosition(ctx, a.saved.WindowX, a.saved.WindowY)
	} else {
		runtime.WindowCenter(ctx)
	}
	a.SessionStateChanged(domain.SessionStateIdle, domain.SessionReasonBootReady)
}

func (a *App) shutdown(_ context.Context) {
	if a.controller != nil {
		a.controller.Close()
	}
	_ = a.log.Sync()
}

// OnInputChanged feeds the current overlay text into the session.
func (a *App) OnInputChanged(text string) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.controller.OnInputChanged(text)
	return nil
}

// CommitTranslation delivers the translated text into the focused
// application. Committing with nothing to deliver is a no-op.
func (a *App) CommitTranslation() (domain.CommitResult, error) {
	if err := a.requireReady(); err != nil {
		return domain.CommitResult{}, err
	}
	result, err := a.controller.Commit(a.ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrNothingToCommit) {
			return domain.CommitResult{}, nil
		}
		return domain.CommitResult{}, err
	}
	return result, nil
}

// BeginDrag starts repositioning; pointer coordinates are in screen space.
func (a *App) BeginDrag(pointerX, pointerY int) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.controller.BeginDrag(pointerX, pointerY)
	return nil
}

// DragTo moves the overlay to follow the pointer.
func (a *App) DragTo(pointerX, pointerY int) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.controller.DragTo(pointerX, pointerY)
	return nil
}

// EndDrag finishes repositioning and persists the final origin.
func (a *App) EndDrag() (domain.Position, error) {
	if err := a.requireReady(); err != nil {
		return domain.Position{}, err
	}
	pos := a.controller.EndDrag()
	a.persist(func(s *settings.Settings) {
		s.WindowX = pos.X
		s.WindowY = pos.Y
	})
	return pos, nil
}

// SetTheme selects a specific colour scheme.
func (a *App) SetTheme(theme string) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.controller.SetTheme(domain.Theme(theme))
	return nil
}

// ToggleTheme flips between light and dark.
func (a *App) ToggleTheme() (domain.Theme, error) {
	if err := a.requireReady(); err != nil {
		return "", err
	}
	return a.controller.ToggleTheme(), nil
}

// ToggleFontFamily flips between sans and serif.
func (a *App) ToggleFontFamily() (domain.FontFamily, error) {
	if err := a.requireReady(); err != nil {
		return "", err
	}
	return a.controller.ToggleFontFamily(), nil
}

// SetScale persists a new overlay scale factor and notifies the frontend.
func (a *App) SetScale(scale float64) error {
	if scale < 0.5 || scale > 2.0 {
		return fmt.Errorf("scale %.2f out of range [0.5, 2.0]", scale)
	}
	a.persist(func(s *settings.Settings) {
		s.Scale = scale
	})
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, eventScale, scale)
	}
	return nil
}

// GetScale returns the persisted overlay scale factor.
func (a *App) GetScale() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.saved.Scale <= 0 {
		return 1.0
	}
	return a.saved.Scale
}

// HideOverlay hides the window without discarding session text.
func (a *App) HideOverlay() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.controller.Hide()
	runtime.WindowHide(a.ctx)
	return nil
}

// ShowOverlay restores a hidden window.
func (a *App) ShowOverlay() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	runtime.WindowShow(a.ctx)
	return nil
}

// GetSnapshot returns the current session for UI hydration.
func (a *App) GetSnapshot() domain.Snapshot {
	if a.controller == nil {
		return domain.Snapshot{
			Theme:      domain.ThemeDark,
			FontFamily: domain.FontSans,
			State:      domain.SessionStateIdle,
		}
	}
	return a.controller.Snapshot()
}

// EnableAutostart registers the app to launch at login.
func (a *App) EnableAutostart() error {
	exe, err := os.Executable()
	if err != nil {
		a.SessionError(domain.ErrorCodeAutostart, err.Error())
		return err
	}
	if err := autostart.Enable(exe); err != nil {
		a.SessionError(domain.ErrorCodeAutostart, err.Error())
		return err
	}
	return nil
}

// DisableAutostart removes the login entry.
func (a *App) DisableAutostart() error {
	if err := autostart.Disable(); err != nil {
		a.SessionError(domain.ErrorCodeAutostart, err.Error())
		return err
	}
	return nil
}

// AutostartEnabled reports whether a login entry exists. Unsupported
// platforms report false without an error.
func (a *App) AutostartEnabled() (bool, error) {
	enabled, err := autostart.Enabled()
	if errors.Is(err, autostart.ErrUnsupported) {
		return false, nil
	}
	return enabled, err
}

// GetRuntimeInfo returns non-sensitive config for the UI.
func (a *App) GetRuntimeInfo() map[string]string {
	if a.bootErr != nil {
		return map[string]string{"error": a.bootErr.Error()}
	}

	info := map[string]string{
		"engine":         a.cfg.Engine,
		"debounceWindow": a.cfg.DebounceWindow.String(),
		"sourceLang":     a.cfg.GTX.SourceLang,
		"targetLang":     a.cfg.GTX.TargetLang,
	}
	if a.cfg.Engine == config.EngineOpenAI {
		info["model"] = a.cfg.OpenAI.Model
	}
	return info
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.controller == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

// persist mutates the saved settings and writes them through the store.
func (a *App) persist(mutate func(*settings.Settings)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store == nil {
		return
	}
	mutate(&a.saved)
	if err := a.store.Save(a.saved); err != nil {
		a.log.Warn("settings write failed", zap.Error(err))
		a.SessionError(domain.ErrorCodeSettings, err.Error())
	}
}

// SessionStateChanged emits session lifecycle updates to the frontend.
func (a *App) SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventSession, map[string]string{
		"state":   string(state),
		"reason":  string(reason),
		"message": sessionReasonMessage(reason),
	})
}

// TranslationStarted emits the pending marker for a new request.
func (a *App) TranslationStarted(requestID uint64, sourceText string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventPending, map[string]any{
		"requestId": requestID,
		"source":    sourceText,
	})
}

// TranslationReady emits the translated text once a request wins.
func (a *App) TranslationReady(requestID uint64, translatedText string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventReady, map[string]any{
		"requestId": requestID,
		"text":      translatedText,
	})
}

// DisplayChanged emits theme and font updates and persists them.
func (a *App) DisplayChanged(theme domain.Theme, font domain.FontFamily) {
	a.persist(func(s *settings.Settings) {
		s.Theme = theme
		s.FontFamily = font
	})
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventDisplay, map[string]string{
		"theme": string(theme),
		"font":  string(font),
	})
}

// PositionChanged moves the native window while a drag is live.
func (a *App) PositionChanged(pos domain.Position) {
	if a.ctx == nil {
		return
	}
	runtime.WindowSetPosition(a.ctx, pos.X, pos.Y)
	runtime.EventsEmit(a.ctx, eventPosition, pos)
}

// SessionError emits backend errors to the UI.
func (a *App) SessionError(code domain.ErrorCode, detail string) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, eventError, map[string]string{
		"code":    string(code),
		"message": errorMessage(code, detail),
		"detail":  detail,
	})
}

func sessionReasonMessage(reason domain.SessionStateReason) string {
	switch reason {
	case domain.SessionReasonBootReady:
		return "Ready"
	case domain.SessionReasonInputChanged:
		return "Typing"
	case domain.SessionReasonInputCleared:
		return "Input cleared"
	case domain.SessionReasonTranslationPending:
		return "Translating..."
	case domain.SessionReasonTranslationReady:
		return "Translation ready"
	case domain.SessionReasonTranslationFailed:
		return "Translation failed"
	case domain.SessionReasonDragStarted:
		return "Repositioning"
	case domain.SessionReasonDragEnded:
		return "Position saved"
	case domain.SessionReasonCommitStarted:
		return "Committing..."
	case domain.SessionReasonCommitDelivered:
		return "Text delivered"
	case domain.SessionReasonCommitAborted:
		return "Commit aborted"
	case domain.SessionReasonPasteFailed:
		return "Copied to clipboard (paste failed)"
	case domain.SessionReasonOverlayHidden:
		return "Overlay hidden"
	default:
		return ""
	}
}

func errorMessage(code domain.ErrorCode, detail string) string {
	switch code {
	case domain.ErrorCodeStartup:
		return "Startup failed"
	case domain.ErrorCodeTranslation:
		return "Translation error"
	case domain.ErrorCodeClipboard:
		return "Clipboard write failed"
	case domain.ErrorCodeCommitSim:
		return "Paste simulation failed"
	case domain.ErrorCodeSettings:
		return "Could not save settings"
	case domain.ErrorCodeAutostart:
		return "Autostart change failed"
	default:
		if detail == "" {
			return "Unknown error"
		}
		return detail
	}
}
