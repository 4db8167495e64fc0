package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/nakamotosai/jp/internal/domain"
	"github.com/nakamotosai/jp/internal/ports"
)

var (
	ErrNothingToCommit = errors.New("no translated text to commit")
	ErrDragInProgress  = errors.New("commit is unavailable while dragging")
	ErrClosed          = errors.New("overlay controller is closed")
)

// Config controls overlay timing and initial display attributes.
type Config struct {
	DebounceWindow   time.Duration
	TranslateTimeout time.Duration
	PasteSettle      time.Duration
	Theme            domain.Theme
	FontFamily       domain.FontFamily
	Position         domain.Position
}

// OverlayController owns the overlay session: debounced translation,
// drag state, display attributes and the commit sequence. All session
// mutation is funnelled through its single mutex.
type OverlayController struct {
	translator ports.Translator
	committer  commitPipeline
	notify     ports.Notifier
	events     ports.EventSink
	clock      clockwork.Clock
	log        *zap.Logger
	cfg        Config

	baseCtx context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	session overlaySession

	// Debounced translation state, guarded by mu.
	timer    clockwork.Timer
	timerGen uint64
	seq      uint64
	latestID uint64

	closed bool
}

func NewOverlayController(
	translator ports.Translator,
	clipboard ports.Clipboard,
	keys ports.Keystroker,
	notify ports.Notifier,
	events ports.EventSink,
	clock clockwork.Clock,
	log *zap.Logger,
	cfg Config,
) *OverlayController {
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = 350 * time.Millisecond
	}
	if cfg.TranslateTimeout <= 0 {
		cfg.TranslateTimeout = 10 * time.Second
	}
	if cfg.Theme == "" {
		cfg.Theme = domain.ThemeDark
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = domain.FontSans
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if log == nil {
		log = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &OverlayController{
		translator: translator,
		committer:  newCommitPipeline(clipboard, keys, notify, events, clock, cfg.PasteSettle, log),
		notify:     notify,
		events:     events,
		clock:      clock,
		log:        log,
		cfg:        cfg,
		baseCtx:    ctx,
		cancel:     cancel,
		session: overlaySession{
			theme:      cfg.Theme,
			fontFamily: cfg.FontFamily,
			position:   cfg.Position,
		},
	}
}

// Snapshot returns the current session for UI hydration.
func (c *OverlayController) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.snapshot()
}

// BeginDrag enters the dragging state, recording the pointer offset
// relative to the current window origin.
func (c *OverlayController) BeginDrag(pointerX, pointerY int) {
	c.mu.Lock()
	c.session.isDragging = true
	c.session.dragOffset = domain.Position{
		X: pointerX - c.session.position.X,
		Y: pointerY - c.session.position.Y,
	}
	c.mu.Unlock()

	c.events.SessionStateChanged(domain.SessionStateDragging, domain.SessionReasonDragStarted)
}

// DragTo applies the raw pointer delta while dragging. Clamping to screen
// bounds is a presentation policy, not applied here.
func (c *OverlayController) DragTo(pointerX, pointerY int) {
	c.mu.Lock()
	if !c.session.isDragging {
		c.mu.Unlock()
		return
	}
	pos := domain.Position{
		X: pointerX - c.session.dragOffset.X,
		Y: pointerY - c.session.dragOffset.Y,
	}
	c.session.position = pos
	c.mu.Unlock()

	c.events.PositionChanged(pos)
}

// EndDrag leaves the dragging state. The final position persists for the
// session; longer-lived persistence is a settings concern of the caller.
func (c *OverlayController) EndDrag() domain.Position {
	c.mu.Lock()
	if !c.session.isDragging {
		pos := c.session.position
		c.mu.Unlock()
		return pos
	}
	c.session.isDragging = false
	pos := c.session.position
	state := c.session.state()
	c.mu.Unlock()

	c.events.SessionStateChanged(state, domain.SessionReasonDragEnded)
	return pos
}

// SetTheme applies an explicit theme. Legal in any state.
func (c *OverlayController) SetTheme(theme domain.Theme) {
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return
	}
	c.mu.Lock()
	c.session.theme = theme
	font := c.session.fontFamily
	c.mu.Unlock()

	c.events.DisplayChanged(theme, font)
}

// ToggleTheme flips light and dark.
func (c *OverlayController) ToggleTheme() domain.Theme {
	c.mu.Lock()
	c.session.theme = c.session.theme.Toggle()
	theme, font := c.session.theme, c.session.fontFamily
	c.mu.Unlock()

	c.events.DisplayChanged(theme, font)
	return theme
}

// ToggleFontFamily flips sans and serif.
func (c *OverlayController) ToggleFontFamily() domain.FontFamily {
	c.mu.Lock()
	c.session.fontFamily = c.session.fontFamily.Toggle()
	theme, font := c.session.theme, c.session.fontFamily
	c.mu.Unlock()

	c.events.DisplayChanged(theme, font)
	return font
}

// Hide reports the overlay being dismissed. Text is kept; visibility
// itself is handled by the presentation layer.
func (c *OverlayController) Hide() {
	c.mu.Lock()
	state := c.session.state()
	c.mu.Unlock()

	c.notify.Notify("Overlay hidden. Press the toggle shortcut to bring it back.")
	c.events.SessionStateChanged(state, domain.SessionReasonOverlayHidden)
}

// Close stops the pending timer and suppresses any in-flight translation.
func (c *OverlayController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.latestID = 0
	c.mu.Unlock()

	c.cancel()
}
