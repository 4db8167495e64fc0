package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nakamotosai/jp/internal/domain"
)

// OnInputChanged feeds a keystroke-level input update into the debounced
// translation pipeline. Any pending timer is cancelled unconditionally.
// Empty or all-whitespace input is resolved synchronously: translation
// state and the processing flag are cleared and no request is issued.
func (c *OverlayController) OnInputChanged(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.session.inputText = text
	c.stopTimerLocked()

	if strings.TrimSpace(text) == "" {
		c.session.translatedText = ""
		c.session.isProcessing = false
		// Outstanding requests must not repopulate a cleared session.
		c.latestID = 0
		state := c.session.state()
		c.mu.Unlock()

		c.events.SessionStateChanged(state, domain.SessionReasonInputCleared)
		return
	}

	c.timerGen++
	gen := c.timerGen
	c.timer = c.clock.AfterFunc(c.cfg.DebounceWindow, func() { c.fireTranslation(gen) })
	state := c.session.state()
	c.mu.Unlock()

	c.events.SessionStateChanged(state, domain.SessionReasonInputChanged)
}

// stopTimerLocked cancels the pending debounce timer and invalidates its
// generation: a callback that already fired but has not yet taken the lock
// must find itself stale. Idempotent; callers hold c.mu. At most one timer
// is live at any instant.
func (c *OverlayController) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
		c.timerGen++
	}
}

// fireTranslation runs when the debounce window elapses with no further
// input. gen is the timer generation captured at arming time: a stale
// callback, racing a Stop that returned false, bails out here without
// touching the controller's handle on the live timer. It then mints a
// strictly increasing request id and issues exactly one translation
// request for the text current at fire time.
func (c *OverlayController) fireTranslation(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil

	text := c.session.inputText
	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		return
	}

	c.seq++
	id := c.seq
	c.latestID = id
	c.session.isProcessing = true
	state := c.session.state()
	c.mu.Unlock()

	c.events.TranslationStarted(id, text)
	c.events.SessionStateChanged(state, domain.SessionReasonTranslationPending)

	ctx, cancel := context.WithTimeout(c.baseCtx, c.cfg.TranslateTimeout)
	out, err := c.translator.Translate(ctx, text)
	cancel()

	c.finishTranslation(id, out, err)
}

// finishTranslation applies a translation outcome under strict
// last-request-wins semantics: a result for a superseded request id is
// discarded without touching the session.
func (c *OverlayController) finishTranslation(id uint64, out string, err error) {
	c.mu.Lock()
	if c.closed || id != c.latestID {
		c.mu.Unlock()
		c.log.Debug("discarding superseded translation result",
			zap.Uint64("requestID", id))
		return
	}

	if err != nil {
		c.session.isProcessing = false
		state := c.session.state()
		c.mu.Unlock()

		c.log.Warn("translation failed", zap.Uint64("requestID", id), zap.Error(err))
		c.events.SessionError(domain.ErrorCodeTranslation, err.Error())
		c.events.SessionStateChanged(state, domain.SessionReasonTranslationFailed)
		c.notify.Notify("Translation failed. Keep typing or try again.")
		return
	}

	c.session.translatedText = out
	c.session.isProcessing = false
	state := c.session.state()
	c.mu.Unlock()

	c.events.TranslationReady(id, out)
	c.events.SessionStateChanged(state, domain.SessionReasonTranslationReady)
}
