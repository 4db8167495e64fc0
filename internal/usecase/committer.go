package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/nakamotosai/jp/internal/domain"
	"github.com/nakamotosai/jp/internal/ports"
)

// commitPipeline pushes translated text into the focused application:
// clipboard write first, then the simulated paste keystroke. The clipboard
// write is the transaction boundary; the keystroke is best-effort.
type commitPipeline struct {
	clipboard ports.Clipboard
	keys      ports.Keystroker
	notify    ports.Notifier
	events    ports.EventSink
	clock     clockwork.Clock
	settle    time.Duration
	log       *zap.Logger
}

func newCommitPipeline(
	clipboard ports.Clipboard,
	keys ports.Keystroker,
	notify ports.Notifier,
	events ports.EventSink,
	clock clockwork.Clock,
	settle time.Duration,
	log *zap.Logger,
) commitPipeline {
	return commitPipeline{
		clipboard: clipboard,
		keys:      keys,
		notify:    notify,
		events:    events,
		clock:     clock,
		settle:    settle,
		log:       log,
	}
}

// deliver runs the two-step commit. A clipboard failure returns an error
// and nothing else happens. A keystroke failure is reported but the commit
// still counts as delivered: the text is on the clipboard.
func (p commitPipeline) deliver(ctx context.Context, text string) (domain.CommitResult, error) {
	result := domain.CommitResult{Text: text}

	if err := p.clipboard.SetText(ctx, text); err != nil {
		p.events.SessionError(domain.ErrorCodeClipboard, err.Error())
		p.notify.Notify("Could not copy the translation to the clipboard.")
		return result, fmt.Errorf("clipboard write failed: %w", err)
	}
	result.Copied = true

	if p.settle > 0 {
		// Give the clipboard owner time to register the new contents
		// before the paste keystroke lands.
		p.clock.Sleep(p.settle)
	}

	if err := p.keys.SendPaste(ctx); err != nil {
		p.log.Warn("paste keystroke failed", zap.Error(err))
		p.events.SessionError(domain.ErrorCodeCommitSim, err.Error())
		p.notify.Notify("Translation copied, but the paste keystroke failed. Paste it manually.")
		return result, nil
	}
	result.Pasted = true

	return result, nil
}

// Commit pushes the current translation to the focused application and,
// on success, resets the session to idle. Aborts atomically when the
// clipboard write fails: input and translation stay exactly as they were.
func (c *OverlayController) Commit(ctx context.Context) (domain.CommitResult, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.CommitResult{}, ErrClosed
	}
	if c.session.isDragging {
		c.mu.Unlock()
		return domain.CommitResult{}, ErrDragInProgress
	}
	text := c.session.translatedText
	if text == "" {
		c.mu.Unlock()
		return domain.CommitResult{}, ErrNothingToCommit
	}
	c.session.isCommitting = true
	c.mu.Unlock()

	c.events.SessionStateChanged(domain.SessionStateCommitting, domain.SessionReasonCommitStarted)

	result, err := c.committer.deliver(ctx, text)
	if err != nil {
		c.mu.Lock()
		c.session.isCommitting = false
		state := c.session.state()
		c.mu.Unlock()

		c.events.SessionStateChanged(state, domain.SessionReasonCommitAborted)
		return result, err
	}

	c.mu.Lock()
	c.session.isCommitting = false
	c.session.inputText = ""
	c.session.translatedText = ""
	c.session.isProcessing = false
	c.stopTimerLocked()
	c.latestID = 0
	c.mu.Unlock()

	reason := domain.SessionReasonCommitDelivered
	if !result.Pasted {
		reason = domain.SessionReasonPasteFailed
	}
	c.events.SessionStateChanged(domain.SessionStateIdle, reason)
	return result, nil
}
