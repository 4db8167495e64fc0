package ports

import (
	"context"

	"github.com/nakamotosai/jp/internal/domain"
)

// Translator turns Chinese source text into Japanese.
// Implementations are never called with empty or all-whitespace input.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Clipboard writes text into the system clipboard.
type Clipboard interface {
	SetText(ctx context.Context, text string) error
}

// Keystroker injects the paste-and-send keystroke into the focused application.
type Keystroker interface {
	SendPaste(ctx context.Context) error
}

// Notifier delivers a fire-and-forget user-visible message.
type Notifier interface {
	Notify(message string)
}

// EventSink emits backend state/events to the UI.
type EventSink interface {
	SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason)
	TranslationStarted(requestID uint64, sourceText string)
	TranslationReady(requestID uint64, translatedText string)
	DisplayChanged(theme domain.Theme, font domain.FontFamily)
	PositionChanged(pos domain.Position)
	SessionError(code domain.ErrorCode, detail string)
}
