package usecase

import (
	"github.com/nakamotosai/jp/internal/domain"
)

// overlaySession is the single mutable session owned by the controller.
// Every field is guarded by OverlayController.mu; no other code mutates it.
type overlaySession struct {
	inputText      string
	translatedText string
	isProcessing   bool

	theme      domain.Theme
	fontFamily domain.FontFamily

	position   domain.Position
	isDragging bool
	dragOffset domain.Position

	isCommitting bool
}

// state derives the interaction state: committing and dragging are explicit
// phases, typing is implied by non-empty input.
func (s *overlaySession) state() domain.SessionState {
	switch {
	case s.isCommitting:
		return domain.SessionStateCommitting
	case s.isDragging:
		return domain.SessionStateDragging
	case s.inputText != "":
		return domain.SessionStateTyping
	default:
		return domain.SessionStateIdle
	}
}

func (s *overlaySession) snapshot() domain.Snapshot {
	return domain.Snapshot{
		InputText:      s.inputText,
		TranslatedText: s.translatedText,
		IsProcessing:   s.isProcessing,
		Theme:          s.theme,
		FontFamily:     s.fontFamily,
		Position:       s.position,
		IsDragging:     s.isDragging,
		State:          s.state(),
	}
}
