package domain

// SessionState models the overlay interaction lifecycle.
type SessionState string

const (
	SessionStateIdle       SessionState = "idle"
	SessionStateTyping     SessionState = "typing"
	SessionStateDragging   SessionState = "dragging"
	SessionStateCommitting SessionState = "committing"
)

// SessionStateReason provides a structured reason for state transitions.
type SessionStateReason string

const (
	SessionReasonBootReady          SessionStateReason = "boot_ready"
	SessionReasonInputChanged       SessionStateReason = "input_changed"
	SessionReasonInputCleared       SessionStateReason = "input_cleared"
	SessionReasonTranslationPending SessionStateReason = "translation_pending"
	SessionReasonTranslationReady   SessionStateReason = "translation_ready"
	SessionReasonTranslationFailed  SessionStateReason = "translation_failed"
	SessionReasonDragStarted        SessionStateReason = "drag_started"
	SessionReasonDragEnded          SessionStateReason = "drag_ended"
	SessionReasonCommitStarted      SessionStateReason = "commit_started"
	SessionReasonCommitDelivered    SessionStateReason = "commit_delivered"
	SessionReasonCommitAborted      SessionStateReason = "commit_aborted"
	SessionReasonPasteFailed        SessionStateReason = "paste_failed"
	SessionReasonOverlayHidden      SessionStateReason = "overlay_hidden"
)

// ErrorCode identifies non-fatal backend errors.
type ErrorCode string

const (
	ErrorCodeStartup     ErrorCode = "startup"
	ErrorCodeTranslation ErrorCode = "translation"
	ErrorCodeClipboard   ErrorCode = "clipboard"
	ErrorCodeCommitSim   ErrorCode = "commit_simulation"
	ErrorCodeSettings    ErrorCode = "settings"
	ErrorCodeAutostart   ErrorCode = "autostart"
)

// Theme is the overlay colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// FontFamily is the overlay typeface class.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
)

// Toggle returns the opposite font family.
func (f FontFamily) Toggle() FontFamily {
	if f == FontSans {
		return FontSerif
	}
	return FontSans
}

// Position is the overlay window origin in screen coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is a point-in-time copy of the overlay session for the UI.
type Snapshot struct {
	InputText      string       `json:"inputText"`
	TranslatedText string       `json:"translatedText"`
	IsProcessing   bool         `json:"isProcessing"`
	Theme          Theme        `json:"theme"`
	FontFamily     FontFamily   `json:"fontFamily"`
	Position       Position     `json:"position"`
	IsDragging     bool         `json:"isDragging"`
	State          SessionState `json:"state"`
}

// CommitResult is returned once a commit attempt has run.
type CommitResult struct {
	Text   string `json:"text"`
	Copied bool   `json:"copied"`
	Pasted bool   `json:"pasted"`
}
