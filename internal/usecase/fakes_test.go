package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nakamotosai/jp/internal/domain"
)

type fakeTranslator struct {
	mu    sync.Mutex
	calls []string
	fn    func(ctx context.Context, text string) (string, error)
}

func (f *fakeTranslator) Translate(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	fn := f.fn
	f.mu.Unlock()

	if fn == nil {
		return "", errors.New("translator not scripted")
	}
	return fn(ctx, text)
}

func (f *fakeTranslator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeTranslator) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

type fakeClipboard struct {
	mu       sync.Mutex
	err      error
	calls    int
	lastText string
}

func (f *fakeClipboard) SetText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.lastText = text
	return nil
}

type fakeKeystroker struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (f *fakeKeystroker) SendPaste(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeKeystroker) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

type stateChange struct {
	state  domain.SessionState
	reason domain.SessionStateReason
}

type readyEvent struct {
	requestID uint64
	text      string
}

type fakeEventSink struct {
	mu       sync.Mutex
	states   []stateChange
	started  []uint64
	ready    []readyEvent
	errors   []domain.ErrorCode
	displays []domain.Theme
	fonts    []domain.FontFamily
	moves    []domain.Position
}

func (f *fakeEventSink) SessionStateChanged(state domain.SessionState, reason domain.SessionStateReason) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, stateChange{state: state, reason: reason})
}

func (f *fakeEventSink) TranslationStarted(requestID uint64, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, requestID)
}

func (f *fakeEventSink) TranslationReady(requestID uint64, translatedText string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ready = append(f.ready, readyEvent{requestID: requestID, text: translatedText})
}

func (f *fakeEventSink) DisplayChanged(theme domain.Theme, font domain.FontFamily) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.displays = append(f.displays, theme)
	f.fonts = append(f.fonts, font)
}

func (f *fakeEventSink) PositionChanged(pos domain.Position) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = append(f.moves, pos)
}

func (f *fakeEventSink) SessionError(code domain.ErrorCode, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, code)
}

func (f *fakeEventSink) readyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ready)
}

func (f *fakeEventSink) errorCodes() []domain.ErrorCode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ErrorCode(nil), f.errors...)
}

func (f *fakeEventSink) lastReason() domain.SessionStateReason {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.states) == 0 {
		return ""
	}
	return f.states[len(f.states)-1].reason
}

// waitUntil polls cond until it holds or the deadline passes. Debounce
// timers fire on their own goroutine, so assertions after a clock advance
// need a sync point.
func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not reached within deadline")
}
