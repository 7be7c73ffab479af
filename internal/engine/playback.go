// Package engine contains the narrative core: dialogue playback and the
// scene/chapter navigator that ties content, minigames and bindings together.
package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"lucky-wave-server/internal/models"
)

// PlaybackStatus — явное состояние проигрывателя диалогов.
type PlaybackStatus string

const (
	PlaybackIdle            PlaybackStatus = "idle"
	PlaybackTyping          PlaybackStatus = "typing"
	PlaybackAwaitingAdvance PlaybackStatus = "awaiting_advance"
	PlaybackExhausted       PlaybackStatus = "exhausted"
)

// Playback reveals dialogue lines one character at a time and reports when
// the line set is exhausted. The mutex exists only because the reveal timer
// fires on its own goroutine; all external transitions happen on the
// caller's (run-to-completion) event loop.
type Playback struct {
	mu       sync.Mutex
	log      *zap.Logger
	interval time.Duration

	lines  []models.DialogueLine
	index  int
	status PlaybackStatus

	// текущая строка и прогресс раскрытия
	chars    []rune
	revealed int

	// generation stamp: every (re)start or cancel bumps it, a timer that
	// wakes up with a stale stamp does nothing.
	gen   uint64
	timer *time.Timer
}

// NewPlayback creates an idle playback. interval is the per-character reveal
// delay; zero or negative reveals each line instantly (used in tests and for
// an "instant text" player setting).
func NewPlayback(log *zap.Logger, interval time.Duration) *Playback {
	return &Playback{
		log:      log.Named("Playback"),
		interval: interval,
		status:   PlaybackIdle,
	}
}

// Start begins playback of a line set from index 0. An empty set is not a
// special state: playback reports Exhausted immediately.
func (p *Playback) Start(lines []models.DialogueLine) {
	p.StartAt(lines, 0)
}

// StartAt begins playback at the given line index, used when restoring a
// snapshot. The index is clamped to [0, len(lines)]; an index past the last
// line lands directly in Exhausted. Reveal always restarts from character 0.
func (p *Playback) StartAt(lines []models.DialogueLine, index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelTimerLocked()
	p.lines = lines
	if index < 0 {
		index = 0
	}
	if index > len(lines) {
		index = len(lines)
	}
	p.index = index
	if p.index >= len(p.lines) {
		p.status = PlaybackExhausted
		p.chars = nil
		p.revealed = 0
		return
	}
	p.beginLineLocked()
}

// Stop tears playback down, cancelling any pending reveal timer.
func (p *Playback) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelTimerLocked()
	p.status = PlaybackIdle
	p.lines = nil
	p.chars = nil
	p.index = 0
	p.revealed = 0
}

// Advance moves to the next line. Valid only while awaiting advance; any
// other state is a benign no-op (double-fire guard for rapid input).
// Returns true if the call changed state.
func (p *Playback) Advance() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != PlaybackAwaitingAdvance {
		return false
	}
	p.index++
	if p.index < len(p.lines) {
		p.beginLineLocked()
		return true
	}
	p.cancelTimerLocked()
	p.status = PlaybackExhausted
	p.chars = nil
	p.revealed = 0
	return true
}

// Skip completes the current line's reveal immediately. Outside of an active
// reveal it is a no-op.
func (p *Playback) Skip() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != PlaybackTyping {
		return
	}
	p.cancelTimerLocked()
	p.revealed = len(p.chars)
	p.status = PlaybackAwaitingAdvance
}

// Status returns the current playback state.
func (p *Playback) Status() PlaybackStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Count returns the number of lines in the active set.
func (p *Playback) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lines)
}

// Index returns the current line index. After exhaustion it equals the line
// count.
func (p *Playback) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Current returns the line being played and whether one is active.
func (p *Playback) Current() (models.DialogueLine, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index >= len(p.lines) {
		return models.DialogueLine{}, false
	}
	return p.lines[p.index], true
}

// RevealedText returns the currently visible prefix of the active line.
func (p *Playback) RevealedText() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return string(p.chars[:p.revealed])
}

// beginLineLocked запускает раскрытие текущей строки с нулевого символа.
func (p *Playback) beginLineLocked() {
	p.cancelTimerLocked()
	p.chars = []rune(p.lines[p.index].Text)
	p.revealed = 0
	if p.interval <= 0 || len(p.chars) == 0 {
		p.revealed = len(p.chars)
		p.status = PlaybackAwaitingAdvance
		return
	}
	p.status = PlaybackTyping
	gen := p.gen
	p.timer = time.AfterFunc(p.interval, func() { p.tick(gen) })
}

func (p *Playback) tick(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || p.status != PlaybackTyping {
		return // устаревший таймер
	}
	p.revealed++
	if p.revealed >= len(p.chars) {
		p.revealed = len(p.chars)
		p.status = PlaybackAwaitingAdvance
		return
	}
	p.timer = time.AfterFunc(p.interval, func() { p.tick(gen) })
}

func (p *Playback) cancelTimerLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
