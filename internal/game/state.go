package game

import (
	"strings"
	"time"
)

// displayWindow is the number of lines shown at once.
const displayWindow = 2

// State owns all mutable data of one session. It is mutated exclusively
// by the Game loop; everything exported is read-only access.
type State struct {
	words    []string
	statuses []WordStatus
	lines    []LineRange

	current     int
	input       string
	timeLeft    int
	startedAt   time.Time
	endedAt     time.Time
	keysPressed int
	wordKeys    int
}

// NewState builds the session state for a non-empty word sample.
func NewState(words []string, maxTime, maxColumns int) *State {
	statuses := make([]WordStatus, len(words))
	statuses[0] = StatusTypingCorrect
	return &State{
		words:    words,
		statuses: statuses,
		lines:    DivideLines(words, maxColumns),
		timeLeft: maxTime,
	}
}

// IsFinished reports whether the session has ended.
func (s *State) IsFinished() bool {
	return !s.endedAt.IsZero()
}

// Started reports whether the first keystroke has been consumed.
func (s *State) Started() bool {
	return !s.startedAt.IsZero()
}

// TimeLeft returns the remaining time in seconds.
func (s *State) TimeLeft() int {
	return s.timeLeft
}

// KeysPressed returns the cumulative committed keystroke count.
func (s *State) KeysPressed() int {
	return s.keysPressed
}

// CurrentWordIndex returns the index of the word being edited. It
// equals the word count once every word has been committed.
func (s *State) CurrentWordIndex() int {
	return s.current
}

// Input returns the text typed so far for the current word.
func (s *State) Input() string {
	return s.input
}

// StartedAt returns the first-keystroke timestamp, zero if never started.
func (s *State) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt returns the end timestamp, zero while the game is running.
func (s *State) EndedAt() time.Time {
	return s.endedAt
}

// CurrentLineIndex returns the display line containing the current
// word, or the last line once the final word has been committed.
func (s *State) CurrentLineIndex() int {
	for i, line := range s.lines {
		if s.current >= line.Low && s.current < line.High {
			return i
		}
	}
	return len(s.lines) - 1
}

// VisibleLineRanges returns the line ranges inside the viewport, in
// order, starting at the current line.
func (s *State) VisibleLineRanges() []LineRange {
	current := s.CurrentLineIndex()
	var visible []LineRange
	for i := 0; i < displayWindow; i++ {
		if current+i >= 0 && current+i < len(s.lines) {
			visible = append(visible, s.lines[current+i])
		}
	}
	return visible
}

func (s *State) start(now time.Time) {
	if s.startedAt.IsZero() {
		s.startedAt = now
	}
}

func (s *State) keyPressed(text string) {
	s.input += text
	s.wordKeys++
	s.updateTypingStatus()
}

func (s *State) backspacePressed() {
	if runes := []rune(s.input); len(runes) > 0 {
		s.input = string(runes[:len(runes)-1])
	}
	s.wordKeys++
	s.updateTypingStatus()
}

func (s *State) wordBackspacePressed() {
	s.input = ""
	s.wordKeys++
	s.updateTypingStatus()
}

func (s *State) wordFinished(now time.Time) {
	s.keysPressed += s.wordKeys + 1
	s.wordKeys = 0
	if s.words[s.current] == s.input {
		s.statuses[s.current] = StatusTypedCorrect
	} else {
		s.statuses[s.current] = StatusTypedWrong
	}
	s.input = ""

	s.current++
	if s.current == len(s.words) {
		s.finish(now)
		return
	}
	s.statuses[s.current] = StatusTypingCorrect
}

// finish ends the session. Only the first call sets the end timestamp.
// A word still being edited goes back to untyped so it counts neither
// as correct nor as wrong.
func (s *State) finish(now time.Time) {
	if !s.endedAt.IsZero() {
		return
	}
	s.endedAt = now
	if s.current < len(s.words) {
		s.statuses[s.current] = StatusUntyped
	}
}

func (s *State) tick(now time.Time) {
	if s.IsFinished() || s.timeLeft <= 0 {
		return
	}
	s.timeLeft--
	if s.timeLeft == 0 {
		s.finish(now)
	}
}

func (s *State) updateTypingStatus() {
	if strings.HasPrefix(s.words[s.current], s.input) {
		s.statuses[s.current] = StatusTypingCorrect
	} else {
		s.statuses[s.current] = StatusTypingWrong
	}
}
