package game

import (
	"testing"
	"time"
)

func countTyping(s *State) int {
	n := 0
	for _, status := range s.statuses {
		if status == StatusTypingCorrect || status == StatusTypingWrong {
			n++
		}
	}
	return n
}

func TestNewStateMarksFirstWordTyping(t *testing.T) {
	s := NewState([]string{"cat", "dog"}, 60, 80)
	if s.statuses[0] != StatusTypingCorrect {
		t.Fatalf("expected first word pre-marked typing, got %v", s.statuses[0])
	}
	if s.statuses[1] != StatusUntyped {
		t.Fatalf("expected later words untyped, got %v", s.statuses[1])
	}
	if s.IsFinished() || s.Started() {
		t.Fatalf("expected fresh state to be neither started nor finished")
	}
}

func TestTypingStatusFollowsPrefix(t *testing.T) {
	s := NewState([]string{"cat"}, 60, 80)
	s.keyPressed("c")
	if s.statuses[0] != StatusTypingCorrect {
		t.Fatalf("expected typing correct after matching prefix")
	}
	s.keyPressed("x")
	if s.statuses[0] != StatusTypingWrong {
		t.Fatalf("expected typing wrong after mismatch")
	}
	s.backspacePressed()
	if s.statuses[0] != StatusTypingCorrect {
		t.Fatalf("expected typing correct after backspace restores prefix")
	}
}

func TestWordFinishedCorrect(t *testing.T) {
	s := NewState([]string{"hello", "world"}, 60, 80)
	for _, ch := range "hello" {
		s.keyPressed(string(ch))
	}
	s.wordFinished(time.Now())

	if s.statuses[0] != StatusTypedCorrect {
		t.Fatalf("expected typed correct, got %v", s.statuses[0])
	}
	if s.current != 1 {
		t.Fatalf("expected index 1, got %d", s.current)
	}
	if s.input != "" {
		t.Fatalf("expected cleared input, got %q", s.input)
	}
	if s.keysPressed != 6 {
		t.Fatalf("expected 6 keys pressed (5 edits + delimiter), got %d", s.keysPressed)
	}
	if s.statuses[1] != StatusTypingCorrect {
		t.Fatalf("expected next word marked typing")
	}
}

func TestWordFinishedWrong(t *testing.T) {
	s := NewState([]string{"hello", "world"}, 60, 80)
	for _, ch := range "helo" {
		s.keyPressed(string(ch))
	}
	s.wordFinished(time.Now())

	if s.statuses[0] != StatusTypedWrong {
		t.Fatalf("expected typed wrong, got %v", s.statuses[0])
	}
	if s.current != 1 {
		t.Fatalf("expected index 1, got %d", s.current)
	}
}

func TestBackspaceRecoversWord(t *testing.T) {
	s := NewState([]string{"cat", "dog"}, 60, 80)
	s.keyPressed("c")
	s.keyPressed("a")
	s.keyPressed("x")
	s.backspacePressed()
	s.keyPressed("t")

	if s.input != "cat" {
		t.Fatalf("expected buffer %q, got %q", "cat", s.input)
	}
	if s.wordKeys != 5 {
		t.Fatalf("expected 5 edits, got %d", s.wordKeys)
	}
	s.wordFinished(time.Now())
	if s.statuses[0] != StatusTypedCorrect {
		t.Fatalf("expected typed correct after backspace recovery")
	}
	if s.keysPressed != 6 {
		t.Fatalf("expected 6 keys pressed, got %d", s.keysPressed)
	}
}

func TestBackspaceOnEmptyBufferIsNoop(t *testing.T) {
	s := NewState([]string{"cat"}, 60, 80)
	s.backspacePressed()
	if s.input != "" {
		t.Fatalf("expected empty buffer, got %q", s.input)
	}
	if s.wordKeys != 1 {
		t.Fatalf("expected edit counter to advance, got %d", s.wordKeys)
	}
}

func TestWordBackspaceClearsBuffer(t *testing.T) {
	s := NewState([]string{"cat"}, 60, 80)
	s.keyPressed("c")
	s.keyPressed("a")
	s.wordBackspacePressed()
	if s.input != "" {
		t.Fatalf("expected cleared buffer, got %q", s.input)
	}
	if s.wordKeys != 3 {
		t.Fatalf("expected 3 edits, got %d", s.wordKeys)
	}
	if s.statuses[0] != StatusTypingCorrect {
		t.Fatalf("expected empty buffer to be a correct prefix")
	}
}

func TestExactlyOneTypingWordUntilFinish(t *testing.T) {
	s := NewState([]string{"a", "b", "c"}, 60, 80)
	if countTyping(s) != 1 {
		t.Fatalf("expected exactly one typing word, got %d", countTyping(s))
	}
	s.keyPressed("a")
	s.wordFinished(time.Now())
	if countTyping(s) != 1 {
		t.Fatalf("expected exactly one typing word after commit, got %d", countTyping(s))
	}
	s.finish(time.Now())
	if countTyping(s) != 0 {
		t.Fatalf("expected no typing words after finish, got %d", countTyping(s))
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	s := NewState([]string{"cat"}, 60, 80)
	first := time.Unix(100, 0)
	second := time.Unix(200, 0)
	s.finish(first)
	s.finish(second)
	if !s.endedAt.Equal(first) {
		t.Fatalf("expected end timestamp %v to survive second finish, got %v", first, s.endedAt)
	}
}

func TestTickToFinish(t *testing.T) {
	s := NewState([]string{"cat"}, 1, 80)
	s.tick(time.Now())
	if s.timeLeft != 0 {
		t.Fatalf("expected time left 0, got %d", s.timeLeft)
	}
	if !s.IsFinished() {
		t.Fatalf("expected finished after time ran out")
	}
	if s.statuses[0] == StatusTypedCorrect || s.statuses[0] == StatusTypedWrong {
		t.Fatalf("expected no word committed, got %v", s.statuses[0])
	}
}

func TestTickNeverGoesNegative(t *testing.T) {
	s := NewState([]string{"cat"}, 1, 80)
	for i := 0; i < 5; i++ {
		s.tick(time.Now())
	}
	if s.timeLeft != 0 {
		t.Fatalf("expected time left to stay at 0, got %d", s.timeLeft)
	}
}

func TestFinishingLastWordEndsGame(t *testing.T) {
	s := NewState([]string{"a"}, 60, 80)
	s.keyPressed("a")
	s.wordFinished(time.Now())
	if !s.IsFinished() {
		t.Fatalf("expected finished after last word")
	}
	if s.current != 1 {
		t.Fatalf("expected index to equal word count, got %d", s.current)
	}
}

func TestCurrentLineTracksProgress(t *testing.T) {
	// "aa bb" on line 0, "cc dd" on line 1, "ee" on line 2.
	words := []string{"aa", "bb", "cc", "dd", "ee"}
	s := NewState(words, 60, 6)
	if s.CurrentLineIndex() != 0 {
		t.Fatalf("expected line 0, got %d", s.CurrentLineIndex())
	}
	visible := s.VisibleLineRanges()
	if len(visible) != 2 || visible[0].Low != 0 {
		t.Fatalf("unexpected viewport %+v", visible)
	}

	for i := 0; i < 2; i++ {
		s.keyPressed("x")
		s.wordFinished(time.Now())
	}
	if s.CurrentLineIndex() != 1 {
		t.Fatalf("expected line 1, got %d", s.CurrentLineIndex())
	}

	for i := 0; i < 3; i++ {
		s.keyPressed("x")
		s.wordFinished(time.Now())
	}
	// All words committed: index is past the end, so the last line wins.
	if s.CurrentLineIndex() != 2 {
		t.Fatalf("expected last line, got %d", s.CurrentLineIndex())
	}
	visible = s.VisibleLineRanges()
	if len(visible) != 1 {
		t.Fatalf("expected one visible line at the end, got %d", len(visible))
	}
}
