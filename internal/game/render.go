package game

import "fmt"

// renderer repaints the viewport in place: the visible word lines, a
// timer line, and the input line. EraseLine is expected to return the
// cursor to column zero, so plain newlines are enough between lines.
type renderer struct {
	screen Screen
	first  bool
}

func newRenderer(screen Screen) *renderer {
	return &renderer{screen: screen, first: true}
}

func (r *renderer) frame(s *State) error {
	if !r.first {
		r.screen.MoveCursorUp(displayWindow + 1)
	}
	r.first = false

	visible := s.VisibleLineRanges()
	for i := 0; i < displayWindow; i++ {
		r.screen.EraseLine()
		if i < len(visible) {
			for idx := visible[i].Low; idx < visible[i].High; idx++ {
				r.screen.SetColor(statusColor(s.statuses[idx]))
				r.screen.WriteString(s.words[idx])
				r.screen.WriteString(" ")
			}
			r.screen.ResetColor()
		}
		r.screen.WriteString("\n")
	}
	r.screen.EraseLine()
	r.screen.WriteString(fmt.Sprintf("--- (%d s left) ---\n", s.timeLeft))
	r.screen.EraseLine()
	r.screen.WriteString(s.input)
	return r.screen.Flush()
}

func (r *renderer) summary(sum Summary) error {
	for _, line := range sum.Lines() {
		r.screen.EraseLine()
		r.screen.WriteString(line)
		r.screen.WriteString("\n")
	}
	return r.screen.Flush()
}

func statusColor(status WordStatus) Color {
	switch status {
	case StatusTypingCorrect:
		return ColorYellow
	case StatusTypingWrong, StatusTypedWrong:
		return ColorRed
	case StatusTypedCorrect:
		return ColorGreen
	default:
		return ColorDefault
	}
}
