package game

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// avgWordLength is the conventional word length used to convert CPS to WPM.
const avgWordLength = 5

var (
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Summary holds the final counters of a session. Character counts
// include one delimiter keystroke per committed word.
type Summary struct {
	StartedAt    time.Time
	EndedAt      time.Time
	CorrectWords int
	WrongWords   int
	CorrectChars int
	WrongChars   int
	TotalChars   int
	KeysPressed  int
	CPS          float64
	WPM          float64
	Accuracy     float64
}

// Summarize computes the final statistics for a finished state. Speed
// defaults to 0 when the game never started; accuracy defaults to 1
// when no keys were committed.
func Summarize(s *State) Summary {
	sum := Summary{
		StartedAt:   s.startedAt,
		EndedAt:     s.endedAt,
		KeysPressed: s.keysPressed,
	}
	for i, word := range s.words {
		chars := utf8.RuneCountInString(word) + 1
		switch s.statuses[i] {
		case StatusTypedCorrect:
			sum.CorrectWords++
			sum.CorrectChars += chars
		case StatusTypedWrong:
			sum.WrongWords++
			sum.WrongChars += chars
		}
	}
	sum.TotalChars = sum.CorrectChars + sum.WrongChars

	if !sum.StartedAt.IsZero() && !sum.EndedAt.IsZero() {
		if elapsed := sum.EndedAt.Sub(sum.StartedAt).Seconds(); elapsed > 0 {
			sum.CPS = float64(sum.CorrectChars) / elapsed
		}
	}
	sum.WPM = sum.CPS * 60 / avgWordLength

	if sum.KeysPressed > 0 {
		sum.Accuracy = float64(sum.CorrectChars) / float64(sum.KeysPressed)
	} else {
		sum.Accuracy = 1
	}
	return sum
}

// Lines formats the summary as fixed-order labeled lines.
func (sum Summary) Lines() []string {
	return []string{
		fmt.Sprintf("CPS (chars per second): %.1f", sum.CPS),
		fmt.Sprintf("WPM (words per minute): %.1f", sum.WPM),
		fmt.Sprintf("Characters typed:       %d (%s|%s)",
			sum.TotalChars,
			goodStyle.Render(strconv.Itoa(sum.CorrectChars)),
			badStyle.Render(strconv.Itoa(sum.WrongChars))),
		fmt.Sprintf("Keys pressed:           %d", sum.KeysPressed),
		fmt.Sprintf("Accuracy:               %.1f%%", sum.Accuracy*100),
		fmt.Sprintf("Correct words:          %s", goodStyle.Render(strconv.Itoa(sum.CorrectWords))),
		fmt.Sprintf("Wrong words:            %s", badStyle.Render(strconv.Itoa(sum.WrongWords))),
	}
}
