package game

// Color identifies a semantic text color on the screen.
type Color int

// Screen colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
)

// Screen is the terminal capability the game renders through. The game
// never writes to a stream directly, which keeps the controller
// testable without a terminal.
type Screen interface {
	MoveCursorUp(n int)
	EraseLine()
	SetColor(c Color)
	ResetColor()
	WriteString(text string)
	Flush() error
}
