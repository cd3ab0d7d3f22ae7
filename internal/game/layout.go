package game

import "github.com/mattn/go-runewidth"

// LineRange is a half-open [Low, High) index range of words forming one
// display line.
type LineRange struct {
	Low  int
	High int
}

// DivideLines packs words into display lines bounded by maxColumns.
// Words on a line are joined by single spaces; a word is moved to the
// next line when the joined width would reach maxColumns. The first
// word of a line is always accepted, so a word wider than the whole
// line still occupies a line of its own.
func DivideLines(words []string, maxColumns int) []LineRange {
	var lines []LineRange
	pos := 0
	for pos < len(words) {
		low := pos
		width := runewidth.StringWidth(words[pos])
		pos++
		for pos < len(words) {
			joined := width + 1 + runewidth.StringWidth(words[pos])
			if joined >= maxColumns {
				break
			}
			width = joined
			pos++
		}
		lines = append(lines, LineRange{Low: low, High: pos})
	}
	return lines
}
