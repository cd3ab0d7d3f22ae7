// Package game implements the typing game state machine and the
// input/tick/render coordination.
package game

// WordStatus tracks the lifecycle of a single word within a session.
type WordStatus int

// Word statuses. A word is "typing" while it is being edited and
// "typed" once committed.
const (
	StatusUntyped WordStatus = iota
	StatusTypingCorrect
	StatusTypingWrong
	StatusTypedCorrect
	StatusTypedWrong
)
