// Package model defines shared data structures.
package model

import "time"

// Config defines game settings resolved from flags and the config file.
type Config struct {
	Corpus         string
	MaxTime        int
	Width          int
	RigorousSpaces bool
}

// SessionStats captures a completed typing session for persistence.
type SessionStats struct {
	StartedAt    time.Time
	EndedAt      time.Time
	Corpus       string
	TimeLimitSec int
	Rigorous     bool
	CorrectChars int
	WrongChars   int
	KeysPressed  int
	CorrectWords int
	WrongWords   int
	DurationMs   int64
}

// SessionRecord is a stored session row for history reporting.
type SessionRecord struct {
	ID           int64
	EndedAt      time.Time
	Corpus       string
	TimeLimitSec int
	CorrectChars int
	WrongChars   int
	KeysPressed  int
	CorrectWords int
	WrongWords   int
	DurationMs   int64
}
