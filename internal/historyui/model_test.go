package historyui

import (
	"math"
	"testing"
	"time"

	"github.com/tenff-dev/tenff/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	rec := model.SessionRecord{
		CorrectChars: 240,
		KeysPressed:  250,
		DurationMs:   60000,
	}
	if wpm := sessionWPM(rec); math.Abs(wpm-48) > 1e-9 {
		t.Fatalf("expected 48 WPM, got %f", wpm)
	}
	if acc := sessionAccuracy(rec); math.Abs(acc-0.96) > 1e-9 {
		t.Fatalf("expected 0.96 accuracy, got %f", acc)
	}
}

func TestSessionMetricsDefaults(t *testing.T) {
	rec := model.SessionRecord{}
	if wpm := sessionWPM(rec); wpm != 0 {
		t.Fatalf("expected 0 WPM for zero duration, got %f", wpm)
	}
	if acc := sessionAccuracy(rec); acc != 1 {
		t.Fatalf("expected accuracy 1 for zero keys, got %f", acc)
	}
}

func TestSessionRowFormatting(t *testing.T) {
	rec := model.SessionRecord{
		EndedAt:      time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
		Corpus:       "english",
		TimeLimitSec: 60,
		CorrectChars: 240,
		KeysPressed:  250,
		CorrectWords: 48,
		WrongWords:   2,
		DurationMs:   60000,
	}
	row := sessionRow(rec)
	if len(row) != 6 {
		t.Fatalf("expected 6 columns, got %d", len(row))
	}
	if row[1] != "english" {
		t.Fatalf("unexpected corpus column %q", row[1])
	}
	if row[2] != "60s" {
		t.Fatalf("unexpected time column %q", row[2])
	}
	if row[3] != "48.0" {
		t.Fatalf("unexpected WPM column %q", row[3])
	}
	if row[4] != "96.0%" {
		t.Fatalf("unexpected accuracy column %q", row[4])
	}
	if row[5] != "48/2" {
		t.Fatalf("unexpected words column %q", row[5])
	}
}
