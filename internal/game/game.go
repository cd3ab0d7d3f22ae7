package game

import (
	"context"
	"time"
	"unicode"
	"unicode/utf8"
)

// Options configure a single game session.
type Options struct {
	Words          []string
	MaxTime        int
	MaxColumns     int
	RigorousSpaces bool
}

// Game coordinates keystroke events, the countdown ticker, and
// rendering. All state mutation happens on the Run goroutine, so event
// application is serialized and every render sees a fully-applied
// state.
type Game struct {
	opts   Options
	state  *State
	screen Screen
	events <-chan string

	now       func() time.Time
	tickEvery time.Duration

	ticks    chan struct{}
	stop     chan struct{}
	stopped  bool
	tickDone chan struct{}
}

// New builds a game over the given word sample, screen, and event
// source. The events channel carries decoded keystroke chunks.
func New(opts Options, screen Screen, events <-chan string) *Game {
	return &Game{
		opts:      opts,
		state:     NewState(opts.Words, opts.MaxTime, opts.MaxColumns),
		screen:    screen,
		events:    events,
		now:       time.Now,
		tickEvery: time.Second,
	}
}

// Run plays the session to completion and renders the final summary
// exactly once. It returns the computed summary.
func (g *Game) Run(ctx context.Context) (Summary, error) {
	r := newRenderer(g.screen)
	g.ticks = make(chan struct{})
	g.stop = make(chan struct{})
	defer func() {
		g.stopTicker()
		if g.tickDone != nil {
			<-g.tickDone
		}
	}()

	for !g.state.IsFinished() {
		if err := r.frame(g.state); err != nil {
			return Summary{}, err
		}
		select {
		case <-ctx.Done():
			g.state.finish(g.now())
		case <-g.ticks:
			g.state.tick(g.now())
		case ev, ok := <-g.events:
			if !ok {
				g.state.finish(g.now())
			} else {
				g.apply(ev)
			}
		}
		if g.state.IsFinished() {
			g.stopTicker()
		}
	}

	if g.tickDone != nil {
		<-g.tickDone
	}
	sum := Summarize(g.state)
	if err := r.summary(sum); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

type action int

const (
	actionIgnore action = iota
	actionAbort
	actionBackspace
	actionWordBackspace
	actionWordFinished
	actionKey
)

// routeKey maps a raw input event to a controller action.
func routeKey(ev string) action {
	switch ev {
	case "\x03":
		return actionAbort
	case "\x7f":
		return actionBackspace
	case "\x17":
		return actionWordBackspace
	}
	r, _ := utf8.DecodeRuneInString(ev)
	switch {
	case unicode.IsSpace(r):
		return actionWordFinished
	case utf8.RuneCountInString(ev) > 1 || r >= 32:
		return actionKey
	default:
		return actionIgnore
	}
}

// apply routes one event to the state. The first non-ignored event
// starts the clock and launches the ticker.
func (g *Game) apply(ev string) {
	act := routeKey(ev)
	if act == actionIgnore {
		return
	}
	if !g.state.Started() {
		g.state.start(g.now())
		g.startTicker()
	}
	switch act {
	case actionAbort:
		g.state.finish(g.now())
	case actionBackspace:
		g.state.backspacePressed()
	case actionWordBackspace:
		g.state.wordBackspacePressed()
	case actionWordFinished:
		if g.state.input != "" || g.opts.RigorousSpaces {
			g.state.wordFinished(g.now())
		}
	case actionKey:
		g.state.keyPressed(ev)
	}
}

func (g *Game) startTicker() {
	g.tickDone = make(chan struct{})
	go func() {
		defer close(g.tickDone)
		ticker := time.NewTicker(g.tickEvery)
		defer ticker.Stop()
		for {
			select {
			case <-g.stop:
				return
			case <-ticker.C:
				select {
				case g.ticks <- struct{}{}:
				case <-g.stop:
					return
				}
			}
		}
	}()
}

func (g *Game) stopTicker() {
	if g.stopped {
		return
	}
	g.stopped = true
	close(g.stop)
}
