// Package terminal hosts the game in a text terminal through tcell.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
)

const blockRune = '█'

var (
	entityStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// cellWriter is the part of tcell.Screen used for drawing.
type cellWriter interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Open creates and initializes a terminal screen. Callers must Fini it.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// Run drives session at the configured frame rate until ctx ends or a quit
// key (q, Escape, Ctrl-C) is pressed.
func Run(ctx context.Context, session *game.Session, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go pollEvents(ctx, screen, events)

	tracker := NewKeyTracker()
	ticker := time.NewTicker(session.State.Config().FramePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if key := KeyFromEvent(ev); len(DefaultBindings.Actions(key)) > 0 {
					tracker.Press(key, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			in := DefaultBindings.Resolve(func(key Key) bool { return tracker.Held(key, now) })
			draw(screen, session.Tick(in))
			screen.Show()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx ends.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// draw writes snapshot to w: the score on the first row, the court below
// with two columns per rasterized cell.
func draw(w cellWriter, snapshot game.Snapshot) {
	width, height := w.Size()
	w.Clear()
	if width < 2 || height < 2 {
		return
	}

	scoreX := (width - len(snapshot.ScoreText)) / 2
	if scoreX < 0 {
		scoreX = 0
	}
	for i, r := range snapshot.ScoreText {
		w.SetContent(scoreX+i, 0, r, nil, scoreStyle)
	}

	grid := render.Rasterize(snapshot, width/2, height-1)
	for row := range grid {
		for col, pixel := range grid[row] {
			if pixel != render.EntityColor {
				continue
			}
			w.SetContent(col*2, row+1, blockRune, nil, entityStyle)
			w.SetContent(col*2+1, row+1, blockRune, nil, entityStyle)
		}
	}
}
