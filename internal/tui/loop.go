// Package tui runs the interactive launcher: it reads keys, filters the
// catalog as the query changes and redraws the screen until the user picks
// an entry or gives up.
package tui

import (
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/float-launcher/internal/catalog"
	"github.com/baaaaaaaka/float-launcher/internal/search"
)

// PollInterval bounds how long one loop iteration waits for input before
// redrawing anyway.
const PollInterval = 250 * time.Millisecond

var newScreen = tcell.NewScreen

// Result is the outcome of a launcher session. When Cancelled is false,
// Name and Command describe the committed entry.
type Result struct {
	Cancelled bool
	Name      string
	Command   string
}

// Select takes over the terminal, lets the user pick an entry, and restores
// the terminal before returning.
func Select(entries []catalog.Entry) (Result, error) {
	screen, err := newScreen()
	if err != nil {
		return Result{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return Result{}, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	events := newScreenEvents(screen)
	defer events.Close()

	return Run(entries, events, newScreenView(screen))
}

// Run drives the poll, handle, redraw cycle. Any input or draw failure ends
// the session with an error.
func Run(entries []catalog.Entry, events EventSource, view View) (Result, error) {
	f := search.NewFilter(entries)
	if err := redraw(view, f); err != nil {
		return Result{}, err
	}

	for {
		ev, ok, err := events.PollEvent(PollInterval)
		if err != nil {
			return Result{}, fmt.Errorf("read input: %w", err)
		}
		if ok {
			if res, done := handleEvent(f, view, ev); done {
				return res, nil
			}
		}
		if err := redraw(view, f); err != nil {
			return Result{}, err
		}
	}
}

func redraw(view View, f *search.Filter) error {
	if err := view.Draw(f.Query(), f.View(), f.Selection()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

func handleEvent(f *search.Filter, view View, ev tcell.Event) (Result, bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		view.Sync()
	case *tcell.EventKey:
		return handleKey(f, tev)
	}
	return Result{}, false
}

func handleKey(f *search.Filter, ev *tcell.EventKey) (Result, bool) {
	switch ev.Key() {
	case tcell.KeyESC:
		return Result{Cancelled: true}, true
	case tcell.KeyEnter:
		if e, ok := f.Selected(); ok {
			return Result{Name: e.Name, Command: e.Command}, true
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.Erase()
	case tcell.KeyUp:
		f.Previous()
	case tcell.KeyDown:
		f.Next()
	case tcell.KeyRune:
		if unicode.IsPrint(ev.Rune()) {
			f.Type(ev.Rune())
		}
	}
	return Result{}, false
}
