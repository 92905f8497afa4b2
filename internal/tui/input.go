package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

var errInputClosed = errors.New("input closed")

// EventSource delivers terminal events. PollEvent reports false when no
// event arrived before the timeout elapsed.
type EventSource interface {
	PollEvent(timeout time.Duration) (tcell.Event, bool, error)
}

type screenEvents struct {
	events chan tcell.Event
	quit   chan struct{}
}

func newScreenEvents(screen tcell.Screen) *screenEvents {
	s := &screenEvents{
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go func() {
		defer close(s.events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			case <-s.quit:
				return
			}
		}
	}()
	return s
}

func (s *screenEvents) PollEvent(timeout time.Duration) (tcell.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, false, errInputClosed
		}
		if errEv, isErr := ev.(*tcell.EventError); isErr {
			return nil, false, fmt.Errorf("terminal: %w", errEv)
		}
		return ev, true, nil
	case <-timer.C:
		return nil, false, nil
	}
}

func (s *screenEvents) Close() { close(s.quit) }
