// Package present keeps track of the slide being shown.
package present

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrOutOfRange = errors.New("slide index out of range")
	ErrEmptyDeck  = errors.New("deck has no slides")
)

// Listener is called after the current slide changed from one index to
// another. It runs outside the navigator lock.
type Listener func(from, to int)

// Navigator holds the current slide index. It is safe for concurrent use.
type Navigator struct {
	stateLock sync.RWMutex
	current   int
	total     int
	listeners []Listener
}

func NewNavigator(total int) (*Navigator, error) {
	if total <= 0 {
		return nil, ErrEmptyDeck
	}

	return &Navigator{total: total}, nil
}

func (n *Navigator) Current() int {
	n.stateLock.RLock()
	defer n.stateLock.RUnlock()

	return n.current
}

func (n *Navigator) Total() int {
	n.stateLock.RLock()
	defer n.stateLock.RUnlock()

	return n.total
}

// OnChange registers l for every later change of the current slide.
func (n *Navigator) OnChange(l Listener) {
	n.stateLock.Lock()
	defer n.stateLock.Unlock()

	n.listeners = append(n.listeners, l)
}

// Next moves forward one slide, staying on the last one.
func (n *Navigator) Next() int {
	return n.move(func(cur, total int) int { return min(cur+1, total-1) })
}

// Prev moves back one slide, staying on the first one.
func (n *Navigator) Prev() int {
	return n.move(func(cur, _ int) int { return max(cur-1, 0) })
}

func (n *Navigator) First() int {
	return n.move(func(int, int) int { return 0 })
}

func (n *Navigator) Last() int {
	return n.move(func(_, total int) int { return total - 1 })
}

func (n *Navigator) Goto(index int) error {
	n.stateLock.Lock()

	if index < 0 || index >= n.total {
		total := n.total
		n.stateLock.Unlock()

		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, total)
	}

	from := n.current
	n.current = index
	listeners := n.listeners
	n.stateLock.Unlock()

	n.notify(listeners, from, index)

	return nil
}

// SetTotal changes the number of slides, for a deck that was rebuilt. The
// current slide is clamped to the new range.
func (n *Navigator) SetTotal(total int) error {
	if total <= 0 {
		return ErrEmptyDeck
	}

	n.stateLock.Lock()
	from := n.current
	n.total = total
	n.current = min(n.current, total-1)
	to := n.current
	listeners := n.listeners
	n.stateLock.Unlock()

	n.notify(listeners, from, to)

	return nil
}

func (n *Navigator) move(next func(cur, total int) int) int {
	n.stateLock.Lock()
	from := n.current
	n.current = next(n.current, n.total)
	to := n.current
	listeners := n.listeners
	n.stateLock.Unlock()

	n.notify(listeners, from, to)

	return to
}

func (n *Navigator) notify(listeners []Listener, from, to int) {
	if from == to {
		return
	}

	for _, l := range listeners {
		l(from, to)
	}
}
