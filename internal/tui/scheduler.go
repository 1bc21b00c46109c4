package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wiki/internal/viewstate"
)

// teaScheduler runs one-shot callbacks on the update loop. Each AfterFunc
// queues a tea.Tick carrying the timer id; cancelling forgets the id so the
// tick is dropped when it arrives.
type teaScheduler struct {
	next    int
	pending map[int]func()
	outbox  []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: map[int]func(){}}
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) viewstate.Cancel {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.outbox = append(s.outbox, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
	return func() {
		delete(s.pending, id)
	}
}

// Fire runs the callback for id if it is still armed.
func (s *teaScheduler) Fire(id int) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// Drain hands the queued ticks to Bubble Tea.
func (s *teaScheduler) Drain() tea.Cmd {
	if len(s.outbox) == 0 {
		return nil
	}
	cmds := s.outbox
	s.outbox = nil
	return tea.Batch(cmds...)
}

// Pending lists armed timer ids in creation order.
func (s *teaScheduler) Pending() []int {
	ids := make([]int, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type listener struct {
	id int
	fn func()
}

// scrollBus fans scroll notifications out to subscribers in subscription
// order.
type scrollBus struct {
	next      int
	listeners []listener
}

func (b *scrollBus) Subscribe(fn func()) viewstate.Cancel {
	b.next++
	id := b.next
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

func (b *scrollBus) Emit() {
	for _, l := range append([]listener(nil), b.listeners...) {
		l.fn()
	}
}

func (b *scrollBus) Len() int {
	return len(b.listeners)
}
