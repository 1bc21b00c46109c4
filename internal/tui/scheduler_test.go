package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs cmd and flattens any batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestSchedulerDeliversTimerIDs(t *testing.T) {
	s := newTeaScheduler()
	var fired []string
	s.AfterFunc(time.Millisecond, func() { fired = append(fired, "a") })
	s.AfterFunc(time.Millisecond, func() { fired = append(fired, "b") })

	msgs := collect(s.Drain())
	require.Len(t, msgs, 2)
	assert.Nil(t, s.Drain(), "outbox is emptied by Drain")

	for _, msg := range msgs {
		tick, ok := msg.(timerFiredMsg)
		require.True(t, ok, "unexpected %T", msg)
		assert.True(t, s.Fire(tick.id))
	}
	assert.ElementsMatch(t, []string{"a", "b"}, fired)
	assert.Empty(t, s.Pending())
}

func TestSchedulerCancelDropsLateTick(t *testing.T) {
	s := newTeaScheduler()
	called := false
	cancel := s.AfterFunc(time.Millisecond, func() { called = true })
	msgs := collect(s.Drain())
	require.Len(t, msgs, 1)

	cancel()
	cancel()

	assert.False(t, s.Fire(msgs[0].(timerFiredMsg).id))
	assert.False(t, called)
}

func TestSchedulerFiresOnce(t *testing.T) {
	s := newTeaScheduler()
	count := 0
	s.AfterFunc(time.Second, func() { count++ })
	ids := s.Pending()
	require.Equal(t, []int{1}, ids)

	assert.True(t, s.Fire(1))
	assert.False(t, s.Fire(1))
	assert.Equal(t, 1, count)
}

func TestScrollBusOrderAndCancel(t *testing.T) {
	var bus scrollBus
	var calls []int
	cancelFirst := bus.Subscribe(func() { calls = append(calls, 1) })
	bus.Subscribe(func() { calls = append(calls, 2) })

	bus.Emit()
	assert.Equal(t, []int{1, 2}, calls)

	cancelFirst()
	cancelFirst()
	calls = nil
	bus.Emit()
	assert.Equal(t, []int{2}, calls)
	assert.Equal(t, 1, bus.Len())
}

func TestScrollBusCancelDuringEmit(t *testing.T) {
	var bus scrollBus
	var cancel func()
	calls := 0
	cancel = bus.Subscribe(func() {
		calls++
		cancel()
	})
	bus.Subscribe(func() { calls++ })

	bus.Emit()
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, bus.Len())
}
