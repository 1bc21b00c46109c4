package tui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wiki/internal/log"
)

type jobKind string

type jobStatus string

const (
	jobKindReload jobKind = "reload"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus runs blocking work off the update loop and reports its lifecycle
// as messages: a running signal first, then the result envelope.
type jobBus struct {
	counter int64
	running map[string]jobSnapshot
}

func newJobBus() *jobBus {
	return &jobBus{running: map[string]jobSnapshot{}}
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	id := b.nextID(kind)
	started := time.Now()
	startSnapshot := jobSnapshot{ID: id, Kind: kind, Status: jobStatusRunning, StartedAt: started}
	startCmd := func() tea.Msg {
		return jobSignalMsg{Snapshot: startSnapshot}
	}

	runCmd := func() tea.Msg {
		payload, err := runner(context.Background())
		snapshot := jobSnapshot{
			ID:          id,
			Kind:        kind,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		} else {
			snapshot.Status = jobStatusSucceeded
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		log.Debug(log.CatUI, "job finished", "kind", kind, "status", snapshot.Status, "duration", snapshot.Duration)
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}

	return tea.Sequence(startCmd, runCmd)
}

// Track records a lifecycle update. It runs on the update loop.
func (b *jobBus) Track(snapshot jobSnapshot) {
	if snapshot.Status == jobStatusRunning {
		b.running[snapshot.ID] = snapshot
		return
	}
	delete(b.running, snapshot.ID)
}

// Busy reports whether a job of kind is in flight.
func (b *jobBus) Busy(kind jobKind) bool {
	for _, snapshot := range b.running {
		if snapshot.Kind == kind {
			return true
		}
	}
	return false
}
