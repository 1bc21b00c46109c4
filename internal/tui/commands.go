package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/wiki/internal/log"
	"github.com/csheth/wiki/internal/profile"
)

func loadProfileJob(path string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		p, err := profile.Load(path)
		if err != nil {
			log.ErrorErr(log.CatProfile, "reload failed", err, "path", path)
			return profileLoadedMsg{err: err}, err
		}
		log.Info(log.CatProfile, "reloaded", "path", path)
		return profileLoadedMsg{profile: p}, nil
	}
}

// waitForChange blocks on the watcher channel. A closed or nil channel
// ends the wait without a message.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return profileChangedMsg{}
	}
}
