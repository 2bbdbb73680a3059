package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/cloudpebble/cptui/internal/auth"
)

type chooseReply struct {
	provider auth.Provider
	err      error
}

type chooseRequest struct {
	email   string
	options []auth.Provider
	reply   chan<- chooseReply
}

// chooserBridge implements auth.Chooser by handing the question to the
// Bubble Tea loop and blocking the sign-in goroutine until the user answers.
// One bridge serves one sign-in attempt; done is closed when it ends.
type chooserBridge struct {
	requests chan chooseRequest
	done     chan struct{}
}

func newChooserBridge() *chooserBridge {
	return &chooserBridge{
		requests: make(chan chooseRequest),
		done:     make(chan struct{}),
	}
}

// Choose implements auth.Chooser.
func (b *chooserBridge) Choose(ctx context.Context, email string, options []auth.Provider) (auth.Provider, error) {
	reply := make(chan chooseReply, 1)
	select {
	case b.requests <- chooseRequest{email: email, options: options, reply: reply}:
	case <-ctx.Done():
		return auth.Provider{}, ctx.Err()
	}
	select {
	case r := <-reply:
		return r.provider, r.err
	case <-ctx.Done():
		return auth.Provider{}, ctx.Err()
	}
}

// close ends the attempt, releasing a pending listener.
func (b *chooserBridge) close() { close(b.done) }

// listen waits for the next chooser request. It returns nil once the
// sign-in attempt has finished.
func (b *chooserBridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case req := <-b.requests:
			return ChooseProviderMsg{req: req}
		case <-b.done:
			return nil
		}
	}
}
