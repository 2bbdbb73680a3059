package modals

import (
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// ProgressTickMsg advances progress spinners. Each Progress ignores ticks
// scheduled by another.
type ProgressTickMsg = spinner.TickMsg

var progressSpinner = spinner.Spinner{
	Frames: []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"},
	FPS:    150 * time.Millisecond,
}

// Progress is the busy state shared by request-running modals: controls are
// disabled and a spinner shows while Text is set, and Err is shown once the
// request fails.
type Progress struct {
	Text string
	Err  string
	spin spinner.Model
}

// Start marks the modal busy and returns the spinner tick.
func (p *Progress) Start(text string) tea.Cmd {
	if p.spin.ID() == 0 {
		p.spin = spinner.New(spinner.WithSpinner(progressSpinner))
	}
	p.Text = text
	p.Err = ""
	return p.spin.Tick
}

// Fail ends the busy state with an inline error.
func (p *Progress) Fail(msg string) {
	p.Text = ""
	p.Err = msg
}

// Invalid shows a validation message without touching the busy state.
func (p *Progress) Invalid(msg string) {
	p.Err = msg
}

// SetText replaces the progress text while busy.
func (p *Progress) SetText(text string) {
	if p.Text != "" {
		p.Text = text
	}
}

// Busy reports whether a request is running.
func (p *Progress) Busy() bool { return p.Text != "" }

// Tick advances the spinner and keeps it running while busy.
func (p *Progress) Tick(msg ProgressTickMsg) tea.Cmd {
	if !p.Busy() {
		return nil
	}
	var cmd tea.Cmd
	p.spin, cmd = p.spin.Update(msg)
	return cmd
}

// View renders the progress or error line, or "" when idle.
func (p *Progress) View() string {
	return renderStatus(p.spin.View(), p.Text, p.Err)
}
