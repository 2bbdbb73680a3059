package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// FlashDuration is how long a flash message stays in the footer.
const FlashDuration = 4 * time.Second

// FlashType selects the flash message color.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashTickMsg is delivered when a flash message should be checked for expiry.
type FlashTickMsg time.Time

// FlashTick schedules the flash expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(FlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width    int
	bindings []KeyBinding

	flashText    string
	flashType    FlashType
	flashExpires time.Time
}

// Footer bindings for each screen.
var (
	SplashBindings = []KeyBinding{
		{Key: "tab", Desc: "next"},
		{Key: "enter", Desc: "sign in"},
		{Key: "q", Desc: "quit"},
	}
	ProjectBindings = []KeyBinding{
		{Key: "enter", Desc: "open"},
		{Key: "n", Desc: "new project"},
		{Key: "i", Desc: "import"},
		{Key: "r", Desc: "refresh"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	}
	IDEBindings = []KeyBinding{
		{Key: "enter", Desc: "open"},
		{Key: "tab", Desc: "switch pane"},
		{Key: "pgup/dn", Desc: "scroll"},
		{Key: "y", Desc: "copy url"},
		{Key: "esc", Desc: "projects"},
		{Key: "?", Desc: "help"},
	}
)

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{bindings: SplashBindings}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the shown keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// Bindings returns the shown keybindings
func (f *Footer) Bindings() []KeyBinding {
	return f.bindings
}

// SetFlash shows text in place of the bindings until FlashDuration passes.
func (f *Footer) SetFlash(text string, t FlashType) {
	f.flashText = text
	f.flashType = t
	f.flashExpires = time.Now().Add(FlashDuration)
}

// ClearFlashIfExpired drops the flash message once it is stale. It returns
// whether a flash is still showing.
func (f *Footer) ClearFlashIfExpired(now time.Time) bool {
	if f.flashText != "" && !now.Before(f.flashExpires) {
		f.flashText = ""
	}
	return f.flashText != ""
}

// Flash returns the current flash text.
func (f *Footer) Flash() string {
	return f.flashText
}

func (f *Footer) flashStyle() lipgloss.Style {
	switch f.flashType {
	case FlashSuccess:
		return StatusSuccessStyle
	case FlashWarning:
		return StatusWarningStyle
	case FlashError:
		return StatusErrorStyle
	default:
		return StatusLoadingStyle
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashText != "" {
		text := ansi.Truncate(f.flashText, max(f.width-2, 1), "…")
		return FooterStyle.Width(f.width).Render(f.flashStyle().Render(text))
	}

	parts := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, sep)
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "")
	}
	return FooterStyle.Width(f.width).Render(content)
}
