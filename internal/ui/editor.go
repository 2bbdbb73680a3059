package ui

import (
	"bytes"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// Editor is a read-only source pane. It keeps its scroll position across
// suspend and restore so switching files returns to the same place.
type Editor struct {
	id       string
	fileName string
	content  string

	viewport    viewport.Model
	savedOffset int
	width       int
	height      int
	focused     bool
}

// NewEditor creates an editor for fileName showing content.
func NewEditor(id, fileName, content string) *Editor {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	e := &Editor{id: id, fileName: fileName, content: content, viewport: vp}
	e.render()
	return e
}

// ID returns the sidebar entry id the editor belongs to.
func (e *Editor) ID() string { return e.id }

// FileName returns the file being shown.
func (e *Editor) FileName() string { return e.fileName }

// Content returns the unhighlighted source.
func (e *Editor) Content() string { return e.content }

// SetContent replaces the source, keeping the scroll position where possible.
func (e *Editor) SetContent(content string) {
	e.content = content
	offset := e.viewport.YOffset()
	e.render()
	e.viewport.SetYOffset(offset)
}

// SetSize sets the pane dimensions
func (e *Editor) SetSize(width, height int) {
	e.width = width
	e.height = height
	ctx := GetViewContext()
	e.viewport.SetWidth(ctx.InnerWidth(width))
	e.viewport.SetHeight(max(ctx.InnerHeight(height)-TitleHeight-1, 1))
	e.render()
}

// SetFocused sets the focus state
func (e *Editor) SetFocused(focused bool) { e.focused = focused }

// Offset returns the current scroll offset.
func (e *Editor) Offset() int { return e.viewport.YOffset() }

// ScrollTo sets the scroll offset.
func (e *Editor) ScrollTo(offset int) { e.viewport.SetYOffset(offset) }

// OnSuspend records the scroll offset.
func (e *Editor) OnSuspend() { e.savedOffset = e.viewport.YOffset() }

// OnRestore reapplies the offset recorded by OnSuspend.
func (e *Editor) OnRestore() { e.viewport.SetYOffset(e.savedOffset) }

// OnDestroy drops the content.
func (e *Editor) OnDestroy() {
	e.content = ""
	e.viewport.SetContent("")
}

func (e *Editor) render() {
	lines := highlightLines(e.fileName, e.content, CurrentTheme().ChromaStyle)
	gutterWidth := len(fmt.Sprint(len(lines)))
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(EditorGutterStyle.Render(fmt.Sprintf("%*d", gutterWidth, i+1)))
		sb.WriteString(line)
	}
	e.viewport.SetContent(sb.String())
}

// highlightLines returns content as highlighted terminal lines. Each line is
// formatted on its own so that multi-line tokens never carry escape state
// across the gutter.
func highlightLines(fileName, content, styleName string) []string {
	plain := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	lexer := lexers.Match(fileName)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return plain
	}

	var out []string
	for _, tokens := range chroma.SplitTokensIntoLines(iterator.Tokens()) {
		for i := range tokens {
			tokens[i].Value = strings.TrimRight(tokens[i].Value, "\n")
		}
		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, chroma.Literator(tokens...)); err != nil {
			return plain
		}
		out = append(out, buf.String())
	}
	if len(out) == 0 {
		return []string{""}
	}
	// SplitTokensIntoLines leaves a trailing empty line for a final newline.
	if len(out) > len(plain) && ansi.Strip(out[len(out)-1]) == "" {
		out = out[:len(plain)]
	}
	return out
}

func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	if !e.focused {
		if _, ok := msg.(tea.KeyPressMsg); ok {
			return e, nil
		}
	}
	var cmd tea.Cmd
	e.viewport, cmd = e.viewport.Update(msg)
	return e, cmd
}

// View renders the pane
func (e *Editor) View() string {
	style := PanelStyle
	if e.focused {
		style = PanelFocusedStyle
	}
	title := PanelTitleStyle.Render(truncateLabel(e.fileName, GetViewContext().InnerWidth(e.width)))

	total := e.viewport.TotalLineCount()
	status := fmt.Sprintf("%d lines", total)
	if total > e.viewport.VisibleLineCount() {
		status = fmt.Sprintf("line %d/%d  %d%%", e.viewport.YOffset()+1, total, int(e.viewport.ScrollPercent()*100))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		e.viewport.View(),
		EditorStatusStyle.Render(status),
	)
	return style.Width(e.width).Height(e.height).Render(body)
}
