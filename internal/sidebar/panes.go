package sidebar

import (
	"log/slog"
	"slices"

	"github.com/cloudpebble/cptui/internal/logger"
)

// Pane is a view that can occupy the main region.
type Pane interface {
	View() string
}

// Suspender is implemented by panes that save state when hidden.
type Suspender interface {
	OnSuspend()
}

// Restorer is implemented by panes that reapply state when shown again.
type Restorer interface {
	OnRestore()
}

// Destroyer is implemented by panes that release resources when discarded.
type Destroyer interface {
	OnDestroy()
}

// Options configures a pane when it becomes active. Callbacks run after the
// pane's own hook methods.
type Options struct {
	// ID names the pane and the sidebar entry it belongs to. A pane without
	// an ID is destroyed rather than suspended.
	ID        string
	OnSuspend func()
	OnRestore func()
	OnDestroy func()
}

// Highlighter marks the sidebar entry for the active pane.
type Highlighter interface {
	Highlight(id string)
	ClearHighlight(id string)
}

// EmptyPane is installed when the active pane is suspended or destroyed.
type EmptyPane struct{}

func (EmptyPane) View() string { return "" }

type slot struct {
	pane Pane
	opts Options
}

func (s slot) suspend() {
	if h, ok := s.pane.(Suspender); ok {
		h.OnSuspend()
	}
	if s.opts.OnSuspend != nil {
		s.opts.OnSuspend()
	}
}

func (s slot) restore() {
	if h, ok := s.pane.(Restorer); ok {
		h.OnRestore()
	}
	if s.opts.OnRestore != nil {
		s.opts.OnRestore()
	}
}

func (s slot) destroy() {
	if h, ok := s.pane.(Destroyer); ok {
		h.OnDestroy()
	}
	if s.opts.OnDestroy != nil {
		s.opts.OnDestroy()
	}
}

// PaneManager owns the single active pane and the set of suspended panes.
// It is not safe for concurrent use; the Bubble Tea update loop is its only caller.
type PaneManager struct {
	active    *slot
	suspended map[string]slot
	sidebar   Highlighter
	log       *slog.Logger
}

// NewPaneManager returns a manager with no active pane. h may be nil.
func NewPaneManager(h Highlighter) *PaneManager {
	return &PaneManager{
		suspended: make(map[string]slot),
		sidebar:   h,
		log:       logger.WithComponent("panes"),
	}
}

func (m *PaneManager) highlight(id string) {
	if m.sidebar != nil && id != "" {
		m.sidebar.Highlight(id)
	}
}

func (m *PaneManager) clearHighlight(id string) {
	if m.sidebar != nil && id != "" {
		m.sidebar.ClearHighlight(id)
	}
}

func (m *PaneManager) installEmpty() {
	m.active = &slot{pane: EmptyPane{}}
}

// SuspendActive parks the active pane under its ID and installs an empty
// pane. A pane without an ID cannot be resumed, so it is destroyed instead.
// Suspending an ID that is already parked replaces the older pane.
func (m *PaneManager) SuspendActive() {
	if m.active == nil {
		m.installEmpty()
		return
	}

	id := m.active.opts.ID
	if id == "" {
		m.DestroyActive()
		m.installEmpty()
		return
	}

	s := *m.active
	s.suspend()
	m.clearHighlight(id)
	m.suspended[id] = s
	m.log.Debug("suspended pane", "id", id, "suspended", len(m.suspended))
	m.installEmpty()
}

// DestroyActive discards the active pane after running its destroy hooks.
// Afterwards no pane is active.
func (m *PaneManager) DestroyActive() {
	if m.active == nil {
		return
	}
	s := *m.active
	m.active = nil
	s.destroy()
	m.clearHighlight(s.opts.ID)
	if s.opts.ID != "" {
		m.log.Debug("destroyed pane", "id", s.opts.ID)
	}
}

// Restore reinstates the pane suspended under id and reports whether one
// existed. On false nothing changes. The pane being replaced is dropped
// without running its hooks, so callers suspend it first.
func (m *PaneManager) Restore(id string) bool {
	s, ok := m.suspended[id]
	if !ok {
		return false
	}

	if m.active != nil {
		m.clearHighlight(m.active.opts.ID)
	}
	delete(m.suspended, id)
	m.active = &s
	m.highlight(id)
	s.restore()
	m.log.Debug("restored pane", "id", id)
	return true
}

// SetActivePane suspends the current pane and installs pane in its place.
// A stale suspended pane with the same ID is destroyed, since the new pane
// now owns that ID.
func (m *PaneManager) SetActivePane(pane Pane, opts Options) {
	m.SuspendActive()

	if opts.ID != "" {
		if stale, ok := m.suspended[opts.ID]; ok {
			delete(m.suspended, opts.ID)
			stale.destroy()
		}
	}
	m.active = &slot{pane: pane, opts: opts}
	m.highlight(opts.ID)
}

// Active returns the active pane, or nil when none is.
func (m *PaneManager) Active() Pane {
	if m.active == nil {
		return nil
	}
	return m.active.pane
}

// ActiveID returns the active pane's ID, or "".
func (m *PaneManager) ActiveID() string {
	if m.active == nil {
		return ""
	}
	return m.active.opts.ID
}

// IsSuspended reports whether a pane is parked under id.
func (m *PaneManager) IsSuspended(id string) bool {
	_, ok := m.suspended[id]
	return ok
}

// Suspended returns the parked pane IDs in sorted order.
func (m *PaneManager) Suspended() []string {
	ids := make([]string, 0, len(m.suspended))
	for id := range m.suspended {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Forget destroys the pane suspended under id, if any. Used when the
// underlying file is deleted.
func (m *PaneManager) Forget(id string) {
	if s, ok := m.suspended[id]; ok {
		delete(m.suspended, id)
		s.destroy()
	}
}

// Reset destroys every pane, active and suspended.
func (m *PaneManager) Reset() {
	m.DestroyActive()
	for _, id := range m.Suspended() {
		m.Forget(id)
	}
}
