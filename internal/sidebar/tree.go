package sidebar

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the type of a tree entry.
type Kind int

const (
	KindSection Kind = iota
	KindFolder
	KindFile
	KindItem
)

// ResourcesSection is the section that holds resource entries.
const ResourcesSection = "resources"

// Folder glyphs for the expanded and collapsed states.
const (
	GlyphExpanded  = "▾"
	GlyphCollapsed = "▸"
)

var sectionLabels = map[string]string{
	"app":            "App",
	"pkjs":           "PebbleKit JS",
	"worker":         "Worker",
	"public":         "Public Header File",
	"common":         "Shared JS",
	"embeddedjs":     "Embedded JS",
	ResourcesSection: "Resources",
	"project":        "Project",
}

// initialSections lists the source sections each project type starts with.
var initialSections = map[string][]string{
	"native":   {"app", "pkjs"},
	"pebblejs": {"app"},
	"simplyjs": {"app"},
	"package":  {"app", "pkjs", "public"},
	"rocky":    {"app", "pkjs", "common"},
	"alloy":    {"app", "embeddedjs", "pkjs"},
}

// SectionLabel returns the header text for a section id.
func SectionLabel(id string) string {
	if l, ok := sectionLabels[id]; ok {
		return l
	}
	return cases.Title(language.English).String(strings.ReplaceAll(id, "_", " "))
}

// SourceFileID returns the entry id for a source file.
func SourceFileID(id int) string { return "source-" + strconv.Itoa(id) }

// ResourceID returns the entry id for a resource.
func ResourceID(id int) string { return "resource-" + strconv.Itoa(id) }

// SourceFile is the subset of a project source file the tree needs.
type SourceFile struct {
	ID     int
	Name   string // may contain "/" separated folders
	Target string
}

// Resource is the subset of a project resource the tree needs.
type Resource struct {
	ID       int
	FileName string
	Kind     string
}

// Entry is a node in the tree.
type Entry struct {
	ID      string
	Kind    Kind
	Label   string
	Icon    string
	Popover string
	Section string
	// Path is the full name of a file entry, including folders.
	Path string
	// ProjectTypes restricts visibility. Empty means every project type.
	ProjectTypes []string
	Hidden       bool
	Expanded     bool
	Active       bool
	// AddNew marks the section that carries the "Add new" affordance.
	AddNew  bool
	OnClick func()

	parent   *Entry
	children []*Entry
}

// Parent returns the enclosing folder or section, or nil for a section.
func (e *Entry) Parent() *Entry { return e.parent }

// Children returns the entry's children in display order.
func (e *Entry) Children() []*Entry { return e.children }

// Glyph returns the folder toggle indicator, or "" for non-folders.
func (e *Entry) Glyph() string {
	if e.Kind != KindFolder {
		return ""
	}
	if e.Expanded {
		return GlyphExpanded
	}
	return GlyphCollapsed
}

func (e *Entry) sortKey() string { return e.Label + "/" }

// Row is one visible line of the flattened tree.
type Row struct {
	Entry *Entry
	Depth int
}

// Tree organizes entries into sections. Lookups go through an id map, never
// through rendered output.
type Tree struct {
	sections     []*Entry
	byID         map[string]*Entry
	active       string
	projectType  string
	addNewPlaced bool
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{byID: make(map[string]*Entry)}
}

func sectionKey(id string) string { return "section-" + id }

func folderKey(section string, segments []string) string {
	return "folder-" + section + "/" + strings.Join(segments, "/")
}

// Section returns the section for id, creating it at the end if needed.
func (t *Tree) Section(id string) *Entry {
	if s, ok := t.byID[sectionKey(id)]; ok {
		return s
	}
	s := &Entry{
		ID:       sectionKey(id),
		Kind:     KindSection,
		Label:    SectionLabel(id),
		Section:  id,
		Expanded: true,
	}
	t.sections = append(t.sections, s)
	t.byID[s.ID] = s
	return s
}

// sourceSection creates a section that can hold source files. The first
// one created carries the "Add new" affordance.
func (t *Tree) sourceSection(id string) *Entry {
	s := t.Section(id)
	if !t.addNewPlaced {
		s.AddNew = true
		t.addNewPlaced = true
	}
	return s
}

// Sections returns section entries in creation order.
func (t *Tree) Sections() []*Entry { return t.sections }

// InitSections creates the starting source sections for projectType and
// applies its visibility rules.
func (t *Tree) InitSections(projectType string) {
	for _, id := range initialSections[projectType] {
		t.sourceSection(id)
	}
	t.SetProjectType(projectType)
}

// AddSourceFile inserts a file, creating its section and any folders named
// by "/" separated prefixes of file.Name. Adding an existing id replaces it.
func (t *Tree) AddSourceFile(file SourceFile, onClick func()) *Entry {
	target := file.Target
	if target == "" {
		target = "app"
	}
	id := SourceFileID(file.ID)
	if _, ok := t.byID[id]; ok {
		t.Remove(id)
	}

	section := t.sourceSection(target)
	segments := splitPath(file.Name)
	base := file.Name
	if len(segments) > 0 {
		base = segments[len(segments)-1]
		segments = segments[:len(segments)-1]
	}

	parent := section
	for i, seg := range segments {
		parent = t.folder(parent, target, segments[:i+1], seg)
	}

	e := &Entry{
		ID:      id,
		Kind:    KindFile,
		Label:   base,
		Section: target,
		Path:    file.Name,
		OnClick: onClick,
	}
	t.attach(parent, e)
	return e
}

func splitPath(name string) []string {
	parts := strings.Split(name, "/")
	return slices.DeleteFunc(parts, func(s string) bool { return s == "" })
}

// folder returns the folder for segments under parent, creating it in
// sorted position when missing.
func (t *Tree) folder(parent *Entry, section string, segments []string, label string) *Entry {
	key := folderKey(section, segments)
	if f, ok := t.byID[key]; ok {
		return f
	}
	f := &Entry{
		ID:       key,
		Kind:     KindFolder,
		Label:    label,
		Section:  section,
		Expanded: true,
		parent:   parent,
	}

	// Folders sit before files, sorted by label with a trailing separator.
	idx := 0
	for i, c := range parent.children {
		if c.Kind != KindFolder || c.sortKey() > f.sortKey() {
			break
		}
		idx = i + 1
	}
	parent.children = slices.Insert(parent.children, idx, f)
	t.byID[key] = f
	return f
}

func (t *Tree) attach(parent, e *Entry) {
	e.parent = parent
	parent.children = append(parent.children, e)
	t.byID[e.ID] = e
}

// AddResource appends a flat entry to the resources section.
func (t *Tree) AddResource(res Resource, onClick func()) *Entry {
	id := ResourceID(res.ID)
	if _, ok := t.byID[id]; ok {
		t.Remove(id)
	}
	e := &Entry{
		ID:      id,
		Kind:    KindFile,
		Label:   res.FileName,
		Section: ResourcesSection,
		Path:    res.FileName,
		OnClick: onClick,
	}
	t.attach(t.Section(ResourcesSection), e)
	return e
}

// AddItem appends a non-file entry such as "Settings" to a section.
// projectTypes limits where the item is visible.
func (t *Tree) AddItem(section, id, label string, onClick func(), projectTypes ...string) *Entry {
	if _, ok := t.byID[id]; ok {
		t.Remove(id)
	}
	e := &Entry{
		ID:           id,
		Kind:         KindItem,
		Label:        label,
		Section:      section,
		OnClick:      onClick,
		ProjectTypes: projectTypes,
	}
	t.attach(t.Section(section), e)
	e.Hidden = !e.visibleFor(t.projectType)
	return e
}

// Remove deletes an entry and then prunes folders left empty, walking up
// until a non-empty ancestor or the section root. Sections are never removed.
func (t *Tree) Remove(id string) bool {
	e, ok := t.byID[id]
	if !ok || e.Kind == KindSection {
		return false
	}

	parent := e.parent
	t.detach(e)
	for parent != nil && parent.Kind == KindFolder && len(parent.children) == 0 {
		next := parent.parent
		t.detach(parent)
		parent = next
	}
	return true
}

// detach unlinks e from its parent and drops e and its descendants from the index.
func (t *Tree) detach(e *Entry) {
	if p := e.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c *Entry) bool { return c == e })
	}
	e.parent = nil
	var drop func(*Entry)
	drop = func(n *Entry) {
		delete(t.byID, n.ID)
		if t.active == n.ID {
			t.active = ""
		}
		for _, c := range n.children {
			drop(c)
		}
	}
	drop(e)
}

// Get returns the entry for id.
func (t *Tree) Get(id string) (*Entry, bool) {
	e, ok := t.byID[id]
	return e, ok
}

// SetItemName changes an entry's label. Icon and popover are kept.
func (t *Tree) SetItemName(id, name string) bool {
	e, ok := t.byID[id]
	if !ok {
		return false
	}
	e.Label = name
	return true
}

// SetIcon sets the glyph shown beside an entry's label.
func (t *Tree) SetIcon(id, icon string) bool {
	e, ok := t.byID[id]
	if !ok {
		return false
	}
	e.Icon = icon
	return true
}

// ClearIcon removes an entry's glyph.
func (t *Tree) ClearIcon(id string) bool {
	return t.SetIcon(id, "")
}

// SetPopover attaches hover/detail text to an entry.
func (t *Tree) SetPopover(id, text string) bool {
	e, ok := t.byID[id]
	if !ok {
		return false
	}
	e.Popover = text
	return true
}

// ToggleFolder flips a folder between expanded and collapsed.
func (t *Tree) ToggleFolder(id string) bool {
	e, ok := t.byID[id]
	if !ok || (e.Kind != KindFolder && e.Kind != KindSection) {
		return false
	}
	e.Expanded = !e.Expanded
	return true
}

// Highlight marks id as the active entry, clearing any previous one.
func (t *Tree) Highlight(id string) {
	if prev, ok := t.byID[t.active]; ok {
		prev.Active = false
	}
	t.active = ""
	if e, ok := t.byID[id]; ok {
		e.Active = true
		t.active = id
	}
}

// ClearHighlight unmarks id if it is the active entry.
func (t *Tree) ClearHighlight(id string) {
	if id == "" || id != t.active {
		return
	}
	if e, ok := t.byID[id]; ok {
		e.Active = false
	}
	t.active = ""
}

// ActiveID returns the highlighted entry id, or "".
func (t *Tree) ActiveID() string { return t.active }

func (e *Entry) visibleFor(projectType string) bool {
	return len(e.ProjectTypes) == 0 || slices.Contains(e.ProjectTypes, projectType)
}

// SetProjectType hides entries restricted to other project types.
func (t *Tree) SetProjectType(projectType string) {
	t.projectType = projectType
	for _, e := range t.byID {
		e.Hidden = !e.visibleFor(projectType)
	}
}

// ProjectType returns the type last passed to SetProjectType.
func (t *Tree) ProjectType() string { return t.projectType }

// Visible flattens the tree into display rows. Hidden entries and the
// contents of collapsed folders are skipped.
func (t *Tree) Visible() []Row {
	var rows []Row
	var walk func(e *Entry, depth int)
	walk = func(e *Entry, depth int) {
		if e.Hidden {
			return
		}
		rows = append(rows, Row{Entry: e, Depth: depth})
		if !e.Expanded {
			return
		}
		for _, c := range e.children {
			walk(c, depth+1)
		}
	}
	for _, s := range t.sections {
		walk(s, 0)
	}
	return rows
}

// Files returns every file entry in display order, ignoring collapse state.
func (t *Tree) Files() []*Entry {
	var out []*Entry
	var walk func(e *Entry)
	walk = func(e *Entry) {
		if e.Kind == KindFile {
			out = append(out, e)
		}
		for _, c := range e.children {
			walk(c)
		}
	}
	for _, s := range t.sections {
		walk(s)
	}
	return out
}
