package gallery

import (
	"errors"
	"strings"
	"sync"
	"time"

	"showcase/models"
)

// Showcased widget identifiers.
const (
	ComponentBanner = "banner"
	ComponentToast  = "toast"
	ComponentModal  = "modal"
)

var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrEmptyName        = errors.New("name must not be empty")
)

// widgetNames maps component identifiers to their status log display names.
var widgetNames = map[string]string{
	ComponentBanner: "Welcome Banner",
	ComponentToast:  "Notification Toast",
	ComponentModal:  "Signup Modal",
}

// View holds the state of one mounted component gallery page: widget
// visibility flags, the submitted-names list and the append-only status log.
// State lives only as long as the view session; nothing here is persisted.
type View struct {
	mu sync.Mutex

	visible        map[string]bool
	submittedNames []string
	entries        []models.StatusEntry // insertion order; sorting is applied per snapshot
	nextID         int

	sortColumn    string
	sortDirection Direction

	lastActive time.Time
	now        func() time.Time
}

// NewView creates a gallery view with the fixed seed rows for each widget.
func NewView() *View {
	return newViewAt(time.Now)
}

func newViewAt(now func() time.Time) *View {
	v := &View{
		visible: map[string]bool{
			ComponentBanner: false,
			ComponentToast:  false,
			ComponentModal:  false,
		},
		now: now,
	}

	for _, component := range []string{ComponentBanner, ComponentToast, ComponentModal} {
		v.nextID++
		v.entries = append(v.entries, models.StatusEntry{
			ID:     v.nextID,
			Name:   widgetNames[component],
			Status: models.StatusInactive,
			Time:   v.displayTime(),
		})
	}

	v.lastActive = now()
	return v
}

// Snapshot is the render payload for the gallery page.
type Snapshot struct {
	Visible        map[string]bool      `json:"visible"`
	SubmittedNames []string             `json:"submittedNames"`
	Entries        []models.StatusEntry `json:"entries"`
	SortColumn     string               `json:"sortColumn,omitempty"`
	SortDirection  string               `json:"sortDirection"`
}

// Toggle shows or hides a widget and updates its status log entry in place.
func (v *View) Toggle(component string, visible bool) (*Snapshot, error) {
	name, ok := widgetNames[component]
	if !ok {
		return nil, ErrUnknownComponent
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.touch()

	v.visible[component] = visible

	status := models.StatusInactive
	if visible {
		status = models.StatusActive
	}
	for i := range v.entries {
		if v.entries[i].Name == name {
			v.entries[i].Status = status
			v.entries[i].Time = v.displayTime()
			break
		}
	}

	return v.snapshotLocked(), nil
}

// SubmitName captures the modal form: a whitespace-only name is rejected and
// the modal stays open; a valid name is appended to the submitted list and
// the status log, and the modal closes.
func (v *View) SubmitName(name string) (*Snapshot, error) {
	name = strings.TrimSpace(name)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.touch()

	if name == "" {
		return nil, ErrEmptyName
	}

	v.submittedNames = append(v.submittedNames, name)
	v.nextID++
	v.entries = append(v.entries, models.StatusEntry{
		ID:     v.nextID,
		Name:   name,
		Status: models.StatusSubmitted,
		Time:   v.displayTime(),
	})
	v.visible[ComponentModal] = false

	return v.snapshotLocked(), nil
}

// Sort advances the three-state sort for a column: none -> ascending ->
// descending -> none. Sorting a different column starts over at ascending.
func (v *View) Sort(column string) (*Snapshot, error) {
	if !validColumn(column) {
		return nil, ErrUnknownColumn
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.touch()

	if column != v.sortColumn {
		v.sortColumn = column
		v.sortDirection = DirAscending
	} else {
		v.sortDirection = v.sortDirection.next()
		if v.sortDirection == DirNone {
			v.sortColumn = ""
		}
	}

	return v.snapshotLocked(), nil
}

// Snapshot returns the current render payload.
func (v *View) Snapshot() *Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.touch()
	return v.snapshotLocked()
}

// LastActive reports when the view last handled an interaction.
func (v *View) LastActive() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastActive
}

func (v *View) snapshotLocked() *Snapshot {
	visible := make(map[string]bool, len(v.visible))
	for k, val := range v.visible {
		visible[k] = val
	}

	names := make([]string, len(v.submittedNames))
	copy(names, v.submittedNames)

	entries := sortedEntries(v.entries, v.sortColumn, v.sortDirection)

	return &Snapshot{
		Visible:        visible,
		SubmittedNames: names,
		Entries:        entries,
		SortColumn:     v.sortColumn,
		SortDirection:  v.sortDirection.String(),
	}
}

func (v *View) touch() {
	v.lastActive = v.now()
}

func (v *View) displayTime() string {
	return v.now().Format("15:04:05")
}
