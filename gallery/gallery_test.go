package gallery

import (
	"errors"
	"testing"
	"time"

	"showcase/models"
)

func TestNewView_SeedRows(t *testing.T) {
	v := NewView()
	snap := v.Snapshot()

	if len(snap.Entries) != 3 {
		t.Fatalf("expected 3 seed rows, got %d", len(snap.Entries))
	}
	for _, entry := range snap.Entries {
		if entry.Status != models.StatusInactive {
			t.Fatalf("seed row %q status = %q, want Inactive", entry.Name, entry.Status)
		}
	}
	for _, component := range []string{ComponentBanner, ComponentToast, ComponentModal} {
		if snap.Visible[component] {
			t.Fatalf("widget %q should start hidden", component)
		}
	}
	if snap.SortDirection != "none" {
		t.Fatalf("sort direction = %q, want none", snap.SortDirection)
	}
}

func TestToggle_UpdatesStatusEntry(t *testing.T) {
	v := NewView()

	snap, err := v.Toggle(ComponentBanner, true)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !snap.Visible[ComponentBanner] {
		t.Fatalf("banner should be visible after toggle on")
	}

	var bannerStatus string
	for _, entry := range snap.Entries {
		if entry.Name == "Welcome Banner" {
			bannerStatus = entry.Status
		}
	}
	if bannerStatus != models.StatusActive {
		t.Fatalf("banner status = %q, want Active", bannerStatus)
	}

	snap, err = v.Toggle(ComponentBanner, false)
	if err != nil {
		t.Fatalf("Toggle off: %v", err)
	}
	for _, entry := range snap.Entries {
		if entry.Name == "Welcome Banner" && entry.Status != models.StatusInactive {
			t.Fatalf("banner status after toggle off = %q, want Inactive", entry.Status)
		}
	}
	if len(snap.Entries) != 3 {
		t.Fatalf("toggling must update in place, got %d entries", len(snap.Entries))
	}
}

func TestToggle_UnknownComponent(t *testing.T) {
	v := NewView()
	if _, err := v.Toggle("sidebar", true); !errors.Is(err, ErrUnknownComponent) {
		t.Fatalf("error = %v, want ErrUnknownComponent", err)
	}
}

func TestSubmitName_RejectsWhitespace(t *testing.T) {
	v := NewView()
	if _, err := v.Toggle(ComponentModal, true); err != nil {
		t.Fatalf("open modal: %v", err)
	}

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := v.SubmitName(name); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("SubmitName(%q) error = %v, want ErrEmptyName", name, err)
		}
	}

	snap := v.Snapshot()
	if len(snap.SubmittedNames) != 0 {
		t.Fatalf("rejected submissions must not change the names list: %v", snap.SubmittedNames)
	}
	if !snap.Visible[ComponentModal] {
		t.Fatalf("modal must stay open after a rejected submission")
	}
	if len(snap.Entries) != 3 {
		t.Fatalf("rejected submissions must not append status entries, got %d", len(snap.Entries))
	}
}

func TestSubmitName_AppendsAndClosesModal(t *testing.T) {
	v := NewView()
	if _, err := v.Toggle(ComponentModal, true); err != nil {
		t.Fatalf("open modal: %v", err)
	}

	snap, err := v.SubmitName("  Ada  ")
	if err != nil {
		t.Fatalf("SubmitName: %v", err)
	}

	if len(snap.SubmittedNames) != 1 || snap.SubmittedNames[0] != "Ada" {
		t.Fatalf("submitted names = %v, want trimmed [Ada]", snap.SubmittedNames)
	}
	if snap.Visible[ComponentModal] {
		t.Fatalf("modal should close after a valid submission")
	}

	last := snap.Entries[len(snap.Entries)-1]
	if last.Name != "Ada" || last.Status != models.StatusSubmitted {
		t.Fatalf("unexpected appended entry: %+v", last)
	}
	if last.ID != 4 {
		t.Fatalf("appended entry ID = %d, want 4", last.ID)
	}
}

func TestView_EntriesNeverRemoved(t *testing.T) {
	v := NewView()

	for _, name := range []string{"one", "two", "three"} {
		if _, err := v.SubmitName(name); err != nil {
			t.Fatalf("SubmitName(%q): %v", name, err)
		}
	}

	if snap := v.Snapshot(); len(snap.Entries) != 6 {
		t.Fatalf("expected 3 seed + 3 submitted entries, got %d", len(snap.Entries))
	}
}

func TestView_LastActiveAdvances(t *testing.T) {
	current := time.Unix(1000, 0)
	v := newViewAt(func() time.Time { return current })

	before := v.LastActive()
	current = current.Add(time.Minute)
	if _, err := v.Toggle(ComponentToast, true); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	if !v.LastActive().After(before) {
		t.Fatalf("LastActive should advance on interaction")
	}
}
