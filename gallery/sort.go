package gallery

import (
	"errors"
	"sort"
	"strings"

	"showcase/models"
)

var ErrUnknownColumn = errors.New("unknown sort column")

// Direction is the per-column sort state of the status log.
type Direction int

const (
	DirNone Direction = iota
	DirAscending
	DirDescending
)

func (d Direction) next() Direction {
	switch d {
	case DirNone:
		return DirAscending
	case DirAscending:
		return DirDescending
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirAscending:
		return "asc"
	case DirDescending:
		return "desc"
	default:
		return "none"
	}
}

// Sortable status log columns.
const (
	ColumnID     = "id"
	ColumnName   = "name"
	ColumnStatus = "status"
	ColumnTime   = "time"
)

func validColumn(column string) bool {
	switch column {
	case ColumnID, ColumnName, ColumnStatus, ColumnTime:
		return true
	default:
		return false
	}
}

// compareEntries orders two status entries by the given column. The ID column
// compares numerically, everything else lexically.
func compareEntries(a, b models.StatusEntry, column string) int {
	switch column {
	case ColumnID:
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	case ColumnName:
		return strings.Compare(a.Name, b.Name)
	case ColumnStatus:
		return strings.Compare(a.Status, b.Status)
	case ColumnTime:
		return strings.Compare(a.Time, b.Time)
	default:
		return 0
	}
}

// sortedEntries returns a copy of entries ordered by the active sort. With no
// active sort the insertion order is preserved; equal values keep their
// relative order (stable sort).
func sortedEntries(entries []models.StatusEntry, column string, dir Direction) []models.StatusEntry {
	out := make([]models.StatusEntry, len(entries))
	copy(out, entries)

	if dir == DirNone || column == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareEntries(out[i], out[j], column)
		if dir == DirDescending {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}
