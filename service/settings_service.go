package service

import (
	"fmt"
	"strconv"
	"time"

	"showcase/database"
	"showcase/models"
)

// SettingsKey is the well-known key the settings page checkbox persists under.
const SettingsKey = "test_checkbox"

// SettingsService orchestrates the settings page round trip: read-on-load and
// write-on-submit against the database accessor. Concurrent writers to the
// same key race under last-write-wins; there is no version check or locking.
type SettingsService struct {
	acc *database.Accessor
}

// NewSettingsService constructs a settings service
func NewSettingsService(acc *database.Accessor) *SettingsService {
	return &SettingsService{acc: acc}
}

func settingsTable() string {
	return models.Setting{}.TableName()
}

// EnsureSchema creates the settings table if it does not exist yet. It is
// idempotent and called lazily on every load/update rather than at startup.
func (s *SettingsService) EnsureSchema() error {
	return s.acc.Run(fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, value TEXT, updated_at INTEGER)",
		settingsTable(),
	))
}

// Load produces the settings page payload. When the database is unavailable it
// returns safe defaults (unchecked, empty table) without an error so the page
// still renders. Driver failures are returned alongside the defaulted payload;
// the handler surfaces them as a message instead of failing the page load.
func (s *SettingsService) Load() (*models.SettingsPage, error) {
	page := &models.SettingsPage{
		SettingsTableName: settingsTable(),
		AllSettings:       []models.Setting{},
	}

	if !s.acc.Available() {
		return page, nil
	}
	page.DBAvailable = true

	if err := s.EnsureSchema(); err != nil {
		return page, err
	}

	var row models.Setting
	found, err := s.acc.First(&row,
		fmt.Sprintf("SELECT key, value, updated_at FROM %s WHERE key = ? LIMIT 1", settingsTable()),
		SettingsKey,
	)
	if err != nil {
		return page, err
	}
	if found {
		page.IsChecked = boolValue(row.Value)
	}

	all, err := s.listAll()
	if err != nil {
		return page, err
	}
	page.AllSettings = all

	return page, nil
}

// Update upserts the checkbox value under the well-known key with the current
// time and returns the refreshed row set. It returns database.ErrUnavailable
// when no handle is set.
func (s *SettingsService) Update(isChecked bool) (*models.SettingsUpdate, error) {
	if !s.acc.Available() {
		return nil, database.ErrUnavailable
	}

	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}

	err := s.acc.Run(fmt.Sprintf(
		"INSERT INTO %s (key, value, updated_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		settingsTable(),
	), SettingsKey, strconv.FormatBool(isChecked), time.Now().UnixMilli())
	if err != nil {
		return nil, err
	}

	all, err := s.listAll()
	if err != nil {
		return nil, err
	}

	return &models.SettingsUpdate{
		Success:     true,
		IsChecked:   isChecked,
		AllSettings: all,
	}, nil
}

func (s *SettingsService) listAll() ([]models.Setting, error) {
	var all []models.Setting
	if err := s.acc.All(&all,
		fmt.Sprintf("SELECT key, value, updated_at FROM %s ORDER BY key", settingsTable()),
	); err != nil {
		return nil, err
	}
	if all == nil {
		all = []models.Setting{}
	}
	return all, nil
}

// boolValue decodes the canonical string encoding of the stored boolean.
// Anything other than the literal "true" reads as false.
func boolValue(v string) bool {
	return v == "true"
}
