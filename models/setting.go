package models

// Setting is one row of the demo settings table. The value column holds the
// canonical string encoding of the stored boolean ("true"/"false"); updated_at
// is the write's Unix epoch in milliseconds.
type Setting struct {
	Key       string `gorm:"column:key;primaryKey" json:"key"`
	Value     string `gorm:"column:value" json:"value"`
	UpdatedAt int64  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName maps the model onto the demo table.
func (Setting) TableName() string {
	return "example_table"
}

// SettingsPage is the read payload for the settings page.
type SettingsPage struct {
	IsChecked         bool      `json:"isChecked"`
	SettingsTableName string    `json:"settingsTableName"`
	DBAvailable       bool      `json:"dbAvailable"`
	AllSettings       []Setting `json:"allSettings"`
	Error             string    `json:"error,omitempty"`
}

// SettingsUpdate is the write payload returned after a settings submission.
type SettingsUpdate struct {
	Success     bool      `json:"success"`
	IsChecked   bool      `json:"isChecked"`
	AllSettings []Setting `json:"allSettings"`
}
