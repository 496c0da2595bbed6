package model

import (
	"errors"

	"gorm.io/gorm"
)

// Settings is a singleton row, created lazily with submissions closed on the
// first read that finds no row.
type Settings struct {
	Model
	SubmissionsOpen bool `gorm:"not null;default:false" json:"submissionsOpen"`
}

// GetOrCreateSettings returns the singleton row, creating it closed if
// absent. Always re-reads the store so multiple instances stay consistent.
func GetOrCreateSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = Settings{SubmissionsOpen: false}
		err = db.Create(&settings).Error
	}
	return settings, err
}
