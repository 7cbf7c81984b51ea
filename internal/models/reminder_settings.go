package models

import "gorm.io/gorm"

// ReminderSettings is the configuration for the external payday reminder
// scheduler. The backend only stores the configuration, scheduling happens
// on the device.
//
// A single row exists, written with upsert semantics.
type ReminderSettings struct {
	DefaultModel
	Payday     int // day of the month the income arrives
	DaysBefore int // how many days before payday to remind
}

func (s *ReminderSettings) BeforeSave(_ *gorm.DB) error {
	if s.Payday < 1 || s.Payday > 31 {
		return ErrPaydayInvalid
	}

	if s.DaysBefore < 0 {
		return ErrDaysBeforeNegative
	}

	return nil
}

// GetReminderSettings returns the reminder configuration, nil when none has
// been saved yet.
func GetReminderSettings(db *gorm.DB) (*ReminderSettings, error) {
	var settings ReminderSettings

	err := db.First(&settings).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &settings, nil
}

// UpsertReminderSettings replaces the reminder configuration. The previous
// row, if any, is removed only after the new one validated.
func UpsertReminderSettings(db *gorm.DB, payday, daysBefore int) (*ReminderSettings, error) {
	settings := ReminderSettings{Payday: payday, DaysBefore: daysBefore}
	if err := settings.BeforeSave(db); err != nil {
		return nil, err
	}

	err := db.Unscoped().Where("true").Delete(&ReminderSettings{}).Error
	if err != nil {
		return nil, err
	}

	err = db.Create(&settings).Error
	if err != nil {
		return nil, err
	}

	return &settings, nil
}
