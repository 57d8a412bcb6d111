package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	BaseModel
	Name          string           `json:"name" gorm:"not null"`
	Description   string           `json:"description"`
	StartDate     time.Time        `json:"start_date" gorm:"not null"`
	EndDate       time.Time        `json:"end_date" gorm:"not null"`
	Location      string           `json:"location"`
	MaxVolunteers int              `json:"max_volunteers" gorm:"not null;default:0"`
	OrgID         uint             `json:"org_id" gorm:"not null"`
	Registrations []VolunteerEvent `json:"registrations,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Skills        []EventSkill     `json:"skills,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// EventRecord is an event row joined with the name of its owning organisation,
// which is how events are always displayed.
type EventRecord struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Location      string    `json:"location"`
	MaxVolunteers int       `json:"max_volunteers"`
	OrgID         uint      `json:"org_id"`
	OrgName       string    `json:"org_name"`
}

func AllEvents() ([]EventRecord, error) {
	events := []EventRecord{}

	err := db.Model(&Event{}).
		Select("events.*, organisations.name AS org_name").
		Joins("INNER JOIN organisations ON organisations.id = events.org_id").
		Order("events.start_date").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}

func FindEvent(id interface{}) (*EventRecord, error) {
	event := EventRecord{}

	res := db.Model(&Event{}).
		Select("events.*, organisations.name AS org_name").
		Joins("INNER JOIN organisations ON organisations.id = events.org_id").
		Where("events.id = ?", id).
		Scan(&event)

	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &event, nil
}

// DeleteEvent removes the event row; its registrations go with it via the
// ON DELETE CASCADE constraint on volunteer_events. The returned count is 0
// when the event was already gone, which callers treat as a no-op rather
// than a fault.
func DeleteEvent(id interface{}) (int64, error) {
	res := db.Delete(&Event{}, "id = ?", id)
	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

func EventCount() (int64, error) {
	var count int64

	err := db.Model(&Event{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
