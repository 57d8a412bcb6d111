package models

import (
	"time"
)

// Attendance statuses carried on an event registration
const (
	REGISTERED_ATTENDANCE = "registered"
	ATTENDED_ATTENDANCE   = "attended"
	NO_SHOW_ATTENDANCE    = "no-show"
)

// VolunteerEvent links a volunteer to an event they signed up for
type VolunteerEvent struct {
	BaseModel
	VolunteerID      uint      `json:"volunteer_id" gorm:"not null;index"`
	EventID          uint      `json:"event_id" gorm:"not null;index"`
	RegistrationDate time.Time `json:"registration_date" gorm:"autoCreateTime"`
	AttendanceStatus string    `json:"attendance_status" gorm:"default:registered"`
}

// VolunteerSkill links a volunteer to a skill at a proficiency level(1-5)
type VolunteerSkill struct {
	BaseModel
	VolunteerID      uint `json:"volunteer_id" gorm:"not null;index"`
	SkillID          uint `json:"skill_id" gorm:"not null;index"`
	ProficiencyLevel int  `json:"proficiency_level" gorm:"not null;default:1"`
	YearsExperience  int  `json:"years_experience" gorm:"not null;default:0"`
}

// EventSkill records a skill an event calls for. It is part of the expected
// schema but no operation reads or writes it yet.
type EventSkill struct {
	BaseModel
	EventID uint `json:"event_id" gorm:"not null;index"`
	SkillID uint `json:"skill_id" gorm:"not null;index"`
}

func RegisterVolunteerForEvent(registration *VolunteerEvent) error {
	return db.Create(registration).Error
}

func AddVolunteerSkill(volunteerSkill *VolunteerSkill) error {
	return db.Create(volunteerSkill).Error
}
