package models

import (
	"time"
)

type Volunteer struct {
	BaseModel
	FirstName        string           `json:"first_name" gorm:"not null"`
	LastName         string           `json:"last_name" gorm:"not null"`
	DateOfBirth      time.Time        `json:"date_of_birth" gorm:"not null"`
	Email            string           `json:"email" gorm:"not null"`
	Phone            string           `json:"phone" gorm:"not null"`
	Address          string           `json:"address" gorm:"not null"`
	RegistrationDate time.Time        `json:"registration_date" gorm:"autoCreateTime"`
	Events           []VolunteerEvent `json:"events,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Skills           []VolunteerSkill `json:"skills,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FullName is used by list views & flash messages
func (volunteer *Volunteer) FullName() string {
	return volunteer.FirstName + " " + volunteer.LastName
}

func CreateVolunteer(volunteer *Volunteer) error {
	return db.Create(volunteer).Error
}

func AllVolunteers() ([]Volunteer, error) {
	volunteers := []Volunteer{}

	err := db.Order("last_name, first_name").Find(&volunteers).Error
	if err != nil {
		return nil, err
	}

	return volunteers, nil
}

func FindVolunteer(id interface{}) (*Volunteer, error) {
	volunteer := Volunteer{}

	err := db.First(&volunteer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &volunteer, nil
}

// UpdateVolunteerPhone sets a new phone number for the given volunteer and
// reports how many rows changed, so callers can tell a missing record apart
// from a storage fault.
func UpdateVolunteerPhone(id interface{}, phone string) (int64, error) {
	res := db.Model(&Volunteer{}).Where("id = ?", id).Update("phone", phone)
	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

func VolunteerCount() (int64, error) {
	var count int64

	err := db.Model(&Volunteer{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
