package models

type Skill struct {
	BaseModel
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Volunteers  []VolunteerSkill `json:"volunteers,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func AllSkills() ([]Skill, error) {
	skills := []Skill{}

	err := db.Order("category, name").Find(&skills).Error
	if err != nil {
		return nil, err
	}

	return skills, nil
}
