package models

type Organisation struct {
	BaseModel
	Name         string  `json:"name" gorm:"not null"`
	ContactEmail string  `json:"contact_email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	OrgType      string  `json:"org_type"`
	Description  string  `json:"description"`
	Events       []Event `json:"events,omitempty" gorm:"foreignKey:OrgID"`
}

func AllOrganisations() ([]Organisation, error) {
	organisations := []Organisation{}

	err := db.Order("name").Find(&organisations).Error
	if err != nil {
		return nil, err
	}

	return organisations, nil
}

func FindOrganisation(id interface{}) (*Organisation, error) {
	organisation := Organisation{}

	err := db.First(&organisation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	return &organisation, nil
}

func OrganisationCount() (int64, error) {
	var count int64

	err := db.Model(&Organisation{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
