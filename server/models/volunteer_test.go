package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestVolunteer(firstName, lastName string) *Volunteer {
	return &Volunteer{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Email:       firstName + "@example.com",
		Phone:       "0412345678",
		Address:     "1 Example St",
	}
}

func TestCreateAndFindVolunteer(t *testing.T) {
	InitializeTestDb()

	volunteer := newTestVolunteer("Mike", "Ross")
	assert.Nil(t, CreateVolunteer(volunteer))
	assert.NotZero(t, volunteer.ID, "Creating a volunteer should assign an id")
	assert.False(t, volunteer.RegistrationDate.IsZero(), "Registration date should be system-assigned")

	found, err := FindVolunteer(volunteer.ID)
	assert.Nil(t, err)
	assert.Equal(t, "Mike", found.FirstName)
	assert.Equal(t, "Ross", found.LastName)
	assert.Equal(t, "0412345678", found.Phone)
}

func TestAllVolunteersOrder(t *testing.T) {
	InitializeTestDb()

	assert.Nil(t, CreateVolunteer(newTestVolunteer("Harvey", "Specter")))
	assert.Nil(t, CreateVolunteer(newTestVolunteer("Mike", "Ross")))
	assert.Nil(t, CreateVolunteer(newTestVolunteer("Rachel", "Ross")))

	volunteers, err := AllVolunteers()
	assert.Nil(t, err)
	assert.Len(t, volunteers, 3)

	// Ordered by last name, then first name
	assert.Equal(t, "Ross", volunteers[0].LastName)
	assert.Equal(t, "Mike", volunteers[0].FirstName)
	assert.Equal(t, "Rachel", volunteers[1].FirstName)
	assert.Equal(t, "Specter", volunteers[2].LastName)
}

func TestUpdateVolunteerPhone(t *testing.T) {
	InitializeTestDb()

	volunteer := newTestVolunteer("Donna", "Paulsen")
	assert.Nil(t, CreateVolunteer(volunteer))

	rowsAffected, err := UpdateVolunteerPhone(volunteer.ID, "0498765432")
	assert.Nil(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	found, err := FindVolunteer(volunteer.ID)
	assert.Nil(t, err)
	assert.Equal(t, "0498765432", found.Phone)
}

func TestUpdateVolunteerPhoneForMissingVolunteer(t *testing.T) {
	InitializeTestDb()

	rowsAffected, err := UpdateVolunteerPhone(9999, "0498765432")
	assert.Nil(t, err, "A missing volunteer should not be a fault")
	assert.Equal(t, int64(0), rowsAffected)
}

func TestVolunteerCount(t *testing.T) {
	InitializeTestDb()

	count, err := VolunteerCount()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)

	assert.Nil(t, CreateVolunteer(newTestVolunteer("Louis", "Litt")))

	count, err = VolunteerCount()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)
}
