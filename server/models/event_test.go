package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func firstSeededOrganisation(t *testing.T) *Organisation {
	organisations, err := AllOrganisations()
	assert.Nil(t, err)
	assert.NotEmpty(t, organisations, "Seed data should include organisations")
	return &organisations[0]
}

func newTestEvent(t *testing.T, name string, startDate time.Time, days int, maxVolunteers int) *Event {
	event := &Event{
		Name:          name,
		Description:   "test event",
		StartDate:     startDate,
		EndDate:       startDate.AddDate(0, 0, days),
		Location:      "Community Hall",
		MaxVolunteers: maxVolunteers,
		OrgID:         firstSeededOrganisation(t).ID,
	}
	assert.Nil(t, db.Create(event).Error)
	return event
}

func TestAllEventsIncludesOrganisationName(t *testing.T) {
	InitializeTestDb()

	later := newTestEvent(t, "Beach Cleanup", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 1, 10)
	earlier := newTestEvent(t, "Soup Night", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), 1, 5)

	events, err := AllEvents()
	assert.Nil(t, err)
	assert.Len(t, events, 2)

	// Ordered by start date ascending
	assert.Equal(t, earlier.Name, events[0].Name)
	assert.Equal(t, later.Name, events[1].Name)
	assert.NotEmpty(t, events[0].OrgName, "Each event should carry its organisation's name")
}

func TestFindEvent(t *testing.T) {
	InitializeTestDb()

	event := newTestEvent(t, "Tree Planting", time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), 0, 8)

	found, err := FindEvent(event.ID)
	assert.Nil(t, err)
	assert.Equal(t, "Tree Planting", found.Name)
	assert.Equal(t, event.OrgID, found.OrgID)
	assert.NotEmpty(t, found.OrgName)

	_, err = FindEvent(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteEventTwice(t *testing.T) {
	InitializeTestDb()

	event := newTestEvent(t, "Street Library", time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC), 0, 4)

	rowsAffected, err := DeleteEvent(event.ID)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	// Deleting again is a no-op, not a fault
	rowsAffected, err = DeleteEvent(event.ID)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), rowsAffected)
}

func TestDeleteEventRemovesRegistrations(t *testing.T) {
	InitializeTestDb()

	event := newTestEvent(t, "Winter Appeal", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), 2, 10)

	volunteer := newTestVolunteer("Jessica", "Pearson")
	assert.Nil(t, CreateVolunteer(volunteer))
	assert.Nil(t, RegisterVolunteerForEvent(&VolunteerEvent{
		VolunteerID: volunteer.ID,
		EventID:     event.ID,
	}))

	rowsAffected, err := DeleteEvent(event.ID)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), rowsAffected)

	var registrationCount int64
	assert.Nil(t, db.Model(&VolunteerEvent{}).Where("event_id = ?", event.ID).Count(&registrationCount).Error)
	assert.Equal(t, int64(0), registrationCount, "Registrations should cascade with their event")
}
