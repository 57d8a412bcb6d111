package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func findSeededSkill(t *testing.T, name string) *Skill {
	skill := Skill{}
	assert.Nil(t, db.First(&skill, "name = ?", name).Error)
	return &skill
}

func registerVolunteers(t *testing.T, event *Event, count int) {
	for i := 0; i < count; i++ {
		volunteer := newTestVolunteer("Extra", "Hand")
		volunteer.Email = "extra@example.com"
		assert.Nil(t, CreateVolunteer(volunteer))
		assert.Nil(t, RegisterVolunteerForEvent(&VolunteerEvent{
			VolunteerID: volunteer.ID,
			EventID:     event.ID,
		}))
	}
}

func TestEventStatistics(t *testing.T) {
	InitializeTestDb()

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	full := newTestEvent(t, "Full Event", start, 3, 5)
	partial := newTestEvent(t, "Partial Event", start, 1, 5)
	newTestEvent(t, "Empty Event", start, 0, 5)

	registerVolunteers(t, full, 5)
	registerVolunteers(t, partial, 2)

	stats, err := EventStatistics()
	assert.Nil(t, err)
	assert.Len(t, stats, 3)

	// Busiest events first
	assert.Equal(t, "Full Event", stats[0].EventName)
	assert.Equal(t, FULL_EVENT, stats[0].Status)
	assert.Equal(t, int64(5), stats[0].VolunteerCount)
	assert.Equal(t, 3, stats[0].DurationDays)

	assert.Equal(t, "Partial Event", stats[1].EventName)
	assert.Equal(t, PARTIAL_EVENT, stats[1].Status)
	assert.Equal(t, 1, stats[1].DurationDays)

	assert.Equal(t, "Empty Event", stats[2].EventName)
	assert.Equal(t, EMPTY_EVENT, stats[2].Status)
	assert.Equal(t, int64(0), stats[2].VolunteerCount)
	assert.NotEmpty(t, stats[0].OrgName)
}

func TestSkillDistributionSkipsUnheldSkills(t *testing.T) {
	InitializeTestDb()

	firstAid := findSeededSkill(t, "First Aid")
	cooking := findSeededSkill(t, "Cooking")

	volunteer := newTestVolunteer("Katrina", "Bennett")
	assert.Nil(t, CreateVolunteer(volunteer))
	assert.Nil(t, AddVolunteerSkill(&VolunteerSkill{
		VolunteerID:      volunteer.ID,
		SkillID:          firstAid.ID,
		ProficiencyLevel: 4,
		YearsExperience:  6,
	}))

	stats, err := SkillDistribution()
	assert.Nil(t, err)
	assert.Len(t, stats, 1, "Skills held by no volunteer should be filtered out")
	assert.Equal(t, firstAid.Name, stats[0].SkillName)
	assert.NotEqual(t, cooking.Name, stats[0].SkillName)
	assert.Equal(t, int64(1), stats[0].VolunteerCount)
	assert.Equal(t, 6, stats[0].MaxExperience)
	assert.Equal(t, 6, stats[0].MinExperience)
	assert.InDelta(t, 6.0, stats[0].AvgExperience, 0.001)
}

func TestSearchVolunteersBySkill(t *testing.T) {
	InitializeTestDb()

	firstAid := findSeededSkill(t, "First Aid")

	novice := newTestVolunteer("Harold", "Gunderson")
	expert := newTestVolunteer("Sheila", "Sazs")
	assert.Nil(t, CreateVolunteer(novice))
	assert.Nil(t, CreateVolunteer(expert))

	assert.Nil(t, AddVolunteerSkill(&VolunteerSkill{
		VolunteerID: novice.ID, SkillID: firstAid.ID, ProficiencyLevel: 1, YearsExperience: 1,
	}))
	assert.Nil(t, AddVolunteerSkill(&VolunteerSkill{
		VolunteerID: expert.ID, SkillID: firstAid.ID, ProficiencyLevel: 5, YearsExperience: 10,
	}))

	// Case-insensitive substring match, strongest first
	matches, err := SearchVolunteersBySkill("first")
	assert.Nil(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "Sheila", matches[0].FirstName)
	assert.Equal(t, 5, matches[0].ProficiencyLevel)
	assert.Equal(t, "Harold", matches[1].FirstName)

	matches, err = SearchVolunteersBySkill("no such skill")
	assert.Nil(t, err)
	assert.Empty(t, matches)
}

func TestVolunteersForOrganisationEvents(t *testing.T) {
	InitializeTestDb()

	event := newTestEvent(t, "Community Picnic", time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), 0, 20)
	registerVolunteers(t, event, 2)

	records, err := VolunteersForOrganisationEvents(event.OrgID)
	assert.Nil(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Community Picnic", records[0].EventName)
	assert.Equal(t, REGISTERED_ATTENDANCE, records[0].AttendanceStatus)

	records, err = VolunteersForOrganisationEvents(9999)
	assert.Nil(t, err)
	assert.Empty(t, records)
}

func TestVolunteerProfiles(t *testing.T) {
	InitializeTestDb()

	volunteer := newTestVolunteer("Alex", "Williams")
	volunteer.DateOfBirth = time.Now().AddDate(-30, 0, -1)
	assert.Nil(t, CreateVolunteer(volunteer))

	profiles, err := VolunteerProfiles()
	assert.Nil(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "Alex Williams", profiles[0].FullName)
	assert.Equal(t, 30, profiles[0].Age)
}

func TestOrganisationEventSummary(t *testing.T) {
	InitializeTestDb()

	event := newTestEvent(t, "Repair Cafe", time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC), 0, 6)
	registerVolunteers(t, event, 2)

	summaries, err := OrganisationEventSummary()
	assert.Nil(t, err)
	assert.Len(t, summaries, 3, "Every seeded organisation should appear, even with no events")

	// The organisation with events sorts first
	assert.Equal(t, int64(1), summaries[0].TotalEvents)
	assert.Equal(t, int64(2), summaries[0].UniqueVolunteers)
	assert.Equal(t, int64(2), summaries[0].TotalRegistrations)
	assert.InDelta(t, 6.0, summaries[0].AvgEventCapacity, 0.001)
	assert.Equal(t, int64(0), summaries[1].TotalEvents)
}

func TestPing(t *testing.T) {
	InitializeTestDb()

	assert.True(t, Ping(), "All expected tables should exist after migration")
}
