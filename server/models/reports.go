package models

import (
	"time"
)

// Event fill statuses as reported by EventStatistics
const (
	FULL_EVENT    = "Full"
	PARTIAL_EVENT = "Partial"
	EMPTY_EVENT   = "Empty"
)

type SkillMatch struct {
	VolunteerID      uint   `json:"volunteer_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	SkillName        string `json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
	YearsExperience  int    `json:"years_experience"`
}

type EventVolunteer struct {
	VolunteerID      uint      `json:"volunteer_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	EventName        string    `json:"event_name"`
	StartDate        time.Time `json:"start_date"`
	Location         string    `json:"location"`
	RegistrationDate time.Time `json:"registration_date"`
	AttendanceStatus string    `json:"attendance_status"`
	OrgName          string    `json:"org_name"`
}

type EventStatistic struct {
	EventName      string    `json:"event_name"`
	OrgName        string    `json:"org_name"`
	VolunteerCount int64     `json:"volunteer_count"`
	MaxVolunteers  int       `json:"max_volunteers"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	DurationDays   int       `json:"duration_days"`
	Status         string    `json:"status"`
}

type VolunteerProfile struct {
	VolunteerID      uint      `json:"volunteer_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	Age              int       `json:"age"`
	RegistrationDate time.Time `json:"registration_date"`
}

type SkillStat struct {
	SkillName      string  `json:"skill_name"`
	Category       string  `json:"category"`
	VolunteerCount int64   `json:"volunteer_count"`
	AvgExperience  float64 `json:"avg_experience"`
	MaxExperience  int     `json:"max_experience"`
	MinExperience  int     `json:"min_experience"`
}

type OrganisationSummary struct {
	OrgName            string  `json:"org_name"`
	OrgType            string  `json:"org_type"`
	TotalEvents        int64   `json:"total_events"`
	UniqueVolunteers   int64   `json:"unique_volunteers"`
	TotalRegistrations int64   `json:"total_registrations"`
	AvgEventCapacity   float64 `json:"avg_event_capacity"`
}

// SearchVolunteersBySkill finds volunteers whose skills match the given name,
// case-insensitive, substring. Strongest matches first.
func SearchVolunteersBySkill(skillName string) ([]SkillMatch, error) {
	matches := []SkillMatch{}

	err := db.Raw(`
		SELECT DISTINCT volunteers.id AS volunteer_id,
		       volunteers.first_name, volunteers.last_name,
		       volunteers.email, volunteers.phone,
		       skills.name AS skill_name,
		       volunteer_skills.proficiency_level, volunteer_skills.years_experience
		FROM volunteers
		INNER JOIN volunteer_skills ON volunteer_skills.volunteer_id = volunteers.id
		INNER JOIN skills ON skills.id = volunteer_skills.skill_id
		WHERE skills.name LIKE ?
		ORDER BY volunteer_skills.proficiency_level DESC, volunteer_skills.years_experience DESC`,
		"%"+skillName+"%").Scan(&matches).Error
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// VolunteersForOrganisationEvents lists every registration for events run by
// the given organisation, one row per (volunteer, event) pair.
func VolunteersForOrganisationEvents(orgID interface{}) ([]EventVolunteer, error) {
	records := []EventVolunteer{}

	err := db.Raw(`
		SELECT volunteers.id AS volunteer_id,
		       volunteers.first_name, volunteers.last_name,
		       volunteers.email, volunteers.phone,
		       events.name AS event_name, events.start_date, events.location,
		       volunteer_events.registration_date, volunteer_events.attendance_status,
		       organisations.name AS org_name
		FROM volunteers
		INNER JOIN volunteer_events ON volunteer_events.volunteer_id = volunteers.id
		INNER JOIN events ON events.id = volunteer_events.event_id
		INNER JOIN organisations ON organisations.id = events.org_id
		WHERE organisations.id = ?
		ORDER BY events.start_date, volunteers.last_name, volunteers.first_name`,
		orgID).Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

// EventStatistics reports per-event registration counts, duration in whole
// days, and a fill status label, busiest events first.
func EventStatistics() ([]EventStatistic, error) {
	stats := []EventStatistic{}

	err := db.Raw(`
		SELECT events.name AS event_name,
		       organisations.name AS org_name,
		       COUNT(volunteer_events.volunteer_id) AS volunteer_count,
		       events.max_volunteers,
		       events.start_date, events.end_date,
		       CAST(julianday(events.end_date) - julianday(events.start_date) AS INTEGER) AS duration_days,
		       CASE
		           WHEN COUNT(volunteer_events.volunteer_id) >= events.max_volunteers THEN 'Full'
		           WHEN COUNT(volunteer_events.volunteer_id) > 0 THEN 'Partial'
		           ELSE 'Empty'
		       END AS status
		FROM events
		INNER JOIN organisations ON organisations.id = events.org_id
		LEFT JOIN volunteer_events ON volunteer_events.event_id = events.id
		GROUP BY events.id, events.name, organisations.name, events.max_volunteers, events.start_date, events.end_date
		ORDER BY volunteer_count DESC`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// VolunteerProfiles lists volunteers with derived full_name and age columns
func VolunteerProfiles() ([]VolunteerProfile, error) {
	profiles := []VolunteerProfile{}

	err := db.Raw(`
		SELECT id AS volunteer_id,
		       (first_name || ' ' || last_name) AS full_name,
		       email, phone, address, date_of_birth,
		       CAST((julianday('now') - julianday(date_of_birth)) / 365.25 AS INTEGER) AS age,
		       registration_date
		FROM volunteers
		ORDER BY full_name`).Scan(&profiles).Error
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

// SkillDistribution summarises volunteer experience per skill. Skills no
// volunteer holds are filtered out.
func SkillDistribution() ([]SkillStat, error) {
	stats := []SkillStat{}

	err := db.Raw(`
		SELECT skills.name AS skill_name, skills.category,
		       COUNT(volunteer_skills.volunteer_id) AS volunteer_count,
		       AVG(volunteer_skills.years_experience) AS avg_experience,
		       MAX(volunteer_skills.years_experience) AS max_experience,
		       MIN(volunteer_skills.years_experience) AS min_experience
		FROM skills
		LEFT JOIN volunteer_skills ON volunteer_skills.skill_id = skills.id
		GROUP BY skills.id, skills.name, skills.category
		HAVING COUNT(volunteer_skills.volunteer_id) > 0
		ORDER BY volunteer_count DESC, skills.category`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// OrganisationEventSummary reports event & volunteer engagement per
// organisation, including organisations with no events at all.
func OrganisationEventSummary() ([]OrganisationSummary, error) {
	summaries := []OrganisationSummary{}

	err := db.Raw(`
		SELECT organisations.name AS org_name, organisations.org_type,
		       COUNT(DISTINCT events.id) AS total_events,
		       COUNT(DISTINCT volunteer_events.volunteer_id) AS unique_volunteers,
		       COUNT(volunteer_events.volunteer_id) AS total_registrations,
		       AVG(events.max_volunteers) AS avg_event_capacity
		FROM organisations
		LEFT JOIN events ON events.org_id = organisations.id
		LEFT JOIN volunteer_events ON volunteer_events.event_id = events.id
		GROUP BY organisations.id, organisations.name, organisations.org_type
		ORDER BY total_events DESC, unique_volunteers DESC`).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	return summaries, nil
}
