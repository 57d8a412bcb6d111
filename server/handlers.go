package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/communityconnect/connect/server/models"
	"github.com/communityconnect/connect/validation"
	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type volunteerForm struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	DateOfBirth string `validate:"required"`
	Email       string `validate:"required,loose_email"`
	Phone       string `validate:"required,phone_number"`
	Address     string `validate:"required"`
}

var volunteerFieldMessages = map[string]string{
	"FirstName":   "First name is required",
	"LastName":    "Last name is required",
	"DateOfBirth": "Date of birth is required",
	"Email":       "Valid email address is required",
	"Phone":       "Valid phone number is required",
	"Address":     "Address is required",
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := RegisterValidators(validate); err != nil {
		panic(err)
	}
}

func indexHandler(rw http.ResponseWriter, r *http.Request) {
	volunteerCount, err := models.VolunteerCount()
	if err != nil {
		logg.Errorf("failed to count volunteers: %v", err)
	}

	organisationCount, err := models.OrganisationCount()
	if err != nil {
		logg.Errorf("failed to count organisations: %v", err)
	}

	eventCount, err := models.EventCount()
	if err != nil {
		logg.Errorf("failed to count events: %v", err)
	}

	renderPage(rw, r, http.StatusOK, "index.html", &page{
		Title: "Community Connect",
		Data: map[string]interface{}{
			"DBStatus":          models.Ping(),
			"VolunteerCount":    volunteerCount,
			"OrganisationCount": organisationCount,
			"EventCount":        eventCount,
		},
	})
}

func newVolunteerHandler(rw http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderPage(rw, r, http.StatusOK, "new_volunteer.html", &page{Title: "New Volunteer"})
		return
	}

	form := map[string]string{
		"first_name":    strings.TrimSpace(r.FormValue("first_name")),
		"last_name":     strings.TrimSpace(r.FormValue("last_name")),
		"date_of_birth": strings.TrimSpace(r.FormValue("date_of_birth")),
		"email":         strings.TrimSpace(r.FormValue("email")),
		"phone":         strings.TrimSpace(r.FormValue("phone")),
		"address":       strings.TrimSpace(r.FormValue("address")),
	}

	validationErrors, dateOfBirth := validateVolunteerForm(form)
	if len(validationErrors) > 0 {
		renderPage(rw, r, http.StatusOK, "new_volunteer.html", &page{
			Title:  "New Volunteer",
			Errors: validationErrors,
			Form:   form,
		})
		return
	}

	volunteer := models.Volunteer{
		FirstName:   form["first_name"],
		LastName:    form["last_name"],
		DateOfBirth: dateOfBirth,
		Email:       form["email"],
		Phone:       form["phone"],
		Address:     form["address"],
	}

	if err := models.CreateVolunteer(&volunteer); err != nil {
		logg.Errorf("failed to create volunteer: %v", err)
		renderPage(rw, r, http.StatusOK, "new_volunteer.html", &page{
			Title:  "New Volunteer",
			Errors: []string{"Error creating volunteer. Please check your input and try again."},
			Form:   form,
		})
		return
	}

	addFlash(rw, r, "success", fmt.Sprintf("Volunteer %v created successfully!", volunteer.FullName()))
	http.Redirect(rw, r, "/volunteers", http.StatusSeeOther)
}

func volunteersHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Volunteers"}

	volunteers, err := models.AllVolunteers()
	if err != nil {
		logg.Errorf("failed to list volunteers: %v", err)
		pg.Errors = append(pg.Errors, "Error retrieving volunteers from database")
	}

	pg.Data = map[string]interface{}{"Volunteers": volunteers}
	renderPage(rw, r, http.StatusOK, "view_volunteers.html", pg)
}

func organisationsHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Organisations"}

	organisations, err := models.AllOrganisations()
	if err != nil {
		logg.Errorf("failed to list organisations: %v", err)
		pg.Errors = append(pg.Errors, "Error retrieving organisations from database")
	}

	pg.Data = map[string]interface{}{"Organisations": organisations}
	renderPage(rw, r, http.StatusOK, "view_organisations.html", pg)
}

func eventsHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Events"}

	events, err := models.AllEvents()
	if err != nil {
		logg.Errorf("failed to list events: %v", err)
		pg.Errors = append(pg.Errors, "Error retrieving events from database")
	}

	pg.Data = map[string]interface{}{"Events": events}
	renderPage(rw, r, http.StatusOK, "view_events.html", pg)
}

func skillsHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Skills"}

	skills, err := models.AllSkills()
	if err != nil {
		logg.Errorf("failed to list skills: %v", err)
		pg.Errors = append(pg.Errors, "Error retrieving skills from database")
	}

	pg.Data = map[string]interface{}{"Skills": skills}
	renderPage(rw, r, http.StatusOK, "view_skills.html", pg)
}

func updateVolunteerPhoneHandler(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	volunteer, err := models.FindVolunteer(vars["id"])
	if errors.Is(err, gorm.ErrRecordNotFound) {
		addFlash(rw, r, "error", "Volunteer not found")
		http.Redirect(rw, r, "/volunteers", http.StatusSeeOther)
		return
	}

	if err != nil {
		logg.Errorf("failed to fetch volunteer %v: %v", vars["id"], err)
		addFlash(rw, r, "error", "Error retrieving volunteer. Please try again.")
		http.Redirect(rw, r, "/volunteers", http.StatusSeeOther)
		return
	}

	pg := &page{
		Title: "Update Phone Number",
		Data:  map[string]interface{}{"Volunteer": volunteer},
	}

	if r.Method == http.MethodGet {
		renderPage(rw, r, http.StatusOK, "update_volunteer_phone.html", pg)
		return
	}

	newPhone := strings.TrimSpace(r.FormValue("phone"))
	pg.Form = map[string]string{"phone": newPhone}

	switch {
	case newPhone == "":
		pg.Errors = []string{"Phone number is required"}
	case !validation.Phone(newPhone):
		pg.Errors = []string{"Please enter a valid phone number"}
	}

	if len(pg.Errors) > 0 {
		renderPage(rw, r, http.StatusOK, "update_volunteer_phone.html", pg)
		return
	}

	rowsAffected, err := models.UpdateVolunteerPhone(volunteer.ID, newPhone)
	if err != nil || rowsAffected == 0 {
		if err != nil {
			logg.Errorf("failed to update phone for volunteer %v: %v", volunteer.ID, err)
		}
		pg.Errors = []string{"Error updating phone number. Please try again."}
		renderPage(rw, r, http.StatusOK, "update_volunteer_phone.html", pg)
		return
	}

	addFlash(rw, r, "success", fmt.Sprintf("Phone number updated successfully for %v", volunteer.FullName()))
	http.Redirect(rw, r, "/volunteers", http.StatusSeeOther)
}

func deleteEventHandler(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	event, err := models.FindEvent(vars["id"])
	if errors.Is(err, gorm.ErrRecordNotFound) {
		addFlash(rw, r, "error", "Event not found")
		http.Redirect(rw, r, "/events", http.StatusSeeOther)
		return
	}

	if err != nil {
		logg.Errorf("failed to fetch event %v: %v", vars["id"], err)
		addFlash(rw, r, "error", "Error retrieving event. Please try again.")
		http.Redirect(rw, r, "/events", http.StatusSeeOther)
		return
	}

	rowsAffected, err := models.DeleteEvent(event.ID)
	switch {
	case err != nil:
		logg.Errorf("failed to delete event %v: %v", event.ID, err)
		addFlash(rw, r, "error", "Error deleting event. Please try again.")
	case rowsAffected == 0:
		// Someone else got there first; nothing left to delete
		addFlash(rw, r, "info", fmt.Sprintf("Event %q was already removed", event.Name))
	default:
		addFlash(rw, r, "success", fmt.Sprintf("Event %q deleted successfully", event.Name))
	}

	http.Redirect(rw, r, "/events", http.StatusSeeOther)
}

func searchVolunteersHandler(rw http.ResponseWriter, r *http.Request) {
	skillName := strings.TrimSpace(r.URL.Query().Get("skill"))
	pg := &page{
		Title: "Search Volunteers By Skill",
		Form:  map[string]string{"skill": skillName},
	}

	if skillName != "" {
		matches, err := models.SearchVolunteersBySkill(skillName)
		if err != nil {
			logg.Errorf("skill search %q failed: %v", skillName, err)
			pg.Errors = append(pg.Errors, "Error searching volunteers by skill")
		}
		pg.Data = map[string]interface{}{"Matches": matches}
	}

	renderPage(rw, r, http.StatusOK, "search_volunteers.html", pg)
}

func organisationVolunteersHandler(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	organisation, err := models.FindOrganisation(vars["id"])
	if errors.Is(err, gorm.ErrRecordNotFound) {
		addFlash(rw, r, "error", "Organisation not found")
		http.Redirect(rw, r, "/organisations", http.StatusSeeOther)
		return
	}

	if err != nil {
		logg.Errorf("failed to fetch organisation %v: %v", vars["id"], err)
		addFlash(rw, r, "error", "Error retrieving organisation. Please try again.")
		http.Redirect(rw, r, "/organisations", http.StatusSeeOther)
		return
	}

	pg := &page{Title: "Organisation Volunteers"}

	registrations, err := models.VolunteersForOrganisationEvents(organisation.ID)
	if err != nil {
		logg.Errorf("failed to list volunteers for organisation %v: %v", organisation.ID, err)
		pg.Errors = append(pg.Errors, "Error retrieving volunteers for this organisation")
	}

	pg.Data = map[string]interface{}{
		"Organisation":  organisation,
		"Registrations": registrations,
	}
	renderPage(rw, r, http.StatusOK, "org_volunteers.html", pg)
}

func eventReportHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Event Statistics"}

	statistics, err := models.EventStatistics()
	if err != nil {
		logg.Errorf("failed to compute event statistics: %v", err)
		pg.Errors = append(pg.Errors, "Error generating event statistics")
	}

	pg.Data = map[string]interface{}{"Statistics": statistics}
	renderPage(rw, r, http.StatusOK, "report_events.html", pg)
}

func skillReportHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Skill Distribution"}

	statistics, err := models.SkillDistribution()
	if err != nil {
		logg.Errorf("failed to compute skill distribution: %v", err)
		pg.Errors = append(pg.Errors, "Error generating skill distribution")
	}

	pg.Data = map[string]interface{}{"Statistics": statistics}
	renderPage(rw, r, http.StatusOK, "report_skills.html", pg)
}

func organisationReportHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Organisation Summary"}

	summaries, err := models.OrganisationEventSummary()
	if err != nil {
		logg.Errorf("failed to compute organisation summary: %v", err)
		pg.Errors = append(pg.Errors, "Error generating organisation summary")
	}

	pg.Data = map[string]interface{}{"Summaries": summaries}
	renderPage(rw, r, http.StatusOK, "report_organisations.html", pg)
}

func volunteerProfilesHandler(rw http.ResponseWriter, r *http.Request) {
	pg := &page{Title: "Volunteer Profiles"}

	profiles, err := models.VolunteerProfiles()
	if err != nil {
		logg.Errorf("failed to list volunteer profiles: %v", err)
		pg.Errors = append(pg.Errors, "Error retrieving volunteer profiles")
	}

	pg.Data = map[string]interface{}{"Profiles": profiles}
	renderPage(rw, r, http.StatusOK, "volunteer_profiles.html", pg)
}

func notFoundHandler(rw http.ResponseWriter, r *http.Request) {
	renderError(rw, r, http.StatusNotFound, "Page not found")
}

// ---------------------------------------------------------------------------------//
// Form validation
// --------------------------------------------------------------------------------//

// validateVolunteerForm collects every violated rule(not fail-fast) and, when
// the date of birth is well formed, returns it parsed.
func validateVolunteerForm(form map[string]string) ([]string, time.Time) {
	data := volunteerForm{
		FirstName:   form["first_name"],
		LastName:    form["last_name"],
		DateOfBirth: form["date_of_birth"],
		Email:       form["email"],
		Phone:       form["phone"],
		Address:     form["address"],
	}

	var messages []string
	if err := validate.Struct(data); err != nil {
		for _, fieldError := range err.(validator.ValidationErrors) {
			messages = append(messages, volunteerFieldMessages[fieldError.Field()])
		}
	}

	var dateOfBirth time.Time
	if form["date_of_birth"] != "" {
		parsed, err := time.ParseInLocation("2006-01-02", form["date_of_birth"], time.Local)
		switch {
		case err != nil:
			messages = append(messages, "Invalid date format")
		case !parsed.Before(today()):
			messages = append(messages, "Date of birth must be in the past")
		default:
			dateOfBirth = parsed
		}
	}

	return messages, dateOfBirth
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
