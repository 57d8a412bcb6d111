package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/communityconnect/connect/utils"
	"github.com/communityconnect/connect/validation"
	"github.com/go-playground/validator"
)

const SESSION_NAME = "community_connect"

type flashBag struct {
	Errors    []string
	Successes []string
	Infos     []string
}

// page is the payload handed to every template
type page struct {
	Title   string
	Errors  []string
	Form    map[string]string
	Flashes flashBag
	Data    map[string]interface{}
}

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func renderPage(rw http.ResponseWriter, r *http.Request, statusCode int, name string, pg *page) {
	if pg.Form == nil {
		pg.Form = map[string]string{}
	}

	if pg.Data == nil {
		pg.Data = map[string]interface{}{}
	}

	// Flashes set the session cookie, so they're consumed before any
	// part of the body is written
	pg.Flashes = consumeFlashes(rw, r)

	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(statusCode)

	if err := templates.ExecuteTemplate(rw, name, pg); err != nil {
		logg.Errorf("failed to render %v: %v", name, err)
	}
}

func renderError(rw http.ResponseWriter, r *http.Request, statusCode int, message string) {
	renderPage(rw, r, statusCode, "error.html", &page{
		Title: "Something went wrong",
		Data:  map[string]interface{}{"Code": statusCode, "Message": message},
	})
}

func addFlash(rw http.ResponseWriter, r *http.Request, category string, message string) {
	session, err := store.Get(r, SESSION_NAME)
	if err != nil {
		logg.Infof("replacing undecodable session cookie: %v", err)
	}

	session.AddFlash(message, category)
	if err := session.Save(r, rw); err != nil {
		logg.Errorf("failed to save flash message: %v", err)
	}
}

func consumeFlashes(rw http.ResponseWriter, r *http.Request) flashBag {
	bag := flashBag{}

	session, err := store.Get(r, SESSION_NAME)
	if err != nil {
		return bag
	}

	for _, flash := range session.Flashes("error") {
		bag.Errors = append(bag.Errors, fmt.Sprint(flash))
	}
	for _, flash := range session.Flashes("success") {
		bag.Successes = append(bag.Successes, fmt.Sprint(flash))
	}
	for _, flash := range session.Flashes("info") {
		bag.Infos = append(bag.Infos, fmt.Sprint(flash))
	}

	if len(bag.Errors)+len(bag.Successes)+len(bag.Infos) > 0 {
		if err := session.Save(r, rw); err != nil {
			logg.Errorf("failed to clear flash messages: %v", err)
		}
	}

	return bag
}

func RegisterValidators(validate *validator.Validate) error {
	err := validate.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return validation.Email(fl.Field().String())
	})
	if err != nil {
		return err
	}

	return validate.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return validation.Phone(fl.Field().String())
	})
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

// ConfigDirectory retrieves the directory holding the config & db files,
// or logs an error message and then calls os.Exit if it's unable to.
// Shared with the db CLI commands so both resolve the same db file.
func ConfigDirectory(devMode bool) string {
	// Use 'connect' folder in home directory for prod
	configFolderName := "connect"
	rootDir, err := os.UserHomeDir()
	fatalOnError(err)

	// Use 'dev' folder in current directory for dev mode
	if devMode {
		configFolderName = "dev"
		rootDir, err = os.Getwd()
		fatalOnError(err)
	}

	configDir := filepath.Join(rootDir, configFolderName)

	err = utils.CreateDirIfNotExist(configDir)
	fatalOnError(err)

	return configDir
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
