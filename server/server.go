package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/communityconnect/connect/server/logger"
	"github.com/communityconnect/connect/server/models"
	"github.com/communityconnect/connect/shared"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/spf13/viper"
)

var (
	logg  = logger.NewLogger()
	store *sessions.CookieStore
)

// Start brings up the Community Connect web app: config, db, routes
func Start(config *viper.Viper, devMode bool) {
	serverConfig := shared.ServerConfig{}
	fatalOnError(config.Unmarshal(&serverConfig))
	fatalOnError(validate.Struct(serverConfig))

	store = sessions.NewCookieStore([]byte(serverConfig.Session.Secret))

	configDir := ConfigDirectory(devMode)
	fatalOnError(models.AutoMigrate(serverConfig.Sqlite.PassPhrase, configDir))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%v", serverConfig.Listener.Port),
		Handler: NewRouter(),
	}

	go serve(server)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	cleanup(server)
}

// NewRouter wires every route & middleware. Shared with the handler tests.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware, recoveryMiddleware)

	router.HandleFunc("/", indexHandler).Methods("GET")

	router.HandleFunc("/volunteers/new", newVolunteerHandler).Methods("GET", "POST")
	router.HandleFunc("/volunteers/search", searchVolunteersHandler).Methods("GET")
	router.HandleFunc("/volunteers/profiles", volunteerProfilesHandler).Methods("GET")
	router.HandleFunc("/volunteers/{id:[0-9]+}/update_phone", updateVolunteerPhoneHandler).Methods("GET", "POST")
	router.HandleFunc("/volunteers", volunteersHandler).Methods("GET")

	router.HandleFunc("/organisations/{id:[0-9]+}/volunteers", organisationVolunteersHandler).Methods("GET")
	router.HandleFunc("/organisations", organisationsHandler).Methods("GET")

	router.HandleFunc("/events/{id:[0-9]+}/delete", deleteEventHandler).Methods("POST")
	router.HandleFunc("/events", eventsHandler).Methods("GET")

	router.HandleFunc("/skills", skillsHandler).Methods("GET")

	router.HandleFunc("/reports/events", eventReportHandler).Methods("GET")
	router.HandleFunc("/reports/skills", skillReportHandler).Methods("GET")
	router.HandleFunc("/reports/organisations", organisationReportHandler).Methods("GET")

	// mux skips router middleware for unmatched routes, so wrap explicitly
	router.NotFoundHandler = loggingMiddleware(http.HandlerFunc(notFoundHandler))

	return router
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func serve(server *http.Server) {
	logg.Infof("Community Connect server is listening on port%v...", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(server *http.Server) {
	// Shutdown server gracefully
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Fatalf("Community Connect server shutdown failed:%+s", err)
	}

	logg.Infof("Community Connect server stopped properly")
}
