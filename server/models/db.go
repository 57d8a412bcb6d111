package models

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	sqliteEncrypt "github.com/Daskott/gorm-sqlite-cipher"
	"github.com/communityconnect/connect/server/logger"
	"github.com/communityconnect/connect/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const DB_NAME = "connect.db"

var logg = logger.NewLogger()
var db *gorm.DB

// expectedTables is the full Community Connect schema. Ping checks all of
// them, including event_skills which no operation reads yet.
var expectedTables = []string{
	"volunteers",
	"organisations",
	"events",
	"skills",
	"volunteer_events",
	"volunteer_skills",
	"event_skills",
}

// Connect opens the sqlite db without touching the schema
func Connect(passPhrase string, dbRootDir string) error {
	dsn, err := dbDSN(passPhrase, dbRootDir)
	if err != nil {
		return errors.Wrap(err, "failed to set sqlite DSN")
	}

	return openDB(dsn)
}

// AutoMigrate opens the sqlite db, migrates the schema and inserts seed data
func AutoMigrate(passPhrase string, dbRootDir string) error {
	if err := Connect(passPhrase, dbRootDir); err != nil {
		return err
	}

	err := db.AutoMigrate(
		&Organisation{}, &Skill{}, &Volunteer{},
		&Event{}, &VolunteerEvent{}, &VolunteerSkill{}, &EventSkill{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	populateDBWithSeedData()

	return nil
}

// InitializeTestDb swaps the package db for an in-memory sqlite instance,
// with the full schema & seed data. For use in tests only.
func InitializeTestDb() {
	if err := openDB("file::memory:?cache=shared&_foreign_keys=on"); err != nil {
		logg.Fatal(err)
	}

	err := db.AutoMigrate(
		&Organisation{}, &Skill{}, &Volunteer{},
		&Event{}, &VolunteerEvent{}, &VolunteerSkill{}, &EventSkill{},
	)
	if err != nil {
		logg.Fatal(err)
	}

	// Start each test run from a clean slate
	for i := len(expectedTables) - 1; i >= 0; i-- {
		db.Exec(fmt.Sprintf("DELETE FROM %v", expectedTables[i]))
	}

	populateDBWithSeedData()
}

// Ping verifies that the database is reachable and that every table in the
// expected schema exists.
func Ping() bool {
	if db == nil {
		return false
	}

	if err := db.Exec("SELECT 1").Error; err != nil {
		logg.Errorf("database ping failed: %v", err)
		return false
	}

	for _, table := range expectedTables {
		if !db.Migrator().HasTable(table) {
			logg.Errorf("expected table %q is missing", table)
			return false
		}
	}

	return true
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func openDB(dsn string) error {
	var err error

	db, err = gorm.Open(sqliteEncrypt.Open(dsn), &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				LogLevel:                  gormLogger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return errors.Wrap(err, "failed to connect database")
	}

	return nil
}

func populateDBWithSeedData() {
	if err := db.First(&Organisation{}).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		logg.Info("Inserting seed data into 'organisations'")
		db.Create(&[]Organisation{
			{
				Name:         "Coastal Care Network",
				ContactEmail: "hello@coastalcare.org.au",
				Phone:        "0291234567",
				Address:      "12 Harbour St, Sydney NSW",
				OrgType:      "Community Health",
				Description:  "Health outreach and support services for coastal communities",
			},
			{
				Name:         "Greenway Trust",
				ContactEmail: "contact@greenwaytrust.org.au",
				Phone:        "0387654321",
				Address:      "45 River Rd, Melbourne VIC",
				OrgType:      "Environment",
				Description:  "Bushland regeneration and urban greening projects",
			},
			{
				Name:         "Open Table Kitchen",
				ContactEmail: "team@opentablekitchen.org.au",
				Phone:        "0754321098",
				Address:      "7 Market Lane, Brisbane QLD",
				OrgType:      "Food Relief",
				Description:  "Free community meals and food rescue",
			},
		})
	}

	if err := db.First(&Skill{}).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		logg.Info("Inserting seed data into 'skills'")
		db.Create(&[]Skill{
			{Name: "First Aid", Description: "Current first aid certificate", Category: "Medical"},
			{Name: "Event Coordination", Description: "Planning and running community events", Category: "Management"},
			{Name: "Cooking", Description: "Large batch cooking for community meals", Category: "Hospitality"},
			{Name: "Driving", Description: "Full licence, comfortable with vans", Category: "Logistics"},
			{Name: "Translation", Description: "Community language interpreting", Category: "Communication"},
		})
	}
}

func dbDSN(passPhrase string, dbRootDir string) (string, error) {
	dbDir, err := DbDirectory(dbRootDir)
	if err != nil {
		return "", err
	}

	dbFilePath := filepath.Join(dbDir, DB_NAME)
	dsn := fmt.Sprintf("file:%v?_foreign_keys=on&_journal_mode=WAL", dbFilePath)

	// An empty passphrase means a plain, unencrypted db file
	if passPhrase != "" {
		dsn = fmt.Sprintf("%v&_pragma_key=%s&_pragma_cipher_page_size=4096", dsn, passPhrase)
	}

	return dsn, nil
}

func DbDirectory(dbRootDir string) (string, error) {
	dbDir := filepath.Join(dbRootDir, "db")

	err := utils.CreateDirIfNotExist(dbDir)
	if err != nil {
		return "", err
	}

	return dbDir, nil
}
