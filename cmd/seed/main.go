package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"sentinel-kyc-be/internal/model"
	"sentinel-kyc-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

var today = func() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}()

// d returns a date relative to today.
func d(daysOffset int) time.Time {
	return today.AddDate(0, 0, daysOffset)
}

// dp returns a pointer to a date relative to today.
func dp(daysOffset int) *time.Time {
	t := d(daysOffset)
	return &t
}

// dt returns a timestamp relative to today at the given hour and minute.
func dt(daysOffset, hour, minute int) time.Time {
	day := d(daysOffset)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
}

// factors marshals a risk factor list into the jsonb column format.
func factors(items ...string) datatypes.JSON {
	data, _ := json.Marshal(items)
	return datatypes.JSON(data)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	color.Yellow("Resetting tables...")

	// Child tables first so foreign key constraints do not block the drop.
	if err := db.Migrator().DropTable(
		&model.CaseNote{},
		&model.Case{},
		&model.Alert{},
		&model.Document{},
		&model.ActivityLog{},
		&model.Analyst{},
		&model.Customer{},
	); err != nil {
		log.Fatal("Error: Failed to drop tables:", err)
	}

	if err := db.AutoMigrate(
		&model.Analyst{},
		&model.Customer{},
		&model.Alert{},
		&model.Document{},
		&model.Case{},
		&model.CaseNote{},
		&model.ActivityLog{},
	); err != nil {
		log.Fatal("Error: Failed to migrate tables:", err)
	}

	analysts := analystRows()
	if err := db.Create(&analysts).Error; err != nil {
		log.Fatal("Error: Failed to seed analysts:", err)
	}
	log.Printf("%s Seeded %d analysts", cyan("[seed]"), len(analysts))

	customers := customerRows()
	if err := db.Create(&customers).Error; err != nil {
		log.Fatal("Error: Failed to seed customers:", err)
	}
	log.Printf("%s Seeded %d customers", cyan("[seed]"), len(customers))

	custMap := make(map[string]uuid.UUID, len(customers))
	for _, c := range customers {
		custMap[c.CustomerId] = c.Id
	}

	alerts := alertRows(custMap)
	if err := db.Create(&alerts).Error; err != nil {
		log.Fatal("Error: Failed to seed alerts:", err)
	}
	log.Printf("%s Seeded %d alerts", cyan("[seed]"), len(alerts))

	documents := documentRows(custMap)
	if err := db.Create(&documents).Error; err != nil {
		log.Fatal("Error: Failed to seed documents:", err)
	}
	log.Printf("%s Seeded %d documents", cyan("[seed]"), len(documents))

	cases := caseRows(custMap)
	if err := db.Create(&cases).Error; err != nil {
		log.Fatal("Error: Failed to seed cases:", err)
	}
	log.Printf("%s Seeded %d cases", cyan("[seed]"), len(cases))

	caseMap := make(map[string]uuid.UUID, len(cases))
	for _, c := range cases {
		caseMap[c.CaseId] = c.Id
	}

	notes := caseNoteRows(caseMap)
	if err := db.Create(&notes).Error; err != nil {
		log.Fatal("Error: Failed to seed case notes:", err)
	}
	log.Printf("%s Seeded %d case notes", cyan("[seed]"), len(notes))

	activity := activityRows()
	if err := db.Create(&activity).Error; err != nil {
		log.Fatal("Error: Failed to seed activity log:", err)
	}
	log.Printf("%s Seeded %d activity log entries", cyan("[seed]"), len(activity))

	log.Printf("%s Database seeded", green("✅"))
}
