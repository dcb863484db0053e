package db

import (
	"strings"

	"github.com/mergington-dev/activities/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the store behind DB. A postgres-style DSN selects the
// postgres driver; anything else is treated as a sqlite path.
func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(openDialector(dsn), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		return err
	}

	return nil
}

func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}

	return sqlite.Open(dsn)
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.Activity{},
		&models.Participant{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
