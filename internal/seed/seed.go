package seed

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/mergington-dev/activities/internal/models"
	"gorm.io/gorm"
)

//go:embed catalog.json
var defaultCatalog []byte

// Entry describes one activity in the seed fixture.
type Entry struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog maps activity names to their seed definitions.
type Catalog map[string]Entry

// LoadCatalog returns the fixture to seed from: the file named by SEED_FILE
// when set, otherwise the embedded default.
func LoadCatalog() (Catalog, error) {
	data := defaultCatalog

	if path := os.Getenv("SEED_FILE"); path != "" {
		var err error

		data, err = os.ReadFile(path)

		if err != nil {
			return nil, err
		}
	}

	var catalog Catalog

	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}

	return catalog, nil
}

// Load populates an empty store with the catalog in a single transaction.
// It is a no-op once any activity exists, so restarts never duplicate the
// fixture.
func Load(gdb *gorm.DB) error {
	var count int64

	if err := gdb.Model(&models.Activity{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	catalog, err := LoadCatalog()

	if err != nil {
		return err
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for name, entry := range catalog {
			activity := models.Activity{
				Name:            name,
				Description:     entry.Description,
				Schedule:        entry.Schedule,
				MaxParticipants: entry.MaxParticipants,
			}

			if err := tx.Create(&activity).Error; err != nil {
				return err
			}

			for _, email := range entry.Participants {
				participant := models.Participant{
					ActivityID: activity.ID,
					Email:      email,
				}

				if err := tx.Create(&participant).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
