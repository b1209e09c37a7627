package db

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates the entity tables and the ten join tables.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Resource{},
		&domain.Excerpt{},
		&domain.Person{},
		&domain.Acquaintance{},
		&domain.Place{},
		&domain.Item{},
		&domain.Group{},
		&domain.Event{},

		&domain.PersonExcerpt{},
		&domain.PlaceExcerpt{},
		&domain.ItemExcerpt{},
		&domain.GroupExcerpt{},
		&domain.EventExcerpt{},
		&domain.AcquaintanceExcerpt{},
		&domain.PlaceOwner{},
		&domain.ItemOwner{},
		&domain.GroupMember{},
		&domain.EventActor{},
		&domain.EventItem{},
	)
}
