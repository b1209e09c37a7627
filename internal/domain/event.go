package domain

import (
	"time"

	"github.com/situationlab/situation-backend/internal/platform/storeerr"
)

// Event is something that happened at a point in time, optionally at a
// Place, with actor persons and items present. Phone marks a non-physical
// event such as a call.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Unique      string    `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	PlaceID     *uint     `json:"place_id"`
	Place       *Place    `gorm:"foreignKey:PlaceID" json:"place,omitempty"`
	Phone       bool      `gorm:"not null;default:false" json:"phone"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
}

func (Event) TableName() string { return "event" }

func (e *Event) GetUnique() string  { return e.Unique }
func (e *Event) SetUnique(u string) { e.Unique = u }

func (e *Event) Validate() error {
	if e.Name == "" {
		return storeerr.Newf(storeerr.KindValidation, "event: name is required")
	}
	if e.Timestamp.IsZero() {
		return storeerr.Newf(storeerr.KindValidation, "event: timestamp is required")
	}
	return nil
}

func (e *Event) String() string { return e.Name }
