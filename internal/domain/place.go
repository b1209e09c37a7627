package domain

import "github.com/situationlab/situation-backend/internal/platform/storeerr"

// Place hosts events and is owned by zero or more persons. Lat/Lon are
// pointers: absence means the location is unknown, not zero.
type Place struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Unique      string   `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Name        string   `gorm:"type:varchar(255);not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Address     string   `gorm:"type:varchar(4096)" json:"address"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

func (Place) TableName() string { return "place" }

func (p *Place) GetUnique() string  { return p.Unique }
func (p *Place) SetUnique(u string) { p.Unique = u }

func (p *Place) Validate() error {
	if p.Name == "" {
		return storeerr.Newf(storeerr.KindValidation, "place: name is required")
	}
	return nil
}

func (p *Place) String() string { return p.Name }
