package domain

import "github.com/situationlab/situation-backend/internal/platform/storeerr"

// Item is a physical object owned by persons and encountered within events.
type Item struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Unique      string `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Item) TableName() string { return "item" }

func (i *Item) GetUnique() string  { return i.Unique }
func (i *Item) SetUnique(u string) { i.Unique = u }

func (i *Item) Validate() error {
	if i.Name == "" {
		return storeerr.Newf(storeerr.KindValidation, "item: name is required")
	}
	return nil
}

func (i *Item) String() string { return i.Name }
