package domain

import "github.com/situationlab/situation-backend/internal/platform/storeerr"

// Group has symmetric person membership, in contrast with the directed
// Acquaintance edge.
type Group struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Unique string `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Group) TableName() string { return "group" }

func (g *Group) GetUnique() string  { return g.Unique }
func (g *Group) SetUnique(u string) { g.Unique = u }

func (g *Group) Validate() error {
	if g.Name == "" {
		return storeerr.Newf(storeerr.KindValidation, "group: name is required")
	}
	return nil
}

func (g *Group) String() string { return g.Name }
