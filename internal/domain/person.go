package domain

import "github.com/situationlab/situation-backend/internal/platform/storeerr"

// Person participates in acquaintances (as source and target), group
// memberships, event participation, and place/item ownership, all through
// the join tables in joins.go.
type Person struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Unique string `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`
	Alias  string `gorm:"type:varchar(255)" json:"alias"`
}

func (Person) TableName() string { return "person" }

func (p *Person) GetUnique() string  { return p.Unique }
func (p *Person) SetUnique(u string) { p.Unique = u }

func (p *Person) Validate() error {
	if p.Name == "" {
		return storeerr.Newf(storeerr.KindValidation, "person: name is required")
	}
	return nil
}

func (p *Person) String() string { return p.Name }
