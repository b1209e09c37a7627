package domain

import (
	"fmt"

	"github.com/situationlab/situation-backend/internal/platform/storeerr"
)

// Acquaintance is a directed, labeled edge Person -> Person. Its identity
// is the ordered pair (person_id, acquainted_id): the rows (A,B) and (B,A)
// are distinct, with independent labels and independent excerpt sets.
// Reciprocity is never implied.
type Acquaintance struct {
	PersonID     uint    `gorm:"primaryKey;autoIncrement:false" json:"person_id"`
	Person       *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
	AcquaintedID uint    `gorm:"primaryKey;autoIncrement:false" json:"acquainted_id"`
	Acquainted   *Person `gorm:"foreignKey:AcquaintedID" json:"acquainted,omitempty"`
	Isa          string  `gorm:"type:varchar(64)" json:"isa"`
}

func (Acquaintance) TableName() string { return "acquaintance" }

func (a *Acquaintance) Validate() error {
	if a.PersonID == 0 || a.AcquaintedID == 0 {
		return storeerr.Newf(storeerr.KindValidation, "acquaintance: both persons are required")
	}
	return nil
}

func (a *Acquaintance) String() string {
	return fmt.Sprintf("%d isa %s of %d", a.PersonID, a.Isa, a.AcquaintedID)
}
