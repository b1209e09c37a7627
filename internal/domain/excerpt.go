package domain

import "github.com/situationlab/situation-backend/internal/platform/storeerr"

// Excerpt is a verbatim quotation from a Resource. It is only ever linked
// as evidence; an Excerpt without a Resource is invalid.
type Excerpt struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Unique     string    `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Content    string    `gorm:"type:text" json:"content"`
	ResourceID uint      `gorm:"not null" json:"resource_id"`
	Resource   *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
	XPath      string    `gorm:"column:xpath;type:varchar(4096)" json:"xpath"`
}

func (Excerpt) TableName() string { return "excerpt" }

func (e *Excerpt) GetUnique() string  { return e.Unique }
func (e *Excerpt) SetUnique(u string) { e.Unique = u }

func (e *Excerpt) Validate() error {
	if e.ResourceID == 0 {
		return storeerr.Newf(storeerr.KindValidation, "excerpt: resource is required")
	}
	if e.Content == "" {
		return storeerr.Newf(storeerr.KindValidation, "excerpt: content is required")
	}
	return nil
}

func (e *Excerpt) String() string { return e.Content }
