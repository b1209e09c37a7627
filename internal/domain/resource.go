package domain

// Resource is an authoritative source document from which evidence is
// drawn: a newspaper article, a report, a filing. Every Excerpt must be
// directly quotable from one.
type Resource struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Unique      string `gorm:"column:unique;type:varchar(255);uniqueIndex;not null" json:"unique"`
	Name        string `gorm:"type:varchar(4096)" json:"name"`
	URL         string `gorm:"column:url;type:varchar(4096)" json:"url"`
	Publisher   string `gorm:"type:varchar(4096)" json:"publisher"`
	Author      string `gorm:"type:varchar(4096)" json:"author"`
	Description string `gorm:"type:text" json:"description"`
}

func (Resource) TableName() string { return "resource" }

func (r *Resource) GetUnique() string  { return r.Unique }
func (r *Resource) SetUnique(u string) { r.Unique = u }

func (r *Resource) String() string { return r.URL }
