// Package domain holds the GORM models of a situation: the entities drawn
// from evidence (persons, places, items, groups, events), the evidence chain
// (resources and excerpts), the directed acquaintance edge, and the join
// tables binding them together.
package domain

// Uniqued is implemented by entities carrying a public short code. The code
// is assigned once at creation and never regenerated.
type Uniqued interface {
	GetUnique() string
	SetUnique(string)
}

// Validator is implemented by models that check their required fields
// before any write reaches the storage engine.
type Validator interface {
	Validate() error
}
