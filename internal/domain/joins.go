package domain

// Join tables. Each carries its own surrogate id even though the semantic
// key is the pair of foreign ids, so duplicate links are representable
// (an excerpt may annotate the same edge twice).

type PersonExcerpt struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	PersonID  uint     `gorm:"not null;index" json:"person_id"`
	Person    *Person  `gorm:"foreignKey:PersonID" json:"-"`
	ExcerptID uint     `gorm:"not null;index" json:"excerpt_id"`
	Excerpt   *Excerpt `gorm:"foreignKey:ExcerptID" json:"-"`
}

func (PersonExcerpt) TableName() string { return "persons_excerpts" }

type PlaceExcerpt struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	PlaceID   uint     `gorm:"not null;index" json:"place_id"`
	Place     *Place   `gorm:"foreignKey:PlaceID" json:"-"`
	ExcerptID uint     `gorm:"not null;index" json:"excerpt_id"`
	Excerpt   *Excerpt `gorm:"foreignKey:ExcerptID" json:"-"`
}

func (PlaceExcerpt) TableName() string { return "places_excerpts" }

type ItemExcerpt struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	ItemID    uint     `gorm:"not null;index" json:"item_id"`
	Item      *Item    `gorm:"foreignKey:ItemID" json:"-"`
	ExcerptID uint     `gorm:"not null;index" json:"excerpt_id"`
	Excerpt   *Excerpt `gorm:"foreignKey:ExcerptID" json:"-"`
}

func (ItemExcerpt) TableName() string { return "items_excerpts" }

type GroupExcerpt struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	GroupID   uint     `gorm:"not null;index" json:"group_id"`
	Group     *Group   `gorm:"foreignKey:GroupID" json:"-"`
	ExcerptID uint     `gorm:"not null;index" json:"excerpt_id"`
	Excerpt   *Excerpt `gorm:"foreignKey:ExcerptID" json:"-"`
}

func (GroupExcerpt) TableName() string { return "groups_excerpts" }

type EventExcerpt struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	EventID   uint     `gorm:"not null;index" json:"event_id"`
	Event     *Event   `gorm:"foreignKey:EventID" json:"-"`
	ExcerptID uint     `gorm:"not null;index" json:"excerpt_id"`
	Excerpt   *Excerpt `gorm:"foreignKey:ExcerptID" json:"-"`
}

func (EventExcerpt) TableName() string { return "events_excerpts" }

// AcquaintanceExcerpt annotates a directed edge with evidence. Because the
// edge itself is keyed by a compound primary key, this table carries both
// halves of the pair; on engines that support it the pair is additionally
// constrained by a composite foreign key into acquaintance.
type AcquaintanceExcerpt struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	PersonID     uint     `gorm:"not null;index:idx_acquaintance_excerpt_edge,priority:1" json:"person_id"`
	Person       *Person  `gorm:"foreignKey:PersonID" json:"-"`
	AcquaintedID uint     `gorm:"not null;index:idx_acquaintance_excerpt_edge,priority:2" json:"acquainted_id"`
	Acquainted   *Person  `gorm:"foreignKey:AcquaintedID" json:"-"`
	ExcerptID    uint     `gorm:"not null;index" json:"excerpt_id"`
	Excerpt      *Excerpt `gorm:"foreignKey:ExcerptID" json:"-"`
}

func (AcquaintanceExcerpt) TableName() string { return "acquaintance_excerpts" }

type PlaceOwner struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	PlaceID uint    `gorm:"not null;index" json:"place_id"`
	Place   *Place  `gorm:"foreignKey:PlaceID" json:"-"`
	OwnerID uint    `gorm:"not null;index" json:"owner_id"`
	Owner   *Person `gorm:"foreignKey:OwnerID" json:"-"`
}

func (PlaceOwner) TableName() string { return "places_owners" }

type ItemOwner struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	ItemID  uint    `gorm:"not null;index" json:"item_id"`
	Item    *Item   `gorm:"foreignKey:ItemID" json:"-"`
	OwnerID uint    `gorm:"not null;index" json:"owner_id"`
	Owner   *Person `gorm:"foreignKey:OwnerID" json:"-"`
}

func (ItemOwner) TableName() string { return "items_owners" }

type GroupMember struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	GroupID  uint    `gorm:"not null;index" json:"group_id"`
	Group    *Group  `gorm:"foreignKey:GroupID" json:"-"`
	MemberID uint    `gorm:"not null;index" json:"member_id"`
	Member   *Person `gorm:"foreignKey:MemberID" json:"-"`
}

func (GroupMember) TableName() string { return "groups_members" }

type EventActor struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	EventID uint    `gorm:"not null;index" json:"event_id"`
	Event   *Event  `gorm:"foreignKey:EventID" json:"-"`
	ActorID uint    `gorm:"not null;index" json:"actor_id"`
	Actor   *Person `gorm:"foreignKey:ActorID" json:"-"`
}

func (EventActor) TableName() string { return "events_actors" }

type EventItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	EventID uint   `gorm:"not null;index" json:"event_id"`
	Event   *Event `gorm:"foreignKey:EventID" json:"-"`
	ItemID  uint   `gorm:"not null;index" json:"item_id"`
	Item    *Item  `gorm:"foreignKey:ItemID" json:"-"`
}

func (EventItem) TableName() string { return "events_items" }
