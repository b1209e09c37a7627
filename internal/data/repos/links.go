package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

// LinkRepo manages the join-table rows of every association family. Adds
// insert one row each (duplicates permitted); removes delete every matching
// row and are a no-op when nothing matches; lists return rows in surrogate
// id order, which is insertion order.
type LinkRepo interface {
	AddPersonExcerpt(dbc dbctx.Context, personID, excerptID uint) (*domain.PersonExcerpt, error)
	AddPlaceExcerpt(dbc dbctx.Context, placeID, excerptID uint) (*domain.PlaceExcerpt, error)
	AddItemExcerpt(dbc dbctx.Context, itemID, excerptID uint) (*domain.ItemExcerpt, error)
	AddGroupExcerpt(dbc dbctx.Context, groupID, excerptID uint) (*domain.GroupExcerpt, error)
	AddEventExcerpt(dbc dbctx.Context, eventID, excerptID uint) (*domain.EventExcerpt, error)
	AddAcquaintanceExcerpt(dbc dbctx.Context, personID, acquaintedID, excerptID uint) (*domain.AcquaintanceExcerpt, error)
	AddPlaceOwner(dbc dbctx.Context, placeID, ownerID uint) (*domain.PlaceOwner, error)
	AddItemOwner(dbc dbctx.Context, itemID, ownerID uint) (*domain.ItemOwner, error)
	AddGroupMember(dbc dbctx.Context, groupID, memberID uint) (*domain.GroupMember, error)
	AddEventActor(dbc dbctx.Context, eventID, actorID uint) (*domain.EventActor, error)
	AddEventItem(dbc dbctx.Context, eventID, itemID uint) (*domain.EventItem, error)

	RemovePlaceOwner(dbc dbctx.Context, placeID, ownerID uint) error
	RemoveItemOwner(dbc dbctx.Context, itemID, ownerID uint) error
	RemoveGroupMember(dbc dbctx.Context, groupID, memberID uint) error
	RemoveEventActor(dbc dbctx.Context, eventID, actorID uint) error
	RemoveEventItem(dbc dbctx.Context, eventID, itemID uint) error

	ListPersonExcerpts(dbc dbctx.Context) ([]*domain.PersonExcerpt, error)
	ListPlaceExcerpts(dbc dbctx.Context) ([]*domain.PlaceExcerpt, error)
	ListItemExcerpts(dbc dbctx.Context) ([]*domain.ItemExcerpt, error)
	ListGroupExcerpts(dbc dbctx.Context) ([]*domain.GroupExcerpt, error)
	ListEventExcerpts(dbc dbctx.Context) ([]*domain.EventExcerpt, error)
	ListAcquaintanceExcerpts(dbc dbctx.Context) ([]*domain.AcquaintanceExcerpt, error)
	ListPlaceOwners(dbc dbctx.Context) ([]*domain.PlaceOwner, error)
	ListItemOwners(dbc dbctx.Context) ([]*domain.ItemOwner, error)
	ListGroupMembers(dbc dbctx.Context) ([]*domain.GroupMember, error)
	ListEventActors(dbc dbctx.Context) ([]*domain.EventActor, error)
	ListEventItems(dbc dbctx.Context) ([]*domain.EventItem, error)
}

type linkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLinkRepo(db *gorm.DB, baseLog *logger.Logger) LinkRepo {
	return &linkRepo{db: db, log: baseLog.With("repo", "LinkRepo")}
}

func (r *linkRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	if dbc.Ctx != nil {
		tx = tx.WithContext(dbc.Ctx)
	}
	return tx
}

func addLink[T any](r *linkRepo, dbc dbctx.Context, row *T) (*T, error) {
	if err := r.conn(dbc).Create(row).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return row, nil
}

// removeLinks takes explicit column predicates, never a struct condition:
// GORM drops zero-valued struct fields, and id 0 here must match nothing
// rather than widen the delete to the whole family.
func removeLinks[T any](r *linkRepo, dbc dbctx.Context, query string, args ...interface{}) error {
	if err := r.conn(dbc).Where(query, args...).Delete(new(T)).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}

func listLinks[T any](r *linkRepo, dbc dbctx.Context) ([]*T, error) {
	var out []*T
	if err := r.conn(dbc).Order("id ASC").Find(&out).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}

func (r *linkRepo) AddPersonExcerpt(dbc dbctx.Context, personID, excerptID uint) (*domain.PersonExcerpt, error) {
	return addLink(r, dbc, &domain.PersonExcerpt{PersonID: personID, ExcerptID: excerptID})
}

func (r *linkRepo) AddPlaceExcerpt(dbc dbctx.Context, placeID, excerptID uint) (*domain.PlaceExcerpt, error) {
	return addLink(r, dbc, &domain.PlaceExcerpt{PlaceID: placeID, ExcerptID: excerptID})
}

func (r *linkRepo) AddItemExcerpt(dbc dbctx.Context, itemID, excerptID uint) (*domain.ItemExcerpt, error) {
	return addLink(r, dbc, &domain.ItemExcerpt{ItemID: itemID, ExcerptID: excerptID})
}

func (r *linkRepo) AddGroupExcerpt(dbc dbctx.Context, groupID, excerptID uint) (*domain.GroupExcerpt, error) {
	return addLink(r, dbc, &domain.GroupExcerpt{GroupID: groupID, ExcerptID: excerptID})
}

func (r *linkRepo) AddEventExcerpt(dbc dbctx.Context, eventID, excerptID uint) (*domain.EventExcerpt, error) {
	return addLink(r, dbc, &domain.EventExcerpt{EventID: eventID, ExcerptID: excerptID})
}

func (r *linkRepo) AddAcquaintanceExcerpt(dbc dbctx.Context, personID, acquaintedID, excerptID uint) (*domain.AcquaintanceExcerpt, error) {
	return addLink(r, dbc, &domain.AcquaintanceExcerpt{
		PersonID:     personID,
		AcquaintedID: acquaintedID,
		ExcerptID:    excerptID,
	})
}

func (r *linkRepo) AddPlaceOwner(dbc dbctx.Context, placeID, ownerID uint) (*domain.PlaceOwner, error) {
	return addLink(r, dbc, &domain.PlaceOwner{PlaceID: placeID, OwnerID: ownerID})
}

func (r *linkRepo) AddItemOwner(dbc dbctx.Context, itemID, ownerID uint) (*domain.ItemOwner, error) {
	return addLink(r, dbc, &domain.ItemOwner{ItemID: itemID, OwnerID: ownerID})
}

func (r *linkRepo) AddGroupMember(dbc dbctx.Context, groupID, memberID uint) (*domain.GroupMember, error) {
	return addLink(r, dbc, &domain.GroupMember{GroupID: groupID, MemberID: memberID})
}

func (r *linkRepo) AddEventActor(dbc dbctx.Context, eventID, actorID uint) (*domain.EventActor, error) {
	return addLink(r, dbc, &domain.EventActor{EventID: eventID, ActorID: actorID})
}

func (r *linkRepo) AddEventItem(dbc dbctx.Context, eventID, itemID uint) (*domain.EventItem, error) {
	return addLink(r, dbc, &domain.EventItem{EventID: eventID, ItemID: itemID})
}

func (r *linkRepo) RemovePlaceOwner(dbc dbctx.Context, placeID, ownerID uint) error {
	return removeLinks[domain.PlaceOwner](r, dbc, "place_id = ? AND owner_id = ?", placeID, ownerID)
}

func (r *linkRepo) RemoveItemOwner(dbc dbctx.Context, itemID, ownerID uint) error {
	return removeLinks[domain.ItemOwner](r, dbc, "item_id = ? AND owner_id = ?", itemID, ownerID)
}

func (r *linkRepo) RemoveGroupMember(dbc dbctx.Context, groupID, memberID uint) error {
	return removeLinks[domain.GroupMember](r, dbc, "group_id = ? AND member_id = ?", groupID, memberID)
}

func (r *linkRepo) RemoveEventActor(dbc dbctx.Context, eventID, actorID uint) error {
	return removeLinks[domain.EventActor](r, dbc, "event_id = ? AND actor_id = ?", eventID, actorID)
}

func (r *linkRepo) RemoveEventItem(dbc dbctx.Context, eventID, itemID uint) error {
	return removeLinks[domain.EventItem](r, dbc, "event_id = ? AND item_id = ?", eventID, itemID)
}

func (r *linkRepo) ListPersonExcerpts(dbc dbctx.Context) ([]*domain.PersonExcerpt, error) {
	return listLinks[domain.PersonExcerpt](r, dbc)
}

func (r *linkRepo) ListPlaceExcerpts(dbc dbctx.Context) ([]*domain.PlaceExcerpt, error) {
	return listLinks[domain.PlaceExcerpt](r, dbc)
}

func (r *linkRepo) ListItemExcerpts(dbc dbctx.Context) ([]*domain.ItemExcerpt, error) {
	return listLinks[domain.ItemExcerpt](r, dbc)
}

func (r *linkRepo) ListGroupExcerpts(dbc dbctx.Context) ([]*domain.GroupExcerpt, error) {
	return listLinks[domain.GroupExcerpt](r, dbc)
}

func (r *linkRepo) ListEventExcerpts(dbc dbctx.Context) ([]*domain.EventExcerpt, error) {
	return listLinks[domain.EventExcerpt](r, dbc)
}

func (r *linkRepo) ListAcquaintanceExcerpts(dbc dbctx.Context) ([]*domain.AcquaintanceExcerpt, error) {
	return listLinks[domain.AcquaintanceExcerpt](r, dbc)
}

func (r *linkRepo) ListPlaceOwners(dbc dbctx.Context) ([]*domain.PlaceOwner, error) {
	return listLinks[domain.PlaceOwner](r, dbc)
}

func (r *linkRepo) ListItemOwners(dbc dbctx.Context) ([]*domain.ItemOwner, error) {
	return listLinks[domain.ItemOwner](r, dbc)
}

func (r *linkRepo) ListGroupMembers(dbc dbctx.Context) ([]*domain.GroupMember, error) {
	return listLinks[domain.GroupMember](r, dbc)
}

func (r *linkRepo) ListEventActors(dbc dbctx.Context) ([]*domain.EventActor, error) {
	return listLinks[domain.EventActor](r, dbc)
}

func (r *linkRepo) ListEventItems(dbc dbctx.Context) ([]*domain.EventItem, error) {
	return listLinks[domain.EventItem](r, dbc)
}
