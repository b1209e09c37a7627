package services

import (
	"context"

	"github.com/situationlab/situation-backend/internal/data/repos"
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

// Relation names a symmetric association family. Each family is an
// independent join relation; membership in one implies nothing about
// another.
type Relation string

const (
	RelationPlaceOwner  Relation = "place_owner"
	RelationItemOwner   Relation = "item_owner"
	RelationGroupMember Relation = "group_member"
	RelationEventActor  Relation = "event_actor"
	RelationEventItem   Relation = "event_item"
)

// GraphService maintains the directed acquaintance edges and the symmetric
// association families between entities.
type GraphService struct {
	db  *gorm.DB
	log *logger.Logger

	persons       repos.PersonRepo
	places        repos.PlaceRepo
	items         repos.ItemRepo
	groups        repos.GroupRepo
	events        repos.EventRepo
	excerpts      repos.ExcerptRepo
	acquaintances repos.AcquaintanceRepo
	links         repos.LinkRepo
}

func NewGraphService(db *gorm.DB, baseLog *logger.Logger) *GraphService {
	log := baseLog.With("service", "GraphService")
	return &GraphService{
		db:            db,
		log:           log,
		persons:       repos.NewPersonRepo(db, baseLog),
		places:        repos.NewPlaceRepo(db, baseLog),
		items:         repos.NewItemRepo(db, baseLog),
		groups:        repos.NewGroupRepo(db, baseLog),
		events:        repos.NewEventRepo(db, baseLog),
		excerpts:      repos.NewExcerptRepo(db, baseLog),
		acquaintances: repos.NewAcquaintanceRepo(db, baseLog),
		links:         repos.NewLinkRepo(db, baseLog),
	}
}

// withTx runs fn inside dbc's transaction when one is present, otherwise
// opens a new one so that multi-row operations commit or roll back whole.
func (s *GraphService) withTx(dbc dbctx.Context, fn func(dbctx.Context) error) error {
	if dbc.Tx != nil {
		return fn(dbc)
	}
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

// refErr turns a not-found lookup on a referenced entity into the foreign
// key error the caller of a relate operation expects.
func refErr(err error, kind string, id uint) error {
	if storeerr.IsKind(err, storeerr.KindNotFound) {
		return storeerr.Newf(storeerr.KindForeignKey, "%s %d does not exist", kind, id)
	}
	return err
}

// DeclareAcquaintance creates exactly one directed edge person->acquainted
// with the given label. The reciprocal edge is never created or implied.
// Self-acquaintance is permitted.
func (s *GraphService) DeclareAcquaintance(dbc dbctx.Context, personID uint, isa string, acquaintedID uint) (*domain.Acquaintance, error) {
	edge := &domain.Acquaintance{PersonID: personID, AcquaintedID: acquaintedID, Isa: isa}
	err := s.withTx(dbc, func(dbc dbctx.Context) error {
		if _, err := s.persons.GetByID(dbc, personID); err != nil {
			return refErr(err, "person", personID)
		}
		if _, err := s.persons.GetByID(dbc, acquaintedID); err != nil {
			return refErr(err, "person", acquaintedID)
		}
		return s.acquaintances.Create(dbc, edge)
	})
	if err != nil {
		return nil, err
	}
	return edge, nil
}

// AttachExcerpt annotates an existing directed edge with evidence. The
// edge's compound key must resolve; duplicate annotations are permitted.
func (s *GraphService) AttachExcerpt(dbc dbctx.Context, personID, acquaintedID, excerptID uint) (*domain.AcquaintanceExcerpt, error) {
	var link *domain.AcquaintanceExcerpt
	err := s.withTx(dbc, func(dbc dbctx.Context) error {
		if _, err := s.acquaintances.Get(dbc, personID, acquaintedID); err != nil {
			if storeerr.IsKind(err, storeerr.KindNotFound) {
				return storeerr.Newf(storeerr.KindForeignKey,
					"acquaintance (%d, %d) does not exist", personID, acquaintedID)
			}
			return err
		}
		if _, err := s.excerpts.GetByID(dbc, excerptID); err != nil {
			return refErr(err, "excerpt", excerptID)
		}
		var err error
		link, err = s.links.AddAcquaintanceExcerpt(dbc, personID, acquaintedID, excerptID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// Link adds one association row in the named family. Both sides must exist.
func (s *GraphService) Link(dbc dbctx.Context, rel Relation, aID, bID uint) error {
	return s.withTx(dbc, func(dbc dbctx.Context) error {
		switch rel {
		case RelationPlaceOwner:
			if _, err := s.places.GetByID(dbc, aID); err != nil {
				return refErr(err, "place", aID)
			}
			if _, err := s.persons.GetByID(dbc, bID); err != nil {
				return refErr(err, "person", bID)
			}
			_, err := s.links.AddPlaceOwner(dbc, aID, bID)
			return err
		case RelationItemOwner:
			if _, err := s.items.GetByID(dbc, aID); err != nil {
				return refErr(err, "item", aID)
			}
			if _, err := s.persons.GetByID(dbc, bID); err != nil {
				return refErr(err, "person", bID)
			}
			_, err := s.links.AddItemOwner(dbc, aID, bID)
			return err
		case RelationGroupMember:
			if _, err := s.groups.GetByID(dbc, aID); err != nil {
				return refErr(err, "group", aID)
			}
			if _, err := s.persons.GetByID(dbc, bID); err != nil {
				return refErr(err, "person", bID)
			}
			_, err := s.links.AddGroupMember(dbc, aID, bID)
			return err
		case RelationEventActor:
			if _, err := s.events.GetByID(dbc, aID); err != nil {
				return refErr(err, "event", aID)
			}
			if _, err := s.persons.GetByID(dbc, bID); err != nil {
				return refErr(err, "person", bID)
			}
			_, err := s.links.AddEventActor(dbc, aID, bID)
			return err
		case RelationEventItem:
			if _, err := s.events.GetByID(dbc, aID); err != nil {
				return refErr(err, "event", aID)
			}
			if _, err := s.items.GetByID(dbc, bID); err != nil {
				return refErr(err, "item", bID)
			}
			_, err := s.links.AddEventItem(dbc, aID, bID)
			return err
		default:
			return storeerr.Newf(storeerr.KindValidation, "unknown relation %q", rel)
		}
	})
}

// Unlink removes every matching association row in the named family.
// Unlinking an absent association is a no-op, not an error.
func (s *GraphService) Unlink(dbc dbctx.Context, rel Relation, aID, bID uint) error {
	switch rel {
	case RelationPlaceOwner:
		return s.links.RemovePlaceOwner(dbc, aID, bID)
	case RelationItemOwner:
		return s.links.RemoveItemOwner(dbc, aID, bID)
	case RelationGroupMember:
		return s.links.RemoveGroupMember(dbc, aID, bID)
	case RelationEventActor:
		return s.links.RemoveEventActor(dbc, aID, bID)
	case RelationEventItem:
		return s.links.RemoveEventItem(dbc, aID, bID)
	default:
		return storeerr.Newf(storeerr.KindValidation, "unknown relation %q", rel)
	}
}

// Encounters computes the person's encounter set: every item present at
// every event they acted in, duplicates included. Never cached.
func (s *GraphService) Encounters(dbc dbctx.Context, personID uint) ([]*domain.Item, error) {
	return s.items.EncounteredBy(dbc, personID)
}

// CreateEvent persists an event together with its actor, item, and excerpt
// links in one transaction: either all rows commit or none do.
func (s *GraphService) CreateEvent(dbc dbctx.Context, event *domain.Event, actorIDs, itemIDs, excerptIDs []uint) error {
	return s.withTx(dbc, func(dbc dbctx.Context) error {
		if err := s.events.Create(dbc, event); err != nil {
			return err
		}
		for _, actorID := range actorIDs {
			if err := s.Link(dbc, RelationEventActor, event.ID, actorID); err != nil {
				return err
			}
		}
		for _, itemID := range itemIDs {
			if err := s.Link(dbc, RelationEventItem, event.ID, itemID); err != nil {
				return err
			}
		}
		for _, excerptID := range excerptIDs {
			if _, err := s.excerpts.GetByID(dbc, excerptID); err != nil {
				return refErr(err, "excerpt", excerptID)
			}
			if _, err := s.links.AddEventExcerpt(dbc, event.ID, excerptID); err != nil {
				return err
			}
		}
		return nil
	})
}
