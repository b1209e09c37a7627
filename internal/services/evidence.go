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

// EvidenceService enforces the evidence chain: every excerpt traces to a
// resource, and excerpts are only ever linked to entities, never fabricated
// free-standing.
type EvidenceService struct {
	db  *gorm.DB
	log *logger.Logger

	resources     repos.ResourceRepo
	excerpts      repos.ExcerptRepo
	acquaintances repos.AcquaintanceRepo
	links         repos.LinkRepo
}

func NewEvidenceService(db *gorm.DB, baseLog *logger.Logger) *EvidenceService {
	return &EvidenceService{
		db:            db,
		log:           baseLog.With("service", "EvidenceService"),
		resources:     repos.NewResourceRepo(db, baseLog),
		excerpts:      repos.NewExcerptRepo(db, baseLog),
		acquaintances: repos.NewAcquaintanceRepo(db, baseLog),
		links:         repos.NewLinkRepo(db, baseLog),
	}
}

func (s *EvidenceService) withTx(dbc dbctx.Context, fn func(dbctx.Context) error) error {
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

// CreateExcerpt quotes content from an existing resource. A dangling
// resource id fails with a foreign key error and persists nothing.
func (s *EvidenceService) CreateExcerpt(dbc dbctx.Context, resourceID uint, content, xpath string) (*domain.Excerpt, error) {
	excerpt := &domain.Excerpt{ResourceID: resourceID, Content: content, XPath: xpath}
	err := s.withTx(dbc, func(dbc dbctx.Context) error {
		return s.excerpts.Create(dbc, excerpt)
	})
	if err != nil {
		return nil, err
	}
	return excerpt, nil
}

// AttributeTo links an excerpt as evidence for the target entity,
// dispatching on the target's type to the matching join family.
func (s *EvidenceService) AttributeTo(dbc dbctx.Context, excerptID uint, target interface{}) error {
	return s.withTx(dbc, func(dbc dbctx.Context) error {
		if _, err := s.excerpts.GetByID(dbc, excerptID); err != nil {
			return refErr(err, "excerpt", excerptID)
		}
		switch t := target.(type) {
		case *domain.Person:
			_, err := s.links.AddPersonExcerpt(dbc, t.ID, excerptID)
			return err
		case *domain.Place:
			_, err := s.links.AddPlaceExcerpt(dbc, t.ID, excerptID)
			return err
		case *domain.Item:
			_, err := s.links.AddItemExcerpt(dbc, t.ID, excerptID)
			return err
		case *domain.Group:
			_, err := s.links.AddGroupExcerpt(dbc, t.ID, excerptID)
			return err
		case *domain.Event:
			_, err := s.links.AddEventExcerpt(dbc, t.ID, excerptID)
			return err
		case *domain.Acquaintance:
			if _, err := s.acquaintances.Get(dbc, t.PersonID, t.AcquaintedID); err != nil {
				if storeerr.IsKind(err, storeerr.KindNotFound) {
					return storeerr.Newf(storeerr.KindForeignKey,
						"acquaintance (%d, %d) does not exist", t.PersonID, t.AcquaintedID)
				}
				return err
			}
			_, err := s.links.AddAcquaintanceExcerpt(dbc, t.PersonID, t.AcquaintedID, excerptID)
			return err
		default:
			return storeerr.Newf(storeerr.KindValidation, "cannot attribute evidence to %T", target)
		}
	})
}
