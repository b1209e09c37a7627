package repos

import (
	"errors"

	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

type ExcerptRepo interface {
	Create(dbc dbctx.Context, excerpt *domain.Excerpt) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Excerpt, error)
	List(dbc dbctx.Context) ([]*domain.Excerpt, error)
	Save(dbc dbctx.Context, excerpt *domain.Excerpt) error
	Delete(dbc dbctx.Context, excerpt *domain.Excerpt) error
	ListByResource(dbc dbctx.Context, resourceID uint) ([]*domain.Excerpt, error)
}

type excerptRepo struct {
	*Store[domain.Excerpt]
}

func NewExcerptRepo(db *gorm.DB, baseLog *logger.Logger) ExcerptRepo {
	return &excerptRepo{NewStore[domain.Excerpt](db, baseLog.With("repo", "ExcerptRepo"))}
}

// Create resolves the owning resource before inserting so that a dangling
// resource id surfaces as a foreign key error on every engine, not only on
// those that enforce the constraint.
func (r *excerptRepo) Create(dbc dbctx.Context, excerpt *domain.Excerpt) error {
	if err := excerpt.Validate(); err != nil {
		return err
	}
	var resource domain.Resource
	if err := r.conn(dbc).First(&resource, excerpt.ResourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return storeerr.Newf(storeerr.KindForeignKey, "excerpt: resource %d does not exist", excerpt.ResourceID)
		}
		return storeerr.Classify(err)
	}
	return r.Store.Create(dbc, excerpt)
}

func (r *excerptRepo) ListByResource(dbc dbctx.Context, resourceID uint) ([]*domain.Excerpt, error) {
	var out []*domain.Excerpt
	if err := r.conn(dbc).Where("resource_id = ?", resourceID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}
