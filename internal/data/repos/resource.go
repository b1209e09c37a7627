package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ResourceRepo interface {
	Create(dbc dbctx.Context, resource *domain.Resource) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Resource, error)
	List(dbc dbctx.Context) ([]*domain.Resource, error)
	Save(dbc dbctx.Context, resource *domain.Resource) error
	Delete(dbc dbctx.Context, resource *domain.Resource) error
}

type resourceRepo struct {
	*Store[domain.Resource]
}

func NewResourceRepo(db *gorm.DB, baseLog *logger.Logger) ResourceRepo {
	return &resourceRepo{NewStore[domain.Resource](db, baseLog.With("repo", "ResourceRepo"))}
}
