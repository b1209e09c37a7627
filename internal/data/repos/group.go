package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type GroupRepo interface {
	Create(dbc dbctx.Context, group *domain.Group) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Group, error)
	List(dbc dbctx.Context) ([]*domain.Group, error)
	Save(dbc dbctx.Context, group *domain.Group) error
	Delete(dbc dbctx.Context, group *domain.Group) error
}

type groupRepo struct {
	*Store[domain.Group]
}

func NewGroupRepo(db *gorm.DB, baseLog *logger.Logger) GroupRepo {
	return &groupRepo{NewStore[domain.Group](db, baseLog.With("repo", "GroupRepo"))}
}
