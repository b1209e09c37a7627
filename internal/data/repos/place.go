package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type PlaceRepo interface {
	Create(dbc dbctx.Context, place *domain.Place) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Place, error)
	List(dbc dbctx.Context) ([]*domain.Place, error)
	Save(dbc dbctx.Context, place *domain.Place) error
	Delete(dbc dbctx.Context, place *domain.Place) error
}

type placeRepo struct {
	*Store[domain.Place]
}

func NewPlaceRepo(db *gorm.DB, baseLog *logger.Logger) PlaceRepo {
	return &placeRepo{NewStore[domain.Place](db, baseLog.With("repo", "PlaceRepo"))}
}
