package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

type EventRepo interface {
	Create(dbc dbctx.Context, event *domain.Event) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Event, error)
	List(dbc dbctx.Context) ([]*domain.Event, error)
	Save(dbc dbctx.Context, event *domain.Event) error
	Delete(dbc dbctx.Context, event *domain.Event) error
	ListByPlace(dbc dbctx.Context, placeID uint) ([]*domain.Event, error)
}

type eventRepo struct {
	*Store[domain.Event]
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	return &eventRepo{NewStore[domain.Event](db, baseLog.With("repo", "EventRepo"))}
}

func (r *eventRepo) ListByPlace(dbc dbctx.Context, placeID uint) ([]*domain.Event, error) {
	var out []*domain.Event
	if err := r.conn(dbc).Where("place_id = ?", placeID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}
