package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

type ItemRepo interface {
	Create(dbc dbctx.Context, item *domain.Item) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Item, error)
	List(dbc dbctx.Context) ([]*domain.Item, error)
	Save(dbc dbctx.Context, item *domain.Item) error
	Delete(dbc dbctx.Context, item *domain.Item) error
	EncounteredBy(dbc dbctx.Context, personID uint) ([]*domain.Item, error)
}

type itemRepo struct {
	*Store[domain.Item]
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	return &itemRepo{NewStore[domain.Item](db, baseLog.With("repo", "ItemRepo"))}
}

// EncounteredBy returns every item present at every event the person acted
// in, flattened. Duplicates are kept: an item at two shared events appears
// twice. This is a computed view, recomputed on each call.
func (r *itemRepo) EncounteredBy(dbc dbctx.Context, personID uint) ([]*domain.Item, error) {
	var out []*domain.Item
	err := r.conn(dbc).
		Table("item").
		Select("item.*").
		Joins("JOIN events_items ON events_items.item_id = item.id").
		Joins("JOIN events_actors ON events_actors.event_id = events_items.event_id").
		Where("events_actors.actor_id = ?", personID).
		Order("events_actors.id ASC, events_items.id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}
