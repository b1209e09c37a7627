package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

// AcquaintanceRepo manages the directed edge keyed by the ordered pair
// (person_id, acquainted_id). It does not ride on Store: the edge has no
// surrogate id and no public code, and its listing order is the pair.
type AcquaintanceRepo interface {
	Create(dbc dbctx.Context, edge *domain.Acquaintance) error
	Get(dbc dbctx.Context, personID, acquaintedID uint) (*domain.Acquaintance, error)
	List(dbc dbctx.Context) ([]*domain.Acquaintance, error)
	ListByPerson(dbc dbctx.Context, personID uint) ([]*domain.Acquaintance, error)
	Save(dbc dbctx.Context, edge *domain.Acquaintance) error
	Delete(dbc dbctx.Context, edge *domain.Acquaintance) error
}

type acquaintanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAcquaintanceRepo(db *gorm.DB, baseLog *logger.Logger) AcquaintanceRepo {
	return &acquaintanceRepo{db: db, log: baseLog.With("repo", "AcquaintanceRepo")}
}

func (r *acquaintanceRepo) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = r.db
	}
	if dbc.Ctx != nil {
		tx = tx.WithContext(dbc.Ctx)
	}
	return tx
}

func (r *acquaintanceRepo) Create(dbc dbctx.Context, edge *domain.Acquaintance) error {
	if err := edge.Validate(); err != nil {
		return err
	}
	if err := r.conn(dbc).Create(edge).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}

func (r *acquaintanceRepo) Get(dbc dbctx.Context, personID, acquaintedID uint) (*domain.Acquaintance, error) {
	var out domain.Acquaintance
	err := r.conn(dbc).
		Where("person_id = ? AND acquainted_id = ?", personID, acquaintedID).
		First(&out).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return &out, nil
}

func (r *acquaintanceRepo) List(dbc dbctx.Context) ([]*domain.Acquaintance, error) {
	var out []*domain.Acquaintance
	if err := r.conn(dbc).Order("person_id ASC, acquainted_id ASC").Find(&out).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}

func (r *acquaintanceRepo) ListByPerson(dbc dbctx.Context, personID uint) ([]*domain.Acquaintance, error) {
	var out []*domain.Acquaintance
	err := r.conn(dbc).
		Where("person_id = ?", personID).
		Order("person_id ASC, acquainted_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}

func (r *acquaintanceRepo) Save(dbc dbctx.Context, edge *domain.Acquaintance) error {
	if err := edge.Validate(); err != nil {
		return err
	}
	if err := r.conn(dbc).Save(edge).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}

func (r *acquaintanceRepo) Delete(dbc dbctx.Context, edge *domain.Acquaintance) error {
	err := r.conn(dbc).
		Where("person_id = ? AND acquainted_id = ?", edge.PersonID, edge.AcquaintedID).
		Delete(&domain.Acquaintance{}).Error
	if err != nil {
		return storeerr.Classify(err)
	}
	return nil
}
