package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"gorm.io/gorm"
)

type PersonRepo interface {
	Create(dbc dbctx.Context, person *domain.Person) error
	GetByID(dbc dbctx.Context, id uint) (*domain.Person, error)
	GetByUnique(dbc dbctx.Context, unique string) (*domain.Person, error)
	List(dbc dbctx.Context) ([]*domain.Person, error)
	Save(dbc dbctx.Context, person *domain.Person) error
	Delete(dbc dbctx.Context, person *domain.Person) error
}

type personRepo struct {
	*Store[domain.Person]
}

func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return &personRepo{NewStore[domain.Person](db, baseLog.With("repo", "PersonRepo"))}
}

func (r *personRepo) GetByUnique(dbc dbctx.Context, unique string) (*domain.Person, error) {
	var out domain.Person
	if err := r.conn(dbc).Where(&domain.Person{Unique: unique}).First(&out).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &out, nil
}
