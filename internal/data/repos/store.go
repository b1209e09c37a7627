package repos

import (
	"github.com/situationlab/situation-backend/internal/domain"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"github.com/situationlab/situation-backend/internal/platform/storeerr"
	"github.com/situationlab/situation-backend/internal/platform/token"
	"gorm.io/gorm"
)

// Store is the generic CRUD core shared by every entity repo. Create
// validates required fields, assigns the public code when the entity
// carries one, and retries a bounded number of times when the code
// collides with an existing row.
type Store[T any] struct {
	db  *gorm.DB
	log *logger.Logger

	// TokenFunc overrides code generation, for tests. Nil means token.New.
	TokenFunc func() string
}

func NewStore[T any](db *gorm.DB, log *logger.Logger) *Store[T] {
	return &Store[T]{db: db, log: log}
}

func (s *Store[T]) conn(dbc dbctx.Context) *gorm.DB {
	tx := dbc.Tx
	if tx == nil {
		tx = s.db
	}
	if dbc.Ctx != nil {
		tx = tx.WithContext(dbc.Ctx)
	}
	return tx
}

func (s *Store[T]) newToken() string {
	if s.TokenFunc != nil {
		return s.TokenFunc()
	}
	return token.New()
}

func (s *Store[T]) Create(dbc dbctx.Context, entity *T) error {
	if v, ok := any(entity).(domain.Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	u, tokened := any(entity).(domain.Uniqued)
	if !tokened {
		if err := s.conn(dbc).Create(entity).Error; err != nil {
			return storeerr.Classify(err)
		}
		return nil
	}

	// A caller-supplied code is used as-is; a collision on it is the
	// caller's uniqueness error, not grounds for regeneration.
	assigned := u.GetUnique() == ""
	var lastErr error
	for attempt := 0; attempt < token.MaxAttempts; attempt++ {
		if assigned {
			u.SetUnique(s.newToken())
		}
		err := s.conn(dbc).Create(entity).Error
		if err == nil {
			return nil
		}
		lastErr = storeerr.Classify(err)
		if !assigned || !storeerr.IsKind(lastErr, storeerr.KindUniqueness) {
			return lastErr
		}
		// The code's unique index is the only unique constraint on tokened
		// entities. A model gaining a second unique column needs the
		// violated constraint checked here, or its duplicates will burn
		// through the retries and misreport as code exhaustion.
		s.log.Warn("public code collision, regenerating", "attempt", attempt+1)
	}
	return storeerr.New(storeerr.KindTokenExhausted, lastErr)
}

func (s *Store[T]) GetByID(dbc dbctx.Context, id uint) (*T, error) {
	var out T
	if err := s.conn(dbc).First(&out, id).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return &out, nil
}

func (s *Store[T]) List(dbc dbctx.Context) ([]*T, error) {
	var out []*T
	if err := s.conn(dbc).Order("id ASC").Find(&out).Error; err != nil {
		return nil, storeerr.Classify(err)
	}
	return out, nil
}

// Save persists field assignments made on a previously created entity.
func (s *Store[T]) Save(dbc dbctx.Context, entity *T) error {
	if v, ok := any(entity).(domain.Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if err := s.conn(dbc).Save(entity).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}

// Delete blocks with a foreign key error while other rows still reference
// the entity. Callers unlink first.
func (s *Store[T]) Delete(dbc dbctx.Context, entity *T) error {
	if err := s.conn(dbc).Delete(entity).Error; err != nil {
		return storeerr.Classify(err)
	}
	return nil
}
