package db

import (
	"fmt"

	"github.com/situationlab/situation-backend/internal/platform/envutil"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

// acquaintance_excerpts must reference the edge's compound key, not just the
// two person ids: an annotation row without a matching acquaintance row is
// invalid. GORM cannot express composite foreign keys, so it is added raw.
const addAcquaintanceExcerptFK = `
DO $$ BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'fk_acquaintance_excerpts_acquaintance'
  ) THEN
    ALTER TABLE "acquaintance_excerpts"
      ADD CONSTRAINT "fk_acquaintance_excerpts_acquaintance"
      FOREIGN KEY ("person_id", "acquainted_id")
      REFERENCES "acquaintance" ("person_id", "acquainted_id");
  END IF;
END $$;`

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := envutil.Str("POSTGRES_HOST", "localhost")
	postgresPort := envutil.Str("POSTGRES_PORT", "5432")
	postgresUser := envutil.Str("POSTGRES_USER", "postgres")
	postgresPassword := envutil.Str("POSTGRES_PASSWORD", "")
	postgresName := envutil.Str("POSTGRES_NAME", "situation")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...", "host", postgresHost, "database", postgresName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring composite foreign key for acquaintance excerpts...")
	if err := s.db.Exec(addAcquaintanceExcerptFK).Error; err != nil {
		s.log.Error("Failed to add acquaintance excerpt foreign key", "error", err)
		return err
	}
	return nil
}
