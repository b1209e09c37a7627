package db

import (
	"fmt"

	"github.com/situationlab/situation-backend/internal/platform/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type SqliteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSqliteService(path string, log *logger.Logger) (*SqliteService, error) {
	serviceLog := log.With("service", "SqliteService")

	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	serviceLog.Info("Connecting to sqlite...", "path", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		serviceLog.Error("Failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &SqliteService{db: db, log: serviceLog}, nil
}

func (s *SqliteService) DB() *gorm.DB { return s.db }

func (s *SqliteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed for sqlite tables", "error", err)
		return err
	}
	return nil
}
