package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/situationlab/situation-backend/internal/db"
	"github.com/situationlab/situation-backend/internal/export"
	"github.com/situationlab/situation-backend/internal/platform/dbctx"
	"github.com/situationlab/situation-backend/internal/platform/envutil"
	"github.com/situationlab/situation-backend/internal/platform/logger"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type config struct {
	Driver     string `yaml:"driver"`
	SqlitePath string `yaml:"sqlite_path"`
	Output     struct {
		JSON string `yaml:"json"`
		Dot  string `yaml:"dot"`
	} `yaml:"output"`
}

func loadConfig(path string) (config, error) {
	cfg := config{
		Driver:     envutil.Str("SITUATION_DRIVER", "sqlite"),
		SqlitePath: envutil.Str("SITUATION_SQLITE_PATH", "situation.db"),
	}
	cfg.Output.JSON = envutil.Str("SITUATION_OUTPUT_JSON", "situation.json")
	cfg.Output.Dot = envutil.Str("SITUATION_OUTPUT_DOT", "events.dot")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New(envutil.Str("LOG_MODE", "dev"))
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()
	log = log.With("run_id", uuid.NewString())

	cfg, err := loadConfig(envutil.Str("SITUATION_CONFIG", "situation.yaml"))
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	var gormDB *gorm.DB
	switch cfg.Driver {
	case "postgres":
		svc, err := db.NewPostgresService(log)
		if err != nil {
			log.Fatal("Failed to connect", "error", err)
		}
		if err := svc.AutoMigrateAll(); err != nil {
			log.Fatal("Failed to migrate", "error", err)
		}
		gormDB = svc.DB()
	default:
		svc, err := db.NewSqliteService(cfg.SqlitePath, log)
		if err != nil {
			log.Fatal("Failed to connect", "error", err)
		}
		if err := svc.AutoMigrateAll(); err != nil {
			log.Fatal("Failed to migrate", "error", err)
		}
		gormDB = svc.DB()
	}

	exporter := export.NewExporter(gormDB, log)
	dbc := dbctx.Context{Ctx: context.Background()}

	if err := exporter.Save(dbc, cfg.Output.JSON); err != nil {
		log.Fatal("Failed to write situation dump", "error", err)
	}
	if err := exporter.SaveEventsDot(dbc, cfg.Output.Dot); err != nil {
		log.Fatal("Failed to write events graph", "error", err)
	}
	log.Info("Export complete", "json", cfg.Output.JSON, "dot", cfg.Output.Dot)
}
