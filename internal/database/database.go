package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/models"
)

// Connect opens the primary store. The pool is capped at DBMaxConns, which
// also bounds how many primary-store operations run at once.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected", "driver", cfg.DBDriver, "max_conns", cfg.DBMaxConns)
	return db, nil
}

// Dialector picks the GORM driver for cfg.DBDriver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres", "postgresql", "":
		return postgres.Open(cfg.DSN()), nil
	case "mysql", "mariadb":
		return mysql.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// Migrate creates or extends the tables the service owns. programKey is the
// program table's resolved key column; a table keyed by anything other than
// program_id belongs to the older schema and is left untouched.
func Migrate(db *gorm.DB, programKey string) error {
	return db.AutoMigrate(migrationModels(programKey)...)
}

func migrationModels(programKey string) []any {
	out := []any{
		&models.Donor{},
		&models.Category{},
		&models.Company{},
	}
	if programKey == "" || programKey == "program_id" {
		out = append(out, &models.Program{})
	}
	return append(out, &models.SystemLog{})
}

// Pinger reports primary-store liveness.
type Pinger struct {
	db *gorm.DB
}

func NewPinger(db *gorm.DB) *Pinger {
	return &Pinger{db: db}
}

// Ping issues SELECT 1 on the pool.
func (p *Pinger) Ping(ctx context.Context) error {
	var ok int
	if err := p.db.WithContext(ctx).Raw("SELECT 1").Scan(&ok).Error; err != nil {
		return err
	}
	if ok != 1 {
		return fmt.Errorf("unexpected ping result %d", ok)
	}
	return nil
}
