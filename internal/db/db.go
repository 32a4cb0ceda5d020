package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kickmyb/internal/config"
	"kickmyb/internal/model"
)

// Models lists every table owned by the service, parents first.
var Models = []interface{}{
	&model.User{},
	&model.Task{},
}

// Open returns a connected GORM DB for the configured driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.MySQLDSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// NewSQLiteMemory opens a private in-memory database named name.
func NewSQLiteMemory(name string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared&_foreign_keys=1"), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// a shared-cache memory db disappears with its last connection
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate creates or updates the schema. With reset it drops the tables first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		for i := len(Models) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(Models[i]); err != nil {
				return fmt.Errorf("drop table: %w", err)
			}
		}
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// surfaces unique index violations as gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}
