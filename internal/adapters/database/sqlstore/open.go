package sqlstore

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options describes how to reach the database.
type Options struct {
	Driver string // sqlite or postgres

	// Path is the SQLite database file.
	Path string

	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	Debug bool
}

func (o Options) dialector() (gorm.Dialector, error) {
	switch o.Driver {
	case DriverSQLite, "":
		if o.Path == "" {
			return nil, fmt.Errorf("%w: sqlite database path is empty", errorz.ErrConfiguration)
		}
		return sqlite.Open(sqliteDSN(o.Path)), nil
	case DriverPostgres:
		sslMode := o.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
			o.User,
			o.Password,
			o.Name,
			o.Host,
			o.Port,
			sslMode,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", errorz.ErrConfiguration, o.Driver)
	}
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection by default.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
}

// Open connects to the database described by opts and verifies the connection.
// It does not touch the schema; see Init, Migrate and CheckSchema.
func Open(opts Options) (*gorm.DB, error) {
	dialector, err := opts.dialector()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	}
	if opts.Debug {
		gormConfig.Logger = gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to the database: %v", errorz.ErrConfiguration, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.ErrConfiguration, err)
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to ping the database: %v", errorz.ErrConfiguration, err)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CheckSchema returns ErrConfiguration when any table is missing.
func CheckSchema(ctx context.Context, db *gorm.DB) error {
	migrator := db.WithContext(ctx).Migrator()
	for _, model := range Migrations {
		if !migrator.HasTable(model) {
			return fmt.Errorf("%w: table for %T is missing, initialize the database first", errorz.ErrConfiguration, model)
		}
	}
	return nil
}

// Init creates the schema when it is absent. An existing schema is left untouched unless force
// is set, in which case every view and table is dropped and recreated.
// created reports whether the schema was (re)created.
func Init(ctx context.Context, db *gorm.DB, force bool, opts ViewOptions) (created bool, err error) {
	exists := db.WithContext(ctx).Migrator().HasTable(&entity.Member{})
	if exists && !force {
		return false, nil
	}

	if exists {
		if err = Drop(ctx, db); err != nil {
			return false, err
		}
	}

	if err = Migrate(ctx, db, opts); err != nil {
		return false, err
	}
	return true, nil
}

// Migrate brings tables up to date and recreates every view.
func Migrate(ctx context.Context, db *gorm.DB, opts ViewOptions) error {
	tx := db.WithContext(ctx)

	// views pin the columns they select, so they go first
	if err := dropViews(tx); err != nil {
		return err
	}
	if err := tx.AutoMigrate(Migrations...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	for _, v := range views(opts) {
		if err := tx.Exec(fmt.Sprintf("CREATE VIEW %s AS %s", v.name, v.query)).Error; err != nil {
			return fmt.Errorf("failed to create view %s: %w", v.name, err)
		}
	}
	return nil
}

// Drop removes every view and table, children first.
func Drop(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := dropViews(tx); err != nil {
		return err
	}
	for i := len(Migrations) - 1; i >= 0; i-- {
		if err := tx.Migrator().DropTable(Migrations[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", Migrations[i], err)
		}
	}
	return nil
}

func dropViews(tx *gorm.DB) error {
	all := views(ViewOptions{})
	for i := len(all) - 1; i >= 0; i-- {
		if err := tx.Exec(fmt.Sprintf("DROP VIEW IF EXISTS %s", all[i].name)).Error; err != nil {
			return fmt.Errorf("failed to drop view %s: %w", all[i].name, err)
		}
	}
	return nil
}
