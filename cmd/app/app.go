package app

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/Badsnus/golf-stats/internal/adapters/config"
	"github.com/Badsnus/golf-stats/internal/adapters/database/redis"
	"github.com/Badsnus/golf-stats/internal/adapters/database/sqlstore"
	"github.com/Badsnus/golf-stats/internal/domain/service"
	"github.com/Badsnus/golf-stats/internal/domain/utils/location"
	"github.com/Badsnus/golf-stats/pkg/logger"
	"github.com/Badsnus/golf-stats/pkg/logger/types"
)

// App holds the shared process state of the golfdb and web commands.
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *types.Logger

	Members *service.MemberService
	Courses *service.CourseService
	Rounds  *service.RoundService
	Stats   *service.StatsService
	Seed    *service.SeedService
}

// New initializes logging and connects to the database and, when enabled, to Redis.
// It does not touch the schema.
func New(cfg *config.Config) (*App, error) {
	if err := location.Set(cfg.Settings.Timezone); err != nil {
		return nil, err
	}

	err := logger.Init(logger.Config{
		Debug:        cfg.Settings.Debug,
		TimeLocation: location.Location(),
		LogToFile:    cfg.Settings.LogToFile,
		LogsDir:      cfg.Settings.LogsDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	dbLogger, err := logger.Named("database")
	if err != nil {
		return nil, err
	}
	db, err := sqlstore.Open(DatabaseOptions(cfg))
	if err != nil {
		return nil, err
	}
	dbLogger.Infof("connected to %s database", cfg.Service.Database.Driver)

	a := &App{
		Config: cfg,
		DB:     db,
		Logger: logger.Log,
	}

	var cache service.StatsCache = service.NoCache{}
	if cfg.Service.Redis.Enabled {
		a.Redis, err = redis.New(redis.Options{
			Host:     cfg.Service.Redis.Host,
			Port:     strconv.Itoa(cfg.Service.Redis.Port),
			Password: cfg.Service.Redis.Password,
			DB:       cfg.Service.Redis.DB,
			TTL:      cfg.Service.Redis.TTL,
		})
		if err != nil {
			_ = sqlstore.Close(db)
			return nil, err
		}
		cache = a.Redis.Stats
		dbLogger.Infof("stats cache enabled, ttl %s", cfg.Service.Redis.TTL)
	}

	serviceLogger, err := logger.Named("service")
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Members = service.NewMemberService(serviceLogger, sqlstore.NewMemberStorage(db), cache)
	a.Courses = service.NewCourseService(sqlstore.NewCourseStorage(db))
	a.Rounds = service.NewRoundService(serviceLogger, sqlstore.NewRoundStorage(db), sqlstore.NewHoleStorage(db), cache)
	a.Stats = service.NewStatsService(serviceLogger, sqlstore.NewStatsStorage(db), cache, HandicapConfig(cfg))
	a.Seed = service.NewSeedService(a.Members, a.Courses, a.Rounds)

	return a, nil
}

// Init creates the schema, or recreates it when force is set. Cached views are dropped
// whenever the schema is recreated.
func (a *App) Init(ctx context.Context, force bool) (bool, error) {
	created, err := sqlstore.Init(ctx, a.DB, force, ViewOptions(a.Config))
	if err != nil {
		return false, err
	}
	if created && a.Redis != nil {
		if err = a.Redis.Flush(ctx); err != nil {
			a.Logger.Warnf("failed to flush stats cache: %v", err)
		}
	}
	return created, nil
}

func (a *App) Close() error {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Errorf("failed to close redis: %v", err)
		}
	}
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return sqlstore.Close(a.DB)
}

func DatabaseOptions(cfg *config.Config) sqlstore.Options {
	db := cfg.Service.Database
	return sqlstore.Options{
		Driver:   db.Driver,
		Path:     db.Path,
		Host:     db.Host,
		Port:     db.Port,
		User:     db.User,
		Password: db.Password,
		Name:     db.Name,
		SSLMode:  db.SSLMode,
		Debug:    cfg.Settings.Debug,
	}
}

func HandicapConfig(cfg *config.Config) service.HandicapConfig {
	return service.HandicapConfig{
		Window:       cfg.Handicap.Window,
		Best:         cfg.Handicap.Best,
		Factor:       cfg.Handicap.Factor,
		Proportional: cfg.Handicap.Proportional,
	}
}

// ViewOptions renders the configured handicap window into the handicap view.
func ViewOptions(cfg *config.Config) sqlstore.ViewOptions {
	return sqlstore.ViewOptions{
		HandicapWindow: cfg.Handicap.Window,
		HandicapBest:   cfg.Handicap.Best,
		HandicapFactor: cfg.Handicap.Factor,
	}
}
