package app

import (
	"context"
	"errors"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/database"
	"skill-gap/internal/database/migration"
	dbpostgres "skill-gap/internal/database/postgres"
	"skill-gap/internal/dataset"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/logging"
	"skill-gap/internal/metrics"
	"skill-gap/internal/pkg/jwt"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"
	"skill-gap/internal/ws"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config config.Config

	Store *dataset.Store
	Cache *cache.Redis
	DB    database.DB
	Hub   *ws.Hub
	JWT   jwt.Service

	Dataset         *usecase.Dataset
	Recommendations *usecase.Recommendations
	Auth            *usecase.Auth
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	snap := dataset.LoadOrEmpty(ctx, cfg.Data.UsersPath, cfg.Data.JobsPath)
	c.Store = dataset.NewStore(snap)
	metrics.SetDataset(len(snap.Users), len(snap.Jobs), snap.Ready())
	logging.Info().
		Int("users", len(snap.Users)).
		Int("jobs", len(snap.Jobs)).
		Bool("recommender_ready", snap.Ready()).
		Msg("dataset loaded")

	c.Cache = cache.NewRedis(cfg.Redis, logging.WithComponent("cache"))

	var audit repository.UploadAuditRepository
	if cfg.Database.Enabled() {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(dbCtx, cfg.Database)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.DB = db

		if err := (migration.Runner{}).Run(dbCtx, db); err != nil {
			_ = c.Close()
			return nil, err
		}
		audit = repository.NewPostgresUploadAuditRepository(db)
		logging.Info().Str("host", cfg.Database.DBHost).Msg("upload audit enabled")
	}

	c.Hub = ws.NewHub(logging.WithComponent("ws"))
	go c.Hub.Run()

	if cfg.Auth.Enabled() {
		c.JWT = jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	}

	paths := usecase.DatasetPaths{Users: cfg.Data.UsersPath, Jobs: cfg.Data.JobsPath}
	c.Dataset = usecase.NewDatasetUsecase(c.Store, paths, c.Cache, audit, c.Hub, logging.WithComponent("dataset"))
	c.Recommendations = usecase.NewRecommendationUsecase(c.Store, c.Cache, logging.WithComponent("recommend"))
	c.Auth = usecase.NewAuthUsecase(cfg.Auth.AdminPasswordHash, c.JWT)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	c.Hub.Stop()
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
