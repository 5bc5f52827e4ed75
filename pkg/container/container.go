package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-rental-backend/internal/config"
	infraCache "library-rental-backend/internal/infrastructure/cache"
	"library-rental-backend/internal/infrastructure/database"
	"library-rental-backend/pkg/cache"

	catalogHandler "library-rental-backend/internal/domains/catalog/handler"
	catalogRepo "library-rental-backend/internal/domains/catalog/repository"
	catalogService "library-rental-backend/internal/domains/catalog/service"
	rentalHandler "library-rental-backend/internal/domains/rental/handler"
	rentalRepo "library-rental-backend/internal/domains/rental/repository"
	rentalService "library-rental-backend/internal/domains/rental/service"
	rosterHandler "library-rental-backend/internal/domains/roster/handler"
	rosterRepo "library-rental-backend/internal/domains/roster/repository"
	rosterService "library-rental-backend/internal/domains/roster/service"
)

// Container is the root of the dependency graph: config, infrastructure,
// then repositories, services and handlers per domain.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	CatalogService catalogService.Service
	RosterService  rosterService.Service
	RentalService  rentalService.Service

	BookHandler    *catalogHandler.Handler
	StudentHandler *rosterHandler.Handler
	RentalHandler  *rentalHandler.Handler

	redis *infraCache.RedisCache
}

// NewContainer initializes the whole dependency graph in order:
// config → infrastructure → repositories → services → handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c.redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.redis.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	c.Cache = c.redis

	books := catalogRepo.NewRepository(c.DB.Pool, c.Cache)
	students := rosterRepo.NewRepository(c.DB.Pool)
	rentals := rentalRepo.NewRepository(c.DB.Pool, c.Cache)

	c.CatalogService = catalogService.NewService(books)
	c.RosterService = rosterService.NewService(students)
	c.RentalService = rentalService.NewService(rentals)

	c.BookHandler = catalogHandler.NewHandler(c.CatalogService)
	c.StudentHandler = rosterHandler.NewHandler(c.RosterService)
	c.RentalHandler = rentalHandler.NewHandler(c.RentalService)

	log.Info().Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
