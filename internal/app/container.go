// Package app wires configuration, infrastructure, and the analytics
// services into a single container used by the CLI and the worker.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	assignmentApp "github.com/luminahr/talentscope/internal/assignment/application"
	assignmentServices "github.com/luminahr/talentscope/internal/assignment/application/services"
	scoringApp "github.com/luminahr/talentscope/internal/scoring/application"
	scoringServices "github.com/luminahr/talentscope/internal/scoring/application/services"
	scoringDomain "github.com/luminahr/talentscope/internal/scoring/domain"
	scoringCache "github.com/luminahr/talentscope/internal/scoring/infrastructure/cache"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/database"
	_ "github.com/luminahr/talentscope/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/luminahr/talentscope/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/luminahr/talentscope/internal/shared/infrastructure/eventbus"
	"github.com/luminahr/talentscope/internal/shared/infrastructure/migrations"
	skillsApp "github.com/luminahr/talentscope/internal/skills/application"
	skillsDomain "github.com/luminahr/talentscope/internal/skills/domain"
	trendsApp "github.com/luminahr/talentscope/internal/trends/application"
	trendsServices "github.com/luminahr/talentscope/internal/trends/application/services"
	workforceDomain "github.com/luminahr/talentscope/internal/workforce/domain"
	"github.com/luminahr/talentscope/pkg/config"
	"github.com/luminahr/talentscope/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics

	// Database
	DBConn database.Connection

	// Redis
	RedisClient *redis.Client

	// Repositories
	Directory    workforceDomain.Directory
	Tasks        workforceDomain.TaskSource
	ScoreHistory scoringDomain.HistoryRepository
	RoleCatalog  skillsDomain.Catalog

	// Publishers
	EventPublisher eventbus.Publisher

	// Services
	ScoringService    *scoringApp.Service
	SkillsService     *skillsApp.Service
	TrendsService     *trendsApp.Service
	AssignmentService *assignmentApp.Service
}

// NewContainer creates and wires all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics observability.Metrics) (*Container, error) {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
	}

	// Connect to the database; an empty URL means local SQLite mode.
	dbCfg := database.Config{URL: cfg.DatabaseURL}
	if cfg.DatabaseURL == "" {
		dbCfg = database.DefaultLocalConfig()
	}
	conn, err := database.NewConnection(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DBConn = conn
	logger.Info("connected to database", "driver", conn.Driver())

	if conn.Driver() == database.DriverSQLite {
		if err := runSQLiteMigrations(ctx, conn); err != nil {
			conn.Close()
			return nil, err
		}
	}

	// Connect to Redis (optional in development)
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			if !cfg.IsDevelopment() {
				conn.Close()
				return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
			}
			logger.Warn("invalid Redis URL, score caching disabled", "error", err)
		} else {
			redisClient := redis.NewClient(opt)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				if !cfg.IsDevelopment() {
					conn.Close()
					return nil, fmt.Errorf("failed to connect to Redis: %w", err)
				}
				logger.Warn("Redis not available, score caching disabled", "error", err)
			} else {
				c.RedisClient = redisClient
				logger.Info("connected to Redis")
			}
		}
	}

	// Create repositories
	factory := NewRepositoryFactory(conn)
	if c.Directory, err = factory.Directory(); err != nil {
		return nil, err
	}
	if c.Tasks, err = factory.TaskSource(); err != nil {
		return nil, err
	}
	if c.ScoreHistory, err = factory.ScoreHistory(); err != nil {
		return nil, err
	}
	if c.RoleCatalog, err = factory.RoleCatalog(); err != nil {
		return nil, err
	}

	// Create event publisher
	publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
	if err != nil {
		// Fall back to noop publisher in development
		if cfg.IsDevelopment() {
			logger.Warn("RabbitMQ not available, using noop publisher")
			c.EventPublisher = eventbus.NewNoopPublisher(logger)
		} else {
			conn.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
	} else {
		c.EventPublisher = publisher
	}

	var scoreCache scoringDomain.Cache
	if c.RedisClient != nil {
		scoreCache = scoringCache.NewRedisScoreCache(c.RedisClient)
	}

	// Create services
	c.ScoringService = scoringApp.NewService(scoringApp.Config{
		Directory: c.Directory,
		Tasks:     c.Tasks,
		History:   c.ScoreHistory,
		Cache:     scoreCache,
		Publisher: c.EventPublisher,
		Engine:    scoringServices.DefaultScoreEngineConfig(),
		Freshness: cfg.ScoreFreshness,
		Workers:   cfg.BatchWorkers,
		Metrics:   metrics,
		Logger:    logger,
	})

	c.SkillsService = skillsApp.NewService(skillsApp.Config{
		Directory: c.Directory,
		Catalog:   c.RoleCatalog,
		Metrics:   metrics,
	})

	c.TrendsService = trendsApp.NewService(trendsApp.Config{
		Directory: c.Directory,
		Tasks:     c.Tasks,
		History:   c.ScoreHistory,
		Predictor: trendsServices.DefaultPredictorConfig(),
		Workers:   cfg.BatchWorkers,
		Metrics:   metrics,
		Logger:    logger,
	})

	c.AssignmentService = assignmentApp.NewService(assignmentApp.Config{
		Directory: c.Directory,
		Tasks:     c.Tasks,
		History:   c.ScoreHistory,
		Engine:    assignmentServices.DefaultSuitabilityEngineConfig(),
		Workers:   cfg.BatchWorkers,
		Metrics:   metrics,
	})

	return c, nil
}

// runSQLiteMigrations applies the embedded schema to a local SQLite store.
func runSQLiteMigrations(ctx context.Context, conn database.Connection) error {
	sqliteConn, ok := conn.(interface{ DB() *sql.DB })
	if !ok {
		return fmt.Errorf("sqlite connection does not expose DB()")
	}
	if err := migrations.RunSQLiteMigrations(ctx, sqliteConn.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases all resources held by the container.
func (c *Container) Close() error {
	var firstErr error

	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.DBConn != nil {
		if err := c.DBConn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
