package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sportlinkapp/sportlink-backend/internal/config"
	"github.com/sportlinkapp/sportlink-backend/internal/delivery/http"
	"github.com/sportlinkapp/sportlink-backend/internal/delivery/http/handler"
	"github.com/sportlinkapp/sportlink-backend/internal/delivery/http/middleware"
	"github.com/sportlinkapp/sportlink-backend/internal/infrastructure/database"
	"github.com/sportlinkapp/sportlink-backend/internal/infrastructure/server"
	"github.com/sportlinkapp/sportlink-backend/internal/repository/postgres"
	"github.com/sportlinkapp/sportlink-backend/internal/usecase/search"
	"github.com/sportlinkapp/sportlink-backend/internal/usecase/suggest"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	clubViewRepo := postgres.NewClubViewRepository(db)
	athleteViewRepo := postgres.NewAthleteViewRepository(db)
	opportunityRepo := postgres.NewOpportunityRepository(db)
	postRepo := postgres.NewPostRepository(db)
	followRepo := postgres.NewFollowRepository(db)

	// Initialize use cases
	resolver := search.NewReferenceResolver(profileRepo, clubViewRepo, athleteViewRepo)
	searchUseCase, err := search.NewSearchUseCase(
		resolver,
		search.NewOpportunityProvider(opportunityRepo),
		search.NewClubProvider(clubViewRepo, profileRepo),
		search.NewPlayerProvider(profileRepo),
		search.NewPostProvider(postRepo),
		search.NewEventProvider(postRepo),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize search: %w", err)
	}

	suggestUseCase := suggest.NewSuggestUseCase(profileRepo, athleteViewRepo, followRepo)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchUseCase)
	suggestHandler := handler.NewSuggestHandler(suggestUseCase, cfg.Suggest.DebugEnabled)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)
	rateLimiter := middleware.NewRateLimitMiddleware(
		middleware.NewRedisCounter(redisClient),
		cfg.RateLimit.Requests,
		cfg.RateLimit.Window,
	)

	// Initialize router
	router := http.NewRouter(
		searchHandler,
		suggestHandler,
		authMiddleware,
		rateLimiter,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
