package app

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/board"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/content"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/health"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/project"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/workflow"
	"github.com/ZenNoodz/Motioncookingcontent/internal/config"
	"github.com/ZenNoodz/Motioncookingcontent/internal/db"
	"github.com/ZenNoodz/Motioncookingcontent/internal/db/seeder"
	"github.com/ZenNoodz/Motioncookingcontent/internal/providers/redis"
	"github.com/ZenNoodz/Motioncookingcontent/internal/router"
	"github.com/ZenNoodz/Motioncookingcontent/internal/utils"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)

	projectRepo := project.NewRepository(dbConn)
	contentRepo := content.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)

	projectService := project.NewService(projectRepo)
	contentService := content.NewService(contentRepo, logger)
	boardService := board.NewService(boardRepo, contentRepo, redisProvider, logger)
	coordinator := workflow.NewCoordinator(dbConn, contentRepo, boardRepo, redisProvider, logger)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	boardHandler := board.NewHandler(boardService, projectService, coordinator)
	contentHandler := content.NewHandler(contentService, projectService, coordinator, cfg.DefaultPageSize, cfg.MaxPageSize)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterContentRoutes(contentHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
