package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"project-catalog/internal/config"
	"project-catalog/internal/database"
	"project-catalog/internal/grpcapi"
	"project-catalog/internal/handlers"
	"project-catalog/internal/metrics"
	"project-catalog/internal/middlewares"
	"project-catalog/internal/repositories"
	"project-catalog/internal/routes"
	"project-catalog/internal/services"
	"project-catalog/internal/storage"
)

// Server bundles the two listening surfaces and the shared pool so main
// can run and shut them down together.
type Server struct {
	HTTP *http.Server
	GRPC *grpc.Server
	Pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Server, error) {
	pool, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := database.RunMigrations(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	blobs, err := storage.New(cfg.Storage)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init blob storage: %w", err)
	}

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool)
	releaseRepo := repositories.NewReleaseRepository(pool)
	tagRepo := repositories.NewTagRepository(pool)

	projectService := services.NewProjectService(projectRepo, tagRepo, blobs, log)
	tagService := services.NewTagService(tagRepo, log)
	releaseService := services.NewReleaseService(releaseRepo, projectService, cfg.ReleaseStrictTransitions, log)

	projectHandler := handlers.NewProjectHandler(projectService)
	releaseHandler := handlers.NewReleaseHandler(releaseService)
	tagHandler := handlers.NewTagHandler(tagService)
	healthHandler := handlers.NewHealthHandler(pool)

	reg := metrics.New()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(log))
	router.Use(middlewares.Metrics(reg))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, projectHandler, releaseHandler, tagHandler, healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	grpcServer := grpcapi.NewServer(projectService, releaseService, tagService, reg, log)

	return &Server{
		HTTP: httpServer,
		GRPC: grpcServer,
		Pool: pool,
	}, nil
}
