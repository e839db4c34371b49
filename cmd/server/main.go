package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/doubt-tracker-api/api/swagger"
	"github.com/noah-isme/doubt-tracker-api/internal/handler"
	"github.com/noah-isme/doubt-tracker-api/internal/middleware"
	"github.com/noah-isme/doubt-tracker-api/internal/repository"
	"github.com/noah-isme/doubt-tracker-api/internal/service"
	"github.com/noah-isme/doubt-tracker-api/pkg/config"
	"github.com/noah-isme/doubt-tracker-api/pkg/database"
	"github.com/noah-isme/doubt-tracker-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/doubt-tracker-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/doubt-tracker-api/pkg/middleware/requestid"
)

// @title Doubt Tracker API
// @version 1.0.0
// @description Backend for the digital doubt tracker: students raise doubts, teachers resolve them.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to migrate database", "error", err)
	}
	if err := database.Seed(ctx, db, logr); err != nil {
		logr.Sugar().Fatalw("failed to seed database", "error", err)
	}

	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	doubtRepo := repository.NewDoubtRepository(db)
	responseRepo := repository.NewResponseRepository(db)

	authSvc := service.NewAuthService(studentRepo, teacherRepo, validate, logr)
	doubtSvc := service.NewDoubtService(doubtRepo, responseRepo, validate, logr)
	statsSvc := service.NewStatsService(doubtRepo, responseRepo, studentRepo, teacherRepo, logr)
	adminSvc := service.NewAdminService(teacherRepo, studentRepo, validate, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		r.Use(middleware.Metrics(metricsSvc))
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(doubtRepo, logr)
	}

	router := handler.NewRouter(
		handler.NewAuthHandler(authSvc),
		handler.NewStudentHandler(doubtSvc, statsSvc),
		handler.NewTeacherHandler(doubtSvc, statsSvc),
		handler.NewDoubtHandler(doubtSvc),
		handler.NewAdminHandler(adminSvc, statsSvc, exportSvc),
		handler.NewStaticHandler(cfg.Static.Dir, cfg.Static.IndexFile),
	)
	router.Register(r)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "db", cfg.Database.Path)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
