package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planview/internal/config"
	"planview/internal/handler"
	"planview/internal/middleware"
	"planview/internal/model"
	"planview/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(&model.Account{}, &model.Snapshot{}); err != nil {
		return nil, fmt.Errorf("❌ failed to run migrations: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountRepo)
	snapshotHandler := handler.NewSnapshotHandler(snapshotRepo)
	boardHandler := handler.NewBoardHandler(snapshotRepo)
	exportHandler := handler.NewExportHandler(snapshotRepo)

	// Public routes
	r.POST("/register", accountHandler.Register)
	r.POST("/login", accountHandler.Login)

	// Protected routes - require authentication
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Export package upload
		authorized.POST("/files", snapshotHandler.Upload)
		authorized.GET("/files", snapshotHandler.Status)
		authorized.DELETE("/files", snapshotHandler.Clear)

		// Board view routes
		authorized.GET("/project", boardHandler.GetProject)
		authorized.GET("/board", boardHandler.GetBoard)

		// Export routes
		authorized.GET("/export/json", exportHandler.ExportJSON)
		authorized.GET("/export/csv", exportHandler.ExportCSV)
	}
	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
