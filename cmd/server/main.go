package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pratham.backend/internal/config"
	"pratham.backend/internal/domain/entities"
	domainerrors "pratham.backend/internal/domain/errors"
	domainrepos "pratham.backend/internal/domain/repositories"
	"pratham.backend/internal/infrastructure/mail"
	"pratham.backend/internal/infrastructure/models"
	"pratham.backend/internal/infrastructure/pdf"
	"pratham.backend/internal/infrastructure/repositories"
	"pratham.backend/internal/interfaces/http/handlers"
	"pratham.backend/internal/interfaces/http/middleware"
	"pratham.backend/internal/usecases"
	"pratham.backend/pkg/crypto"
	"pratham.backend/pkg/logger"
	"pratham.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. Admin sessions are recorded there when available;
	// login keeps working without it.
	var sessionRecorder usecases.AdminSessionRecorder
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, admin sessions will not be recorded", zap.Error(err))
	} else {
		store, err := newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		sessionRecorder = store
	}

	// Set Gin mode
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(&models.Submission{}, &models.User{}); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize repositories
	submissionRepo := repositories.NewSubmissionRepository(db)
	userRepo := repositories.NewUserRepository(db)

	if err := seedAdminUser(context.Background(), userRepo); err != nil {
		logger.Warn(context.Background(), "Failed to seed admin user", zap.Error(err))
	}

	// Initialize report mailer
	reportMailer, err := mail.NewReportMailer(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("failed to initialize report mailer: %w", err)
	}

	// Initialize usecases
	eligibilityUsecase := usecases.NewEligibilityUsecase(
		submissionRepo,
		pdf.NewReportRenderer(),
		usecases.NewMathRandSource(),
		!cfg.Server.IsProduction(),
	)
	authUsecase := usecases.NewAuthUsecase(sessionRecorder)

	// Initialize handlers
	eligibilityHandler := handlers.NewEligibilityHandler(eligibilityUsecase, reportMailer)
	submissionHandler := handlers.NewSubmissionHandler(submissionRepo)
	authHandler := handlers.NewAuthHandler(authUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		eligibilityHandler: eligibilityHandler,
		submissionHandler:  submissionHandler,
		authHandler:        authHandler,
	})

	// Start server
	log.Printf("🚀 Pratham backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// seedAdminUser keeps a hashed admin account in the users table so the
// schema matches what the admin panel expects.
func seedAdminUser(ctx context.Context, users domainrepos.UserRepository) error {
	_, err := users.GetByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	hash, err := crypto.HashPassword("admin123")
	if err != nil {
		return err
	}

	return users.Create(ctx, &entities.User{
		ID:       uuid.New(),
		Username: "admin",
		Password: hash,
		Role:     entities.UserRoleAdmin,
	})
}
