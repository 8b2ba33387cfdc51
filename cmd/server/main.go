package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/Adityakr425/Swiftwy/internal/delivery/http"
	"github.com/Adityakr425/Swiftwy/internal/domain"
	"github.com/Adityakr425/Swiftwy/internal/repository/postgres"
	"github.com/Adityakr425/Swiftwy/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()
	configureLogging(cfg)

	// Road network
	network := domain.DefaultNetwork()
	if cfg.RefreshWindow > 0 {
		network.Params.RefreshWindow = cfg.RefreshWindow
	}
	if err := network.Validate(); err != nil {
		log.Fatalf("Invalid road network: %v", err)
	}

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool := connectDatabase(ctx, cfg.DatabaseURL)
	if pool != nil {
		defer pool.Close()
	}

	// Dependency Injection: Repositories
	var dataRepo service.DataRepository
	if pool != nil {
		pgRepo := postgres.NewPostgresRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
		dataRepo = pgRepo
	} else {
		dataRepo = postgres.NewMockRepository()
	}

	// Dependency Injection: Services
	archiveSvc := service.NewArchiveService(dataRepo)
	cache := service.NewTrafficCache(network, newSampler(cfg), service.WithRefreshHook(archiveSvc.Archive))
	trafficSvc := service.NewTrafficService(network, cache)
	routeSvc := service.NewRouteService(network, service.NewRoutePlanner(network, cache))

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Swiftwy API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, trafficSvc, routeSvc, archiveSvc)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	archiveSvc.WaitBackground()
	log.Println("Server exited gracefully")
}

type Config struct {
	DatabaseURL   string
	Port          string
	Env           string
	LogLevel      string
	RefreshWindow time.Duration
	Seed          string
}

func loadConfig() *Config {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("GO_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Seed:        getEnv("TRAFFIC_SEED", ""),
	}

	if raw := getEnv("TRAFFIC_REFRESH_WINDOW", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("Warning: ignoring invalid TRAFFIC_REFRESH_WINDOW %q", raw)
		} else {
			cfg.RefreshWindow = d
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func configureLogging(cfg *Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Printf("Warning: unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Env == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// connectDatabase returns nil when no database is configured or reachable
func connectDatabase(ctx context.Context, url string) *pgxpool.Pool {
	if url == "" {
		log.Println("DATABASE_URL not set, archiving snapshots in memory")
		return nil
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Printf("Warning: Could not connect to database: %v", err)
		log.Println("Archiving snapshots in memory only")
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		log.Printf("Warning: Database not reachable: %v", err)
		log.Println("Archiving snapshots in memory only")
		pool.Close()
		return nil
	}

	log.Println("Connected to PostgreSQL")
	return pool
}

func newSampler(cfg *Config) service.CongestionSampler {
	if cfg.Seed != "" {
		seed, err := strconv.ParseInt(cfg.Seed, 10, 64)
		if err == nil {
			log.WithField("seed", seed).Info("Congestion sampling is seeded")
			return service.NewRandomSampler(seed)
		}
		log.Printf("Warning: ignoring invalid TRAFFIC_SEED %q", cfg.Seed)
	}
	return service.NewRandomSampler(time.Now().UnixNano())
}
