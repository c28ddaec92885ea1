package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/tradeflows/promoflow/configs"
	"github.com/tradeflows/promoflow/internal/api/handlers"
	"github.com/tradeflows/promoflow/internal/api/middleware"
	"github.com/tradeflows/promoflow/internal/content"
	"github.com/tradeflows/promoflow/internal/platform"
	"github.com/tradeflows/promoflow/internal/queue"
	"github.com/tradeflows/promoflow/internal/repository"
	"github.com/tradeflows/promoflow/internal/scheduler"
	"github.com/tradeflows/promoflow/internal/service"
	"github.com/tradeflows/promoflow/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	if cfg.OperatorKey == "" {
		key, err := utils.GenerateRandomKey(24)
		if err != nil {
			log.Fatalf("Failed to generate operator key: %v", err)
		}
		cfg.OperatorKey = key
		log.Printf("OPERATOR_KEY not set, generated one for this run: %s", key)
	}

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC", cfg.Timezone)
		loc = time.UTC
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	postRepo := repository.NewPostRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	registry := platform.NewRegistry(
		platform.NewTwitterAdapter(cfg.Twitter),
		platform.NewLinkedinAdapter(cfg.Linkedin),
		platform.NewFacebookAdapter(cfg.Facebook),
		platform.NewRedditAdapter(cfg.Reddit),
		platform.NewInstagramAdapter(cfg.Instagram),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pool := content.NewPool(rng)

	engineCfg := scheduler.DefaultConfig(cfg.PostsPerDayMin, cfg.PostsPerDayMax, loc)
	engine := scheduler.NewEngine(engineCfg, postRepo, analyticsRepo, registry, pool, rng, nil)

	postService := service.NewPostService(postRepo, registry)
	analyticsService := service.NewAnalyticsService(analyticsRepo, postRepo, nil)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := handlers.NewAuthHandler(*cfg)
	app.Post("/auth/token", auth.CreateToken)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	platformHandler := handlers.NewPlatformHandler(registry)
	api.Get("/platforms/status", platformHandler.Status)
	api.Post("/platforms/authenticate", platformHandler.Authenticate)

	post := handlers.NewPostHandler(postService, engine, client)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/create", post.CreatePost)
	api.Post("/posts/remove", post.RemovePost)
	api.Post("/posts/publish", post.PublishPost)
	api.Post("/schedule/generate", post.GenerateSchedule)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics/daily", analytics.DailyStats)
	api.Get("/analytics/report", analytics.Report)

	ctx := context.Background()
	registry.AuthenticateAll(ctx)

	if err := engine.EnsureScheduleExists(ctx); err != nil {
		log.Printf("Failed to ensure today's schedule: %v", err)
	}
	engine.Start()

	queueW := queue.NewQueue(engine)

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 1,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db, engine)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB, engine *scheduler.Engine) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	engine.Stop()

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
