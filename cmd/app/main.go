package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wichananm65/drink-shop-backend/internal/cart"
	"github.com/wichananm65/drink-shop-backend/internal/category"
	"github.com/wichananm65/drink-shop-backend/internal/config"
	"github.com/wichananm65/drink-shop-backend/internal/dashboard"
	"github.com/wichananm65/drink-shop-backend/internal/db"
	"github.com/wichananm65/drink-shop-backend/internal/drink"
	"github.com/wichananm65/drink-shop-backend/internal/favorite"
	"github.com/wichananm65/drink-shop-backend/internal/order"
	"github.com/wichananm65/drink-shop-backend/internal/review"
	"github.com/wichananm65/drink-shop-backend/internal/session"
	"github.com/wichananm65/drink-shop-backend/internal/user"
)

const (
	dashboardRefreshInterval = time.Minute
	shutdownTimeout          = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("load config", "error", err)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalw("connect database", "error", err)
	}
	defer conn.Close()
	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalw("ensure schema", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	sessionStores := session.NewRedisFactory(rdb)

	// services
	userService := user.NewService(user.NewPostgresRepository(conn), user.AdminListPolicy(cfg.AdminEmails))
	categoryService := category.NewService(category.NewPostgresRepository(conn))
	drinkService := drink.NewService(drink.NewPostgresRepository(conn))
	cartService := cart.NewService(cart.NewPostgresRepository(conn))
	orderService := order.NewService(order.NewPostgresRepository(conn))
	reviewService := review.NewService(review.NewPostgresRepository(conn))
	favoriteService := favorite.NewService(favorite.NewPostgresRepository(conn))
	dashboardService := dashboard.NewService(dashboard.NewPostgresRepository(conn), log)

	// handlers
	sessionHandler := session.NewHandler(sessionStores)
	userHandler := user.NewHandler(userService, sessionStores, cfg.JWTSecret, log)
	categoryHandler := category.NewHandler(categoryService)
	drinkHandler := drink.NewHandler(drinkService, cfg.UploadDir)
	cartHandler := cart.NewHandler(cartService, drinkService)
	orderHandler := order.NewHandler(orderService, cartService, drinkService, log)
	reviewHandler := review.NewHandler(reviewService, drinkService)
	favoriteHandler := favorite.NewHandler(favoriteService, drinkService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, " + session.DeviceHeader,
	}))

	// public routes
	sessionHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	drinkHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)
	app.Static("/uploads", cfg.UploadDir)

	// everything below requires a valid token
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte(cfg.JWTSecret)}))

	userHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	favoriteHandler.RegisterProtectedRoutes(app)

	admin := app.Group("/api/v1/admin", user.AdminOnly)
	categoryHandler.RegisterAdminRoutes(admin)
	drinkHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	reviewHandler.RegisterAdminRoutes(admin)
	dashboardHandler.RegisterAdminRoutes(admin)

	poller := dashboard.NewPoller(dashboardRefreshInterval, dashboardService.Refresh)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		poller.Start(ctx)
		log.Infow("listening", "addr", cfg.Addr)
		return app.Listen(cfg.Addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Infow("shutting down")
		poller.Stop()
		return app.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
