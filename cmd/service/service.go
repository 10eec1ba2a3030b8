// @title        AccountHub API
// @version      1.0
// @description  User account management and authentication service.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"os"

	"accounthub/internal/cache"
	"accounthub/internal/config"
	"accounthub/internal/database"
	"accounthub/internal/repository"
	"accounthub/internal/router"
	"accounthub/internal/service"
	"accounthub/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	_ "accounthub/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for echo.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run(log zerolog.Logger) error {
	cfg, err := loadConfig(os.Getenv("ACCOUNTHUB_CONFIG"))
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.Database.URL); err != nil {
		return err
	}

	wp := newWorkerPool(cfg.Worker.Count)
	defer wp.Stop()

	store := repository.NewPostgresStore(db)
	userSvc := service.NewUserService(store, rdb, wp, log)
	authSvc := service.NewAuthService(store, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, router.Deps{
		DB:        db,
		Cache:     rdb,
		Users:     userSvc,
		Auth:      authSvc,
		JWTSecret: cfg.Auth.JWTSecret,
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
	return startServer(e, cfg.Server.Addr)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("service exited")
		exitFunc(1)
	}
}
