package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/Jazz7-Dev/FoodY.com/configs"
	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/cache"
	httpapi "github.com/Jazz7-Dev/FoodY.com/internal/adapter/http"
	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/http/middleware"
	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/kafka"
	"github.com/Jazz7-Dev/FoodY.com/internal/adapter/repo"
	"github.com/Jazz7-Dev/FoodY.com/internal/logging"
	"github.com/Jazz7-Dev/FoodY.com/internal/security"
	"github.com/Jazz7-Dev/FoodY.com/internal/usecase"
)

type App struct {
	handler http.Handler
}

// Serve runs the HTTP server with the configured timeouts.
func (a *App) Serve(cfg configs.Config) error {
	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return srv.ListenAndServe()
}

// InitWithConfig wires the whole server and returns a cleanup func.
func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile)
	log := logging.New("app")

	// mysql
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(ctx)
	cancel()
	if err != nil {
		return nil, nil, err
	}

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	var foodCache usecase.FoodCache
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// the catalog works without its cache
		log.Warn("redis unavailable, catalog cache disabled", "error", err)
	} else {
		foodCache = cache.NewRedisFoodCache(rdb)
	}

	foodRepo := repo.NewMySQLFoodRepo(db)
	orderRepo := repo.NewMySQLOrderRepo(db)
	userRepo := repo.NewMySQLUserRepo(db)
	tokens := security.NewTokenService(cfg)

	stopStatusConsumer := startStatusConsumer(cfg, orderRepo)

	router := httpapi.NewRouter(
		httpapi.NewFoodHandler(usecase.NewCatalog(foodRepo, foodCache, cfg.Redis.FoodTTL)),
		httpapi.NewOrderHandler(usecase.NewPlaceOrder(orderRepo), usecase.NewListMyOrders(orderRepo)),
		httpapi.NewAuthHandler(usecase.NewAuth(userRepo, tokens)),
		httpapi.NewUserHandler(usecase.NewProfile(userRepo)),
		middleware.NewAuthz(tokens),
		logging.New("http"),
	)

	cleanup := func() {
		stopStatusConsumer()
		_ = db.Close()
		_ = rdb.Close()
	}

	return &App{handler: cors.Default().Handler(router)}, cleanup, nil
}

// startStatusConsumer subscribes to fulfilment status events when brokers
// are configured; without brokers orders simply stay Pending.
func startStatusConsumer(cfg configs.Config, orderRepo *repo.MySQLOrderRepo) func() {
	if len(cfg.Kafka.Brokers) == 0 {
		return func() {}
	}

	log := logging.New("kafka")
	group, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		log.Error("kafka group init failed, status updates disabled", "error", err)
		return func() {}
	}

	h := kafka.NewOrderStatusChangedHandler(orderRepo)
	consumer := kafka.NewConsumer(group, []string{cfg.Kafka.StatusTopic}, h.Handle, log)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			log.Error("status consumer stopped", "error", err)
		}
	}()

	return func() {
		cancel()
		_ = group.Close()
	}
}
