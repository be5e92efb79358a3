package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/handler/http"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/kafka"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/memory"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/postgres"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/redis"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/seed"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/services"

	_ "github.com/lib/pq"
	redisClient "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Config      *config.Container
	Logger      *logger.LoggerAdapter
	DB          *sql.DB
	RedisClient *redisClient.Client
	Server      *nethttp.Server
	Consumer    *kafka.RentalConsumer
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":     cfg.App.Name,
		"env":     cfg.App.Env,
		"storage": cfg.Storage.Driver,
	})

	a := &App{Config: cfg, Logger: loggerAdapter}

	// Set redis
	var cacheAdapter ports.CachePort = redis.NoopCache{}
	if cfg.Redis.Address != "" {
		redisConn := redisClient.NewClient(&redisClient.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisConn.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		a.RedisClient = redisConn
		cacheAdapter = redis.NewRedisAdapter(redisConn, cfg.Redis.TTL)
	}

	// Repositories
	repos, err := a.openStorage(ctx)
	if err != nil {
		a.closeResources()
		return nil, err
	}

	if cfg.Storage.Seed {
		loaded, err := seed.Load(ctx, repos)
		if err != nil {
			a.closeResources()
			return nil, fmt.Errorf("failed to seed storage: %w", err)
		}
		loggerAdapter.Info("Seed checked", map[string]interface{}{
			"loaded": loaded,
		})
	}

	// Validate
	validate := services.NewValidator()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Services
	modelService := services.NewBikeModelService(repos.Models, repos.Bikes, loggerAdapter, validate, cacheAdapter)
	bikeService := services.NewBikeService(repos.Bikes, repos.Models, loggerAdapter, validate, cacheAdapter)
	renterService := services.NewRenterService(repos.Renters, repos.Rentals, loggerAdapter, validate, cacheAdapter)
	rentalService := services.NewRentalService(repos.Rentals, repos.Bikes, repos.Renters, loggerAdapter, validate)
	analyticsService := services.NewAnalyticsService(repos.Models, repos.Bikes, repos.Renters, repos.Rentals, loggerAdapter)

	// HTTP Handlers
	router, err := http.NewRouter(
		cfg.HTTP,
		http.NewBikeModelHandler(modelService, loggerAdapter, metrics),
		http.NewBikeHandler(bikeService, rentalService, loggerAdapter, metrics),
		http.NewRenterHandler(renterService, loggerAdapter, metrics),
		http.NewRentalHandler(rentalService, loggerAdapter, metrics),
		http.NewAnalyticsHandler(analyticsService, loggerAdapter, metrics),
	)
	if err != nil {
		a.closeResources()
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	a.Server = &nethttp.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.HTTP.Port),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Broker consumer
	if cfg.Kafka.Enabled {
		a.Consumer = kafka.NewRentalConsumer(
			kafka.NewReaderFactory(kafka.ReaderConfig{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.Topic,
				GroupID: cfg.Kafka.GroupID,
			}),
			rentalService,
			loggerAdapter,
			metrics,
			kafka.ConsumerConfig{
				MaxDeliveries: cfg.Kafka.MaxDeliveries,
				RetryBackoff:  time.Second,
			},
		)
	}

	return a, nil
}

func (a *App) openStorage(ctx context.Context) (seed.Repositories, error) {
	cfg := a.Config
	if cfg.Storage.Driver == config.DriverMemory {
		return seed.Repositories{
			Models:  memory.NewBikeModelRepository(),
			Bikes:   memory.NewBikeRepository(),
			Renters: memory.NewRenterRepository(),
			Rentals: memory.NewRentalRepository(),
		}, nil
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		return seed.Repositories{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	// Connect DB
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return seed.Repositories{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.DB = db

	if err := db.PingContext(ctx); err != nil {
		return seed.Repositories{}, fmt.Errorf("failed to ping database: %w", err)
	}

	// Migrate DB
	if err := postgres.Migrate(db, cfg.Storage.MigrationsDir); err != nil {
		return seed.Repositories{}, err
	}

	return seed.Repositories{
		Models:  postgres.NewBikeModelRepository(db),
		Bikes:   postgres.NewBikeRepository(db),
		Renters: postgres.NewRenterRepository(db),
		Rentals: postgres.NewRentalRepository(db),
	}, nil
}

// Run serves HTTP and consumes the broker until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("Starting HTTP server", map[string]interface{}{
			"addr": a.Server.Addr,
		})
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			a.Logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	if a.Consumer != nil {
		g.Go(func() error {
			return a.Consumer.Run(gctx)
		})
	}

	return g.Wait()
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	a.closeResources()

	a.Logger.Info("Application stopped successfully", nil)
	_ = a.Logger.Sync()
	return nil
}

func (a *App) closeResources() {
	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
