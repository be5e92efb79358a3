package generatorapp

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/handler/http"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/kafka"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/services"
	"golang.org/x/sync/errgroup"
)

// App hosts the synthetic rental generator: the REST trigger and an
// optional cron schedule, both publishing through the same producer.
type App struct {
	cfg       *config.Container
	log       *logger.LoggerAdapter
	producer  *kafka.RentalProducer
	generator *services.GeneratorService
	server    *nethttp.Server
	scheduler *cron.Cron
}

func New(cfg *config.Container) (*App, error) {
	log := logger.NewLoggerAdapter(cfg.App.Env)
	metrics := prometheus.NewPrometheusAdapter()

	producer := kafka.NewRentalProducer(
		kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic),
		cfg.Kafka.Topic,
		log,
	)

	generator := services.NewGeneratorService(producer, log, metrics, services.GeneratorOptions{
		MaxBikeID:   cfg.Generator.MaxBikeID,
		MaxRenterID: cfg.Generator.MaxRenterID,
	})

	router, err := http.NewRouter(cfg.HTTP, http.NewGeneratorHandler(generator, log, metrics))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	a := &App{
		cfg:       cfg,
		log:       log,
		producer:  producer,
		generator: generator,
		server: &nethttp.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.HTTP.URL, cfg.Generator.Port),
			Handler:           router.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if cfg.Generator.Schedule != "" {
		if err := a.schedule(cfg.Generator.Schedule); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (a *App) schedule(expr string) error {
	a.scheduler = cron.New(cron.WithLocation(time.UTC))
	_, err := a.scheduler.AddFunc(expr, func() {
		g := a.cfg.Generator
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		sent, err := a.generator.Generate(ctx, g.BatchSize, g.PayloadLimit, g.Wait())
		if err != nil {
			a.log.Error("Scheduled generation failed", map[string]interface{}{
				"error":      err.Error(),
				"sent_count": len(sent),
			})
			return
		}
		a.log.Info("Scheduled generation finished", map[string]interface{}{
			"sent_count": len(sent),
		})
	})
	if err != nil {
		return fmt.Errorf("invalid generator schedule %q: %w", expr, err)
	}
	return nil
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	const op = "generatorapp.Run"

	if a.scheduler != nil {
		a.scheduler.Start()
		a.log.Info("Generator schedule started", map[string]interface{}{
			"schedule": a.cfg.Generator.Schedule,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("Generator HTTP server is running", map[string]interface{}{
			"addr": a.server.Addr,
		})
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Stop waits for a running scheduled job, then closes the producer.
func (a *App) Stop() {
	a.log.Info("Stopping generator", nil)

	if a.scheduler != nil {
		<-a.scheduler.Stop().Done()
	}
	if err := a.producer.Close(); err != nil {
		a.log.Error("Producer close error", map[string]interface{}{
			"error": err.Error(),
		})
	}
	_ = a.log.Sync()
}
