package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/memory"
	promadapter "github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/prometheus"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/seed"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/config"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/services"
	"github.com/stretchr/testify/require"
)

type stubProducer struct {
	mu    sync.Mutex
	sent  int
	err   error
	calls int
}

func (p *stubProducer) Publish(_ context.Context, batch []domain.RentalPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return p.err
	}
	p.sent += len(batch)
	return nil
}

func (p *stubProducer) Close() error { return nil }

type testServer struct {
	engine   *gin.Engine
	producer *stubProducer
}

func newTestServer(t *testing.T, seeded bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	models := memory.NewBikeModelRepository()
	bikes := memory.NewBikeRepository()
	renters := memory.NewRenterRepository()
	rentals := memory.NewRentalRepository()
	if seeded {
		_, err := seed.Load(context.Background(), seed.Repositories{Models: models, Bikes: bikes, Renters: renters, Rentals: rentals})
		require.NoError(t, err)
	}

	log := logger.NewNopLogger()
	metrics := promadapter.NewPrometheusAdapterWithRegistry(prometheus.NewRegistry())
	validate := services.NewValidator()

	bikeService := services.NewBikeService(bikes, models, log, validate, nil)
	modelService := services.NewBikeModelService(models, bikes, log, validate, nil)
	renterService := services.NewRenterService(renters, rentals, log, validate, nil)
	rentalService := services.NewRentalService(rentals, bikes, renters, log, validate)
	analytics := services.NewAnalyticsService(models, bikes, renters, rentals, log)
	producer := &stubProducer{}
	generator := services.NewGeneratorService(producer, log, metrics, services.GeneratorOptions{Seed: 1})

	router, err := NewRouter(
		&config.HTTP{AllowedOrigins: []string{"http://localhost:3000"}},
		NewBikeHandler(bikeService, rentalService, log, metrics),
		NewBikeModelHandler(modelService, log, metrics),
		NewRenterHandler(renterService, log, metrics),
		NewRentalHandler(rentalService, log, metrics),
		NewAnalyticsHandler(analytics, log, metrics),
		NewGeneratorHandler(generator, log, metrics),
	)
	require.NoError(t, err)

	return &testServer{engine: router.Engine(), producer: producer}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = data
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
