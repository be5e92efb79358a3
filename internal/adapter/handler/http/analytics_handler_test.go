package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics_Endpoints(t *testing.T) {
	srv := newTestServer(t, true)

	w := srv.do(t, http.MethodGet, "/api/Analytics/sport-bikes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Bike](t, w), 3)

	w = srv.do(t, http.MethodGet, "/api/Analytics/top-models-revenue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	revenue := decode[[]domain.ModelRevenue](t, w)
	require.Len(t, revenue, 5)
	assert.Equal(t, 9, revenue[0].ModelID)
	assert.Equal(t, "111", revenue[0].Revenue.String())
	assert.Contains(t, w.Body.String(), `{"model_id":9,"revenue":"111.00"}`)
	assert.Contains(t, w.Body.String(), `"revenue":"64.40"`)

	w = srv.do(t, http.MethodGet, "/api/Analytics/top-models-duration", nil)
	require.Equal(t, http.StatusOK, w.Code)
	duration := decode[[]domain.ModelDuration](t, w)
	require.Len(t, duration, 5)
	assert.Equal(t, domain.ModelDuration{ModelID: 3, TotalHours: 11}, duration[0])

	w = srv.do(t, http.MethodGet, "/api/Analytics/rental-stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min":1,"max":6,"avg":3}`, w.Body.String())

	w = srv.do(t, http.MethodGet, "/api/Analytics/category-utilization/0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bike_type":"Road","total_hours":23}`, w.Body.String())

	w = srv.do(t, http.MethodGet, "/api/Analytics/category-utilization/7", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodGet, "/api/Analytics/top-clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	clients := decode[[]domain.ClientRentalCount](t, w)
	require.Len(t, clients, 5)
	assert.Equal(t, 1, clients[0].Renter.ID)
	assert.Equal(t, 3, clients[0].RentalCount)
}

func TestAnalytics_EmptyStore(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodGet, "/api/Analytics/top-clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = srv.do(t, http.MethodGet, "/api/Analytics/rental-stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min":0,"max":0,"avg":0}`, w.Body.String())
}

func TestGenerator_Endpoint(t *testing.T) {
	srv := newTestServer(t, false)

	w := srv.do(t, http.MethodGet, "/api/Generator?batchSize=4&payloadLimit=4&waitTime=1", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[[]domain.RentalPayload](t, w), 4)
	assert.Equal(t, 4, srv.producer.sent)

	for _, query := range []string{
		"batchSize=0&payloadLimit=4&waitTime=1",
		"batchSize=4&payloadLimit=-1&waitTime=1",
		"batchSize=4&payloadLimit=4&waitTime=-1",
		"batchSize=4&payloadLimit=4",
		"batchSize=four&payloadLimit=4&waitTime=1",
		"payloadLimit=4&waitTime=1",
	} {
		w = srv.do(t, http.MethodGet, "/api/Generator?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	assert.Equal(t, 1, srv.producer.calls)

	w = srv.do(t, http.MethodGet, "/api/Generator?batchSize=2&payloadLimit=4&waitTime=0", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[[]domain.RentalPayload](t, w), 4)
	assert.Equal(t, 3, srv.producer.calls)
	assert.Equal(t, 8, srv.producer.sent)

	srv.producer.err = errors.New("broker down")
	w = srv.do(t, http.MethodGet, "/api/Generator?batchSize=2&payloadLimit=2&waitTime=1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to publish rentals", decode[errorResponse](t, w).Message)
}
