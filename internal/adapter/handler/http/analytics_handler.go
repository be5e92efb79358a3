package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type AnalyticsHandler struct {
	analytics ports.AnalyticsService
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
}

func NewAnalyticsHandler(
	analytics ports.AnalyticsService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger,
		metrics:   metrics,
	}
}

func (h *AnalyticsHandler) Register(api *gin.RouterGroup) {
	analytics := api.Group("/Analytics")
	{
		analytics.GET("/sport-bikes", h.GetSportBikes)
		analytics.GET("/top-models-revenue", h.GetTopModelsByRevenue)
		analytics.GET("/top-models-duration", h.GetTopModelsByDuration)
		analytics.GET("/rental-stats", h.GetRentalStats)
		analytics.GET("/category-utilization/:type", h.GetCategoryUtilization)
		analytics.GET("/top-clients", h.GetTopClients)
	}
}

// @Summary Все спортивные байки
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.Bike "Спортивные байки"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Analytics/sport-bikes [get]
func (h *AnalyticsHandler) GetSportBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.analytics.AllSportBikes(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to get sport bikes")
		return
	}

	c.JSON(http.StatusOK, bikes)
}

// @Summary Топ-5 моделей по выручке
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.ModelRevenue "Модели по выручке"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Analytics/top-models-revenue [get]
func (h *AnalyticsHandler) GetTopModelsByRevenue(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rows, err := h.analytics.TopFiveModelsByRevenue(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to rank models by revenue")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// @Summary Топ-5 моделей по длительности аренды
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.ModelDuration "Модели по часам аренды"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Analytics/top-models-duration [get]
func (h *AnalyticsHandler) GetTopModelsByDuration(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rows, err := h.analytics.TopFiveModelsByDuration(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to rank models by duration")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// @Summary Минимальная, максимальная и средняя длительность аренды
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.DurationStats "Статистика"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Analytics/rental-stats [get]
func (h *AnalyticsHandler) GetRentalStats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	stats, err := h.analytics.MinMaxAvgDuration(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to compute rental stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Суммарное время аренды по типу байка
// @Description Тип передается числом: 0 Road, 1 Mountain, 2 Hybrid, 3 Sport
// @Tags analytics
// @Produce json
// @Param type path int true "Код типа"
// @Success 200 {object} domain.CategoryUtilization "Часы аренды"
// @Failure 400 {object} errorResponse "Неизвестный тип"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Analytics/category-utilization/{type} [get]
func (h *AnalyticsHandler) GetCategoryUtilization(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	code, ok := parseID(c, "type")
	if !ok {
		return
	}

	total, err := h.analytics.TotalRentalTimeByType(c.Request.Context(), code)
	if err != nil {
		respondError(c, h.logger, err, "Failed to compute category utilization")
		return
	}

	c.JSON(http.StatusOK, domain.CategoryUtilization{
		BikeType:   domain.BikeType(code),
		TotalHours: total,
	})
}

// @Summary Арендаторы с максимальным числом аренд
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.ClientRentalCount "Лидеры"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Analytics/top-clients [get]
func (h *AnalyticsHandler) GetTopClients(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rows, err := h.analytics.TopClientsByRentalCount(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Failed to rank clients")
		return
	}

	c.JSON(http.StatusOK, rows)
}
