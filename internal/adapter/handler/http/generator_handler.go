package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type GeneratorHandler struct {
	generator ports.GeneratorService
	logger    ports.LoggerPort
	metrics   ports.MetricsPort
}

func NewGeneratorHandler(
	generator ports.GeneratorService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *GeneratorHandler {
	return &GeneratorHandler{
		generator: generator,
		logger:    logger,
		metrics:   metrics,
	}
}

func (h *GeneratorHandler) Register(api *gin.RouterGroup) {
	api.GET("/Generator", h.Generate)
}

func positiveQuery(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value <= 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return value, nil
}

func nonNegativeQuery(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil || value < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return value, nil
}

// @Summary Сгенерировать аренды
// @Description Отправляет в брокер пачки случайных аренд, пока не будет отправлено payloadLimit штук
// @Tags generator
// @Produce json
// @Param batchSize query int true "Размер пачки"
// @Param payloadLimit query int true "Общее количество аренд"
// @Param waitTime query int true "Пауза между пачками, секунды (0 без паузы)"
// @Success 200 {array} domain.RentalPayload "Отправленные аренды"
// @Failure 400 {object} errorResponse "Неверные параметры"
// @Failure 500 {object} errorResponse "Ошибка отправки"
// @Router /api/Generator [get]
func (h *GeneratorHandler) Generate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	batchSize, err := positiveQuery(c, "batchSize")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	payloadLimit, err := positiveQuery(c, "payloadLimit")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	waitTime, err := nonNegativeQuery(c, "waitTime")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("Generating contracts", map[string]interface{}{
		"payload_limit": payloadLimit,
		"batch_size":    batchSize,
		"wait_seconds":  waitTime,
	})

	generated, err := h.generator.Generate(c.Request.Context(), batchSize, payloadLimit, time.Duration(waitTime)*time.Second)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to generate rentals", map[string]interface{}{
			"error":      err.Error(),
			"sent_count": len(generated),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to publish rentals")
		return
	}

	c.JSON(http.StatusOK, generated)
}
