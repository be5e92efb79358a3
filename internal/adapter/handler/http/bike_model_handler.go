package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type BikeModelHandler struct {
	crud         crudHandler[domain.BikeModel, domain.BikeModelPayload]
	modelService ports.BikeModelService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewBikeModelHandler(
	modelService ports.BikeModelService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeModelHandler {
	return &BikeModelHandler{
		crud: crudHandler[domain.BikeModel, domain.BikeModelPayload]{
			service:  modelService,
			logger:   logger,
			metrics:  metrics,
			entity:   "bike model",
			basePath: "/api/BikeModels",
			idOf:     func(m *domain.BikeModel) int { return m.ID },
		},
		modelService: modelService,
		logger:       logger,
		metrics:      metrics,
	}
}

func (h *BikeModelHandler) Register(api *gin.RouterGroup) {
	models := api.Group("/BikeModels")
	{
		models.GET("", h.GetBikeModels)
		models.POST("", h.CreateBikeModel)
		models.GET("/:id", h.GetBikeModel)
		models.PUT("/:id", h.UpdateBikeModel)
		models.DELETE("/:id", h.DeleteBikeModel)
		models.GET("/:id/bikes", h.GetModelBikes)
		models.GET("/type/:type", h.GetModelsByType)
		models.GET("/year/:year", h.GetModelsByYear)
	}
}

// @Summary Получить все модели
// @Tags bike-models
// @Produce json
// @Success 200 {array} domain.BikeModel "Список моделей"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/BikeModels [get]
func (h *BikeModelHandler) GetBikeModels(c *gin.Context) { h.crud.getAll(c) }

// @Summary Получить модель
// @Tags bike-models
// @Produce json
// @Param id path int true "ID модели"
// @Success 200 {object} domain.BikeModel "Модель найдена"
// @Failure 404 {object} errorResponse "Модель не найдена"
// @Router /api/BikeModels/{id} [get]
func (h *BikeModelHandler) GetBikeModel(c *gin.Context) { h.crud.get(c) }

// @Summary Создать модель
// @Tags bike-models
// @Accept json
// @Produce json
// @Param request body domain.BikeModelPayload true "Данные модели"
// @Success 201 {object} domain.BikeModel "Модель создана"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/BikeModels [post]
func (h *BikeModelHandler) CreateBikeModel(c *gin.Context) { h.crud.create(c) }

// @Summary Обновить модель
// @Tags bike-models
// @Accept json
// @Produce json
// @Param id path int true "ID модели"
// @Param request body domain.BikeModelPayload true "Новые данные модели"
// @Success 200 {object} domain.BikeModel "Модель обновлена"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Модель не найдена"
// @Router /api/BikeModels/{id} [put]
func (h *BikeModelHandler) UpdateBikeModel(c *gin.Context) { h.crud.update(c) }

// @Summary Удалить модель
// @Tags bike-models
// @Produce json
// @Param id path int true "ID модели"
// @Success 200 {object} messageResponse "Модель удалена"
// @Failure 404 {object} errorResponse "Модель не найдена"
// @Router /api/BikeModels/{id} [delete]
func (h *BikeModelHandler) DeleteBikeModel(c *gin.Context) { h.crud.delete(c) }

// @Summary Байки модели
// @Tags bike-models
// @Produce json
// @Param id path int true "ID модели"
// @Success 200 {array} domain.Bike "Байки модели"
// @Success 204 "Байков нет"
// @Router /api/BikeModels/{id}/bikes [get]
func (h *BikeModelHandler) GetModelBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	modelID, ok := parseID(c, "id")
	if !ok {
		return
	}

	bikes, err := h.modelService.GetBikes(c.Request.Context(), modelID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get bikes")
		return
	}

	listOrNoContent(c, bikes)
}

// @Summary Модели по типу
// @Description Тип передается числом: 0 Road, 1 Mountain, 2 Hybrid, 3 Sport
// @Tags bike-models
// @Produce json
// @Param type path int true "Код типа"
// @Success 200 {array} domain.BikeModel "Модели типа"
// @Failure 400 {object} errorResponse "Неизвестный тип"
// @Router /api/BikeModels/type/{type} [get]
func (h *BikeModelHandler) GetModelsByType(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	code, ok := parseID(c, "type")
	if !ok {
		return
	}

	models, err := h.modelService.GetModelsByType(c.Request.Context(), code)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get bike models")
		return
	}

	c.JSON(http.StatusOK, models)
}

// @Summary Модели по году
// @Description Значение "none" выбирает модели без года выпуска
// @Tags bike-models
// @Produce json
// @Param year path string true "Год выпуска"
// @Success 200 {array} domain.BikeModel "Модели года"
// @Failure 400 {object} errorResponse "Неверный год"
// @Router /api/BikeModels/year/{year} [get]
func (h *BikeModelHandler) GetModelsByYear(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var year *int
	if raw := c.Param("year"); raw != "none" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = &parsed
	}

	models, err := h.modelService.GetModelsByYear(c.Request.Context(), year)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get bike models")
		return
	}

	c.JSON(http.StatusOK, models)
}
