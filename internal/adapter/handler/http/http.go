package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type BikeHandler struct {
	crud          crudHandler[domain.Bike, domain.BikePayload]
	bikeService   ports.BikeService
	rentalService ports.RentalService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewBikeHandler(
	bikeService ports.BikeService,
	rentalService ports.RentalService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		crud: crudHandler[domain.Bike, domain.BikePayload]{
			service:  bikeService,
			logger:   logger,
			metrics:  metrics,
			entity:   "bike",
			basePath: "/api/Bikes",
			idOf:     func(b *domain.Bike) int { return b.ID },
		},
		bikeService:   bikeService,
		rentalService: rentalService,
		logger:        logger,
		metrics:       metrics,
	}
}

func (h *BikeHandler) Register(api *gin.RouterGroup) {
	bikes := api.Group("/Bikes")
	{
		bikes.GET("", h.GetBikes)
		bikes.POST("", h.CreateBike)
		bikes.GET("/:id", h.GetBike)
		bikes.PUT("/:id", h.UpdateBike)
		bikes.DELETE("/:id", h.DeleteBike)
		bikes.GET("/:id/rentals", h.GetBikeRentals)
	}
}

// @Summary Получить все байки
// @Tags bikes
// @Produce json
// @Success 200 {array} domain.Bike "Список байков"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Bikes [get]
func (h *BikeHandler) GetBikes(c *gin.Context) { h.crud.getAll(c) }

// @Summary Получить байк
// @Description Получение информации о байке по ID
// @Tags bikes
// @Produce json
// @Param id path int true "ID байка" example(1)
// @Success 200 {object} domain.Bike "Байк найден"
// @Failure 400 {object} errorResponse "Неверный ID"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /api/Bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) { h.crud.get(c) }

// @Summary Создать байк
// @Description Создание нового байка. Модель должна существовать
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body domain.BikePayload true "Данные байка"
// @Success 201 {object} domain.Bike "Байк создан"
// @Failure 400 {object} errorResponse "Неверный запрос или модель не найдена"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) { h.crud.create(c) }

// @Summary Обновить байк
// @Tags bikes
// @Accept json
// @Produce json
// @Param id path int true "ID байка"
// @Param request body domain.BikePayload true "Новые данные байка"
// @Success 200 {object} domain.Bike "Байк обновлен"
// @Failure 400 {object} errorResponse "Неверный запрос или модель не найдена"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /api/Bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) { h.crud.update(c) }

// @Summary Удалить байк
// @Tags bikes
// @Produce json
// @Param id path int true "ID байка"
// @Success 200 {object} messageResponse "Байк удален"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /api/Bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) { h.crud.delete(c) }

// @Summary Аренды байка
// @Tags bikes
// @Produce json
// @Param id path int true "ID байка"
// @Success 200 {array} domain.Rental "Аренды байка"
// @Success 204 "Аренд нет"
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/Bikes/{id}/rentals [get]
func (h *BikeHandler) GetBikeRentals(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rentals, err := h.rentalService.GetRentalsByBike(c.Request.Context(), bikeID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get rentals")
		return
	}

	h.logger.Info("Retrieved bike rentals", map[string]interface{}{
		"bike_id":       bikeID,
		"rentals_count": len(rentals),
	})

	listOrNoContent(c, rentals)
}
