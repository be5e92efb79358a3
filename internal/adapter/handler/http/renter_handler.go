package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type RenterHandler struct {
	crud          crudHandler[domain.Renter, domain.RenterPayload]
	renterService ports.RenterService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type rentalCountResponse struct {
	RenterID    int `json:"renter_id"`
	RentalCount int `json:"rental_count"`
}

func NewRenterHandler(
	renterService ports.RenterService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RenterHandler {
	return &RenterHandler{
		crud: crudHandler[domain.Renter, domain.RenterPayload]{
			service:  renterService,
			logger:   logger,
			metrics:  metrics,
			entity:   "renter",
			basePath: "/api/Renters",
			idOf:     func(r *domain.Renter) int { return r.ID },
		},
		renterService: renterService,
		logger:        logger,
		metrics:       metrics,
	}
}

func (h *RenterHandler) Register(api *gin.RouterGroup) {
	renters := api.Group("/Renters")
	{
		renters.GET("", h.GetRenters)
		renters.POST("", h.CreateRenter)
		renters.GET("/:id", h.GetRenter)
		renters.PUT("/:id", h.UpdateRenter)
		renters.DELETE("/:id", h.DeleteRenter)
		renters.GET("/:id/rentals", h.GetRenterRentals)
		renters.GET("/:id/rental-count", h.GetRentalCount)
	}
}

// @Summary Получить всех арендаторов
// @Tags renters
// @Produce json
// @Success 200 {array} domain.Renter "Список арендаторов"
// @Router /api/Renters [get]
func (h *RenterHandler) GetRenters(c *gin.Context) { h.crud.getAll(c) }

// @Summary Получить арендатора
// @Tags renters
// @Produce json
// @Param id path int true "ID арендатора"
// @Success 200 {object} domain.Renter "Арендатор найден"
// @Failure 404 {object} errorResponse "Арендатор не найден"
// @Router /api/Renters/{id} [get]
func (h *RenterHandler) GetRenter(c *gin.Context) { h.crud.get(c) }

// @Summary Создать арендатора
// @Tags renters
// @Accept json
// @Produce json
// @Param request body domain.RenterPayload true "Данные арендатора"
// @Success 201 {object} domain.Renter "Арендатор создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/Renters [post]
func (h *RenterHandler) CreateRenter(c *gin.Context) { h.crud.create(c) }

// @Summary Обновить арендатора
// @Tags renters
// @Accept json
// @Produce json
// @Param id path int true "ID арендатора"
// @Param request body domain.RenterPayload true "Новые данные арендатора"
// @Success 200 {object} domain.Renter "Арендатор обновлен"
// @Failure 404 {object} errorResponse "Арендатор не найден"
// @Router /api/Renters/{id} [put]
func (h *RenterHandler) UpdateRenter(c *gin.Context) { h.crud.update(c) }

// @Summary Удалить арендатора
// @Tags renters
// @Produce json
// @Param id path int true "ID арендатора"
// @Success 200 {object} messageResponse "Арендатор удален"
// @Failure 404 {object} errorResponse "Арендатор не найден"
// @Router /api/Renters/{id} [delete]
func (h *RenterHandler) DeleteRenter(c *gin.Context) { h.crud.delete(c) }

// @Summary Аренды арендатора
// @Tags renters
// @Produce json
// @Param id path int true "ID арендатора"
// @Success 200 {array} domain.Rental "Аренды"
// @Success 204 "Аренд нет"
// @Router /api/Renters/{id}/rentals [get]
func (h *RenterHandler) GetRenterRentals(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	renterID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rentals, err := h.renterService.GetRentals(c.Request.Context(), renterID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get rentals")
		return
	}

	listOrNoContent(c, rentals)
}

// @Summary Количество аренд арендатора
// @Tags renters
// @Produce json
// @Param id path int true "ID арендатора"
// @Success 200 {object} rentalCountResponse "Количество аренд"
// @Router /api/Renters/{id}/rental-count [get]
func (h *RenterHandler) GetRentalCount(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	renterID, ok := parseID(c, "id")
	if !ok {
		return
	}

	count, err := h.renterService.CountRentals(c.Request.Context(), renterID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to count rentals")
		return
	}

	c.JSON(http.StatusOK, rentalCountResponse{RenterID: renterID, RentalCount: count})
}
