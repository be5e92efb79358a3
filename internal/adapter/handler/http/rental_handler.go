package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type RentalHandler struct {
	crud          crudHandler[domain.Rental, domain.RentalPayload]
	rentalService ports.RentalService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
	now           func() time.Time
}

func NewRentalHandler(
	rentalService ports.RentalService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RentalHandler {
	return &RentalHandler{
		crud: crudHandler[domain.Rental, domain.RentalPayload]{
			service:  rentalService,
			logger:   logger,
			metrics:  metrics,
			entity:   "rental",
			basePath: "/api/Rentals",
			idOf:     func(r *domain.Rental) int { return r.ID },
		},
		rentalService: rentalService,
		logger:        logger,
		metrics:       metrics,
		now:           time.Now,
	}
}

func (h *RentalHandler) Register(api *gin.RouterGroup) {
	rentals := api.Group("/Rentals")
	{
		rentals.GET("", h.GetRentals)
		rentals.POST("", h.CreateRental)
		rentals.GET("/active", h.GetActiveRentals)
		rentals.GET("/period", h.GetRentalsByPeriod)
		rentals.GET("/:id", h.GetRental)
		rentals.PUT("/:id", h.UpdateRental)
		rentals.DELETE("/:id", h.DeleteRental)
	}
}

// @Summary Получить все аренды
// @Tags rentals
// @Produce json
// @Success 200 {array} domain.Rental "Список аренд"
// @Router /api/Rentals [get]
func (h *RentalHandler) GetRentals(c *gin.Context) { h.crud.getAll(c) }

// @Summary Получить аренду
// @Tags rentals
// @Produce json
// @Param id path int true "ID аренды"
// @Success 200 {object} domain.Rental "Аренда найдена"
// @Failure 404 {object} errorResponse "Аренда не найдена"
// @Router /api/Rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) { h.crud.get(c) }

// @Summary Создать аренду
// @Description Байк и арендатор должны существовать
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body domain.RentalPayload true "Данные аренды"
// @Success 201 {object} domain.Rental "Аренда создана"
// @Failure 400 {object} errorResponse "Байк или арендатор не найден"
// @Router /api/Rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) { h.crud.create(c) }

// @Summary Обновить аренду
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path int true "ID аренды"
// @Param request body domain.RentalPayload true "Новые данные аренды"
// @Success 200 {object} domain.Rental "Аренда обновлена"
// @Failure 400 {object} errorResponse "Байк или арендатор не найден"
// @Failure 404 {object} errorResponse "Аренда не найдена"
// @Router /api/Rentals/{id} [put]
func (h *RentalHandler) UpdateRental(c *gin.Context) { h.crud.update(c) }

// @Summary Удалить аренду
// @Tags rentals
// @Produce json
// @Param id path int true "ID аренды"
// @Success 200 {object} messageResponse "Аренда удалена"
// @Failure 404 {object} errorResponse "Аренда не найдена"
// @Router /api/Rentals/{id} [delete]
func (h *RentalHandler) DeleteRental(c *gin.Context) { h.crud.delete(c) }

// @Summary Активные аренды
// @Description Аренды, период которых покрывает момент at (по умолчанию текущее время)
// @Tags rentals
// @Produce json
// @Param at query string false "Момент времени RFC3339"
// @Success 200 {array} domain.Rental "Активные аренды"
// @Failure 400 {object} errorResponse "Неверный формат времени"
// @Router /api/Rentals/active [get]
func (h *RentalHandler) GetActiveRentals(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	at := h.now().UTC()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid at, expected RFC3339")
			return
		}
		at = parsed
	}

	rentals, err := h.rentalService.GetActiveRentals(c.Request.Context(), at)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get active rentals")
		return
	}

	c.JSON(http.StatusOK, rentals)
}

// @Summary Аренды за период
// @Tags rentals
// @Produce json
// @Param from query string true "Начало периода RFC3339"
// @Param to query string true "Конец периода RFC3339"
// @Success 200 {array} domain.Rental "Аренды за период"
// @Failure 400 {object} errorResponse "Неверный период"
// @Router /api/Rentals/period [get]
func (h *RentalHandler) GetRentalsByPeriod(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
	to, errTo := time.Parse(time.RFC3339, c.Query("to"))
	if errFrom != nil || errTo != nil {
		newErrorResponse(c, http.StatusBadRequest, "from and to must be RFC3339 timestamps")
		return
	}

	rentals, err := h.rentalService.GetRentalsByPeriod(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get rentals")
		return
	}

	c.JSON(http.StatusOK, rentals)
}
