package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

// crudHandler serves the five CRUD endpoints for one entity. Entity handlers
// wrap its methods so every route keeps its own swagger annotations.
type crudHandler[T, P any] struct {
	service  ports.CrudService[T, P]
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
	entity   string
	basePath string
	idOf     func(*T) int
}

func (h *crudHandler[T, P]) getAll(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, fmt.Sprintf("Failed to get %ss", h.entity))
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *crudHandler[T, P]) get(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, fmt.Sprintf("Failed to get %s", h.entity))
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *crudHandler[T, P]) create(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req P
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse", map[string]interface{}{
			"error":  err.Error(),
			"entity": h.entity,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, fmt.Sprintf("Failed to create %s", h.entity))
		return
	}

	c.Header("Location", fmt.Sprintf("%s/%d", h.basePath, h.idOf(created)))
	c.JSON(http.StatusCreated, created)
}

func (h *crudHandler[T, P]) update(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req P
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Failed JSON parse", map[string]interface{}{
			"error":  err.Error(),
			"entity": h.entity,
			"id":     id,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, fmt.Sprintf("Failed to update %s", h.entity))
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *crudHandler[T, P]) delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, fmt.Sprintf("Failed to delete %s", h.entity))
		return
	}
	if !deleted {
		newErrorResponse(c, http.StatusNotFound, fmt.Sprintf("%s with id %d not found", h.entity, id))
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s deleted", h.entity)})
}
