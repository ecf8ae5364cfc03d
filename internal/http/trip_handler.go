package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"trip-orchestrator/internal/domain"
	"trip-orchestrator/internal/repository"
	"trip-orchestrator/internal/service"
)

const requestDateLayout = "2006-01-02"

// TripHandler mantiene dependencias para los endpoints de recomendación.
type TripHandler struct {
	logger  *zap.Logger
	tripSvc *service.TripService
}

func NewTripHandler(logger *zap.Logger, tripSvc *service.TripService) *TripHandler {
	return &TripHandler{
		logger:  logger,
		tripSvc: tripSvc,
	}
}

// Recommend maneja POST /api/v1/trips/recommend.
// Valida el request antes de que corra el core: presupuesto no positivo o
// fechas no interpretables son falla dura del adaptador, nunca del engine.
func (h *TripHandler) Recommend(c *gin.Context) {
	var req struct {
		Origin        string  `json:"origin" binding:"required"`
		Destination   string  `json:"destination" binding:"required"`
		DepartureDate string  `json:"departure_date" binding:"required"`
		ReturnDate    string  `json:"return_date" binding:"required"`
		Budget        float64 `json:"budget"`
		Persona       string  `json:"persona"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Budget <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget must be positive"})
		return
	}
	departure, err := time.Parse(requestDateLayout, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_date"})
		return
	}
	returnDate, err := time.Parse(requestDateLayout, req.ReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid return_date"})
		return
	}
	if returnDate.Before(departure) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "return_date before departure_date"})
		return
	}

	query := domain.TripQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		TargetBudget:  req.Budget,
		Persona:       req.Persona,
	}

	trips, err := h.tripSvc.Recommend(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("trip recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to orchestrate trip"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trips":   trips,
	})
}

// History maneja GET /api/v1/trips/history.
func (h *TripHandler) History(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	records, err := h.tripSvc.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryDisabled) {
			c.JSON(http.StatusOK, gin.H{"history": []domain.SearchRecord{}, "disabled": true})
			return
		}
		h.logger.Error("history lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}
	if records == nil {
		records = []domain.SearchRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"history": records})
}
