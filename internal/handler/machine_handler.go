package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
	"github.com/ridwanfathin/claw-dashboard-service/internal/monitor"
)

// HealthSource exposes the latest machine health snapshots
type HealthSource interface {
	Snapshot(storeID int) (domain.HealthSnapshot, error)
	StoreIDs() []int
}

// MachineHandler serves the machine monitor snapshots
type MachineHandler struct {
	health HealthSource
}

// NewMachineHandler creates a new machine handler. health may be nil when
// the monitor is disabled.
func NewMachineHandler(health HealthSource) *MachineHandler {
	return &MachineHandler{health: health}
}

// GetHealth returns the latest machine health of one or all monitored stores
// @Summary Machine health
// @Description Returns the last successful poll of a store: per machine ONLINE/OFFLINE status, play counts, and estimated revenue. Without storeId every monitored store is returned.
// @Tags machines
// @Produce json
// @Security BearerAuth
// @Param storeId query int false "Store ID"
// @Success 200 {object} model.MachineHealthResponse "Health snapshots"
// @Failure 400 {object} model.ErrorResponse "Invalid store ID"
// @Failure 404 {object} model.ErrorResponse "Store not polled yet"
// @Failure 503 {object} model.ErrorResponse "Monitor disabled"
// @Router /v1/machines/health [get]
func (h *MachineHandler) GetHealth(c *gin.Context) {
	if h.health == nil {
		respondServiceUnavailable(c, "Machine monitor is not running")
		return
	}

	storeID, err := getQueryInt(c, "storeId", 0)
	if err != nil || storeID < 0 {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("storeId", "storeId must be a positive integer"))
		return
	}

	if storeID > 0 {
		snapshot, err := h.health.Snapshot(storeID)
		if errors.Is(err, monitor.ErrNoSnapshot) {
			respondNotFound(c, ErrNoHealthSnapshot)
			return
		}
		respondOK(c, model.MachineHealthResponse{Stores: []domain.HealthSnapshot{snapshot}})
		return
	}

	stores := make([]domain.HealthSnapshot, 0)
	for _, id := range h.health.StoreIDs() {
		if snapshot, err := h.health.Snapshot(id); err == nil {
			stores = append(stores, snapshot)
		}
	}
	respondOK(c, model.MachineHealthResponse{Stores: stores})
}

// RegisterRoutes registers the machine routes
func (h *MachineHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	router.GET("/machines/health", auth, h.GetHealth)
}
