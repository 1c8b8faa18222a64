package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
	"github.com/ridwanfathin/claw-dashboard-service/internal/storecache"
	"github.com/ridwanfathin/claw-dashboard-service/internal/upstream"
)

// StoreOptionsSource loads the store selector list of a session
type StoreOptionsSource interface {
	GetStoreOptions(ctx context.Context, token string) (json.RawMessage, error)
}

// StoreHandler serves the cached store selector list
type StoreHandler struct {
	source StoreOptionsSource
	cache  *storecache.Cache[json.RawMessage]
	log    *logrus.Logger
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(source StoreOptionsSource, cache *storecache.Cache[json.RawMessage], log *logrus.Logger) *StoreHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StoreHandler{
		source: source,
		cache:  cache,
		log:    log,
	}
}

// GetStoreOptions returns the store list of the caller
// @Summary Store options
// @Description Returns the store selector list. The list is cached per account and refreshed in the background once a day; refresh=true reloads it immediately.
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param refresh query bool false "Reload from upstream"
// @Success 200 {object} model.StoreOptionsResponse "Store list"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/stores/options [get]
func (h *StoreHandler) GetStoreOptions(c *gin.Context) {
	token := sessionToken(c)
	owner := sessionOwner(c)

	fetch := func(ctx context.Context) (json.RawMessage, error) {
		return h.source.GetStoreOptions(ctx, token)
	}

	var (
		stores json.RawMessage
		err    error
	)
	if getQueryBool(c, "refresh") {
		stores, err = h.cache.ForceRefresh(c.Request.Context(), owner, fetch)
	} else {
		stores, err = h.cache.GetOrRefresh(c.Request.Context(), owner, fetch)
	}

	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && json.Valid([]byte(apiErr.Body)) {
			c.Data(apiErr.Status, "application/json; charset=utf-8", []byte(apiErr.Body))
			return
		}
		logError(h.log, c, err, "failed to fetch store options")
		c.JSON(http.StatusInternalServerError, model.ProxyErrorResponse{Error: "Failed to fetch store options"})
		return
	}

	resp := model.StoreOptionsResponse{Stores: stores}
	if updated, ok := h.cache.LastUpdated(owner); ok {
		resp.LastUpdated = &updated
	}
	respondOK(c, resp)
}

// ClearStoreOptions drops the caller's cached store list
// @Summary Clear cached store options
// @Tags stores
// @Security BearerAuth
// @Success 204 "Cleared"
// @Router /v1/stores/options [delete]
func (h *StoreHandler) ClearStoreOptions(c *gin.Context) {
	h.cache.Clear(sessionOwner(c))
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers the store cache routes
func (h *StoreHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	router.GET("/stores/options", auth, h.GetStoreOptions)
	router.DELETE("/stores/options", auth, h.ClearStoreOptions)
}
