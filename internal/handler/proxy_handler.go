package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
	"github.com/ridwanfathin/claw-dashboard-service/internal/upstream"
)

// Forwarder sends a pass-through request to the upstream service
type Forwarder interface {
	Forward(ctx context.Context, req upstream.ProxyRequest) (*upstream.ProxyResponse, error)
}

// ProxyHandler exposes the upstream store-app, user, bank account, and
// withdrawal endpoints. Upstream status codes and bodies are returned as is.
type ProxyHandler struct {
	forwarder Forwarder
	log       *logrus.Logger
}

// NewProxyHandler creates a new proxy handler
func NewProxyHandler(forwarder Forwarder, log *logrus.Logger) *ProxyHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProxyHandler{
		forwarder: forwarder,
		log:       log,
	}
}

// forward relays req and writes the upstream answer. failure names the
// error body sent when the upstream cannot be reached.
func (h *ProxyHandler) forward(c *gin.Context, req upstream.ProxyRequest, failure string) {
	if req.Method == "" {
		req.Method = c.Request.Method
	}
	if req.Authorization == "" && !req.UseAPIKey {
		req.Authorization = c.GetHeader("Authorization")
	}

	resp, err := h.forwarder.Forward(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, upstream.ErrAPIKeyMissing) {
			c.JSON(http.StatusInternalServerError, model.ProxyErrorResponse{Error: upstream.ErrAPIKeyMissing.Error()})
			return
		}
		logError(h.log, c, err, failure)
		c.JSON(http.StatusInternalServerError, model.ProxyErrorResponse{Error: failure})
		return
	}

	c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
}

// requestBody reads the request body for methods that carry one
func requestBody(c *gin.Context) []byte {
	switch c.Request.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		body, err := c.GetRawData()
		if err != nil {
			return nil
		}
		return body
	}
	return nil
}

// Login forwards credentials to the upstream login endpoint
// @Summary Log in
// @Description Exchanges a username and password for an upstream access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "username and password"
// @Success 200 {object} map[string]interface{} "Upstream login response with access_token"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/auth/login [post]
func (h *ProxyHandler) Login(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Method: http.MethodPost,
		Path:   upstream.PathLogin,
		Body:   requestBody(c),
	}, "Failed to log in")
}

// GetPayments forwards a payments page query
// @Summary List payments
// @Description Returns one page of the upstream payments collection
// @Tags store-app
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param store_id query string false "Store ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} domain.PaymentsPage "Payments page"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/store-app/payments [get]
func (h *ProxyHandler) GetPayments(c *gin.Context) {
	params := url.Values{}
	params.Set("start_date", c.Query("start_date"))
	params.Set("end_date", c.Query("end_date"))
	for _, key := range []string{"store_id", "page", "page_size"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}

	h.forward(c, upstream.ProxyRequest{
		Path:  upstream.PathPayments,
		Query: params,
	}, "Failed to fetch payments")
}

// GetReadings forwards a store-app readings query
// @Summary Store readings by date
// @Tags store-app
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Upstream readings"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/store-app/readings [get]
func (h *ProxyHandler) GetReadings(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path:  upstream.PathReadings,
		Query: c.Request.URL.Query(),
	}, "Failed to fetch readings")
}

// GetActivity forwards the store activity feed
// @Summary Store activity
// @Tags store-app
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Upstream activity"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/store-app/activity [get]
func (h *ProxyHandler) GetActivity(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path:  upstream.PathActivity,
		Query: c.Request.URL.Query(),
	}, "Failed to fetch activity")
}

// GetMachinesStatus forwards the machine status list
// @Summary Machines status
// @Tags store-app
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Upstream machine status"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/store-app/machines-status [get]
func (h *ProxyHandler) GetMachinesStatus(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path:  upstream.PathMachinesStatus,
		Query: c.Request.URL.Query(),
	}, "Failed to fetch machines status")
}

// GetStores forwards the store list
// @Summary List stores
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Upstream stores"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/stores [get]
func (h *ProxyHandler) GetStores(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path:  upstream.PathStores,
		Query: c.Request.URL.Query(),
	}, "Failed to fetch stores")
}

// GetMe forwards the current user profile
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/users/me [get]
func (h *ProxyHandler) GetMe(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path: upstream.PathUsers + "/me",
	}, "Failed to fetch user profile")
}

// UpdateUser forwards a profile update
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body object true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated user"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/users/{id} [put]
// @Router /v1/users/{id} [patch]
func (h *ProxyHandler) UpdateUser(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path: upstream.PathUsers + "/" + url.PathEscape(c.Param("id")),
		Body: requestBody(c),
	}, "Failed to update user")
}

// BankAccounts lists or creates favorite bank accounts
// @Summary Favorite bank accounts
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param account body object false "Account to create"
// @Success 200 {object} map[string]interface{} "Bank accounts"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/favorite-bank-accounts [get]
// @Router /v1/favorite-bank-accounts [post]
func (h *ProxyHandler) BankAccounts(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path: upstream.PathBankAccounts,
		Body: requestBody(c),
	}, "Failed to manage bank accounts")
}

// BankAccount reads, updates, or deletes one favorite bank account
// @Summary Favorite bank account
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{} "Bank account"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/favorite-bank-accounts/{id} [get]
// @Router /v1/favorite-bank-accounts/{id} [put]
// @Router /v1/favorite-bank-accounts/{id} [patch]
// @Router /v1/favorite-bank-accounts/{id} [delete]
func (h *ProxyHandler) BankAccount(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path: upstream.PathBankAccounts + "/" + url.PathEscape(c.Param("id")),
		Body: requestBody(c),
	}, "Failed to manage bank account")
}

// SetDefaultBankAccount marks a favorite bank account as default
// @Summary Set default bank account
// @Tags bank-accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{} "Bank account"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/favorite-bank-accounts/{id}/set-default [patch]
func (h *ProxyHandler) SetDefaultBankAccount(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path: upstream.PathBankAccounts + "/" + url.PathEscape(c.Param("id")) + "/set-default",
		Body: requestBody(c),
	}, "Failed to set default bank account")
}

// ApplyWithdrawal submits a withdrawal request
// @Summary Apply for withdrawal
// @Tags withdrawal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "Withdrawal request"
// @Success 200 {object} map[string]interface{} "Withdrawal request"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/withdrawal/apply [post]
func (h *ProxyHandler) ApplyWithdrawal(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path: upstream.PathWithdrawalApply,
		Body: requestBody(c),
	}, "Failed to apply withdrawal")
}

// MyWithdrawals lists the caller's withdrawal requests
// @Summary My withdrawal requests
// @Tags withdrawal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Withdrawal requests"
// @Failure 500 {object} model.ProxyErrorResponse "Upstream unreachable"
// @Router /v1/withdrawal/my-requests [get]
func (h *ProxyHandler) MyWithdrawals(c *gin.Context) {
	h.forward(c, upstream.ProxyRequest{
		Path:  upstream.PathWithdrawalList,
		Query: c.Request.URL.Query(),
	}, "Failed to fetch withdrawal requests")
}

// StoreReadings returns live machine readings using the server API key
// @Summary Live machine readings
// @Tags readings
// @Produce json
// @Param storeId query int true "Store ID"
// @Success 200 {object} domain.StoreReadings "Store readings"
// @Failure 400 {object} model.ProxyErrorResponse "Invalid store ID"
// @Failure 500 {object} model.ProxyErrorResponse "API key not configured or upstream unreachable"
// @Router /v1/readings [get]
func (h *ProxyHandler) StoreReadings(c *gin.Context) {
	storeID, err := getQueryInt(c, "storeId", 0)
	if err != nil || storeID <= 0 {
		c.JSON(http.StatusBadRequest, model.ProxyErrorResponse{Error: "storeId must be a positive integer"})
		return
	}

	h.forward(c, upstream.ProxyRequest{
		Path:      upstream.ExternalReadingsPath(storeID),
		UseAPIKey: true,
	}, "Failed to fetch readings")
}

// RegisterRoutes registers the pass-through routes. Everything but login
// and the API-key readings endpoint goes through auth.
func (h *ProxyHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	router.POST("/auth/login", h.Login)
	router.GET("/readings", h.StoreReadings)

	storeApp := router.Group("/store-app", auth)
	{
		storeApp.GET("/payments", h.GetPayments)
		storeApp.GET("/readings", h.GetReadings)
		storeApp.GET("/activity", h.GetActivity)
		storeApp.GET("/machines-status", h.GetMachinesStatus)
	}

	router.GET("/stores", auth, h.GetStores)

	users := router.Group("/users", auth)
	{
		users.GET("/me", h.GetMe)
		users.PUT("/:id", h.UpdateUser)
		users.PATCH("/:id", h.UpdateUser)
	}

	accounts := router.Group("/favorite-bank-accounts", auth)
	{
		accounts.GET("", h.BankAccounts)
		accounts.POST("", h.BankAccounts)
		accounts.GET("/:id", h.BankAccount)
		accounts.PUT("/:id", h.BankAccount)
		accounts.PATCH("/:id", h.BankAccount)
		accounts.DELETE("/:id", h.BankAccount)
		accounts.PATCH("/:id/set-default", h.SetDefaultBankAccount)
	}

	withdrawal := router.Group("/withdrawal", auth)
	{
		withdrawal.POST("/apply", h.ApplyWithdrawal)
		withdrawal.GET("/my-requests", h.MyWithdrawals)
	}
}
