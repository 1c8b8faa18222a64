package model

import (
	"encoding/json"
	"time"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProxyErrorResponse is the error body of the pass-through endpoints
type ProxyErrorResponse struct {
	Error string `json:"error"`
}

// DateRangeResponse is a resolved date filter
type DateRangeResponse struct {
	Filter    string `json:"filter"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

// StoreOptionsResponse wraps the cached store list with its refresh time
type StoreOptionsResponse struct {
	Stores      json.RawMessage `json:"stores" swaggertype:"array,object"`
	LastUpdated *time.Time      `json:"last_updated"`
}

// ReportHistoryResponse lists stored report snapshots
type ReportHistoryResponse struct {
	Snapshots []domain.ReportSnapshot `json:"snapshots"`
	Count     int                     `json:"count"`
}

// MachineHealthResponse lists the latest snapshot of each requested store
type MachineHealthResponse struct {
	Stores []domain.HealthSnapshot `json:"stores"`
}

// BanksResponse lists the supported banks
type BanksResponse struct {
	Banks              []domain.Bank `json:"banks"`
	DefaultTransferFee int           `json:"default_transfer_fee"`
}
