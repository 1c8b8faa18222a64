package repository

import (
	"context"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

// DefaultHistoryLimit is used when a caller asks for a non-positive number of snapshots
const DefaultHistoryLimit = 30

// ReportSnapshotRepository defines the interface for stored report totals
type ReportSnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.ReportSnapshot) error
	List(ctx context.Context, limit int) ([]domain.ReportSnapshot, error)
}
