package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"

	"github.com/ridwanfathin/claw-dashboard-service/internal/daterange"
	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
	"github.com/ridwanfathin/claw-dashboard-service/internal/report"
	"github.com/ridwanfathin/claw-dashboard-service/internal/repository"
)

// ErrHistoryUnavailable is returned when no snapshot repository is configured
var ErrHistoryUnavailable = errors.New("report history is not configured")

// ReportServiceError represents an error in the report service
type ReportServiceError struct {
	Op  string
	Err error
}

func (e *ReportServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the underlying error
func (e *ReportServiceError) Unwrap() error {
	return e.Err
}

// ReportRequest selects the data a revenue report is built from. An explicit
// StartDate/EndDate pair takes precedence over Filter.
type ReportRequest struct {
	Filter    daterange.Filter
	StartDate string
	EndDate   string
	StoreID   string
}

// RevenueReportResult is a report together with the range it covers
type RevenueReportResult struct {
	Filter  daterange.Filter     `json:"filter,omitempty"`
	Range   daterange.Range      `json:"range"`
	StoreID string               `json:"store_id,omitempty"`
	Pages   int                  `json:"pages"`
	Report  domain.RevenueReport `json:"report"`
}

// ReportService defines the interface for dashboard report operations
type ReportService interface {
	ResolveRange(req ReportRequest) (daterange.Range, int, error)
	RevenueReport(ctx context.Context, token string, req ReportRequest) (*RevenueReportResult, error)
	History(ctx context.Context, limit int) ([]domain.ReportSnapshot, error)
}

// ReportServiceImpl implements the ReportService interface
type ReportServiceImpl struct {
	fetcher   *PaymentsFetcher
	snapshots repository.ReportSnapshotRepository
	clock     clockz.Clock
	log       *logrus.Logger
}

// NewReportService creates a new ReportService. snapshots may be nil.
func NewReportService(fetcher *PaymentsFetcher, snapshots repository.ReportSnapshotRepository, clock clockz.Clock, log *logrus.Logger) ReportService {
	if clock == nil {
		clock = clockz.RealClock
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ReportServiceImpl{
		fetcher:   fetcher,
		snapshots: snapshots,
		clock:     clock,
		log:       log,
	}
}

// ResolveRange returns the date range and the day count of a request
func (s *ReportServiceImpl) ResolveRange(req ReportRequest) (daterange.Range, int, error) {
	if req.StartDate != "" || req.EndDate != "" {
		r, err := daterange.Custom(req.StartDate, req.EndDate)
		if err != nil {
			return daterange.Range{}, 0, err
		}
		return r, r.CalendarDays(), nil
	}

	filter := req.Filter
	if filter == "" {
		filter = daterange.Last7Days
	}
	now := s.clock.Now()
	return daterange.Resolve(filter, now), daterange.Days(filter, now), nil
}

// RevenueReport fetches every payments page for the request and aggregates it
func (s *ReportServiceImpl) RevenueReport(ctx context.Context, token string, req ReportRequest) (*RevenueReportResult, error) {
	rng, days, err := s.ResolveRange(req)
	if err != nil {
		return nil, &ReportServiceError{Op: "resolve_range", Err: err}
	}

	collection, err := s.fetcher.FetchAll(ctx, token, domain.PaymentsQuery{
		StartDate: rng.Start,
		EndDate:   rng.End,
		StoreID:   req.StoreID,
	})
	if err != nil {
		return nil, err
	}

	built := report.Build(collection.Items, collection.Summary, days)

	result := &RevenueReportResult{
		Range:   rng,
		StoreID: req.StoreID,
		Pages:   collection.PageCount,
		Report:  built,
	}
	if req.StartDate == "" && req.EndDate == "" {
		result.Filter = req.Filter
		if result.Filter == "" {
			result.Filter = daterange.Last7Days
		}
	}

	s.saveSnapshot(ctx, result)

	return result, nil
}

// saveSnapshot stores the report totals; failures are logged only
func (s *ReportServiceImpl) saveSnapshot(ctx context.Context, result *RevenueReportResult) {
	if s.snapshots == nil {
		return
	}

	snapshot := domain.NewReportSnapshot(result.Report, result.StoreID, result.Range.Start, result.Range.End)
	snapshot.CreatedAt = s.clock.Now()
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"start_date": result.Range.Start,
			"end_date":   result.Range.End,
			"store_id":   result.StoreID,
		}).Warn("failed to save report snapshot")
	}
}

// History lists the most recent report snapshots
func (s *ReportServiceImpl) History(ctx context.Context, limit int) ([]domain.ReportSnapshot, error) {
	if s.snapshots == nil {
		return nil, ErrHistoryUnavailable
	}
	snapshots, err := s.snapshots.List(ctx, limit)
	if err != nil {
		return nil, &ReportServiceError{Op: "list_snapshots", Err: err}
	}
	return snapshots, nil
}
