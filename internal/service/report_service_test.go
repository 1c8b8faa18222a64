package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"github.com/ridwanfathin/claw-dashboard-service/internal/daterange"
	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

type memorySnapshots struct {
	saved   []*domain.ReportSnapshot
	saveErr error
	listErr error
	limit   int
}

func (m *memorySnapshots) Save(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	snapshot.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, snapshot)
	return nil
}

func (m *memorySnapshots) List(ctx context.Context, limit int) ([]domain.ReportSnapshot, error) {
	m.limit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.ReportSnapshot, 0, len(m.saved))
	for _, s := range m.saved {
		out = append(out, *s)
	}
	return out, nil
}

func newTestReportService(source PaymentsSource, snapshots *memorySnapshots) (ReportService, *test.Hook) {
	log, hook := test.NewNullLogger()
	fetcher := NewPaymentsFetcher(source, 10, 0)
	if snapshots == nil {
		return NewReportService(fetcher, nil, clockz.RealClock, log), hook
	}
	return NewReportService(fetcher, snapshots, clockz.RealClock, log), hook
}

func TestResolveRange(t *testing.T) {
	svc, _ := newTestReportService(&fakePayments{}, nil)
	now := time.Now()

	t.Run("custom range wins over filter", func(t *testing.T) {
		rng, days, err := svc.ResolveRange(ReportRequest{
			Filter:    daterange.Last30Days,
			StartDate: "2026-02-01",
			EndDate:   "2026-02-10",
		})
		require.NoError(t, err)
		assert.Equal(t, daterange.Range{Start: "2026-02-01", End: "2026-02-10"}, rng)
		assert.Equal(t, 10, days)
	})

	t.Run("half a custom range is invalid", func(t *testing.T) {
		_, _, err := svc.ResolveRange(ReportRequest{StartDate: "2026-02-01"})
		assert.ErrorIs(t, err, daterange.ErrInvalidRange)
	})

	t.Run("filter", func(t *testing.T) {
		rng, days, err := svc.ResolveRange(ReportRequest{Filter: daterange.Last3Days})
		require.NoError(t, err)
		assert.Equal(t, daterange.Resolve(daterange.Last3Days, now), rng)
		assert.Equal(t, 3, days)
	})

	t.Run("empty filter defaults to last 7 days", func(t *testing.T) {
		rng, days, err := svc.ResolveRange(ReportRequest{})
		require.NoError(t, err)
		assert.Equal(t, daterange.Resolve(daterange.Last7Days, now), rng)
		assert.Equal(t, 7, days)
	})
}

func TestRevenueReport(t *testing.T) {
	source := &fakePayments{
		totalPages: 2,
		perPage:    2,
		summary: &domain.PaymentsSummary{
			TotalCoinAmount:       decimal.NewFromInt(1000),
			TotalCardAmount:       decimal.NewFromInt(400),
			TotalTransactionCount: 140,
			TotalPrizeCount:       7,
		},
	}
	snapshots := &memorySnapshots{}
	svc, _ := newTestReportService(source, snapshots)

	result, err := svc.RevenueReport(context.Background(), "tok", ReportRequest{
		StartDate: "2026-02-01",
		EndDate:   "2026-02-07",
		StoreID:   "73",
	})
	require.NoError(t, err)

	assert.Empty(t, result.Filter)
	assert.Equal(t, "73", result.StoreID)
	assert.Equal(t, 2, result.Pages)
	assert.True(t, result.Report.TotalRevenue.Equal(decimal.NewFromInt(1400)))
	assert.True(t, result.Report.AvgDailyRevenue.Equal(decimal.NewFromInt(200)))
	assert.True(t, result.Report.AvgPayout.Equal(decimal.NewFromInt(200)))
	assert.Len(t, result.Report.Machines, 4)

	for _, call := range source.calls {
		assert.Equal(t, "2026-02-01", call.StartDate)
		assert.Equal(t, "2026-02-07", call.EndDate)
		assert.Equal(t, "73", call.StoreID)
	}

	require.Len(t, snapshots.saved, 1)
	saved := snapshots.saved[0]
	assert.Equal(t, "73", saved.StoreID)
	assert.Equal(t, 7, saved.Days)
	assert.Equal(t, 4, saved.MachineCount)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestRevenueReportFilterIsEchoed(t *testing.T) {
	svc, _ := newTestReportService(&fakePayments{totalPages: 1}, nil)

	result, err := svc.RevenueReport(context.Background(), "tok", ReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, daterange.Last7Days, result.Filter)
	assert.Equal(t, 7, result.Report.Days)
}

func TestRevenueReportInvalidRange(t *testing.T) {
	source := &fakePayments{totalPages: 1}
	svc, _ := newTestReportService(source, nil)

	_, err := svc.RevenueReport(context.Background(), "tok", ReportRequest{StartDate: "2026-02-10", EndDate: "2026-02-01"})
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
	assert.Empty(t, source.calls)
}

func TestRevenueReportFetchFailure(t *testing.T) {
	snapshots := &memorySnapshots{}
	svc, _ := newTestReportService(&fakePayments{totalPages: 3, perPage: 1, failPage: 2}, snapshots)

	result, err := svc.RevenueReport(context.Background(), "tok", ReportRequest{Filter: daterange.Last1Day})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, snapshots.saved)
}

func TestRevenueReportSnapshotFailureIsLogged(t *testing.T) {
	snapshots := &memorySnapshots{saveErr: errors.New("connection reset")}
	svc, hook := newTestReportService(&fakePayments{totalPages: 1, perPage: 1}, snapshots)

	result, err := svc.RevenueReport(context.Background(), "tok", ReportRequest{Filter: daterange.Today})
	require.NoError(t, err)
	require.NotNil(t, result)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "failed to save report snapshot", entry.Message)
}

func TestHistory(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc, _ := newTestReportService(&fakePayments{}, nil)
		_, err := svc.History(context.Background(), 10)
		assert.ErrorIs(t, err, ErrHistoryUnavailable)
	})

	t.Run("lists snapshots", func(t *testing.T) {
		snapshots := &memorySnapshots{saved: []*domain.ReportSnapshot{{ID: 1, Days: 7}}}
		svc, _ := newTestReportService(&fakePayments{}, snapshots)

		got, err := svc.History(context.Background(), 5)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 5, snapshots.limit)
	})

	t.Run("repository error", func(t *testing.T) {
		snapshots := &memorySnapshots{listErr: errors.New("boom")}
		svc, _ := newTestReportService(&fakePayments{}, snapshots)

		_, err := svc.History(context.Background(), 5)
		var svcErr *ReportServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "list_snapshots", svcErr.Op)
	})
}
