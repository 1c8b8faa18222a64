package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

// PostgresReportRepository implements ReportSnapshotRepository using PostgreSQL
type PostgresReportRepository struct {
	db *pgxpool.Pool
}

// NewPostgresReportRepository creates a new PostgreSQL report snapshot repository
func NewPostgresReportRepository(db *pgxpool.Pool) ReportSnapshotRepository {
	return &PostgresReportRepository{db: db}
}

// Save inserts a snapshot and fills in its ID and creation time
func (r *PostgresReportRepository) Save(ctx context.Context, snapshot *domain.ReportSnapshot) error {
	query := `
		INSERT INTO revenue_report_snapshots (
			store_id, start_date, end_date, days, total_plays,
			total_revenue, coin_revenue, card_revenue, total_gift_count,
			avg_payout, avg_daily_revenue, machine_count, problem_count, created_at
		)
		VALUES ($1, $2::date, $3::date, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9, $10::numeric, $11::numeric, $12, $13, $14)
		RETURNING id, created_at
	`

	createdAt := snapshot.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := r.db.QueryRow(
		ctx,
		query,
		snapshot.StoreID,
		snapshot.StartDate,
		snapshot.EndDate,
		snapshot.Days,
		snapshot.TotalPlays,
		snapshot.TotalRevenue.String(),
		snapshot.CoinRevenue.String(),
		snapshot.CardRevenue.String(),
		snapshot.TotalGiftCount,
		snapshot.AvgPayout.String(),
		snapshot.AvgDailyRevenue.String(),
		snapshot.MachineCount,
		snapshot.ProblemCount,
		createdAt,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to save report snapshot: %w", err)
	}

	return nil
}

// List returns the most recent snapshots, newest first
func (r *PostgresReportRepository) List(ctx context.Context, limit int) ([]domain.ReportSnapshot, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	query := `
		SELECT id, store_id, start_date::text, end_date::text, days, total_plays,
			total_revenue::text, coin_revenue::text, card_revenue::text, total_gift_count,
			avg_payout::text, avg_daily_revenue::text, machine_count, problem_count, created_at
		FROM revenue_report_snapshots
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list report snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.ReportSnapshot, 0, limit)
	for rows.Next() {
		var (
			s                                   domain.ReportSnapshot
			total, coin, card, payout, dailyAvg string
		)
		if err := rows.Scan(
			&s.ID,
			&s.StoreID,
			&s.StartDate,
			&s.EndDate,
			&s.Days,
			&s.TotalPlays,
			&total,
			&coin,
			&card,
			&s.TotalGiftCount,
			&payout,
			&dailyAvg,
			&s.MachineCount,
			&s.ProblemCount,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report snapshot: %w", err)
		}

		if s.TotalRevenue, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("invalid total_revenue %q: %w", total, err)
		}
		if s.CoinRevenue, err = decimal.NewFromString(coin); err != nil {
			return nil, fmt.Errorf("invalid coin_revenue %q: %w", coin, err)
		}
		if s.CardRevenue, err = decimal.NewFromString(card); err != nil {
			return nil, fmt.Errorf("invalid card_revenue %q: %w", card, err)
		}
		if s.AvgPayout, err = decimal.NewFromString(payout); err != nil {
			return nil, fmt.Errorf("invalid avg_payout %q: %w", payout, err)
		}
		if s.AvgDailyRevenue, err = decimal.NewFromString(dailyAvg); err != nil {
			return nil, fmt.Errorf("invalid avg_daily_revenue %q: %w", dailyAvg, err)
		}

		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report snapshots: %w", err)
	}

	return snapshots, nil
}
