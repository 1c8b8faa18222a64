package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MachineAggregate is the per-machine sum over one aggregation run
type MachineAggregate struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Plays     int             `json:"plays"`
	Revenue   decimal.Decimal `json:"revenue"`
	GiftCount int             `json:"gift_count"`
}

// RevenueReport is the derived dashboard report for one date range
type RevenueReport struct {
	TotalPlays      int                `json:"total_plays"`
	TotalRevenue    decimal.Decimal    `json:"total_revenue"`
	CoinRevenue     decimal.Decimal    `json:"coin_revenue"`
	CardRevenue     decimal.Decimal    `json:"card_revenue"`
	TotalPrizeCount int                `json:"total_prize_count"`
	TotalGiftCount  int                `json:"total_gift_count"`
	AvgPayout       decimal.Decimal    `json:"avg_payout"`
	AvgDailyRevenue decimal.Decimal    `json:"avg_daily_revenue"`
	Days            int                `json:"days"`
	TopMachines     []MachineAggregate `json:"top_machines"`
	HotMachines     []MachineAggregate `json:"hot_machines"`
	ProblemMachines []MachineAggregate `json:"problem_machines"`
	Machines        []MachineAggregate `json:"machines"`
}

// ReportSnapshot is a stored copy of a report's totals
type ReportSnapshot struct {
	ID              int64           `json:"id"`
	StoreID         string          `json:"store_id,omitempty"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Days            int             `json:"days"`
	TotalPlays      int             `json:"total_plays"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	CoinRevenue     decimal.Decimal `json:"coin_revenue"`
	CardRevenue     decimal.Decimal `json:"card_revenue"`
	TotalGiftCount  int             `json:"total_gift_count"`
	AvgPayout       decimal.Decimal `json:"avg_payout"`
	AvgDailyRevenue decimal.Decimal `json:"avg_daily_revenue"`
	MachineCount    int             `json:"machine_count"`
	ProblemCount    int             `json:"problem_count"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewReportSnapshot copies the totals of a report for storage
func NewReportSnapshot(report RevenueReport, storeID, startDate, endDate string) *ReportSnapshot {
	return &ReportSnapshot{
		StoreID:         storeID,
		StartDate:       startDate,
		EndDate:         endDate,
		Days:            report.Days,
		TotalPlays:      report.TotalPlays,
		TotalRevenue:    report.TotalRevenue,
		CoinRevenue:     report.CoinRevenue,
		CardRevenue:     report.CardRevenue,
		TotalGiftCount:  report.TotalGiftCount,
		AvgPayout:       report.AvgPayout,
		AvgDailyRevenue: report.AvgDailyRevenue,
		MachineCount:    len(report.Machines),
		ProblemCount:    len(report.ProblemMachines),
	}
}
