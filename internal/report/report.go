// Package report builds the dashboard revenue report from upstream payment
// line items.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

const (
	topLimit = 3
	hotLimit = 3

	// plays above this with no gift-outs flag a machine for inspection
	problemPlayThreshold = 5
)

// Build derives a RevenueReport from a full payments collection.
//
// Totals come from the upstream summary only; when it is absent they are
// zero even if items are present. Per-machine figures come from the items.
// days below 1 is treated as 1.
func Build(items []domain.PaymentLineItem, summary *domain.PaymentsSummary, days int) domain.RevenueReport {
	if days < 1 {
		days = 1
	}

	report := domain.RevenueReport{
		TotalRevenue:    decimal.Zero,
		CoinRevenue:     decimal.Zero,
		CardRevenue:     decimal.Zero,
		AvgPayout:       decimal.Zero,
		AvgDailyRevenue: decimal.Zero,
		Days:            days,
	}

	if summary != nil {
		report.CoinRevenue = summary.TotalCoinAmount
		report.CardRevenue = summary.TotalCardAmount
		report.TotalRevenue = summary.TotalCoinAmount.Add(summary.TotalCardAmount)
		report.TotalPlays = summary.TotalTransactionCount
		report.TotalPrizeCount = summary.TotalPrizeCount
	}

	if report.TotalPrizeCount > 0 {
		report.AvgPayout = report.TotalRevenue.Div(decimal.NewFromInt(int64(report.TotalPrizeCount))).Round(0)
	}
	report.AvgDailyRevenue = report.TotalRevenue.Div(decimal.NewFromInt(int64(days))).Round(0)

	machines := groupByMachine(items)
	for _, m := range machines {
		report.TotalGiftCount += m.GiftCount
	}

	report.Machines = machines
	report.TopMachines = topByRevenue(machines)
	report.HotMachines = hotByPlays(machines)
	report.ProblemMachines = problems(machines)

	return report
}

// groupByMachine sums items per machine key in a single pass, keeping the
// order in which machines were first seen.
func groupByMachine(items []domain.PaymentLineItem) []domain.MachineAggregate {
	index := make(map[string]int, len(items))
	machines := make([]domain.MachineAggregate, 0, len(items))

	for _, item := range items {
		key := item.MachineKey()
		i, ok := index[key]
		if !ok {
			i = len(machines)
			index[key] = i
			machines = append(machines, domain.MachineAggregate{
				Key:     key,
				Name:    item.DisplayName(),
				Revenue: decimal.Zero,
			})
		}

		m := &machines[i]
		m.Plays += item.TransactionCount
		m.Revenue = m.Revenue.Add(item.TotalRevenue)
		m.GiftCount += item.PrizeCount
	}

	return machines
}

func topByRevenue(machines []domain.MachineAggregate) []domain.MachineAggregate {
	ranked := filter(machines, func(m domain.MachineAggregate) bool {
		return m.Plays > 0
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	return head(ranked, topLimit)
}

func hotByPlays(machines []domain.MachineAggregate) []domain.MachineAggregate {
	ranked := filter(machines, func(m domain.MachineAggregate) bool {
		return m.Plays > 0 && m.GiftCount > 0
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Plays > ranked[j].Plays
	})
	return head(ranked, hotLimit)
}

func problems(machines []domain.MachineAggregate) []domain.MachineAggregate {
	return filter(machines, func(m domain.MachineAggregate) bool {
		return m.Plays == 0 || (m.Plays > problemPlayThreshold && m.GiftCount == 0)
	})
}

func filter(machines []domain.MachineAggregate, keep func(domain.MachineAggregate) bool) []domain.MachineAggregate {
	out := make([]domain.MachineAggregate, 0, len(machines))
	for _, m := range machines {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func head(machines []domain.MachineAggregate, n int) []domain.MachineAggregate {
	if len(machines) > n {
		return machines[:n]
	}
	return machines
}
