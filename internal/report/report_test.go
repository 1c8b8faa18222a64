package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

func item(id string, plays int, revenue int64, gifts int) domain.PaymentLineItem {
	return domain.PaymentLineItem{
		MachineID:          id,
		MachineDisplayName: "Machine " + id,
		TransactionCount:   plays,
		TotalRevenue:       decimal.NewFromInt(revenue),
		PrizeCount:         gifts,
	}
}

func keys(machines []domain.MachineAggregate) []string {
	out := make([]string, 0, len(machines))
	for _, m := range machines {
		out = append(out, m.Key)
	}
	return out
}

func TestBuildWeeklyScenario(t *testing.T) {
	items := []domain.PaymentLineItem{
		item("A", 10, 500, 2),
		item("B", 0, 0, 0),
	}
	summary := &domain.PaymentsSummary{
		TotalCoinAmount:       decimal.NewFromInt(300),
		TotalCardAmount:       decimal.NewFromInt(200),
		TotalPrizeCount:       2,
		TotalTransactionCount: 10,
	}

	r := Build(items, summary, 7)

	assert.True(t, r.TotalRevenue.Equal(decimal.NewFromInt(500)), "total revenue %s", r.TotalRevenue)
	assert.True(t, r.CoinRevenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, r.CardRevenue.Equal(decimal.NewFromInt(200)))
	assert.True(t, r.AvgPayout.Equal(decimal.NewFromInt(250)), "avg payout %s", r.AvgPayout)
	assert.True(t, r.AvgDailyRevenue.Equal(decimal.NewFromInt(71)), "avg daily %s", r.AvgDailyRevenue)
	assert.Equal(t, 10, r.TotalPlays)
	assert.Equal(t, 2, r.TotalGiftCount)
	assert.Equal(t, 7, r.Days)

	assert.Equal(t, []string{"B"}, keys(r.ProblemMachines))
	assert.Equal(t, []string{"A"}, keys(r.TopMachines))
	assert.Equal(t, []string{"A"}, keys(r.HotMachines))
}

func TestBuildMergesSameMachine(t *testing.T) {
	items := []domain.PaymentLineItem{
		item("A", 3, 30, 0),
		item("A", 4, 40, 1),
	}

	r := Build(items, nil, 1)

	require.Len(t, r.Machines, 1)
	m := r.Machines[0]
	assert.Equal(t, "A", m.Key)
	assert.Equal(t, 7, m.Plays)
	assert.True(t, m.Revenue.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, 1, m.GiftCount)
}

func TestBuildWithoutSummaryKeepsZeroTotals(t *testing.T) {
	items := []domain.PaymentLineItem{item("A", 12, 900, 3)}

	r := Build(items, nil, 3)

	assert.True(t, r.TotalRevenue.IsZero())
	assert.True(t, r.AvgPayout.IsZero())
	assert.True(t, r.AvgDailyRevenue.IsZero())
	assert.Equal(t, 0, r.TotalPlays)
	// gift count is derived from items, not from the summary
	assert.Equal(t, 3, r.TotalGiftCount)
	assert.Equal(t, []string{"A"}, keys(r.TopMachines))
}

func TestBuildEmptyCollection(t *testing.T) {
	r := Build(nil, nil, 7)

	assert.True(t, r.TotalRevenue.IsZero())
	assert.Equal(t, 0, r.TotalGiftCount)
	assert.NotNil(t, r.TopMachines)
	assert.NotNil(t, r.HotMachines)
	assert.NotNil(t, r.ProblemMachines)
	assert.NotNil(t, r.Machines)
	assert.Empty(t, r.TopMachines)
	assert.Empty(t, r.HotMachines)
	assert.Empty(t, r.ProblemMachines)
}

func TestBuildNoPrizesGivesZeroPayout(t *testing.T) {
	summary := &domain.PaymentsSummary{
		TotalCoinAmount: decimal.NewFromInt(100),
		TotalCardAmount: decimal.NewFromInt(0),
	}
	r := Build(nil, summary, 0)

	assert.True(t, r.AvgPayout.IsZero())
	assert.Equal(t, 1, r.Days)
	assert.True(t, r.AvgDailyRevenue.Equal(decimal.NewFromInt(100)))
}

func TestBuildRoundsHalfUp(t *testing.T) {
	summary := &domain.PaymentsSummary{
		TotalCoinAmount: decimal.NewFromInt(5),
		TotalCardAmount: decimal.NewFromInt(0),
		TotalPrizeCount: 2,
	}
	r := Build(nil, summary, 2)

	assert.True(t, r.AvgPayout.Equal(decimal.NewFromInt(3)), "2.5 rounds to 3, got %s", r.AvgPayout)
	assert.True(t, r.AvgDailyRevenue.Equal(decimal.NewFromInt(3)))
}

func TestBuildRankingAndLimits(t *testing.T) {
	items := []domain.PaymentLineItem{
		item("A", 5, 100, 1),
		item("B", 50, 400, 4),
		item("C", 20, 400, 0),
		item("D", 30, 300, 2),
		item("E", 8, 50, 1),
		item("F", 0, 0, 0),
	}

	r := Build(items, nil, 1)

	// B and C tie on revenue; insertion order decides
	assert.Equal(t, []string{"B", "C", "D"}, keys(r.TopMachines))
	assert.Equal(t, []string{"B", "D", "E"}, keys(r.HotMachines))
	// C: 20 plays without a gift-out, F: no plays
	assert.Equal(t, []string{"C", "F"}, keys(r.ProblemMachines))
	assert.Len(t, r.Machines, 6)
}

func TestBuildProblemThreshold(t *testing.T) {
	items := []domain.PaymentLineItem{
		item("five", 5, 50, 0),
		item("six", 6, 60, 0),
	}

	r := Build(items, nil, 1)

	assert.Equal(t, []string{"six"}, keys(r.ProblemMachines))
}

func TestBuildListsMayOverlap(t *testing.T) {
	items := []domain.PaymentLineItem{item("A", 10, 200, 1)}

	r := Build(items, nil, 1)

	assert.Equal(t, []string{"A"}, keys(r.TopMachines))
	assert.Equal(t, []string{"A"}, keys(r.HotMachines))
}

func TestBuildFallsBackToMachineName(t *testing.T) {
	items := []domain.PaymentLineItem{
		{MachineName: "claw-07", TransactionCount: 2, TotalRevenue: decimal.NewFromInt(20)},
		{MachineName: "claw-07", TransactionCount: 3, TotalRevenue: decimal.NewFromInt(30), PrizeCount: 1},
		{MachineID: "m-1", MachineName: "claw-07", TransactionCount: 1, TotalRevenue: decimal.NewFromInt(10)},
	}

	r := Build(items, nil, 1)

	require.Len(t, r.Machines, 2)
	assert.Equal(t, "claw-07", r.Machines[0].Key)
	assert.Equal(t, "claw-07", r.Machines[0].Name)
	assert.Equal(t, 5, r.Machines[0].Plays)
	assert.Equal(t, "m-1", r.Machines[1].Key)
}

func TestBuildPreservesEveryPlay(t *testing.T) {
	var items []domain.PaymentLineItem
	wantPlays := map[string]int{}
	for i := 0; i < 300; i++ {
		id := string(rune('A' + i%7))
		items = append(items, item(id, i%11, int64(i), i%3))
		wantPlays[id] += i % 11
	}

	r := Build(items, nil, 30)

	got := map[string]int{}
	for _, m := range r.Machines {
		got[m.Key] += m.Plays
	}
	assert.Equal(t, wantPlays, got)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	items := []domain.PaymentLineItem{item("A", 1, 10, 0), item("A", 2, 20, 1)}
	before := append([]domain.PaymentLineItem(nil), items...)

	first := Build(items, nil, 1)
	second := Build(items, nil, 1)

	assert.Equal(t, before, items)
	assert.Equal(t, first.Machines[0].Plays, second.Machines[0].Plays)
}
