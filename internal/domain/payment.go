package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentLineItem is one machine's settlement slice as returned by the
// upstream payments endpoint
type PaymentLineItem struct {
	MachineID          string          `json:"machine_id"`
	MachineName        string          `json:"machine_name"`
	MachineDisplayName string          `json:"machine_display_name"`
	StoreName          string          `json:"store_name"`
	ProductName        string          `json:"product_name,omitempty"`
	CardMachineNumber  string          `json:"card_machine_number,omitempty"`
	TransactionCount   int             `json:"transaction_count"`
	PrizeCount         int             `json:"prize_count"`
	CardPlayCount      int             `json:"card_play_count"`
	GiftPlayCount      int             `json:"gift_play_count"`
	FreePlayCount      int             `json:"free_play_count"`
	CoinAmount         decimal.Decimal `json:"coin_amount"`
	CardAmount         decimal.Decimal `json:"card_amount"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	ActualIncome       decimal.Decimal `json:"actual_income"`
	SettlementDate     string          `json:"settlement_date,omitempty"`
	DataDate           string          `json:"data_date,omitempty"`
	IsSettled          bool            `json:"is_settled"`
}

// MachineKey returns the grouping key for the item: the machine identifier,
// or the machine name when the identifier is empty
func (i PaymentLineItem) MachineKey() string {
	if i.MachineID != "" {
		return i.MachineID
	}
	return i.MachineName
}

// DisplayName returns the name shown for the machine
func (i PaymentLineItem) DisplayName() string {
	if i.MachineDisplayName != "" {
		return i.MachineDisplayName
	}
	return i.MachineName
}

// PaymentsSummary holds the upstream's pre-aggregated totals for a whole query
type PaymentsSummary struct {
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	TotalCoinAmount       decimal.Decimal `json:"total_coin_amount"`
	TotalCardAmount       decimal.Decimal `json:"total_card_amount"`
	TotalActualIncome     decimal.Decimal `json:"total_actual_income"`
	TotalPrizeCount       int             `json:"total_prize_count"`
	TotalCardPlayCount    int             `json:"total_card_play_count"`
	TotalTransactionCount int             `json:"total_transaction_count"`
}

// PaymentsPage is one page of the paginated payments endpoint
type PaymentsPage struct {
	Items      []PaymentLineItem `json:"items"`
	Summary    *PaymentsSummary  `json:"summary,omitempty"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// UnmarshalJSON decodes a page leniently: a summary that is missing or does
// not have the expected shape is left nil instead of failing the page.
func (p *PaymentsPage) UnmarshalJSON(data []byte) error {
	type pageAlias PaymentsPage
	var raw struct {
		pageAlias
		Summary json.RawMessage `json:"summary"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = PaymentsPage(raw.pageAlias)
	p.Summary = nil

	if len(raw.Summary) > 0 && string(raw.Summary) != "null" {
		var summary PaymentsSummary
		if err := json.Unmarshal(raw.Summary, &summary); err == nil {
			p.Summary = &summary
		}
	}
	if p.Items == nil {
		p.Items = []PaymentLineItem{}
	}

	return nil
}

// PageCount returns the number of pages the upstream reported, never less than 1
func (p *PaymentsPage) PageCount() int {
	if p.TotalPages < 1 {
		return 1
	}
	return p.TotalPages
}

// PaymentsQuery selects a payments collection
type PaymentsQuery struct {
	StartDate string
	EndDate   string
	StoreID   string
	Page      int
	PageSize  int
}

// PaymentCollection is the concatenation of every page of a payments query
type PaymentCollection struct {
	Items     []PaymentLineItem
	Summary   *PaymentsSummary
	PageCount int
}
