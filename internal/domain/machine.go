package domain

import "time"

// MachineStatus is the connectivity state derived from a machine's last reading
type MachineStatus string

const (
	MachineOnline  MachineStatus = "ONLINE"
	MachineOffline MachineStatus = "OFFLINE"
)

// MachineReading is one machine row of the external store readings endpoint
type MachineReading struct {
	MachineCode           string  `json:"machine_code"`
	MachineName           *string `json:"machine_name"`
	LocationMachineNumber string  `json:"location_machine_number"`
	CPUID                 string  `json:"cpu_id"`
	ReadingMachineName    string  `json:"reading_machine_name"`
	ReadingShopName       string  `json:"reading_shop_name"`
	EpayPlayTimes         int     `json:"epay_play_times"`
	CoinPlayTimes         int     `json:"coin_play_times"`
	GiftPlayTimes         int     `json:"gift_play_times"`
	GiftOutTimes          int     `json:"gift_out_times"`
	FreePlayTimes         int     `json:"free_play_times"`
	TotalPlayTimes        int     `json:"total_play_times"`
	LastReadingTime       string  `json:"last_reading_time"`
}

// StoreReadings is the external store readings response
type StoreReadings struct {
	StoreID          int              `json:"store_id"`
	StoreName        string           `json:"store_name"`
	TotalMachines    int              `json:"total_machines"`
	MachinesWithData int              `json:"machines_with_data"`
	QueryTime        string           `json:"query_time"`
	Machines         []MachineReading `json:"machines"`
}

// MachineHealth is one machine's status within a health snapshot
type MachineHealth struct {
	MachineCode     string        `json:"machine_code"`
	Name            string        `json:"name"`
	LocationNumber  string        `json:"location_number"`
	Status          MachineStatus `json:"status"`
	LastReadingTime string        `json:"last_reading_time"`
	MinutesSince    int           `json:"minutes_since"`
	CoinPlays       int           `json:"coin_plays"`
	EpayPlays       int           `json:"epay_plays"`
	GiftOuts        int           `json:"gift_outs"`
}

// HealthSnapshot is the latest machine-health view of one store
type HealthSnapshot struct {
	StoreID          int             `json:"store_id"`
	StoreName        string          `json:"store_name"`
	OnlineCount      int             `json:"online_count"`
	OfflineCount     int             `json:"offline_count"`
	TotalCoinPlays   int             `json:"total_coin_plays"`
	TotalEpayPlays   int             `json:"total_epay_plays"`
	EstimatedRevenue int             `json:"estimated_revenue"`
	Machines         []MachineHealth `json:"machines"`
	PolledAt         time.Time       `json:"polled_at"`
	LastError        string          `json:"last_error,omitempty"`
	LastErrorAt      *time.Time      `json:"last_error_at,omitempty"`
}
