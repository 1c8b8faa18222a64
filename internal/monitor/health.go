package monitor

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

// layouts of reading times sent without an offset
var localTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseReadingTime parses a last_reading_time value. Values without an
// offset are read in loc.
func ParseReadingTime(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	for _, layout := range localTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MachineStatusAt derives the status of a machine from its last reading. A
// machine is offline when more than offlineAfter has passed since the last
// reading, counted in whole minutes, or when the reading time is unusable.
func MachineStatusAt(m domain.MachineReading, now time.Time, offlineAfter time.Duration, loc *time.Location) (domain.MachineStatus, int) {
	last, ok := ParseReadingTime(m.LastReadingTime, loc)
	if !ok {
		return domain.MachineOffline, 0
	}

	minutes := int(now.Sub(last) / time.Minute)
	if minutes > int(offlineAfter/time.Minute) {
		return domain.MachineOffline, minutes
	}
	return domain.MachineOnline, minutes
}

// BuildSnapshot turns a readings response into a health snapshot
func BuildSnapshot(readings *domain.StoreReadings, now time.Time, cfg Config) domain.HealthSnapshot {
	snapshot := domain.HealthSnapshot{
		StoreID:   readings.StoreID,
		StoreName: readings.StoreName,
		Machines:  make([]domain.MachineHealth, 0, len(readings.Machines)),
		PolledAt:  now,
	}

	for _, m := range readings.Machines {
		status, minutes := MachineStatusAt(m, now, cfg.OfflineAfter, cfg.Location)

		snapshot.Machines = append(snapshot.Machines, domain.MachineHealth{
			MachineCode:     m.MachineCode,
			Name:            machineName(m),
			LocationNumber:  m.LocationMachineNumber,
			Status:          status,
			LastReadingTime: m.LastReadingTime,
			MinutesSince:    minutes,
			CoinPlays:       m.CoinPlayTimes,
			EpayPlays:       m.EpayPlayTimes,
			GiftOuts:        m.GiftOutTimes,
		})

		if status == domain.MachineOnline {
			snapshot.OnlineCount++
		} else {
			snapshot.OfflineCount++
		}
		snapshot.TotalCoinPlays += m.CoinPlayTimes
		snapshot.TotalEpayPlays += m.EpayPlayTimes
	}

	snapshot.EstimatedRevenue = (snapshot.TotalCoinPlays + snapshot.TotalEpayPlays) * cfg.PlayPrice

	sort.SliceStable(snapshot.Machines, func(i, j int) bool {
		return compareNatural(snapshot.Machines[i].LocationNumber, snapshot.Machines[j].LocationNumber) < 0
	})

	return snapshot
}

// wentOffline returns the machines that were online in prev and are offline in next
func wentOffline(prev, next domain.HealthSnapshot) []domain.MachineHealth {
	before := make(map[string]domain.MachineStatus, len(prev.Machines))
	for _, m := range prev.Machines {
		before[m.MachineCode] = m.Status
	}

	var out []domain.MachineHealth
	for _, m := range next.Machines {
		if m.Status == domain.MachineOffline && before[m.MachineCode] == domain.MachineOnline {
			out = append(out, m)
		}
	}
	return out
}

func machineName(m domain.MachineReading) string {
	if m.MachineName != nil && *m.MachineName != "" {
		return *m.MachineName
	}
	if m.ReadingMachineName != "" {
		return m.ReadingMachineName
	}
	return m.MachineCode
}

// compareNatural orders strings with digit runs compared by numeric value,
// so "2" sorts before "10"
func compareNatural(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}

			na := strings.TrimLeft(string(ra[si:i]), "0")
			nb := strings.TrimLeft(string(rb[sj:j]), "0")
			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}

		ca, cb := unicode.ToLower(ra[i]), unicode.ToLower(rb[j])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case len(ra)-i < len(rb)-j:
		return -1
	case len(ra)-i > len(rb)-j:
		return 1
	}
	return 0
}
