// Package notify delivers machine offline alerts.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

// OfflineAlert reports machines of one store that went from online to offline
type OfflineAlert struct {
	StoreID    int
	StoreName  string
	Machines   []domain.MachineHealth
	DetectedAt time.Time
}

// Notifier sends offline alerts
type Notifier interface {
	NotifyOffline(ctx context.Context, alert OfflineAlert) error
}

// Message renders an alert as plain text
func (a OfflineAlert) Message() string {
	var b strings.Builder

	name := a.StoreName
	if name == "" {
		name = fmt.Sprintf("store %d", a.StoreID)
	}
	fmt.Fprintf(&b, "⚠️ %s: %d machine(s) offline\n", name, len(a.Machines))

	for _, m := range a.Machines {
		label := m.Name
		if m.LocationNumber != "" {
			label = fmt.Sprintf("#%s %s", m.LocationNumber, m.Name)
		}
		fmt.Fprintf(&b, "• %s (no reading for %d min)\n", strings.TrimSpace(label), m.MinutesSince)
	}

	fmt.Fprintf(&b, "Detected at %s", a.DetectedAt.Format("2006-01-02 15:04"))
	return b.String()
}

// LogNotifier writes alerts to the application log
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogNotifier{log: log}
}

// NotifyOffline logs the alert at warn level
func (n *LogNotifier) NotifyOffline(ctx context.Context, alert OfflineAlert) error {
	codes := make([]string, 0, len(alert.Machines))
	for _, m := range alert.Machines {
		codes = append(codes, m.MachineCode)
	}

	n.log.WithFields(logrus.Fields{
		"store_id":   alert.StoreID,
		"store_name": alert.StoreName,
		"machines":   codes,
	}).Warn("machines went offline")
	return nil
}
