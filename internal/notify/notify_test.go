package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
)

type fakeSender struct {
	sent   []*bot.SendMessageParams
	failOn int64
}

func (f *fakeSender) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, params)
	if id, ok := params.ChatID.(int64); ok && id == f.failOn {
		return nil, errors.New("chat not found")
	}
	return &models.Message{}, nil
}

func sampleAlert() OfflineAlert {
	return OfflineAlert{
		StoreID:   73,
		StoreName: "Taipei Main",
		Machines: []domain.MachineHealth{
			{MachineCode: "A1", Name: "Claw A", LocationNumber: "1", MinutesSince: 75},
			{MachineCode: "B2", Name: "Claw B", MinutesSince: 120},
		},
		DetectedAt: time.Date(2026, 2, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestAlertMessage(t *testing.T) {
	msg := sampleAlert().Message()
	assert.Contains(t, msg, "Taipei Main: 2 machine(s) offline")
	assert.Contains(t, msg, "#1 Claw A (no reading for 75 min)")
	assert.Contains(t, msg, "Claw B (no reading for 120 min)")
	assert.Contains(t, msg, "2026-02-15 09:30")
}

func TestAlertMessageWithoutStoreName(t *testing.T) {
	alert := sampleAlert()
	alert.StoreName = ""
	assert.Contains(t, alert.Message(), "store 73")
}

func TestTelegramNotifierSendsToEveryChat(t *testing.T) {
	sender := &fakeSender{}
	n := NewTelegramNotifierWithSender(sender, []int64{-100, -200}, nil)

	require.NoError(t, n.NotifyOffline(context.Background(), sampleAlert()))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, int64(-100), sender.sent[0].ChatID)
	assert.Equal(t, int64(-200), sender.sent[1].ChatID)
	assert.Contains(t, sender.sent[0].Text, "Claw A")
}

func TestTelegramNotifierContinuesAfterFailure(t *testing.T) {
	log, _ := test.NewNullLogger()
	sender := &fakeSender{failOn: -100}
	n := NewTelegramNotifierWithSender(sender, []int64{-100, -200}, log)

	err := n.NotifyOffline(context.Background(), sampleAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat -100")
	assert.Len(t, sender.sent, 2)
}

func TestLogNotifier(t *testing.T) {
	log, hook := test.NewNullLogger()
	n := NewLogNotifier(log)

	require.NoError(t, n.NotifyOffline(context.Background(), sampleAlert()))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, []string{"A1", "B2"}, hook.LastEntry().Data["machines"])
}

func TestNewFallsBackToLogNotifier(t *testing.T) {
	assert.IsType(t, &LogNotifier{}, New("", []int64{1}, nil))
	assert.IsType(t, &LogNotifier{}, New("token", nil, nil))
}
