package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/claw-dashboard-service/internal/domain"
	"github.com/ridwanfathin/claw-dashboard-service/internal/middleware"
	"github.com/ridwanfathin/claw-dashboard-service/internal/model"
	"github.com/ridwanfathin/claw-dashboard-service/internal/monitor"
)

type stubHealth struct {
	ids       []int
	snapshots map[int]domain.HealthSnapshot
}

func (s *stubHealth) Snapshot(storeID int) (domain.HealthSnapshot, error) {
	snapshot, ok := s.snapshots[storeID]
	if !ok {
		return domain.HealthSnapshot{}, monitor.ErrNoSnapshot
	}
	return snapshot, nil
}

func (s *stubHealth) StoreIDs() []int {
	return s.ids
}

func newMachineRouter(health HealthSource) *gin.Engine {
	r := gin.New()
	NewMachineHandler(health).RegisterRoutes(r.Group("/v1"), middleware.SessionMiddleware(nil))
	return r
}

func TestGetHealth(t *testing.T) {
	health := &stubHealth{
		ids: []int{73, 74},
		snapshots: map[int]domain.HealthSnapshot{
			73: {StoreID: 73, StoreName: "Main St", OnlineCount: 2, OfflineCount: 1},
		},
	}
	r := newMachineRouter(health)
	auth := bearer(t, "owner")

	t.Run("all stores skips unpolled ones", func(t *testing.T) {
		w := doGet(t, r, "/v1/machines/health", auth)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.MachineHealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Stores, 1)
		assert.Equal(t, "Main St", resp.Stores[0].StoreName)
	})

	t.Run("one store", func(t *testing.T) {
		w := doGet(t, r, "/v1/machines/health?storeId=73", auth)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.MachineHealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Stores, 1)
		assert.Equal(t, 1, resp.Stores[0].OfflineCount)
	})

	t.Run("store not polled yet", func(t *testing.T) {
		w := doGet(t, r, "/v1/machines/health?storeId=74", auth)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid store id", func(t *testing.T) {
		w := doGet(t, r, "/v1/machines/health?storeId=abc", auth)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetHealthMonitorDisabled(t *testing.T) {
	r := newMachineRouter(nil)

	w := doGet(t, r, "/v1/machines/health", bearer(t, "owner"))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBanks(t *testing.T) {
	r := gin.New()
	NewBankHandler().RegisterRoutes(r.Group("/v1"))

	t.Run("list", func(t *testing.T) {
		w := doGet(t, r, "/v1/banks", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.BanksResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Banks, len(domain.Banks))
		assert.Equal(t, domain.DefaultTransferFee, resp.DefaultTransferFee)
	})

	t.Run("fee free only", func(t *testing.T) {
		w := doGet(t, r, "/v1/banks?fee_free=true", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.BanksResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Banks)
		for _, b := range resp.Banks {
			assert.Zero(t, b.Fee, b.Code)
		}
	})

	t.Run("known and unknown codes", func(t *testing.T) {
		var bank domain.Bank

		w := doGet(t, r, "/v1/banks/812", "")
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bank))
		assert.Equal(t, 0, bank.Fee)
		assert.NotEmpty(t, bank.Name)

		w = doGet(t, r, "/v1/banks/999", "")
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bank))
		assert.Equal(t, "999", bank.Code)
		assert.Equal(t, domain.DefaultTransferFee, bank.Fee)
	})
}
