package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DailyGarden_Go/internal/clock"
	"github.com/osse101/DailyGarden_Go/internal/domain"
	"github.com/osse101/DailyGarden_Go/internal/engine"
	"github.com/osse101/DailyGarden_Go/internal/handler"
	"github.com/osse101/DailyGarden_Go/internal/shop"
	"github.com/osse101/DailyGarden_Go/internal/sse"
	"github.com/osse101/DailyGarden_Go/internal/store"
)

const testAPIKey = "test-key"

type testEnv struct {
	eng    *engine.Engine
	clk    *clock.SimulatedClock
	st     *store.Memory
	router http.Handler
}

func newTestEnv(t *testing.T, apiKey string) *testEnv {
	t.Helper()
	clk := clock.NewSimulatedClock(time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC))
	st := store.NewMemory()
	eng := engine.New(st, engine.Options{
		Clock:              clk,
		Rand:               rand.New(rand.NewPCG(7, 11)),
		Location:           time.UTC,
		TickInterval:       time.Hour,
		SimulationInterval: time.Hour,
	})
	eng.Load(context.Background())
	t.Cleanup(func() { _ = eng.Stop(context.Background()) })

	router := NewRouter(Options{APIKey: apiKey}, eng, eng.Hub(), eng.SnapshotEvents, handler.StoreHealthChecker{Store: st})
	return &testEnv{eng: eng, clk: clk, st: st, router: router}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get(HeaderContentType))
}

func TestRouter_PlantGrowHarvest(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	rec := env.do(t, http.MethodPost, "/api/v1/garden/plant", handler.PlantRequest{Type: "flower"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	plant := decode[domain.Plant](t, rec)
	assert.Equal(t, domain.PlantTypeFlower, plant.Type)

	rec = env.do(t, http.MethodPost, "/api/v1/garden/plants/"+plant.ID+"/harvest", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, handler.ErrMsgPlantNotReadyError, decode[handler.ErrorResponse](t, rec).Error)

	for i := 0; i < 61; i++ {
		env.clk.Advance(10 * time.Second)
		env.eng.Tick(context.Background())
	}

	rec = env.do(t, http.MethodPost, "/api/v1/garden/plants/"+plant.ID+"/harvest", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[domain.HarvestResult](t, rec)
	assert.Equal(t, 20, res.Coins)

	rec = env.do(t, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[engine.Status](t, rec)
	assert.Equal(t, 110, status.Player.Coins)
	assert.Empty(t, status.Garden.Plants)
}

func TestRouter_ValidationAndErrors(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	t.Run("unknown plant type", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/garden/plant", handler.PlantRequest{Type: "cactus"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode[handler.ValidationErrorResponse](t, rec)
		assert.Contains(t, resp.Fields, "type")
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/garden/plant", `{"type":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, handler.ErrMsgInvalidRequest, decode[handler.ErrorResponse](t, rec).Error)
	})

	t.Run("missing plant", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/garden/plants/nope/harvest", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/shop/purchase", handler.PurchaseRequest{ItemID: shop.ItemExtraField})
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("daily reward once per day", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/daily/claim", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 50, decode[domain.DailyReward](t, rec).Coins)

		rec = env.do(t, http.MethodPost, "/api/v1/daily/claim", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad leaderboard category", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/leaderboard?category=weekly", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_SeedsAndShop(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	rec := env.do(t, http.MethodGet, "/api/v1/shop/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[handler.ShopResponse](t, rec).Items)

	rec = env.do(t, http.MethodPost, "/api/v1/seeds/add", handler.AddSeedsRequest{Pack: domain.SeedPackMagicHerbs, Quantity: 2})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[handler.SeedCountResponse](t, rec).Remaining)

	rec = env.do(t, http.MethodPost, "/api/v1/seeds/plant", handler.SeedRequest{Pack: domain.SeedPackMagicHerbs})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.PlantTypeHerb, decode[domain.Plant](t, rec).Type)

	rec = env.do(t, http.MethodPost, "/api/v1/seeds/use", handler.SeedRequest{Pack: domain.SeedPackMagicHerbs})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[handler.SeedCountResponse](t, rec).Remaining)

	rec = env.do(t, http.MethodPost, "/api/v1/seeds/use", handler.SeedRequest{Pack: domain.SeedPackMagicHerbs})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/seeds/add", handler.AddSeedsRequest{Pack: "tulips", Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_LeaderboardAndRename(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	rec := env.do(t, http.MethodPut, "/api/v1/player/name", handler.RenameRequest{Name: "  Rosa  "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rosa", decode[handler.RenameResponse](t, rec).Name)

	rec = env.do(t, http.MethodGet, "/api/v1/leaderboard?category=level", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[handler.LeaderboardResponse](t, rec)
	assert.Equal(t, domain.CategoryLevel, board.Category)

	found := false
	for _, e := range board.Entries {
		if !e.IsDemo {
			found = true
			assert.Equal(t, "Rosa", e.PlayerName)
		}
	}
	assert.True(t, found)
}

func TestRouter_ExportImport(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	rec := env.do(t, http.MethodGet, "/api/v1/data/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	backup := rec.Body.String()

	rec = env.do(t, http.MethodPost, "/api/v1/garden/plant", handler.PlantRequest{Type: "vegetable"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/data/import", backup)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, env.eng.Garden().Plants)
	assert.Equal(t, 100, env.eng.Player().Coins)

	rec = env.do(t, http.MethodPost, "/api/v1/data/import", `{"version":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, handler.ErrMsgInvalidBackupError, decode[handler.ErrorResponse](t, rec).Error)
}

func TestRouter_Readyz(t *testing.T) {
	env := newTestEnv(t, testAPIKey)

	rec := env.do(t, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, env.st.Close())
	rec = env.do(t, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, handler.HealthStatusUnavailable, decode[handler.HealthResponse](t, rec).Status)
}

func TestRouter_WebSocketStream(t *testing.T) {
	env := newTestEnv(t, testAPIKey)
	env.eng.Start()

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws?types=" + domain.EventTypeGardenUpdated + "&api_key=" + testAPIKey
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var ev sse.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, sse.EventTypeConnected, ev.Type)

	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, domain.EventTypeGardenUpdated, ev.Type, "snapshot follows the connect event")

	rec := env.do(t, http.MethodPost, "/api/v1/garden/plant", handler.PlantRequest{Type: "fruit"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var garden struct {
		Type    string        `json:"type"`
		Payload domain.Garden `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&garden))
	assert.Equal(t, domain.EventTypeGardenUpdated, garden.Type)
	require.Len(t, garden.Payload.Plants, 1)
	assert.Equal(t, domain.PlantTypeFruit, garden.Payload.Plants[0].Type)
}

func TestRouter_SSEStream(t *testing.T) {
	env := newTestEnv(t, testAPIKey)
	env.eng.Start()

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events?types="+domain.EventTypePlayerUpdated, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var events []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() && len(events) < 2 {
		if name, ok := strings.CutPrefix(scanner.Text(), "event: "); ok {
			events = append(events, name)
		}
	}
	assert.Equal(t, []string{sse.EventTypeConnected, domain.EventTypePlayerUpdated}, events)
}
