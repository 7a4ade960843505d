package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	adaptershttp "github.com/hstraders/interestledger/internal/adapter/http"
	"github.com/hstraders/interestledger/internal/adapter/http/handler"
	"github.com/hstraders/interestledger/internal/adapter/repository/postgres"
	redisrepo "github.com/hstraders/interestledger/internal/adapter/repository/redis"
	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
	"github.com/hstraders/interestledger/internal/usecase"
	"github.com/hstraders/interestledger/tests/testutil"
)

type testEnv struct {
	server *httptest.Server
	db     *testutil.TestDB
	redis  *miniredis.Miniredis
}

// newTestEnv wires the full stack against the test database, with miniredis
// standing in for Redis.
func newTestEnv(t *testing.T, asOf domain.Date) *testEnv {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	db := testutil.NewTestDB(t)
	t.Cleanup(db.Cleanup)
	db.TruncateAll(ctx)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer(registry)
	logger := zerolog.Nop()

	voucherRepo := postgres.NewVoucherRepository(db.Pool)
	retrier := postgres.NewRetrierWithLogger(logger)

	voucherUC := usecase.NewVoucherUseCase(
		postgres.NewTxManager(db.Pool),
		voucherRepo,
		postgres.NewULIDGenerator(),
		retrier,
		m,
	)
	settingsUC := usecase.NewSettingsUseCase(
		postgres.NewSettingsRepository(db.Pool),
		redisrepo.NewSettingsCache(client).WithMetrics(m),
		time.Minute,
		retrier,
		logger,
	)
	interestUC := usecase.NewInterestUseCase(voucherRepo, settingsUC, m, logger).
		WithClock(func() domain.Date { return asOf })

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		VoucherHandler:   handler.NewVoucherHandler(voucherUC),
		SettingsHandler:  handler.NewSettingsHandler(settingsUC),
		InterestHandler:  handler.NewInterestHandler(interestUC, m),
		HealthHandler:    handler.NewHealthHandler(db.Pool, client),
		IdempotencyStore: redisrepo.NewIdempotencyStore(client),
		IdempotencyTTL:   time.Hour,
		Metrics:          m,
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:           logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, db: db, redis: mr}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return resp, data
}

func decode(t *testing.T, data []byte, v any) {
	t.Helper()

	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to decode %s: %v", data, err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, body []byte, want int) {
	t.Helper()

	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d: %s", want, resp.StatusCode, body)
	}
}
