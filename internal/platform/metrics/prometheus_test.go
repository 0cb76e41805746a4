package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/platform/metrics"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRunFinished(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.RunFinished(models.SyncModeFull, true, time.Second)
	rec.RunFinished(models.SyncModeQuick, false, time.Second)
	rec.RunFinished(models.SyncModeQuick, false, time.Second)

	count, err := testutil.GatherAndCount(reg, "feed_sync_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "should have series per mode and result")

	count, err = testutil.GatherAndCount(reg, "feed_sync_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "should have histogram per mode")
}

func TestUnitProductsSynced(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	rec.ProductsSynced(models.SyncModeFull, 3, 2, 1)
	rec.ProductsSynced(models.SyncModeFull, 1, 0, 0)

	count, err := testutil.GatherAndCount(reg, "feed_sync_products_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "should have series per outcome")
}

func TestUnitRecordRequest(t *testing.T) {
	tests := map[string]struct {
		statuses  []int
		wantCount int
	}{
		"single class": {statuses: []int{200, 201, 204}, wantCount: 1},
		"many classes": {statuses: []int{200, 404, 504, 999}, wantCount: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			rec := metrics.NewRecorder(reg)

			for _, status := range tt.statuses {
				rec.RecordRequest(http.MethodGet, "/health", status, time.Millisecond)
			}

			count, err := testutil.GatherAndCount(reg, "http_requests_total")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestUnitHandler(t *testing.T) {
	rec := metrics.NewRecorder(prometheus.NewRegistry())
	rec.RunFinished(models.SyncModeFull, true, time.Second)

	resp := httptest.NewRecorder()
	rec.Handler().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `feed_sync_runs_total{mode="full",result="success"} 1`)
}
