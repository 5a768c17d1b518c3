package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareRecordsRequests(t *testing.T) {
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusTeapot, res.Code)

	families, err := Registry.Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() == "venuebook_http_requests_total" {
			found = true
		}
	}
	require.True(t, found, "expected venuebook_http_requests_total to be registered")
}

func TestObserveStoreOp(t *testing.T) {
	ObserveStoreOp("insert", nil)
	ObserveStoreOp("insert", errTest)

	families, err := Registry.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "venuebook_store_operations_total" {
			continue
		}
		require.NotEmpty(t, family.GetMetric())
		return
	}
	t.Fatal("venuebook_store_operations_total not registered")
}

var errTest = &testError{}

type testError struct{}

func (e *testError) Error() string { return "test error" }
