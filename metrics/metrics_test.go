package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveLedgerOp(t *testing.T) {
	okBefore := testutil.ToFloat64(LedgerOperations.WithLabelValues("test_op", "ok"))
	errBefore := testutil.ToFloat64(LedgerOperations.WithLabelValues("test_op", "error"))

	ObserveLedgerOp("test_op", nil)
	ObserveLedgerOp("test_op", errors.New("boom"))
	ObserveLedgerOp("test_op", nil)

	if got := testutil.ToFloat64(LedgerOperations.WithLabelValues("test_op", "ok")) - okBefore; got != 2 {
		t.Errorf("ok count delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(LedgerOperations.WithLabelValues("test_op", "error")) - errBefore; got != 1 {
		t.Errorf("error count delta = %v, want 1", got)
	}
}

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Middleware)
	r.HandleFunc("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/items/{id}", "418"))
	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}
	if got := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/items/{id}", "418")) - before; got != 2 {
		t.Errorf("request count delta = %v, want 2", got)
	}
}
