package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"transportledger/handlers"
	"transportledger/metrics"
)

type Handlers struct {
	Ledger   *handlers.LedgerHandler
	Reports  *handlers.ReportHandler
	Transfer *handlers.TransferHandler
	Settings *handlers.SettingsHandler
	PDF      *handlers.PDFHandler
}

func withCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"}, // Replace * with your domain in production
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}).Handler(next)
}

// SetupRoutes builds the HTTP handler of the service.
func SetupRoutes(h Handlers) http.Handler {
	r := mux.NewRouter()
	r.Use(handlers.RecoverWrapper, metrics.Middleware)

	// Transport bill routes
	r.HandleFunc("/transport-bills", h.Ledger.ListTransportBills).Methods(http.MethodGet)
	r.HandleFunc("/transport-bills", h.Ledger.CreateTransportBill).Methods(http.MethodPost)
	r.HandleFunc("/transport-bills", h.Ledger.DeleteAllTransportBills).Methods(http.MethodDelete)
	r.HandleFunc("/transport-bills/{billNumber}", h.Ledger.GetTransportBill).Methods(http.MethodGet)
	r.HandleFunc("/transport-bills/{billNumber}", h.Ledger.UpdateTransportBill).Methods(http.MethodPut)
	r.HandleFunc("/transport-bills/{billNumber}", h.Ledger.DeleteTransportBill).Methods(http.MethodDelete)
	r.HandleFunc("/transport-bills/{billNumber}/pdf", h.PDF.TransportBillPDF).Methods(http.MethodGet)

	// Owner data routes
	r.HandleFunc("/owner-data", h.Ledger.ListOwnerData).Methods(http.MethodGet)
	r.HandleFunc("/owner-data", h.Ledger.CreateOwnerData).Methods(http.MethodPost)
	r.HandleFunc("/owner-data", h.Ledger.DeleteAllOwnerData).Methods(http.MethodDelete)
	r.HandleFunc("/owner-data/{recordId}", h.Ledger.GetOwnerData).Methods(http.MethodGet)
	r.HandleFunc("/owner-data/{recordId}", h.Ledger.UpdateOwnerData).Methods(http.MethodPut)
	r.HandleFunc("/owner-data/{recordId}", h.Ledger.DeleteOwnerData).Methods(http.MethodDelete)
	r.HandleFunc("/owner-data/{recordId}/pdf", h.PDF.OwnerSlipPDF).Methods(http.MethodGet)

	// Reports
	r.HandleFunc("/reports/{ledger}", h.Reports.Report).Methods(http.MethodGet)
	r.HandleFunc("/stats/{ledger}", h.Reports.Stats).Methods(http.MethodGet)

	// Import / export
	r.HandleFunc("/export", h.Transfer.Export).Methods(http.MethodGet)
	r.HandleFunc("/import", h.Transfer.Import).Methods(http.MethodPost)
	r.HandleFunc("/backup", h.Transfer.Backup).Methods(http.MethodPost)

	// Settings
	r.HandleFunc("/settings/profile", h.Settings.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/settings/profile", h.Settings.SaveProfile).Methods(http.MethodPut)
	r.HandleFunc("/settings/bank", h.Settings.GetBank).Methods(http.MethodGet)
	r.HandleFunc("/settings/bank", h.Settings.SaveBank).Methods(http.MethodPut)
	r.HandleFunc("/settings/profile-image", h.Settings.GetProfileImage).Methods(http.MethodGet)
	r.HandleFunc("/settings/profile-image", h.Settings.SaveProfileImage).Methods(http.MethodPut)

	r.HandleFunc("/consistency", h.Ledger.CheckConsistency).Methods(http.MethodGet)
	r.HandleFunc("/clear", h.Ledger.ClearAllData).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.Handler())

	return withCORS(r)
}
