package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"transportledger/services"
)

const maxImportBytes = 64 << 20

type TransferHandler struct {
	Transfer *services.TransferService
}

// Export downloads the whole dataset as a JSON file.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.Transfer.ExportSnapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"transportledger_export_%s.json\"", time.Now().Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import replaces the dataset with an uploaded export.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		badRequest(w, "could not read request body: "+err.Error())
		return
	}
	snap, err := h.Transfer.ImportSnapshot(r.Context(), data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: fmt.Sprintf("Imported %d owner records and %d bills.", len(snap.OwnerData), len(snap.TransportBills)),
	})
}

func (h *TransferHandler) Backup(w http.ResponseWriter, r *http.Request) {
	location, err := h.Transfer.Backup(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]string{"location": location})
}
