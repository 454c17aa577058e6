package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"transportledger/models"
	"transportledger/services"
)

type LedgerHandler struct {
	Ledger   *services.LedgerService
	Reports  *services.ReportService
	PageSize int
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ============ TRANSPORT BILLS ============

// ListTransportBills returns one page of the filtered transport bills.
func (h *LedgerHandler) ListTransportBills(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r, h.Reports)
	if err != nil {
		writeError(w, err)
		return
	}
	page, size, err := parsePage(r, h.PageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Ledger.QueryTransportBills(r.Context(), f, page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

func (h *LedgerHandler) GetTransportBill(w http.ResponseWriter, r *http.Request) {
	bill, err := h.Ledger.GetTransportBill(r.Context(), mux.Vars(r)["billNumber"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, bill)
}

func (h *LedgerHandler) CreateTransportBill(w http.ResponseWriter, r *http.Request) {
	var bill models.TransportBill
	if err := decodeBody(r, &bill); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	created, err := h.Ledger.AddTransportBill(r.Context(), bill)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, created)
}

// UpdateTransportBill replaces the bill named in the path. A bill number in
// the body must match the path.
func (h *LedgerHandler) UpdateTransportBill(w http.ResponseWriter, r *http.Request) {
	billNumber := mux.Vars(r)["billNumber"]
	var bill models.TransportBill
	if err := decodeBody(r, &bill); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	bill.BillNumber = strings.TrimSpace(bill.BillNumber)
	if bill.BillNumber == "" {
		bill.BillNumber = billNumber
	}
	if bill.BillNumber != billNumber {
		badRequest(w, "bill number in body does not match the URL")
		return
	}
	updated, err := h.Ledger.UpdateTransportBill(r.Context(), bill)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, updated)
}

func (h *LedgerHandler) DeleteTransportBill(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteTransportBill(r.Context(), mux.Vars(r)["billNumber"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Transport bill deleted")
}

func (h *LedgerHandler) DeleteAllTransportBills(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteAllTransportBills(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "All transport bills deleted")
}

// ============ OWNER DATA ============

func (h *LedgerHandler) ListOwnerData(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r, h.Reports)
	if err != nil {
		writeError(w, err)
		return
	}
	page, size, err := parsePage(r, h.PageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Ledger.QueryOwnerData(r.Context(), f, page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

func (h *LedgerHandler) GetOwnerData(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Ledger.GetOwnerData(r.Context(), mux.Vars(r)["recordId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, rec)
}

func (h *LedgerHandler) CreateOwnerData(w http.ResponseWriter, r *http.Request) {
	var rec models.OwnerRecord
	if err := decodeBody(r, &rec); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	created, err := h.Ledger.AddOwnerData(r.Context(), rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, created)
}

func (h *LedgerHandler) UpdateOwnerData(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["recordId"]
	var rec models.OwnerRecord
	if err := decodeBody(r, &rec); err != nil {
		badRequest(w, "Invalid request payload: "+err.Error())
		return
	}
	rec.RecordID = strings.TrimSpace(rec.RecordID)
	if rec.RecordID == "" {
		rec.RecordID = recordID
	}
	if rec.RecordID != recordID {
		badRequest(w, "record id in body does not match the URL")
		return
	}
	updated, err := h.Ledger.UpdateOwnerData(r.Context(), rec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, updated)
}

func (h *LedgerHandler) DeleteOwnerData(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteOwnerData(r.Context(), mux.Vars(r)["recordId"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Owner record deleted")
}

func (h *LedgerHandler) DeleteAllOwnerData(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteAllOwnerData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "All owner records deleted")
}

// ============ BOTH LEDGERS ============

func (h *LedgerHandler) ClearAllData(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.ClearAllData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "All ledger data cleared")
}

func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	report, err := h.Ledger.CheckConsistency(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, report)
}
