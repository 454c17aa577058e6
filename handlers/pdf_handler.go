package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"transportledger/repository"
	"transportledger/services"
	"transportledger/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
	Uploader services.Uploader
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// TransportBillPDF serves GET /transport-bills/{billNumber}/pdf.
// ?format=html returns the invoice markup without printing it.
func (h *PDFHandler) TransportBillPDF(w http.ResponseWriter, r *http.Request) {
	billNumber := mux.Vars(r)["billNumber"]
	html, err := utils.TransportInvoiceHTML(r.Context(), h.Repo, billNumber)
	h.serve(w, r, "invoice_"+billNumber, html, err)
}

// OwnerSlipPDF serves GET /owner-data/{recordId}/pdf.
func (h *PDFHandler) OwnerSlipPDF(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["recordId"]
	html, err := utils.OwnerSlipHTML(r.Context(), h.Repo, recordID)
	h.serve(w, r, "owner_slip_"+recordID, html, err)
}

func (h *PDFHandler) serve(w http.ResponseWriter, r *http.Request, name, html string, err error) {
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", services.ErrPersistence, err))
		return
	}
	if html == "" {
		writeError(w, fmt.Errorf("%w: no record for this document", services.ErrNotFound))
		return
	}
	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
		return
	}

	pdfBytes, err := utils.PrintHTMLToPDF(r.Context(), html)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Code:    services.KindInternal,
			Error:   "failed to generate PDF: " + err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("%s_%d.pdf", unsafeFileChars.ReplaceAllString(name, "_"), time.Now().Unix())
	h.save(filename, pdfBytes)

	if r.URL.Query().Get("upload") == "true" && h.Uploader != nil {
		location, err := h.Uploader.Upload(r.Context(), pdfBytes, "invoices/"+filename, "application/pdf")
		if err != nil {
			writeError(w, fmt.Errorf("%w: %w", services.ErrPersistence, err))
			return
		}
		writeData(w, http.StatusOK, map[string]string{"file": filename, "url": location})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// save keeps a copy of the PDF in SavePath. Failures are logged only.
func (h *PDFHandler) save(filename string, data []byte) {
	if h.SavePath == "" {
		return
	}
	if err := os.MkdirAll(h.SavePath, os.ModePerm); err != nil {
		log.Printf("[PDF] failed to create save directory: %v", err)
		return
	}
	if err := os.WriteFile(filepath.Join(h.SavePath, filename), data, 0644); err != nil {
		log.Printf("[PDF] failed to save %s: %v", filename, err)
	}
}
