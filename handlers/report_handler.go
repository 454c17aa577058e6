package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"transportledger/report"
	"transportledger/services"
)

type ReportHandler struct {
	Reports *services.ReportService
}

var reportFormats = map[string]struct {
	contentType string
	write       func(io.Writer, report.Table) error
}{
	"csv":  {"text/csv; charset=utf-8", report.WriteCSV},
	"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report.WriteXLSX},
	"pdf":  {"application/pdf", report.WritePDF},
}

// Report serves GET /reports/{ledger}?groupBy=&format= with the list filters.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r, h.Reports)
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	rep, err := h.Reports.Report(r.Context(), mux.Vars(r)["ledger"], f, q.Get("groupBy"))
	if err != nil {
		writeError(w, err)
		return
	}

	format := q.Get("format")
	if format == "" || format == "json" {
		writeData(w, http.StatusOK, rep)
		return
	}
	out, ok := reportFormats[format]
	if !ok {
		badRequest(w, fmt.Sprintf("unknown format %q", format))
		return
	}

	var buf bytes.Buffer
	if err := out.write(&buf, rep.Table); err != nil {
		writeError(w, err)
		return
	}
	filename := fmt.Sprintf("%s_report_%s.%s", rep.Ledger, time.Now().Format("20060102"), format)
	w.Header().Set("Content-Type", out.contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Stats serves GET /stats/{ledger}?fy=&topField=&n=.
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := parseFiscalYear(q.Get("fy"), h.Reports)
	if err != nil {
		writeError(w, err)
		return
	}
	n := 5
	if v := q.Get("n"); v != "" {
		n, err = strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(w, "n must be a non-negative integer")
			return
		}
	}
	stats, err := h.Reports.Stats(r.Context(), mux.Vars(r)["ledger"], year, q.Get("topField"), n)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}
