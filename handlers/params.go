package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"transportledger/query"
	"transportledger/services"
	"transportledger/utils"
)

// parseFilter reads the list query parameters:
// search, status, start, end (YYYY-MM-DD), min, max, sort and fy.
// fy is a fiscal year start ("2024" or "2024-25") or "current", and narrows
// any start/end range to that year.
func parseFilter(r *http.Request, reports *services.ReportService) (query.Filter, error) {
	q := r.URL.Query()
	f := query.Filter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Sort:   query.SortKey(q.Get("sort")),
	}
	if !f.Sort.Valid() {
		return f, fmt.Errorf("%w: unknown sort %q", services.ErrValidation, f.Sort)
	}

	if v := q.Get("start"); v != "" {
		t, err := utils.ParseDateIST(v)
		if err != nil {
			return f, fmt.Errorf("%w: start must be YYYY-MM-DD", services.ErrValidation)
		}
		f.StartDate = &t
	}
	if v := q.Get("end"); v != "" {
		t, err := utils.ParseDateIST(v)
		if err != nil {
			return f, fmt.Errorf("%w: end must be YYYY-MM-DD", services.ErrValidation)
		}
		t = utils.EndOfDay(t)
		f.EndDate = &t
	}
	for _, p := range []struct {
		name string
		dst  **float64
	}{{"min", &f.MinAmount}, {"max", &f.MaxAmount}} {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return f, fmt.Errorf("%w: %s must be a number", services.ErrValidation, p.name)
			}
			*p.dst = &n
		}
	}

	if v := q.Get("fy"); v != "" && reports != nil {
		year, err := parseFiscalYear(v, reports)
		if err != nil {
			return f, err
		}
		f = reports.FiscalYearFilter(f, year)
	}
	return f, nil
}

func parseFiscalYear(v string, reports *services.ReportService) (int, error) {
	if v == "" || v == "current" {
		return reports.CurrentFiscalYear(time.Now()), nil
	}
	head, _, _ := strings.Cut(v, "-")
	year, err := strconv.Atoi(head)
	if err != nil || year < 1900 || year > 9999 {
		return 0, fmt.Errorf("%w: fy must look like 2024 or 2024-25", services.ErrValidation)
	}
	return year, nil
}

// parsePage returns the requested page and page size, defaulting to the first
// page and defaultSize.
func parsePage(r *http.Request, defaultSize int) (int, int, error) {
	q := r.URL.Query()
	page, size := 1, defaultSize
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("%w: page must be a positive integer", services.ErrValidation)
		}
		page = n
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			return 0, 0, fmt.Errorf("%w: pageSize must be between 1 and 500", services.ErrValidation)
		}
		size = n
	}
	return page, size, nil
}
