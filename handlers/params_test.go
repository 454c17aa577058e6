package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"transportledger/query"
	"transportledger/services"
	"transportledger/utils"
)

func TestParseFilter(t *testing.T) {
	reports := services.NewReportService(nil, time.April)

	r := httptest.NewRequest("GET", "/transport-bills?search=pune&status=pending&start=2024-05-01&end=2024-05-31&min=100&max=5000.5&sort=amount_desc", nil)
	f, err := parseFilter(r, reports)
	if err != nil {
		t.Fatalf("parseFilter() error = %v", err)
	}
	wantStart := time.Date(2024, 5, 1, 0, 0, 0, 0, utils.IST)
	wantEnd := time.Date(2024, 5, 31, 23, 59, 59, 999999999, utils.IST)
	if !f.StartDate.Equal(wantStart) || !f.EndDate.Equal(wantEnd) {
		t.Errorf("range = %v .. %v", f.StartDate, f.EndDate)
	}
	if *f.MinAmount != 100 || *f.MaxAmount != 5000.5 || f.Sort != query.SortAmountDesc || f.Search != "pune" || f.Status != "pending" {
		t.Errorf("filter = %+v", f)
	}
}

func TestParseFilter_FiscalYear(t *testing.T) {
	reports := services.NewReportService(nil, time.April)
	start, end := utils.FiscalYear(2024, time.April)

	r := httptest.NewRequest("GET", "/owner-data?fy=2024-25", nil)
	f, err := parseFilter(r, reports)
	if err != nil {
		t.Fatal(err)
	}
	if !f.StartDate.Equal(start) || !f.EndDate.Equal(end) {
		t.Errorf("fy range = %v .. %v", f.StartDate, f.EndDate)
	}

	r = httptest.NewRequest("GET", "/owner-data?fy=2024&end=2024-06-30", nil)
	f, err = parseFilter(r, reports)
	if err != nil {
		t.Fatal(err)
	}
	if !f.StartDate.Equal(start) || f.EndDate.Month() != time.June {
		t.Errorf("intersected range = %v .. %v", f.StartDate, f.EndDate)
	}
}

func TestParseFilter_Invalid(t *testing.T) {
	for _, q := range []string{"sort=up", "start=2024/05/01", "end=tomorrow", "min=ten", "max=1e", "fy=next"} {
		r := httptest.NewRequest("GET", "/transport-bills?"+q, nil)
		if _, err := parseFilter(r, services.NewReportService(nil, time.April)); !errors.Is(err, services.ErrValidation) {
			t.Errorf("%s: error = %v, want validation error", q, err)
		}
	}
}

func TestParsePage(t *testing.T) {
	testCases := []struct {
		query    string
		page     int
		size     int
		hasError bool
	}{
		{"", 1, 10, false},
		{"page=3", 3, 10, false},
		{"page=2&pageSize=25", 2, 25, false},
		{"page=0", 0, 0, true},
		{"pageSize=1000", 0, 0, true},
	}
	for _, tc := range testCases {
		page, size, err := parsePage(httptest.NewRequest("GET", "/x?"+tc.query, nil), 10)
		if (err != nil) != tc.hasError || page != tc.page || size != tc.size {
			t.Errorf("parsePage(%q) = %d, %d, %v", tc.query, page, size, err)
		}
	}
}
