package report

import (
	"strconv"

	"transportledger/models"
	"transportledger/query"
	"transportledger/utils"
)

// Table is a rendered report: a title, a header row and string cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// GroupTable lays out a grouped report with one row per group and a grand total.
func GroupTable[R query.Record](title, groupField string, groups []Group[R]) Table {
	label := groupField
	if label == "" {
		label = "Group"
	}
	t := Table{Title: title, Headers: []string{label, "Records", "Total"}}
	var all []R
	for i, s := range Summarize(groups) {
		t.Rows = append(t.Rows, []string{s.Key, strconv.Itoa(s.Count), s.Total.StringFixed(2)})
		all = append(all, groups[i].Records...)
	}
	t.Rows = append(t.Rows, []string{"Grand Total", strconv.Itoa(len(all)), Subtotal(all).StringFixed(2)})
	return t
}

func TransportBillTable(title string, bills []models.TransportBill) Table {
	t := Table{Title: title, Headers: []string{"Bill No", "Date", "From", "To", "Vehicle No", "M/s", "Status", "Total"}}
	for _, b := range bills {
		t.Rows = append(t.Rows, []string{
			b.BillNumber, utils.FormatDate(b.Date), b.From, b.To, b.VehicleNo, b.MS, string(b.Status),
			strconv.FormatFloat(b.Total, 'f', 2, 64),
		})
	}
	return t
}

func OwnerRecordTable(title string, records []models.OwnerRecord) Table {
	t := Table{Title: title, Headers: []string{"Record ID", "Date", "Owner", "Vehicle No", "From", "To", "Status", "Lorry Hire", "Balance"}}
	for _, o := range records {
		t.Rows = append(t.Rows, []string{
			o.RecordID, utils.FormatDate(o.Date), o.OwnerNameAndAddress, o.VehicleNo, o.From, o.To, string(o.Status),
			strconv.FormatFloat(o.TotalLorryHireRs, 'f', 2, 64),
			strconv.FormatFloat(o.BalanceAmount, 'f', 2, 64),
		})
	}
	return t
}
