package models

import (
	"strconv"
	"time"
)

// The accessors below let the query and report packages treat both ledgers alike.

func (b TransportBill) RecordDate() time.Time { return b.Date }
func (b TransportBill) AmountValue() float64  { return b.Total }
func (b TransportBill) StatusValue() string   { return string(b.Status) }

// SearchFields lists the values matched by free-text search.
func (b TransportBill) SearchFields() []string {
	return []string{
		b.BillNumber,
		b.MS,
		b.VehicleNo,
		b.From,
		b.To,
		amountText(b.Total),
		b.ConsignorConsignee,
		b.InvoiceNo,
	}
}

func (o OwnerRecord) RecordDate() time.Time { return o.Date }
func (o OwnerRecord) AmountValue() float64  { return o.TotalLorryHireRs }
func (o OwnerRecord) StatusValue() string   { return string(o.Status) }

func (o OwnerRecord) SearchFields() []string {
	return []string{
		o.RecordID,
		o.OwnerNameAndAddress,
		o.VehicleNo,
		o.From,
		o.To,
		amountText(o.TotalLorryHireRs),
		o.Remarks,
		o.BrokerName,
	}
}

// amountText renders an amount the way it is typed; zero is not searchable.
func amountText(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
