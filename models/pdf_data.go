package models

import "html/template"

// InvoicePDFData feeds the invoice templates. Exactly one of Bill or Owner is set.
type InvoicePDFData struct {
	Profile      *ProfileData
	Bank         *BankData
	ProfileImage template.URL // data URL of the company logo
	Bill         *TransportBill
	Owner        *OwnerRecord
	Date         string // formatted record date
	Total        string // formatted grand total
	TotalWords   string
	CopyTitle    string
}
