package models

// Snapshot is the portable export of the whole dataset.
type Snapshot struct {
	OwnerData      []OwnerRecord   `json:"owner_data"`
	TransportBills []TransportBill `json:"transport_bills"`
	ProfileData    *ProfileData    `json:"profile_data"`
	BankData       *BankData       `json:"bank_data"`
	ProfileImage   *string         `json:"profile_image"`
}
