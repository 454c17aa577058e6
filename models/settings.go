package models

type ProfileData struct {
	CompanyName string `json:"companyName" bson:"companyName"`
	OwnerName   string `json:"ownerName" bson:"ownerName"`
	Address     string `json:"address" bson:"address"`
	Phone       string `json:"phone" bson:"phone"`
	Email       string `json:"email" bson:"email"`
	GSTNumber   string `json:"gstNumber" bson:"gstNumber"`
	PANNumber   string `json:"panNumber" bson:"panNumber"`
	Logo        string `json:"logo,omitempty" bson:"logo,omitempty"`
}

type BankData struct {
	AccountName   string `json:"accountName" bson:"accountName"`
	AccountNumber string `json:"accountNumber" bson:"accountNumber"`
	BankName      string `json:"bankName" bson:"bankName"`
	BranchName    string `json:"branchName" bson:"branchName"`
	IFSCCode      string `json:"ifscCode" bson:"ifscCode"`
}
