package models

// AdminCreateInput is the body of POST /users/admin.
type AdminCreateInput struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// VerifyInput is the body of POST /users.
type VerifyInput struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// DetailsInput is the body of POST /users/details/:user_id.
// IFSCCode and EmployerName are optional.
type DetailsInput struct {
	AadharNo       string `json:"aadhar_no"`
	PanCardNumber  string `json:"pan_card_number"`
	IFSCCode       string `json:"ifsc_code"`
	BankAccountNo  string `json:"bank_account_no"`
	EmployerName   string `json:"employer_name"`
	NomineeName    string `json:"nominee_name"`
	NomineePhoneNo string `json:"nominee_phone_no"`
}
