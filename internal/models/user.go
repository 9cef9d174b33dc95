package models

import "time"

// Onboarding stages. Code and label always move together; a record is
// written with the pair returned by StatusLabel for its code.
const (
	StatusVerifyPending     = 0
	StatusProfileImgPending = 1
	StatusDetailsPending    = 2
	StatusUploadDocsPending = 3
	StatusApprovePending    = 4
	StatusActive            = 5
)

var statusLabels = [...]string{
	StatusVerifyPending:     "verify-pending",
	StatusProfileImgPending: "profile-img-pending",
	StatusDetailsPending:    "details-pending",
	StatusUploadDocsPending: "uploads-docs-pending",
	StatusApprovePending:    "approve-pending",
	StatusActive:            "active",
}

// StatusLabel returns the display label for a status code.
func StatusLabel(code int) string {
	if code < 0 || code >= len(statusLabels) {
		return "unknown"
	}
	return statusLabels[code]
}

// User is one onboarding record. It is created once by admin-create,
// mutated by each stage in order, and never deleted by the workflow.
type User struct {
	UserID      string `gorm:"primaryKey" json:"user_id"`
	PhoneNumber string `gorm:"not null" json:"phone_number"`
	Email       string `gorm:"not null" json:"email"`

	ProfileImg     string `json:"profile_img,omitempty"`
	AadharFrontImg string `json:"aadhar_front_img,omitempty"`
	AadharBackImg  string `json:"aadhar_back_img,omitempty"`
	PanFrontImg    string `json:"pan_front_img,omitempty"`

	AadharNo       string `json:"aadhar_no,omitempty"`
	PanCardNumber  string `json:"pan_card_number,omitempty"`
	IFSCCode       string `gorm:"column:ifsc_code" json:"ifsc_code,omitempty"`
	BankAccountNo  string `json:"bank_account_no,omitempty"`
	EmployerName   string `json:"employer_name,omitempty"`
	NomineeName    string `json:"nominee_name,omitempty"`
	NomineePhoneNo string `json:"nominee_phone_no,omitempty"`

	Status     string `gorm:"not null;default:'verify-pending'" json:"status"`
	StatusCode int    `gorm:"not null;default:0" json:"status_code"`
	Token      string `json:"token,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
