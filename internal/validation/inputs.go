package validation

import "onboard/internal/models"

// AdminCreate validates the admin-create stage input.
func (v *Validator) AdminCreate(input *models.AdminCreateInput) {
	v.Required("user_id", input.UserID)
	v.Required("phone_number", input.PhoneNumber)
	v.Required("email", input.Email)
	if input.PhoneNumber != "" {
		v.Phone("phone_number", input.PhoneNumber)
	}
	if input.Email != "" {
		v.Email("email", input.Email)
	}
}

// Verify validates the verify stage input.
func (v *Validator) Verify(input *models.VerifyInput) {
	v.Required("user_id", input.UserID)
	v.Required("phone_number", input.PhoneNumber)
	v.Required("email", input.Email)
	if input.PhoneNumber != "" {
		v.Phone("phone_number", input.PhoneNumber)
	}
	if input.Email != "" {
		v.Email("email", input.Email)
	}
}

// Details validates the KYC details stage input. ifsc_code and
// employer_name are optional.
func (v *Validator) Details(input *models.DetailsInput) {
	v.Required("aadhar_no", input.AadharNo)
	v.Required("pan_card_number", input.PanCardNumber)
	v.Required("bank_account_no", input.BankAccountNo)
	v.Required("nominee_name", input.NomineeName)
	v.Required("nominee_phone_no", input.NomineePhoneNo)
	if input.NomineePhoneNo != "" {
		v.Phone("nominee_phone_no", input.NomineePhoneNo)
	}
}
