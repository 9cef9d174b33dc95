package validation

import (
	"testing"

	"onboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func validDetails() models.DetailsInput {
	return models.DetailsInput{
		AadharNo:       "123412341234",
		PanCardNumber:  "ABCDE1234F",
		IFSCCode:       "HDFC0001234",
		BankAccountNo:  "000111222333",
		EmployerName:   "Acme Ltd",
		NomineeName:    "Ravi",
		NomineePhoneNo: "+919812345678",
	}
}

func TestDetails_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.DetailsInput)
		field  string
	}{
		{"missing aadhar_no", func(in *models.DetailsInput) { in.AadharNo = "" }, "aadhar_no"},
		{"missing pan_card_number", func(in *models.DetailsInput) { in.PanCardNumber = "" }, "pan_card_number"},
		{"missing bank_account_no", func(in *models.DetailsInput) { in.BankAccountNo = "" }, "bank_account_no"},
		{"missing nominee_name", func(in *models.DetailsInput) { in.NomineeName = "" }, "nominee_name"},
		{"missing nominee_phone_no", func(in *models.DetailsInput) { in.NomineePhoneNo = "" }, "nominee_phone_no"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDetails()
			tt.mutate(&in)

			v := New()
			v.Details(&in)
			assert.False(t, v.Valid())
			assert.Contains(t, v.Errors, tt.field)
		})
	}
}

func TestDetails_OptionalFields(t *testing.T) {
	in := validDetails()
	in.IFSCCode = ""
	in.EmployerName = ""

	v := New()
	v.Details(&in)
	assert.True(t, v.Valid())
}

func TestDetails_ReportsAllMissingFieldsAtOnce(t *testing.T) {
	v := New()
	v.Details(&models.DetailsInput{})
	assert.Len(t, v.Errors, 5)
}

func TestAdminCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   models.AdminCreateInput
		valid   bool
		badKeys []string
	}{
		{
			name:  "valid",
			input: models.AdminCreateInput{UserID: "u1", PhoneNumber: "+919812345678", Email: "a@b.com"},
			valid: true,
		},
		{
			name:    "all missing",
			input:   models.AdminCreateInput{},
			badKeys: []string{"user_id", "phone_number", "email"},
		},
		{
			name:    "bad email",
			input:   models.AdminCreateInput{UserID: "u1", PhoneNumber: "+919812345678", Email: "not-an-email"},
			badKeys: []string{"email"},
		},
		{
			name:    "bad phone",
			input:   models.AdminCreateInput{UserID: "u1", PhoneNumber: "call me", Email: "a@b.com"},
			badKeys: []string{"phone_number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.AdminCreate(&tt.input)
			assert.Equal(t, tt.valid, v.Valid())
			for _, key := range tt.badKeys {
				assert.Contains(t, v.Errors, key)
			}
		})
	}
}
