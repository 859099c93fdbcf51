package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleReport struct {
	PhoneNumber string  `json:"phoneNumber" validate:"required,phone"`
	Category    string  `json:"category" validate:"required,category"`
	Description string  `json:"description" validate:"required,min=10"`
	CallType    *string `json:"callType" validate:"omitempty,oneof=live robocall voicemail text"`
}

func TestValidator_Accepts(t *testing.T) {
	v := NewValidator()
	ct := "robocall"

	err := v.Struct(sampleReport{
		PhoneNumber: "(555) 123-4567",
		Category:    "irs-tax",
		Description: "Claimed I owe back taxes",
		CallType:    &ct,
	})
	assert.NoError(t, err)
}

func TestValidator_ReportsEveryField(t *testing.T) {
	v := NewValidator()
	ct := "fax"

	err := v.Struct(sampleReport{
		PhoneNumber: "555-1234",
		Category:    "lottery",
		Description: "short",
		CallType:    &ct,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, []FieldError{
		{Field: "phoneNumber", Message: "phoneNumber must contain 10 to 15 digits"},
		{Field: "category", Message: "category is not a known scam category"},
		{Field: "description", Message: "description must be at least 10 characters long"},
		{Field: "callType", Message: "callType must be one of: live, robocall, voicemail, text"},
	}, verr.Errors)
}

func TestValidator_Required(t *testing.T) {
	err := NewValidator().Struct(sampleReport{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Errors, 3)
	assert.Equal(t, "phoneNumber is required", verr.Errors[0].Message)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 10, ValidateLimit(0))
	assert.Equal(t, 10, ValidateLimit(-4))
	assert.Equal(t, 3, ValidateLimit(3))
	assert.Equal(t, 100, ValidateLimit(1000))
}
