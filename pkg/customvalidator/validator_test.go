package customvalidator

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tailorshop/pkg/errors"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestPhoneValidation(t *testing.T) {
	v := newTestValidator(t)

	type payload struct {
		Phone string `validate:"phone"`
	}

	assert.NoError(t, v.Struct(payload{Phone: "+919876543210"}))
	assert.NoError(t, v.Struct(payload{Phone: "9876543"}))
	assert.Error(t, v.Struct(payload{Phone: "12345"}))
	assert.Error(t, v.Struct(payload{Phone: "not-a-phone"}))
	assert.Error(t, v.Struct(payload{Phone: "+12345678901234567890"}))
}

func TestMoneyValidation(t *testing.T) {
	v := newTestValidator(t)

	type payload struct {
		Amount string `validate:"money"`
	}

	assert.NoError(t, v.Struct(payload{Amount: "100.50"}))
	assert.NoError(t, v.Struct(payload{Amount: "-25"}), "adjustments may be negative")
	assert.Error(t, v.Struct(payload{Amount: ""}))
	assert.Error(t, v.Struct(payload{Amount: "-"}))
	assert.Error(t, v.Struct(payload{Amount: "+"}))
}

func TestNullStringValidation(t *testing.T) {
	v := newTestValidator(t)

	type payload struct {
		Feedback null.String `validate:"omitempty,min=3"`
	}

	assert.NoError(t, v.Struct(payload{}), "absent value skips the rule")
	assert.NoError(t, v.Struct(payload{Feedback: null.StringFrom("fits well")}))
	assert.Error(t, v.Struct(payload{Feedback: null.StringFrom("no")}))
}

func TestEchoValidatorWrapsFirstFailure(t *testing.T) {
	v := newTestValidator(t)
	ev := NewEchoValidator(v)

	type payload struct {
		Name  string `validate:"required"`
		Phone string `validate:"phone"`
	}

	err := ev.Validate(payload{Phone: "+919876543210"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Contains(t, httpErr.Message, "Name")

	assert.NoError(t, ev.Validate(payload{Name: "ok", Phone: "+919876543210"}))
}
