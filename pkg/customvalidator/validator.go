package customvalidator

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"

	apperrors "tailorshop/pkg/errors"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterCustomValidations attaches shop-specific rules to the validator.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		// Decimal fields arrive as strings in DTOs; a bare sign or empty
		// string is rejected, the decimal package validates the rest.
		s := fl.Field().String()
		return s != "" && s != "-" && s != "+"
	}); err != nil {
		return err
	}
	registerNullTypes(v)
	return nil
}

// registerNullTypes teaches the validator to look inside null.String and
// friends, so `omitempty` fires when the value is absent.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok && val.Valid {
			return val.String
		}
		return nil
	}, null.String{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Int); ok && val.Valid {
			return val.Int
		}
		return nil
	}, null.Int{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.Time); ok && val.Valid {
			return val.Time
		}
		return nil
	}, null.Time{})
}

// EchoValidator adapts validator.Validate to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

func NewEchoValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validate: v}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	if err := ev.validate.Struct(i); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return apperrors.NewHttpError(
				http.StatusBadRequest,
				fmt.Sprintf("field %q failed validation rule %q", first.Field(), first.Tag()),
				err,
				nil,
			)
		}
		return apperrors.NewHttpError(http.StatusBadRequest, "validation failed", err, nil)
	}
	return nil
}
