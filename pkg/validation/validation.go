package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps go-playground/validator and reports violations as a
// field → message map keyed by json tag names, so the API layer can return
// every problem of a request in one response.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the custom checks this codebase relies on.
func New() *Validator {
	v := validator.New()

	// Report fields under their json names, not the Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Let numeric tags (gt, gte) apply to decimal fields.
	v.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})

	// notblank rejects strings made of whitespace only; min alone would
	// accept "   ".
	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		panic(fmt.Sprintf("failed to register notblank validator: %v", err))
	}

	return &Validator{v: v}
}

// Struct validates s and returns one human-readable message per violated
// field. A nil map means s is valid.
func (va *Validator) Struct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = message(fe)
		}
		return fieldErrors
	}

	// Non-struct input; nothing field-level to report.
	fieldErrors["request"] = "is invalid"
	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("the %s field is required", fe.Field())
	case "notblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// decimalAsFloat lets gt/gte tags compare decimal values. The comparison
// happens at float64 precision, which is exact for anything that fits the
// decimal(10,2) price columns; values outside float64 range or precision
// validate against the rounded result.
func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
