package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/eaglebank/transactions/shared/errs"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json field names so details match the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// decimals reach validators as their exact string form; compare them with decimalgte
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("decimalgte", func(fl validator.FieldLevel) bool {
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return value.GreaterThanOrEqual(decimal.RequireFromString(fl.Param()))
	})

	return v
}

// ValidationError is kept as an alias so handlers and tests can build details
// without importing errs directly.
type ValidationError = errs.FieldError

// ValidateRequest runs struct validation and returns one entry per failing field,
// or nil when obj is valid.
func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "", Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}

	return validationErrors
}

// Validate is ValidateRequest folded into an InvalidRequest error.
// The error message is the first failing field's message.
func Validate(obj any) error {
	details := ValidateRequest(obj)
	if details == nil {
		return nil
	}
	return errs.NewInvalidRequest(details[0].Message, details...)
}

func getErrorMsg(err validator.FieldError) string {
	if msg, ok := fieldMessages[err.Field()+"."+err.Tag()]; ok {
		return msg
	}
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	case "decimalgte":
		return "Value must be greater than or equal to " + err.Param()
	default:
		return "Invalid value"
	}
}

// fieldMessages holds the client-facing wording for the submission payloads,
// keyed by "<json field>.<tag>".
var fieldMessages = map[string]string{
	"transactionId.required": "Transaction Id is not informed",
	"amount.decimalgte":      "Transaction amount should be at least 1",
	"paymentMethod.required": "Payment method should be informed",
	"goodsType.required":     "Type of goods should be informed",
	"taxCategory.required":   "Tax category should be informed",
	"taxValue.decimalgte":    "The minimal tax rate is 0.1",
}
