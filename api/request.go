package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/unsaid-thoughts-backend/errs"
)

// validate holds the shared validator instance; struct tags on the
// request types in types.go define the rules.
var validate = validator.New()

// decodeAndValidate parses a JSON request body into dst and runs its
// validation tags. Parse-then-validate: a malformed body is rejected
// before any rule runs, and only the first violated rule is surfaced,
// as a 400 with a human-readable message.
func decodeAndValidate(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return errs.NewBadRequestError("malformed request body")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return errs.NewValidationError(first.Field(), validationMessage(first))
		}
		return errs.NewBadRequestError("invalid request body")
	}

	return nil
}

// validationMessage renders one violated rule as a message the client
// can show directly.
func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s too long", fe.Field())
	case "email":
		return "Invalid email address"
	case "http_url":
		return fmt.Sprintf("%s must be a valid http(s) URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
