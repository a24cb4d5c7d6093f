package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"

	"github.com/aaravmahajanofficial/pod-storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

// APIResponse is the envelope every JSON endpoint returns.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	_ = WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error maps an AppError to its status and code. Anything else is a 500 whose
// cause is not exposed.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		_ = WriteJson(w, http.StatusInternalServerError, APIResponse{
			Error: &ErrorResponse{Code: errors.ErrCodeInternal, Message: "An unexpected error occurred"},
		})

		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	_ = WriteJson(w, appErr.StatusCode, APIResponse{Error: body})
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, err := range errs {
		details = append(details, describe(err))
	}

	_ = WriteJson(w, http.StatusBadRequest, APIResponse{
		Error: &ErrorResponse{Code: errors.ErrCodeValidation, Message: "Validation failed", Details: details},
	})
}

func describe(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", field)
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", field)
	case "iso3166_1_alpha2":
		return fmt.Sprintf("Field %s must be a two-letter country code", field)
	case "len":
		return fmt.Sprintf("Field %s must be exactly %s characters", field, err.Param())
	case "alpha":
		return fmt.Sprintf("Field %s must contain letters only", field)
	case "bcp47_language_tag":
		return fmt.Sprintf("Field %s must be a language tag such as en or cs", field)
	case "min", "max":
		bound := "at least"
		if err.Tag() == "max" {
			bound = "at most"
		}

		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf("Field %s must be %s %s characters", field, bound, err.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf("Field %s must have %s %s entries", field, bound, err.Param())
		default:
			return fmt.Sprintf("Field %s must be %s %s", field, bound, err.Param())
		}
	case "gt":
		return fmt.Sprintf("Field %s must be greater than %s", field, err.Param())
	default:
		return fmt.Sprintf("Field %s is invalid: %s=%s", field, err.Tag(), err.Param())
	}
}
