package util

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type ApiError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(fe validator.FieldError, customField *map[string]string) string {
	field := fe.Field()
	if _, ok := (*customField)[field]; ok {
		field = (*customField)[field]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "email":
		return "Invalid email"
	case "numeric":
		return fmt.Sprintf("%v must be numeric", field)
	case "min":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "strNotEmpty":
		return fmt.Sprintf("%v must not be empty or contain only whitespace characters", field)
	}

	log.Printf("Unknown tag: %v with error: %v", fe.Tag(), fe.Error())
	return fe.Error()
}

// GenerateErrorMessages extracts validation errors and returns them as an array
// of ApiError, one entry per failed field.
//
// Optional parameters:
// - customField (map[string]string): overrides field names in the messages.
// - fieldName (string): field name used for non-validator errors.
func GenerateErrorMessages(err error, optionalParams ...interface{}) []ApiError {
	var customField map[string]string
	var fieldName string

	for _, param := range optionalParams {
		switch v := param.(type) {
		case map[string]string:
			customField = v
		case string:
			fieldName = v
		}
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]ApiError, len(ve))
		for i, fe := range ve {
			field := fe.Field()
			if customField != nil {
				if customFieldName, ok := customField[field]; ok {
					field = customFieldName
				}
			}
			out[i] = ApiError{field, msgForTag(fe, &customField)}
		}
		return out
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return []ApiError{
			{
				Field:   "Unknown",
				Message: "Record not found",
			},
		}
	default:
		field := "Unknown"
		if fieldName != "" {
			field = fieldName
		}
		return []ApiError{
			{
				Field:   field,
				Message: err.Error(),
			},
		}
	}
}

// check if string is empty, after trimming spaces
// Usage: `binding:"strNotEmpty"`
func StrNotEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := strings.TrimSpace(field.String())

	return len(str) > 0
}
