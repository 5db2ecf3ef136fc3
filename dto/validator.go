package dto

import (
	"errors"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("user_level", validateUserLevel)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateUserLevel(fl validator.FieldLevel) bool {
	return model.UserLevel(fl.Field().String()).Valid()
}

type ValidationError struct {
	Field   string `json:"field" example:"content"`
	Message string `json:"message" example:"content is required"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errs []ValidationError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "email":
				message = "Invalid email format"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			case "url":
				message = fieldError.Field() + " must be a valid URL"
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "user_level":
				message = fieldError.Field() + " must be one of: BEGINNER INTERMEDIATE ADVANCED FLUENT"
			default:
				message = fieldError.Field() + " is invalid"
			}

			errs = append(errs, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errs
}

type Validator interface {
	Validate() error
}
