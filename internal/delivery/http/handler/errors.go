package handler

import (
	"errors"

	"skill-gap/internal/dataset"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

const (
	msgNoFilePart           = "No file part"
	msgNoSelectedFile       = "No selected file"
	msgNotJSONFile          = "File must be JSON format"
	msgUserIDRequired       = "User ID is required"
	msgNotInitialized       = "Recommender not initialized. Please upload users and jobs data first."
	msgStatusNotReady       = "Recommender not initialized. Please upload users and jobs data."
	msgUserNotFound         = "User not found"
	msgJobNotFound          = "Job not found"
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidCredentials   = "Invalid credentials"
	msgAdminAuthDisabled    = "Admin authentication is not configured"
	msgRecommenderRefreshed = "Recommender refreshed with latest data"
)

var validate = validator.New()

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var ve *dataset.ValidationError
	switch {
	case errors.Is(err, usecase.ErrNoSelectedFile):
		return middleware.NewAppError(fiber.StatusBadRequest, msgNoSelectedFile, nil, err)
	case errors.Is(err, usecase.ErrNotJSONFile):
		return middleware.NewAppError(fiber.StatusBadRequest, msgNotJSONFile, nil, err)
	case errors.As(err, &ve):
		details := make([]fieldErrorResponse, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			details = append(details, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), details, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrRecommenderNotReady):
		return middleware.NewAppError(fiber.StatusInternalServerError, msgNotInitialized, nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgUserNotFound, nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, msgJobNotFound, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, msgInvalidCredentials, nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, err.Error(), nil, err)
	}
}

// validationMessage reports the first failing field of a validator error.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "validation error: " + verrs[0].Field() + " - " + verrs[0].Tag()
	}
	return msgInvalidRequestBody
}
