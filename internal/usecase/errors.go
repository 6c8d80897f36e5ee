package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrRecommenderNotReady = errors.New("recommender not initialized")
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInternal            = errors.New("internal error")

	ErrNoSelectedFile = errors.New("no selected file")
	ErrNotJSONFile    = errors.New("file must be JSON format")
)
