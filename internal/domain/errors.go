package domain

import "errors"

var (
	ErrMissingCredential = errors.New("GEMINI_API_KEY not found; set the environment variable or pass --api-key")
	ErrBriefNotFound     = errors.New("campaign brief not found")
	ErrUnsupportedFormat = errors.New("brief must be JSON or YAML format")
	ErrNoImageReturned   = errors.New("no image data in response")
	ErrInvalidVariants   = errors.New("variants must be at least 1")
	ErrUnsupportedModel  = errors.New("unsupported model")
)
