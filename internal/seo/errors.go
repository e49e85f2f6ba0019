package seo

import "errors"

var (
	// ErrRemoteCall indicates the generation service call failed or timed out.
	ErrRemoteCall = errors.New("remote call failed")
	// ErrMalformedResponse indicates no JSON object could be extracted from the reply.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrSchemaViolation indicates the reply parsed but is missing fields or breaks a value constraint.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrImageGenerationFailed indicates an image reply carried no image data.
	ErrImageGenerationFailed = errors.New("image generation failed")
	// ErrInvalidInput indicates a request failed its preconditions before any remote call was made.
	ErrInvalidInput = errors.New("invalid input")
)
