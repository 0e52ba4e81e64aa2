package request

import "errors"

// Request domain errors
var (
	ErrRequestNotFound     = errors.New("request not found")
	ErrUnknownType         = errors.New("unknown request type")
	ErrAlreadyProcessed    = errors.New("request has already been reviewed")
	ErrInvalidReviewAction = errors.New("invalid review action")
	ErrCommentRequired     = errors.New("reject and correction require a comment")
	ErrMalformedPayload    = errors.New("request payload is missing type-required fields")
)
