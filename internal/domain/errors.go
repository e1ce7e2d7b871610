package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingPartNumber is returned when a product has neither a part number nor a supplier SKU
	ErrMissingPartNumber = errors.New("product has no part number")

	// ErrCheckpointFailed is returned when the per-product commit fails and the batch must stop
	ErrCheckpointFailed = errors.New("enrichment checkpoint failed")

	// ErrInvalidAIResponse is returned when an AI reply does not contain a usable JSON object
	ErrInvalidAIResponse = errors.New("invalid AI response")

	// ErrConnectorPanic is returned when a connector panics during a call
	ErrConnectorPanic = errors.New("connector panicked")

	// ErrNotConfigured is returned by connectors that are enabled but lack credentials
	ErrNotConfigured = errors.New("connector not configured")

	// ErrInvalidLabelKind is returned when a normalizer is asked for an unknown label kind
	ErrInvalidLabelKind = errors.New("invalid label kind")
)
