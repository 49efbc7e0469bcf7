package models

import "errors"

// Errors shared between the storage and service layers
var (
	// ErrTaskNotFound indicates that no task has the requested ID
	ErrTaskNotFound = errors.New("task not found")

	// ErrStorageUnavailable wraps any failure of the underlying database
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidStatus indicates a status outside Pending, Done and Overdue
	ErrInvalidStatus = errors.New("invalid status")
)
