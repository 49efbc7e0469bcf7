package task

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tasklist/internal/models"
)

// Task-related errors
var (
	// ErrInvalidArgument is the parent of every strict-mode validation error
	ErrInvalidArgument = errors.New("invalid argument")

	// Validation errors, only returned with strict validation enabled
	ErrEmptyTitle      = fmt.Errorf("%w: task title cannot be empty", ErrInvalidArgument)
	ErrInvalidDeadline = fmt.Errorf("%w: deadline must be a yyyy-MM-dd date", ErrInvalidArgument)

	// Business logic errors, shared with the storage layer
	ErrTaskNotFound       = models.ErrTaskNotFound
	ErrInvalidStatus      = models.ErrInvalidStatus
	ErrStorageUnavailable = models.ErrStorageUnavailable
)
