package scheduler

import "errors"

// Domain-specific errors for the scheduler package.
var (
	ErrEmptyPrompt  = errors.New("empty prompt provided")
	ErrNoPrompt     = errors.New("no prompt provided")
	ErrMissingField = errors.New("missing required field")
	ErrTaskNotFound = errors.New("task not found")
	ErrStoreSave    = errors.New("failed to save tasks")
)
