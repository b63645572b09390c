package events

import "time"

// ValidateStart is emitted before validating an operation.
type ValidateStart struct {
	OperationName string
	OperationType string
}

// ValidateFinish is emitted after validating an operation.
type ValidateFinish struct {
	OperationName string
	OperationType string
	Errors        []error
	Duration      time.Duration
}
