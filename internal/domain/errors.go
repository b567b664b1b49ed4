package domain

import "errors"

var (
	// ErrRecordNotFound signals a missing QA record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecord signals a QA record that fails validation.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrTurnInFlight signals a second chat turn started while one is outstanding.
	ErrTurnInFlight = errors.New("turn already in flight")
)
