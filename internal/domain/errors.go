package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrSubjectGone  = errors.New("subject not found or deleted")
	ErrRecordGone   = errors.New("sleep record not found or deleted")
	ErrFutureDate   = errors.New("record date is in the future")
	ErrOutOfRange   = errors.New("value out of range")
	ErrFormat       = errors.New("invalid format")
	ErrInvalidInput = errors.New("invalid input")
)
