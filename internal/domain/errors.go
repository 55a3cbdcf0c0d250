package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPayload   = errors.New("invalid payload")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileNotFound  = errors.New("profile not found")
)

// StoreError wraps a failure from the relational store. The underlying
// message is surfaced to the caller; reads are cheap to re-issue so there
// is no retry logic anywhere in this core.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
