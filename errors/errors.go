/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrAuthentication is returned when credentials are invalid or lack table-read permission
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound is returned when no records match the requested experiment
	ErrNotFound = errors.New("experiment data not found")

	// ErrRemoteService is returned on transient table-store failures or malformed responses
	ErrRemoteService = errors.New("remote service failure")

	// ErrUsage is returned for invalid command-line arguments, before any remote call
	ErrUsage = errors.New("invalid usage")
)

// AuthenticationError represents a credential or permission failure
type AuthenticationError struct {
	Op  string
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %v", e.Op, e.Err)
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NotFoundError represents an experiment (or one of its tables) with no matching records
type NotFoundError struct {
	Experiment string
	Table      string
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Experiment != "" && e.Table != "":
		return fmt.Sprintf("no records found for experiment %q in table %q", e.Experiment, e.Table)
	case e.Table != "":
		return fmt.Sprintf("table %q not found", e.Table)
	default:
		return fmt.Sprintf("no records found for experiment %q", e.Experiment)
	}
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RemoteServiceError represents a transient remote table-store failure
type RemoteServiceError struct {
	Op    string
	Table string
	Err   error
}

func (e *RemoteServiceError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s on table %q: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteServiceError) Is(target error) bool {
	return target == ErrRemoteService
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// UsageError represents invalid command-line input, caught before any remote call
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// Helper functions for creating errors

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(op string, err error) error {
	return &AuthenticationError{Op: op, Err: err}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(experiment, table string) error {
	return &NotFoundError{Experiment: experiment, Table: table}
}

// NewRemoteServiceError creates a new RemoteServiceError
func NewRemoteServiceError(op, table string, err error) error {
	return &RemoteServiceError{Op: op, Table: table, Err: err}
}

// NewUsageError creates a new UsageError
func NewUsageError(format string, args ...interface{}) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// IsAuthentication checks if an error is an authentication error
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRemoteService checks if an error is a remote service error
func IsRemoteService(err error) bool {
	return errors.Is(err, ErrRemoteService)
}

// IsUsage checks if an error is a usage error
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}
