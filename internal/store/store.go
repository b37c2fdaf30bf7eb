// Package store implements the in-memory tables backing the API. A
// single Storage instance is created at startup and handed to every
// controller; all state lives for the lifetime of the process.
package store

import (
	"errors"
	"sync"

	"jobportal-backend/internal/model"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrJobNotFound is returned when a job id has no record
	ErrJobNotFound = errors.New("job not found")
	// ErrApplicationNotFound is returned when an application id has no record
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDuplicateApplication is returned when a seeker applies to the same job twice
	ErrDuplicateApplication = errors.New("already applied to this job")
)

// Storage holds the user, job and application tables plus their id
// counters. A single mutex guards all of them; id allocation and the
// duplicate-application check happen under it, so neither can race.
type Storage struct {
	mu sync.RWMutex

	users        map[string]model.User
	jobs         map[int]model.Job
	applications map[int]model.Application

	lastJobID int
	lastAppID int
}

// New constructs an empty Storage.
func New() *Storage {
	return &Storage{
		users:        make(map[string]model.User),
		jobs:         make(map[int]model.Job),
		applications: make(map[int]model.Application),
	}
}

// Health reports the liveness payload served on the root endpoint.
func (s *Storage) Health() map[string]string {
	return map[string]string{"message": "Healthy"}
}
