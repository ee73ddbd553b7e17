// Package dto holds the HTTP request/response wire shapes for the
// optimizer service's two commands, test-connection and optimize-timetable.
package dto

import (
	"timetable-optimizer/internal/ingest"
	"timetable-optimizer/internal/optimizer"
)

// TestConnectionResponse answers the health-check command.
type TestConnectionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OptimizeTimetableRequest wraps the ingest payload plus optional
// per-request overrides of the search parameters and RNG seed.
type OptimizeTimetableRequest struct {
	ingest.TimetableDataWire

	Seed *int64 `json:"seed,omitempty"`

	EvolveRuns            int `json:"evolve_runs,omitempty"`
	EvolveStagnationLimit int `json:"evolve_stagnation_limit,omitempty"`
	AnnealIterations      int `json:"anneal_iterations,omitempty"`
}

// OptimizeTimetableResponse is the success envelope: the optimizer result
// under "data", framed by status and message.
type OptimizeTimetableResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    *optimizer.Result `json:"data"`
}

// ErrorResponse is returned for both DataError and InvariantViolation
// failures. Status is "error" for both; the HTTP status code (422 for a
// DataError, 500 for other failures) distinguishes them.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
