package repository

import "errors"

// ErrNotFound is the sentinel wrapped by repositories when a row is missing.
var ErrNotFound = errors.New("not found")

// ErrStaleVersion is returned by GoalRepo.IncrementVersion when the goal's
// stored version no longer matches the version a batch was computed against.
var ErrStaleVersion = errors.New("goal version changed since batch was computed")
