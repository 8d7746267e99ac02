package validate

// Package validate checks user-supplied dates and file names before any
// network call is made. All checks are pure and return sentinel errors that
// callers can test with errors.Is.
