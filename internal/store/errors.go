package store

import "errors"

// Sentinel errors returned by journal repositories to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrMoodEntryNotSaved is returned when an INSERT of a mood entry
	// completes without error but the number of affected rows is zero.
	ErrMoodEntryNotSaved = errors.New("mood entry was not saved")

	// ErrProgressUpdateNotSaved is returned when an INSERT of a progress
	// update completes without error but the number of affected rows is zero.
	ErrProgressUpdateNotSaved = errors.New("progress update was not saved")

	// ErrReminderNotFound is returned when an update or delete targets a
	// reminder (identified by client_side_id) that does not exist in the
	// journal.
	ErrReminderNotFound = errors.New("reminder was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan journal row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan journal rows")
)
