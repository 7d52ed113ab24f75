package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned when no entry exists for a scope/key pair.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrSessionNotFound is returned when no bearer token is stored.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrSessionCorrupted is returned when the stored token cannot be
	// unsealed, e.g. after the storage key was changed.
	ErrSessionCorrupted = errors.New("local session is corrupted")

	// ErrDraftNotFound is returned when no post draft is stored.
	ErrDraftNotFound = errors.New("draft was not found")

	// ErrHandoffNotFound is returned when no article was handed over to the
	// editor.
	ErrHandoffNotFound = errors.New("no article was handed over")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
