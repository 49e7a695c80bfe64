package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFoundLocal is returned when Get targets a key absent from the
	// requested tree of the local encrypted store.
	ErrNotFoundLocal = errors.New("key not found")

	// ErrAccountExists is returned when registering an account whose email
	// already has a password file on the server.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the given
	// email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrVaultNotFound is returned when an update/delete targets a vault id
	// the server has no row for.
	ErrVaultNotFound = errors.New("vault not found")

	// ErrRecordNotFound is returned when an update/delete targets a record
	// id the server has no row for.
	ErrRecordNotFound = errors.New("record not found")

	// ErrOwnedByAnotherAccount is returned when a PUT-upsert targets an id
	// that exists but belongs to a different account (for a record: a
	// different vault). The HTTP handlers answer it with 409 Conflict, which
	// the sync engine treats as a terminal failure; the row is never
	// silently overwritten.
	ErrOwnedByAnotherAccount = errors.New("id owned by another account")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
