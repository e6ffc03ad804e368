package errs

// Error categories surfaced by the use case layer. Concrete errors are marked
// with one of these so handlers can map them without knowing every sentinel.
var (
	ErrUnauthenticated = New("unauthenticated")
	ErrForbidden       = New("forbidden")
	ErrNotFound        = New("not found")
	ErrInvalidInput    = New("invalid input")
	ErrConflict        = New("conflict")
	ErrStorageFailure  = New("storage failure")
)
