package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when a caller supplies a value the operation can't accept.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature is not supported by the configured backend.
	Unsupported = ErrorKind("Unsupported")

	// Unavailable is returned when a remote dependency (node, oracle) can't be reached.
	Unavailable = ErrorKind("Unavailable")

	// Timeout is returned when an operation didn't finish in time.
	Timeout = ErrorKind("Timeout")

	OverflowUint64 = ErrorKind("overflow uint64")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
