package errs

// Error categories shared by every use case. Specific sentinels are marked with
// one of these so callers can map a whole family to a transport status.
var (
	// caller supplied malformed or out-of-range input
	ErrInvalid = New("invalid")
	// referenced entity does not exist
	ErrNotFound = New("not found")
	// state changed under the caller (e.g. capacity taken by a concurrent request)
	ErrConflict = New("conflict")
	// unexpected store or runtime failure
	ErrInternal = New("internal")
)

// Category returns the category marker carried by err, or ErrInternal.
func Category(err error) error {
	for _, c := range []error{ErrInvalid, ErrNotFound, ErrConflict} {
		if Is(err, c) {
			return c
		}
	}
	return ErrInternal
}

// CategoryName is the lowercase label used in logs and metrics.
func CategoryName(err error) string {
	switch Category(err) {
	case ErrInvalid:
		return "invalid"
	case ErrNotFound:
		return "not_found"
	case ErrConflict:
		return "conflict"
	default:
		return "internal"
	}
}
