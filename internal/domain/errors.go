package domain

// LookupError is the single user-facing failure bucket for weather lookups.
// Unknown city, transport failure, and bad credentials all collapse into the
// same message, matching what the page shows the user. The cause survives for
// logging via Unwrap.
type LookupError struct {
	City  string
	Cause error
}

func (e *LookupError) Error() string {
	return "No weather info for " + e.City
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}
