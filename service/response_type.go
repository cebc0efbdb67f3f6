package service

// ResponseType enumerates the service outcomes handlers map to HTTP statuses
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// IncompleteSelection response - the user must finish earlier steps first
	IncompleteSelection

	// NotFound response
	NotFound

	// Success response
	Success
)

var vals = [...]string{
	"invalid-data",
	"error",
	"incomplete-selection",
	"not-found",
	"success",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
