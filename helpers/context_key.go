package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeySessionID is a specific key for identifying "session_id" contexts added to the http request
var ContextKeySessionID = ContextKey("session_id")
