package contextkeys

// RequestId is the context key carrying the per-request correlation ID.
type RequestId struct{}
