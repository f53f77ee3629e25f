package common

// RequestIDHeaderName carries the per-request correlation id on responses.
const RequestIDHeaderName = "X-Request-ID"

// PlaceholderNotAvailable is printed in fixed-layout exports for absent optional fields.
const PlaceholderNotAvailable = "not available"
