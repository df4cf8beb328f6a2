package common

// RequestIDHeaderName is the HTTP header carrying the per-request id that is
// echoed back to clients and attached to access log records.
const RequestIDHeaderName = "X-Request-Id"
