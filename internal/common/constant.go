package common

// RequestIDHeaderName is the HTTP header used to carry the client-generated
// request id on outbound requests, for log correlation only.
const RequestIDHeaderName = "X-Request-Id"
