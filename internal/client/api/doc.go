// Package api contains typed HTTP JSON clients for the five remote Star
// Market services: auth, tasks, marketplace, exchange, and admin.
//
// Every server action maps to exactly one method issuing a single request.
// There are no retries, no timeouts beyond the transport defaults, and no
// idempotency keys. Failures (validation, network, or server-rejected
// business rules) surface as a *Error carrying the server-provided message
// string verbatim; callers show it to the user unchanged.
package api
