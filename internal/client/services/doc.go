// Package services contains application services for the Star Market CLI.
// They sit between the command handlers and the API clients: local input
// validation short-circuits before any request is sent, and the cached
// session record is always overwritten with server-confirmed truth, never
// with locally computed balances (the simulated roulette being the one
// explicit exception).
package services
