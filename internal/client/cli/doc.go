// Package cli provides the interactive Star Market command-line client.
//
// It wires configuration, the persisted session, the five service API
// endpoints and an interactive REPL. Typical flow: restore the previous
// session (or prompt for login), then execute user commands.
//
// Key features:
//   - Register / Login by username, with the session persisted between runs
//   - Task list and reward verification
//   - Gift store, P2P gift market and ownership history
//   - Simulated stock exchange with portfolio and price charts
//   - Roulette, leaderboard, profile and withdrawals
//   - Admin panel (password gated) for stats, users and withdrawal review
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
