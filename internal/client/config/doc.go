// Package config loads runtime configuration for the Star Market CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, optionally sourced from a .env file
//     (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-auth string      auth service endpoint URL
//	-tasks string     tasks service endpoint URL
//	-market string    marketplace service endpoint URL
//	-exchange string  exchange service endpoint URL
//	-admin string     admin service endpoint URL
//	-s string         path to the local session database
//	-spin int         roulette spin delay (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the spin delay, so values can be
// either strings like "3s" or integer nanoseconds:
//
//	{
//	  "auth_endpoint": "https://stars.example.com/api/auth",
//	  "tasks_endpoint": "https://stars.example.com/api/tasks",
//	  "marketplace_endpoint": "https://stars.example.com/api/marketplace",
//	  "exchange_endpoint": "https://stars.example.com/api/exchange",
//	  "admin_endpoint": "https://stars.example.com/api/admin",
//	  "session_file": "session.db",
//	  "roulette_spin_delay": "3s"
//	}
//
// Environment variables use the STARMARKET_ prefix; see parseEnv.
package config
