// Package cli defines the Cobra command tree for the descaff CLI. Each file
// in this package registers one top-level command (clean, frontend, backend,
// verify, plan, config, version) with the root command. Command
// implementations delegate to internal packages for the actual cleanup logic
// and only handle flag parsing, I/O formatting, and exit status.
package cli
