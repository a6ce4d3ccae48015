// Package pkgmgr detects which JavaScript package manager a plugin package
// is set up for, by the lockfile the generator left behind. The result only
// shapes the "Next steps" guidance text; the pipeline never invokes the
// package manager itself.
package pkgmgr

import (
	"os"
	"path/filepath"
)

// Manager describes a detected package manager.
type Manager struct {
	Name      string // "yarn", "pnpm", or "npm"
	RunPrefix string // command prefix for running package scripts
}

var byLockfile = []struct {
	lockfile string
	manager  Manager
}{
	{"yarn.lock", Manager{Name: "yarn", RunPrefix: "yarn"}},
	{"pnpm-lock.yaml", Manager{Name: "pnpm", RunPrefix: "pnpm run"}},
	{"package-lock.json", Manager{Name: "npm", RunPrefix: "npm run"}},
}

// Detect returns the package manager for the package rooted at root.
// Lockfiles are checked in fixed priority order; with no lockfile at all
// (common right after generation) npm is assumed.
func Detect(root string) Manager {
	for _, c := range byLockfile {
		if _, err := os.Stat(filepath.Join(root, c.lockfile)); err == nil {
			return c.manager
		}
	}
	return Manager{Name: "npm", RunPrefix: "npm run"}
}
