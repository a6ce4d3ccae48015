// Package cleaner is the cleanup pipeline executor. Validate gates a run
// on the package being a real plugin package with a plugin id; Engine.Run
// then interprets a variant's plan strictly in order (remove scaffolding
// subtrees, rename and rewrite the placeholder unit, patch wiring files),
// accumulating a report as it goes. Verify is the read-only counterpart
// that scans a package for leftover scaffolding without mutating anything.
package cleaner
