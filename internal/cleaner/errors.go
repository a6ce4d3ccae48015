package cleaner

import "fmt"

// ValidationKind classifies why a package failed validation.
type ValidationKind string

const (
	// MissingDirectory: the target path does not exist or is not a directory.
	MissingDirectory ValidationKind = "missing-directory"
	// MissingManifest: package.json is absent or unreadable.
	MissingManifest ValidationKind = "missing-manifest"
	// MissingIdentifier: the manifest has no portalis.pluginId value.
	MissingIdentifier ValidationKind = "missing-identifier"
	// UnknownRole: portalis.role names no cleanup plan; only raised when
	// the variant is auto-detected.
	UnknownRole ValidationKind = "unknown-role"
)

// ValidationError is a fatal pre-mutation failure. Nothing in the package
// has been touched when one of these is returned.
type ValidationError struct {
	Kind ValidationKind
	Path string
	Hint string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingDirectory:
		return fmt.Sprintf("%s is not a plugin package directory", e.Path)
	case MissingManifest:
		return fmt.Sprintf("%s has no readable package.json (%s)", e.Path, e.Hint)
	case MissingIdentifier:
		return fmt.Sprintf("%s: package.json has no portalis.pluginId (%s)", e.Path, e.Hint)
	case UnknownRole:
		return fmt.Sprintf("%s: %s", e.Path, e.Hint)
	}
	return fmt.Sprintf("%s: invalid plugin package", e.Path)
}

// MutationError is an unexpected filesystem failure partway through a run.
// Earlier steps are not rolled back; the partial report says what completed.
type MutationError struct {
	Step string
	Path string
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }
