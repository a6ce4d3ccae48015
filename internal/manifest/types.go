package manifest

// FileName is the manifest file name inside every plugin package.
const FileName = "package.json"

// Manifest models the subset of a plugin package.json that descaff reads.
// Fields the generator emits but the pipeline ignores are dropped on parse;
// the manifest file itself is never written back.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description,omitempty"`
	Private         bool              `json:"private,omitempty"`
	Main            string            `json:"main,omitempty"`
	Portalis        *PortalisMeta     `json:"portalis,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// PortalisMeta is the portal-specific metadata block the generator writes
// into package.json. PluginID names the plugin; Role selects the pipeline
// variant that cleans it.
type PortalisMeta struct {
	PluginID string `json:"pluginId"`
	Role     string `json:"role"`
}

// Role constants for the portalis.role discriminator field.
const (
	RoleFrontend = "frontend-plugin"
	RoleBackend  = "backend-plugin"
)

// ValidRoles contains all valid portalis.role values.
var ValidRoles = []string{RoleFrontend, RoleBackend}
