package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Path returns the manifest location for a package root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Valid reports whether data is well-formed JSON.
func Valid(data []byte) bool {
	return gjson.ValidBytes(data)
}

// PluginID extracts the nested portalis.pluginId field without a full
// parse. Returns "" when the field is absent, empty, or not a string.
func PluginID(data []byte) string {
	v := gjson.GetBytes(data, "portalis.pluginId")
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// Role extracts the nested portalis.role field without a full parse.
// Returns "" when the field is absent or not a string.
func Role(data []byte) string {
	v := gjson.GetBytes(data, "portalis.role")
	if v.Type != gjson.String {
		return ""
	}
	return v.String()
}

// Parse unmarshals raw manifest bytes into a Manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
