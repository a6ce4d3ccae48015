// Package naming derives source-level component names from plugin
// identifiers. The generator emits kebab-case plugin ids; renamed source
// units use the PascalCase form plus a role suffix (e.g. "my-service"
// becomes "MyServicePage" for a frontend page component).
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IDPattern is the naming convention the generator enforces for plugin ids.
// Ids that fail it are still cleaned; the pipeline only warns.
var IDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var titler = cases.Title(language.English, cases.NoLower)

// Base converts a plugin id to its PascalCase base name: split on "-",
// capitalize the first letter of each segment, concatenate. Pure function
// of its input; empty segments (doubled separators) are dropped.
func Base(pluginID string) string {
	var b strings.Builder
	for _, seg := range strings.Split(pluginID, "-") {
		if seg == "" {
			continue
		}
		b.WriteString(titler.String(seg))
	}
	return b.String()
}

// Component returns the final component name for a plugin id: the
// PascalCase base with the variant's role suffix appended.
// Component("my-service", "Page") == "MyServicePage".
func Component(pluginID, suffix string) string {
	return Base(pluginID) + suffix
}

// Conventional reports whether a plugin id follows the generator's
// kebab-case convention.
func Conventional(pluginID string) bool {
	return IDPattern.MatchString(pluginID)
}
