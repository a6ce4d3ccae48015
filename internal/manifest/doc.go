// Package manifest handles reading and validation of Portalis plugin package
// manifests (package.json). It exposes lightweight probes for the two fields
// the cleanup pipeline gates on (portalis.pluginId and portalis.role), a typed
// parse of the manifest for reporting, and JSON Schema validation of the
// structure the generator is expected to emit.
package manifest
