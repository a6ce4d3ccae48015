// Package config manages user-level settings stored at ~/.descaff/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// whether the post-run guidance block is printed. Settings are read from the
// config file and command flags only, never from environment variables: the
// cleanup pipeline's behavior must not vary with ambient shell state.
package config
