// Package config handles loading and validation of flow configuration.
//
// Configuration is read from config.toml in the user config directory
// (~/.config/flow/config.toml on Linux) with environment variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - FLOW_CONFIG env var: alternative config file location
//   - FLOW_DATA_DIR env var: directory holding the record files
//   - FLOW_EDITOR env var: editor command template
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - data_dir: directory for projects_file and todos_file (absolute or ~/...)
//   - projects_file: saved projects, one path per line (default: projects.txt)
//   - todos_file: todos as description:status lines (default: todos.txt)
//   - editor.command: template used to open a project (default: "code {path}")
//   - theme: palette name, light/dark mode and color overrides
//
// Record file locations are resolved once at startup and never derived
// from the executable's location.
package config
