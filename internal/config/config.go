package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	env "github.com/caarlos0/env/v11"
	homedir "github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
)

const appName = "flow"

// Default file names inside the data directory.
const (
	DefaultProjectsFile  = "projects.txt"
	DefaultTodosFile     = "todos.txt"
	DefaultEditorCommand = "code {path}"
)

// ValidThemeNames lists the theme families the styles package knows.
var ValidThemeNames = []string{"default", "dracula", "nord", "gruvbox", "catppuccin", "none"}

// ValidThemeModes lists the accepted theme.mode values.
var ValidThemeModes = []string{"auto", "light", "dark"}

// EditorConfig configures how projects are opened
type EditorConfig struct {
	Command string `toml:"command"` // template, {path} is replaced by the project path
}

// ThemeConfig selects a palette and optionally overrides single colors
type ThemeConfig struct {
	Name     string `toml:"name"`
	Mode     string `toml:"mode"` // auto, light, dark
	Primary  string `toml:"primary"`
	Accent   string `toml:"accent"`
	Success  string `toml:"success"`
	Error    string `toml:"error"`
	Muted    string `toml:"muted"`
	Normal   string `toml:"normal"`
	Info     string `toml:"info"`
	Warning  string `toml:"warning"`
	Nerdfont bool   `toml:"nerdfont"`
}

// Config holds the flow configuration
type Config struct {
	DataDir      string       `toml:"data_dir"`
	ProjectsFile string       `toml:"projects_file"`
	TodosFile    string       `toml:"todos_file"`
	Editor       EditorConfig `toml:"editor"`
	Theme        ThemeConfig  `toml:"theme"`

	// path is the file the config was loaded from, empty for defaults.
	path string
}

// envOverrides are read from the process environment and win over the file.
type envOverrides struct {
	ConfigPath string `env:"FLOW_CONFIG"`
	DataDir    string `env:"FLOW_DATA_DIR"`
	Editor     string `env:"FLOW_EDITOR"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		ProjectsFile: DefaultProjectsFile,
		TodosFile:    DefaultTodosFile,
		Editor:       EditorConfig{Command: DefaultEditorCommand},
	}
}

// Path returns the file the config was loaded from.
// Empty when no config file exists.
func (c *Config) Path() string {
	return c.path
}

// ProjectsPath returns the absolute path of the projects store.
func (c *Config) ProjectsPath() string {
	return c.dataFile(c.ProjectsFile, DefaultProjectsFile)
}

// TodosPath returns the absolute path of the todo store.
func (c *Config) TodosPath() string {
	return c.dataFile(c.TodosFile, DefaultTodosFile)
}

func (c *Config) dataFile(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, name)
	}
	return defaultDataPath(name)
}

// defaultDataPath resolves name inside the XDG data dir for flow.
func defaultDataPath(name string) string {
	path, err := gap.NewScope(gap.User, appName).DataPath(name)
	if err != nil {
		home, _ := homedir.Dir()
		return filepath.Join(home, ".local", "share", appName, name)
	}
	return path
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "~") {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// ConfigPath returns the config file location.
// FLOW_CONFIG wins over the user config directory.
func ConfigPath() (string, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return "", fmt.Errorf("parse environment: %w", err)
	}
	if ov.ConfigPath != "" {
		return homedir.Expand(ov.ConfigPath)
	}
	return gap.NewScope(gap.User, appName).ConfigPath("config.toml")
}

// Load reads the config file and applies environment overrides.
// Returns Default() if the file doesn't exist (no error).
// Returns error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, then applies environment overrides.
// On error the defaults are returned, still carrying the environment
// overrides, so FLOW_DATA_DIR keeps winning over an unusable file.
func LoadFrom(path string) (Config, error) {
	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return Default(), fmt.Errorf("parse environment: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return ov.fallback(), fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return ov.fallback(), fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.path = path
	}

	ov.apply(&cfg)
	if err := cfg.normalize(); err != nil {
		return ov.fallback(), err
	}
	return cfg, nil
}

func (ov envOverrides) apply(cfg *Config) {
	if ov.DataDir != "" {
		cfg.DataDir = ov.DataDir
	}
	if ov.Editor != "" {
		cfg.Editor.Command = ov.Editor
	}
}

// fallback returns Default() with the overrides applied.
// Overrides that fail validation are dropped.
func (ov envOverrides) fallback() Config {
	cfg := Default()
	ov.apply(&cfg)
	if err := cfg.normalize(); err != nil {
		return Default()
	}
	return cfg
}

func (c *Config) normalize() error {
	if err := ValidatePath(c.DataDir, "data_dir"); err != nil {
		return err
	}
	if c.DataDir != "" {
		expanded, err := homedir.Expand(c.DataDir)
		if err != nil {
			return fmt.Errorf("expand data_dir: %w", err)
		}
		c.DataDir = expanded
	}

	for _, f := range []struct {
		value *string
		field string
		def   string
	}{
		{&c.ProjectsFile, "projects_file", DefaultProjectsFile},
		{&c.TodosFile, "todos_file", DefaultTodosFile},
	} {
		if *f.value == "" {
			*f.value = f.def
			continue
		}
		if strings.HasPrefix(*f.value, "~") {
			expanded, err := homedir.Expand(*f.value)
			if err != nil {
				return fmt.Errorf("expand %s: %w", f.field, err)
			}
			*f.value = expanded
		}
	}

	if strings.TrimSpace(c.Editor.Command) == "" {
		c.Editor.Command = DefaultEditorCommand
	}

	if c.Theme.Mode != "" && !slices.Contains(ValidThemeModes, c.Theme.Mode) {
		return fmt.Errorf("invalid theme.mode %q: must be one of %s", c.Theme.Mode, strings.Join(ValidThemeModes, ", "))
	}
	return nil
}

const defaultConfig = `# flow configuration

# Directory holding the projects and todo files.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# FLOW_DATA_DIR overrides this value.
# If unset, the user data directory is used (~/.local/share/flow on Linux).
# data_dir = "~/.local/share/flow"

# File names inside data_dir (absolute paths are used as is)
projects_file = "projects.txt"
todos_file = "todos.txt"

# Editor used by "flow tidy open"
# {path} is replaced with the project path; if missing, the path is appended.
# The command is split like a shell would, but no shell is involved.
# FLOW_EDITOR overrides this value.
[editor]
command = "code {path}"

# Colors
# [theme]
# name = "default"    # default, dracula, nord, gruvbox, catppuccin, none
# mode = "auto"       # auto, light, dark
# nerdfont = false    # use nerd font icons
# primary = "#89b4fa" # override single colors: primary, accent, success,
#                     # error, muted, normal, info, warning
`

// Init creates a default config file at the config path
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return path, initAt(path, force)
}

func initAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}
