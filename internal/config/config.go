package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of lume.yaml.
type Config struct {
	// DesktopDirs are scanned in order for .desktop entries. Earlier
	// directories win identity collisions.
	DesktopDirs []string `yaml:"desktop_dirs,omitempty"`
	// ExcludePathSegments removes $PATH directories containing any of these
	// path segments from the executable scan.
	ExcludePathSegments []string `yaml:"exclude_path_segments,omitempty"`
	// FileRoot is the root of the file-search walk.
	FileRoot string `yaml:"file_root,omitempty"`
	// FileDepth limits how deep the file-search walk descends below FileRoot.
	FileDepth int `yaml:"file_depth,omitempty"`
	// ResultLimit is the default maximum number of ranked results.
	ResultLimit int `yaml:"result_limit,omitempty"`
	// Terminal is the command prefix used to wrap terminal applications,
	// e.g. ["kitty", "-e"].
	Terminal []string `yaml:"terminal,omitempty"`
	// Editor opens file results inside the terminal wrapper.
	Editor string `yaml:"editor,omitempty"`
	// SeedCommand is a shell line whose output lists package-owned binaries,
	// one "package /path/to/binary" pair per line.
	SeedCommand string `yaml:"seed_command,omitempty"`
	// SeedScore is the base score assigned to every seeded binary.
	SeedScore int `yaml:"seed_score,omitempty"`
}

// ConfigDir returns the per-user configuration directory for lume.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "lume"), nil
}

// ConfigPath returns the absolute path to lume.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lume.yaml"), nil
}

// CacheDir returns the per-user cache directory for lume.
func CacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine cache directory: %w", err)
	}
	return filepath.Join(dir, "lume"), nil
}

// DataDir returns the per-user data directory for lume, honoring
// XDG_DATA_HOME and falling back to ~/.local/share.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "lume"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "lume"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the configuration used when lume.yaml is absent.
func DefaultConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		DesktopDirs: []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
			"/home/linuxbrew/.linuxbrew/share/applications",
			filepath.Join(home, ".local", "share", "applications"),
		},
		ExcludePathSegments: []string{"sbin", "games", "lib"},
		FileRoot:            home,
		FileDepth:           5,
		ResultLimit:         50,
		Terminal:            []string{"kitty", "-e"},
		Editor:              "nvim",
		SeedCommand:         "pacman -Qqe | xargs pacman -Ql | grep '/usr/bin/'",
		SeedScore:           50,
	}, nil
}

// Load reads and parses lume.yaml. A missing file is not an error: lume
// works out of the box, so absence yields DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig()
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	def, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	cfg := *def
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.FileRoot, err = ExpandPath(cfg.FileRoot)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to lume.yaml, creating the directory.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
