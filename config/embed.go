package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultName is the embedded config used when no file is given.
const DefaultName = "skyline.yaml"

//go:embed skyline.yaml scripts/*.tengo
var FS embed.FS

// Load returns name from disk when it exists there, otherwise from the embedded defaults.
func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.FromSlash(name)); err == nil {
		return data, nil
	}
	return FS.ReadFile(cleanEmbeddedPath(name))
}

// LoadScript resolves a script path relative to the config file's directory first.
func LoadScript(configPath, name string) ([]byte, error) {
	if name == "" {
		return nil, os.ErrNotExist
	}
	if configPath != "" && !filepath.IsAbs(name) {
		local := filepath.Join(filepath.Dir(configPath), filepath.FromSlash(name))
		if data, err := os.ReadFile(local); err == nil {
			return data, nil
		}
	}
	return Load(name)
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(filepath.FromSlash(name))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanEmbeddedPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		s = after
	}
	return strings.TrimPrefix(s, "./")
}
