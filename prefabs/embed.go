package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// DefaultDir is where prefabs are looked up on disk before falling back to
// the embedded copies.
const DefaultDir = "prefabs"

var (
	dirMu sync.RWMutex
	dir   = DefaultDir
)

// SetDir points disk lookups at another directory. Empty restores
// DefaultDir.
func SetDir(d string) {
	if d == "" {
		d = DefaultDir
	}
	dirMu.Lock()
	dir = d
	dirMu.Unlock()
}

// Dir returns the directory searched before the embedded set.
func Dir() string {
	dirMu.RLock()
	defer dirMu.RUnlock()
	return dir
}

// Load reads a prefab by name. A disk copy wins so edits show up on reload.
func Load(name string) ([]byte, error) {
	return read(prefabPath(name))
}

// LoadScript reads a tengo script by name, with or without its scripts/
// prefix.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

// Exists reports whether a prefab can be loaded.
func Exists(name string) bool {
	rel := prefabPath(name)
	if _, err := os.Stat(filepath.Join(Dir(), filepath.FromSlash(rel))); err == nil {
		return true
	}
	_, err := fs.Stat(embedded, rel)
	return err == nil
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir(), filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return embedded.ReadFile(rel)
}

func prefabPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, DefaultDir+"/")
	return path.Clean(s)
}

func scriptPath(name string) string {
	s := prefabPath(name)
	s = strings.TrimPrefix(s, "scripts/")
	return path.Join("scripts", s)
}
