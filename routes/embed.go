package routes

import (
	"embed"
	"os"
	"path/filepath"
	"time"
)

const TableFile = "routes.yaml"

// Dir is checked before the embedded copy so edits apply without a rebuild.
var Dir = "routes"

//go:embed *.yaml
var RoutesFS embed.FS

func Load(name string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(name)); err == nil {
		return data, nil
	}
	return RoutesFS.ReadFile(filepath.ToSlash(name))
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(name))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func diskPath(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(name))
}
