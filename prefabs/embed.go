package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskDir is where edited tables and scripts are looked for before falling
// back to the copies compiled into the binary.
const DiskDir = "prefabs"

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a data table by file name.
func Load(name string) ([]byte, error) {
	return read(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a script by file name; a leading prefabs/ or scripts/ is
// optional.
func LoadScript(name string) ([]byte, error) {
	return read(ScriptsFS, cleanScriptPath(name))
}

func read(fallback embed.FS, rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return fallback.ReadFile(rel)
}

// cleanPrefabPath makes name relative to the prefabs directory.
func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(name), DiskDir+"/")
}

// cleanScriptPath makes name relative to the prefabs directory and places it
// under scripts/.
func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	rel := strings.TrimPrefix(cleanPrefabPath(name), "scripts/")
	return path.Join("scripts", rel)
}
