package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Dir and ScriptsDir are where edited copies of the embedded files live. A
// file there shadows the embedded one of the same name.
const (
	Dir        = "prefabs"
	ScriptsDir = "prefabs/scripts"
)

//go:embed *.yaml
var PrefabsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a prefab or tuning file.
func Load(name string) ([]byte, error) {
	return readOverride(PrefabsFS, cleanPrefabPath(name))
}

// LoadScript reads a curve script.
func LoadScript(name string) ([]byte, error) {
	return readOverride(ScriptsFS, cleanScriptPath(name))
}

// Names lists the embedded prefab and tuning files.
func Names() []string {
	entries, err := PrefabsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isSpecFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func readOverride(fsys embed.FS, clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fsys.ReadFile(clean)
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(p), Dir+"/")
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	for _, prefix := range []string{ScriptsDir + "/", Dir + "/", "scripts/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
			break
		}
	}
	return path.Join("scripts", s)
}
