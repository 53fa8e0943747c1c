package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Level is a scene: a list of prefab placements.
type Level struct {
	Name     string   `yaml:"name"`
	Entities []Entity `yaml:"entities"`
}

// Entity places one prefab. Optional fields override the prefab.
type Entity struct {
	Prefab   string      `yaml:"prefab"`
	Name     string      `yaml:"name"`
	Position Vec3        `yaml:"position"`
	Yaw      float64     `yaml:"yaw"`
	Team     *int        `yaml:"team"`
	Owner    string      `yaml:"owner"`
	Targets  []TargetRef `yaml:"targets"`
	Local    *bool       `yaml:"local"`
}

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TargetRef names another scene entity as an aim target surface.
type TargetRef struct {
	Surface string   `yaml:"surface"`
	Sockets []string `yaml:"sockets"`
}

// LoadLevel reads a level from the levels directory on disk, falling back to
// the embedded copy.
func LoadLevel(name string) (*Level, error) {
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i, e := range lvl.Entities {
		if e.Prefab == "" {
			return nil, fmt.Errorf("level %q: entity %d has no prefab", lvl.Name, i)
		}
	}
	return &lvl, nil
}
