package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
	Pitch    float64  `yaml:"pitch"`
	Yaw      float64  `yaml:"yaw"`
}

type CameraComponentSpec struct {
	FOV        float64  `yaml:"fov"`
	Near       float64  `yaml:"near"`
	EyeOffset  Vec3Spec `yaml:"eye_offset"`
	ViewWidth  int      `yaml:"view_width"`
	ViewHeight int      `yaml:"view_height"`
}

type ControllerComponentSpec struct {
	Local bool `yaml:"local"`
}

type PlayerComponentSpec struct {
	LookSpeed        float64 `yaml:"look_speed"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	MaxPitch         float64 `yaml:"max_pitch"`
}

type ColliderComponentSpec struct {
	HalfExtent Vec3Spec `yaml:"half_extent"`
	Offset     Vec3Spec `yaml:"offset"`
	ObjectType string   `yaml:"object_type"`
	Blocks     []string `yaml:"blocks"`
}

type SocketSpec struct {
	Name   string   `yaml:"name"`
	Offset Vec3Spec `yaml:"offset"`
}

type AimTargetComponentSpec struct {
	Sockets []string `yaml:"sockets"`
}

type TeamComponentSpec struct {
	Team *int `yaml:"team"`
}

type AimAssistComponentSpec struct {
	Tuning string `yaml:"tuning"`
}
