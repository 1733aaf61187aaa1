package config

// StageConfig is the root config for stages/<name>.json|yaml
type StageConfig struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Spawn     Vec3Config       `json:"spawn" yaml:"spawn"`
	Colliders []ColliderConfig `json:"colliders" yaml:"colliders"`
}

// ColliderConfig is an axis-aligned box. Parent refers to another collider's ID.
type ColliderConfig struct {
	ID      uint32     `json:"id" yaml:"id"`
	Name    string     `json:"name" yaml:"name"`
	Parent  uint32     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Layer   int        `json:"layer" yaml:"layer"`
	Trigger bool       `json:"trigger,omitempty" yaml:"trigger,omitempty"`
	Min     Vec3Config `json:"min" yaml:"min"`
	Max     Vec3Config `json:"max" yaml:"max"`
}
