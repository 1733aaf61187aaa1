package config

// CharactersConfig is the root config for characters.json
type CharactersConfig struct {
	Characters []CharacterConfig `json:"characters" yaml:"characters"`
}

type CharacterConfig struct {
	Name  string     `json:"name" yaml:"name"`
	Mode  string     `json:"mode" yaml:"mode"`
	Spawn Vec3Config `json:"spawn" yaml:"spawn"`
	Mass  float64    `json:"mass" yaml:"mass"`

	Capsule CapsuleConfig `json:"capsule" yaml:"capsule"`

	GroundCheckRadius float64 `json:"groundCheckRadius" yaml:"groundCheckRadius"`
	// LayerMask lists the collider layers that affect movement (empty = all)
	Layers []int `json:"layers" yaml:"layers"`
	// BodyLayer is the layer of the character's own body collider
	BodyLayer int `json:"bodyLayer" yaml:"bodyLayer"`

	SpeedMultiplier      float64 `json:"speedMultiplier" yaml:"speedMultiplier"`
	JumpStrengthModifier float64 `json:"jumpStrengthModifier" yaml:"jumpStrengthModifier"`

	CameraYawDeg float64 `json:"cameraYawDeg" yaml:"cameraYawDeg"`
}

type CapsuleConfig struct {
	Height float64 `json:"height" yaml:"height"`
	Radius float64 `json:"radius" yaml:"radius"`
	Skin   float64 `json:"skin" yaml:"skin"`
}

// DefaultCapsule is the capsule used when a character leaves it unset
var DefaultCapsule = CapsuleConfig{Height: 2, Radius: 0.5, Skin: 0.1}

// WithDefaults fills unset character fields
func (c CharacterConfig) WithDefaults() CharacterConfig {
	if c.Capsule.Height <= 0 {
		c.Capsule.Height = DefaultCapsule.Height
	}
	if c.Capsule.Radius <= 0 {
		c.Capsule.Radius = DefaultCapsule.Radius
	}
	if c.Capsule.Skin <= 0 {
		c.Capsule.Skin = DefaultCapsule.Skin
	}
	if c.Mass <= 0 {
		c.Mass = 1
	}
	if c.GroundCheckRadius <= 0 {
		c.GroundCheckRadius = 0.3
	}
	if c.SpeedMultiplier == 0 {
		c.SpeedMultiplier = 1
	}
	if c.JumpStrengthModifier == 0 {
		c.JumpStrengthModifier = 1
	}
	return c
}
