package config

// SimulationConfig is the root config for simulation.json
type SimulationConfig struct {
	Display  DisplayConfig  `json:"display" yaml:"display"`
	Timestep TimestepConfig `json:"timestep" yaml:"timestep"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int     `json:"screenHeight" yaml:"screenHeight"`
	Scale        int     `json:"scale" yaml:"scale"`
	PixelsPerM   float64 `json:"pixelsPerMeter" yaml:"pixelsPerMeter"`
}

type TimestepConfig struct {
	// FixedDelta is the simulation tick length in seconds
	FixedDelta float64 `json:"fixedDelta" yaml:"fixedDelta"`
}

type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// ModesConfig is the root config for modes.json / modes.yaml
type ModesConfig struct {
	Modes map[string]ModeConfig `json:"modes" yaml:"modes"`
}

// ModeConfig describes one movement mode. Kind selects the implementation.
type ModeConfig struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Speed    SpeedConfig    `json:"speed" yaml:"speed"`
	Jump     JumpConfig     `json:"jump" yaml:"jump"`
	Gravity  GravityConfig  `json:"gravity" yaml:"gravity"`
	Air      AirConfig      `json:"air" yaml:"air"`
	Grounded GroundedConfig `json:"grounded" yaml:"grounded"`
}

type SpeedConfig struct {
	Walk float64 `json:"walk" yaml:"walk"`
	Run  float64 `json:"run" yaml:"run"`
}

type JumpConfig struct {
	Strength float64 `json:"strength" yaml:"strength"`
	// HoldCurve scales Strength by how long the button has been held
	HoldCurve []KeyframeConfig `json:"holdCurve" yaml:"holdCurve"`
	MaxJumps  int              `json:"maxJumps" yaml:"maxJumps"`
}

type GravityConfig struct {
	Strength     float64 `json:"strength" yaml:"strength"`
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"` // 0 disables the clamp
	CoyoteTime   float64 `json:"coyoteTime" yaml:"coyoteTime"`
	// CoyoteCurve scales gravity by time since the character left the ground
	CoyoteCurve []KeyframeConfig `json:"coyoteCurve" yaml:"coyoteCurve"`
}

type AirConfig struct {
	SteeringStrength float64 `json:"steeringStrength" yaml:"steeringStrength"`
	// SteeringCurve fades steering authority in after leaving the ground
	SteeringCurve []KeyframeConfig `json:"steeringCurve" yaml:"steeringCurve"`
}

type GroundedConfig struct {
	// InertiaDamping is the per-second rate horizontal inertia decays while grounded
	InertiaDamping float64 `json:"inertiaDamping" yaml:"inertiaDamping"`
}

type KeyframeConfig struct {
	T float64 `json:"t" yaml:"t"`
	V float64 `json:"v" yaml:"v"`
}

type Vec3Config struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}
