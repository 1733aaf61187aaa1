package replay

// Version is written into every recording
const Version = "1.0"

// FrameRecord records raw input for a single tick
type FrameRecord struct {
	F   int     `json:"f"`             // Frame number
	MX  float64 `json:"mx,omitempty"`  // Move X (right)
	MZ  float64 `json:"mz,omitempty"`  // Move Z (forward)
	J   bool    `json:"j,omitempty"`   // Jump held
	D   bool    `json:"d,omitempty"`   // Dash held
	R   bool    `json:"r,omitempty"`   // Run held
	Yaw float64 `json:"yaw,omitempty"` // Camera yaw in radians
	Sp  bool    `json:"sp,omitempty"`  // Respawned before this tick
}

// Data contains all data needed to replay a session
type Data struct {
	Version   string        `json:"version"`
	Stage     string        `json:"stage"`
	Timestep  float64       `json:"timestep"`
	StartTime string        `json:"startTime"`
	Frames    []FrameRecord `json:"frames"`
}
