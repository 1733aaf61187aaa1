package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/kinetic/internal/application/system"
)

// Input is one recorded tick as seen by the player
type Input struct {
	Raw system.RawInput
	Yaw float64
	// Respawn moves the character back to spawn before the tick is stepped
	Respawn bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Next returns the input for the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (Input, bool) {
	if r.frame >= len(r.data.Frames) {
		return Input{}, false
	}

	fr := r.data.Frames[r.frame]
	r.frame++

	return Input{
		Raw: system.RawInput{
			MoveX: fr.MX,
			MoveZ: fr.MZ,
			Jump:  fr.J,
			Dash:  fr.D,
			Run:   fr.R,
		},
		Yaw:     fr.Yaw,
		Respawn: fr.Sp,
	}, true
}

func (r *Replayer) CurrentFrame() int { return r.frame }
func (r *Replayer) TotalFrames() int  { return len(r.data.Frames) }
func (r *Replayer) Stage() string     { return r.data.Stage }

// Timestep returns the recorded fixed step, or fallback if none was recorded
func (r *Replayer) Timestep(fallback float64) float64 {
	if r.data.Timestep > 0 {
		return r.data.Timestep
	}
	return fallback
}

// Reset rewinds the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
