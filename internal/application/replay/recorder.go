package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/kinetic/internal/application/system"
)

// ErrEmpty is returned when saving a recording with no frames
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      Data
	recording bool
	frame     int
	respawn   bool
}

// NewRecorder creates a recorder for a session on stage stepped at timestep
func NewRecorder(stage string, timestep float64) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			Stage:     stage,
			Timestep:  timestep,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameRecord, 0, 3600), // ~1 minute at 60 ticks per second
		},
		recording: true,
	}
}

// RecordFrame records a single tick's raw input and camera yaw
func (r *Recorder) RecordFrame(raw system.RawInput, yaw float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameRecord{
		F:   r.frame,
		MX:  raw.MoveX,
		MZ:  raw.MoveZ,
		J:   raw.Jump,
		D:   raw.Dash,
		R:   raw.Run,
		Yaw: yaw,
		Sp:  r.respawn,
	})
	r.respawn = false
	r.frame++
}

// MarkRespawn flags the next recorded frame as starting from a respawn
func (r *Recorder) MarkRespawn() {
	if r.recording {
		r.respawn = true
	}
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := json.NewEncoder(file).Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

func (r *Recorder) IsRecording() bool { return r.recording }
func (r *Recorder) FrameCount() int   { return len(r.data.Frames) }
func (r *Recorder) Data() Data        { return r.data }

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
