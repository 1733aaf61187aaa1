package sandbox

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kinetic/internal/application/replay"
	"github.com/younwookim/kinetic/internal/application/scene"
	"github.com/younwookim/kinetic/internal/application/state"
	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/ecs"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
	"github.com/younwookim/kinetic/internal/logger"
)

const dt = 1.0 / 60

// createTestWorld builds the demo stage and characters from the shipped configs
func createTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	loader := config.NewLoader("../../../../cmd/sandbox/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	stage, err := config.BuildStage(stageCfg)
	require.NoError(t, err)
	modes, err := system.BuildModes(cfg.Modes)
	require.NoError(t, err)

	w := ecs.NewWorld()
	w.SetLogger(logger.Discard())
	w.Stage = stage
	_, err = w.BuildCharacters(cfg.Characters, modes, dt)
	require.NoError(t, err)
	return w
}

func createTestSandbox(t *testing.T, opts Options) *Sandbox {
	t.Helper()
	opts.StageName = "demo"
	opts.ScreenW = 480
	opts.ScreenH = 320
	opts.Timestep = dt
	s := New(createTestWorld(t), opts)
	s.SetLogger(logger.Discard())
	return s
}

func TestSandbox_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Sandbox)(nil)
}

func TestNewSandbox(t *testing.T) {
	s := createTestSandbox(t, Options{})

	assert.Equal(t, ecs.EntityID(1), s.Player())
	assert.Equal(t, state.StateRunning, s.State())
	assert.Nil(t, s.Recorder())
	assert.Equal(t, "sandbox", s.Name())
}

func TestSandbox_Update_ReturnsNilWhenRunning(t *testing.T) {
	s := createTestSandbox(t, Options{})

	next, err := s.Update(dt)

	assert.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 1, s.Frame())
}

func TestSandbox_StepMovesPlayer(t *testing.T) {
	s := createTestSandbox(t, Options{})
	start := s.world.Body[s.Player()].Position

	for i := 0; i < 30; i++ {
		s.Step(system.RawInput{MoveX: 1})
	}

	assert.Equal(t, 30, s.Frame())
	assert.Greater(t, s.LastReport().Position.X(), start.X())
	assert.Equal(t, s.world.Body[s.Player()].Position, s.LastReport().Position)
}

func TestSandbox_Pause(t *testing.T) {
	s := createTestSandbox(t, Options{})

	s.TogglePause()
	assert.Equal(t, state.StatePaused, s.State())

	_, err := s.Update(dt)
	assert.NoError(t, err)
	assert.Equal(t, 0, s.Frame(), "paused sandbox does not step")

	s.TogglePause()
	assert.Equal(t, state.StateRunning, s.State())
}

func TestSandbox_RecordAndSaveOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	s := createTestSandbox(t, Options{RecordPath: path})
	require.NotNil(t, s.Recorder())

	for i := 0; i < 10; i++ {
		s.Step(system.RawInput{MoveZ: 1, Jump: i < 3})
	}
	s.OnExit()

	assert.Equal(t, state.StateFinished, s.State())
	assert.Nil(t, s.Recorder(), "recording saved once")

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 10)
	assert.Equal(t, "demo", data.Stage)
	assert.True(t, data.Frames[0].J)
	assert.False(t, data.Frames[9].J)
}

func TestSandbox_Replay(t *testing.T) {
	frames := make([]replay.FrameRecord, 30)
	for i := range frames {
		frames[i] = replay.FrameRecord{F: i, MX: 1}
	}
	s := createTestSandbox(t, Options{Replayer: replay.NewReplayer(replay.Data{Timestep: dt, Frames: frames})})
	require.Equal(t, state.StateReplaying, s.State())

	s.TogglePause()
	s.TogglePause()
	assert.Equal(t, state.StateReplaying, s.State(), "resumes into replay")

	for i := 0; i < 31; i++ {
		_, err := s.Update(dt)
		require.NoError(t, err)
	}

	assert.Equal(t, state.StateFinished, s.State())
	assert.Equal(t, 30, s.Frame())
	assert.Greater(t, s.LastReport().Position.X(), 0.5)
}

func TestSandbox_ReplayMatchesHeadless(t *testing.T) {
	frames := make([]replay.FrameRecord, 90)
	for i := range frames {
		frames[i] = replay.FrameRecord{F: i, MZ: 1, J: i > 20 && i < 40, Yaw: 0.3}
	}
	data := replay.Data{Timestep: dt, Frames: frames}

	s := createTestSandbox(t, Options{Replayer: replay.NewReplayer(data)})
	for s.State() != state.StateFinished {
		_, err := s.Update(dt)
		require.NoError(t, err)
	}

	want, err := replay.RunHeadless(createTestWorld(t), replay.NewReplayer(data), dt)
	require.NoError(t, err)
	assert.Equal(t, want.Position, s.LastReport().Position)
}

func TestSandbox_RespawnIsRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "respawn.json")
	live := createTestSandbox(t, Options{RecordPath: path})
	for i := 0; i < 60; i++ {
		if i == 40 {
			live.Respawn()
		}
		live.Step(system.RawInput{MoveX: 1, Jump: i > 10 && i < 20})
	}
	want := live.LastReport()
	live.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 60)
	assert.True(t, data.Frames[40].Sp)

	s := createTestSandbox(t, Options{Replayer: replay.NewReplayer(*data)})
	for s.State() != state.StateFinished {
		_, err := s.Update(dt)
		require.NoError(t, err)
	}
	assert.Equal(t, want.Position, s.LastReport().Position)
	assert.Equal(t, want.Velocity, s.LastReport().Velocity)
}

func TestView_Projection(t *testing.T) {
	vw := view{
		bounds:  image.Rect(0, 0, 200, 100),
		u:       axisX,
		v:       axisY,
		ppm:     10,
		centerU: 1,
		centerV: 2,
	}

	x, y := vw.toScreen(1, 2)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	// +v is up on screen
	x, y = vw.toScreen(2, 3)
	assert.Equal(t, 110.0, x)
	assert.Equal(t, 40.0, y)

	rx, ry, rw, rh := vw.boxRect(entity.Box{Min: mgl64.Vec3{0, 2, 0}, Max: mgl64.Vec3{2, 4, 0}})
	assert.Equal(t, 90.0, rx)
	assert.Equal(t, 30.0, ry)
	assert.Equal(t, 20.0, rw)
	assert.Equal(t, 20.0, rh)
}

func TestSandbox_Views(t *testing.T) {
	s := createTestSandbox(t, Options{})
	side, top := s.views()

	pos := s.world.Body[s.Player()].Position
	assert.Equal(t, axisY, side.v)
	assert.Equal(t, axisZ, top.v)
	assert.Equal(t, pos.X(), top.centerU)
	assert.Equal(t, pos.Z(), top.centerV)
	assert.False(t, side.bounds.Overlaps(top.bounds))
}
