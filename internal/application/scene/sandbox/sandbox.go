// Package sandbox provides the interactive movement sandbox scene.
package sandbox

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/kinetic/internal/application/replay"
	"github.com/younwookim/kinetic/internal/application/scene"
	"github.com/younwookim/kinetic/internal/application/state"
	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/domain/movement"
	"github.com/younwookim/kinetic/internal/ecs"
	"github.com/younwookim/kinetic/internal/logger"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorPanel     = color.RGBA{34, 34, 58, 255}
	colorSolid     = color.RGBA{80, 80, 100, 255}
	colorGround    = color.RGBA{110, 110, 150, 255}
	colorTrigger   = color.RGBA{60, 140, 200, 90}
	colorCharacter = color.RGBA{100, 200, 100, 255}
	colorAirborne  = color.RGBA{200, 200, 100, 255}
	colorOther     = color.RGBA{200, 100, 100, 255}
	colorFacing    = color.RGBA{255, 255, 255, 220}
	colorVelocity  = color.RGBA{255, 160, 60, 220}
	colorOverlay   = color.RGBA{0, 0, 0, 128}
)

// cameraTurnRate is how fast J/L turn the camera, in radians per second
const cameraTurnRate = 2.0

// Options configures a sandbox scene
type Options struct {
	StageName string
	ScreenW   int
	ScreenH   int
	// PixelsPerMeter scales both views
	PixelsPerMeter float64
	Timestep       float64

	// RecordPath enables recording when not empty
	RecordPath string
	// Replayer drives the player from a recording instead of the keyboard
	Replayer *replay.Replayer
}

// Sandbox steps an ECS world at a fixed timestep and draws a side view (X/Y)
// and a top view (X/Z) of the stage and its characters.
type Sandbox struct {
	world    *ecs.World
	movement *ecs.MovementSystem
	player   ecs.EntityID

	state  state.SandboxState
	resume state.SandboxState
	frame  int
	dt     float64
	last   ecs.StepReport

	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer

	screenW int
	screenH int
	ppm     float64

	log *slog.Logger
}

// New creates a sandbox over world. The player is the world's first character.
func New(world *ecs.World, opts Options) *Sandbox {
	s := &Sandbox{
		world:      world,
		movement:   ecs.NewMovementSystem(),
		state:      state.StateRunning,
		dt:         opts.Timestep,
		recordPath: opts.RecordPath,
		replayer:   opts.Replayer,
		screenW:    opts.ScreenW,
		screenH:    opts.ScreenH,
		ppm:        opts.PixelsPerMeter,
		log:        logger.L(),
	}
	if s.dt <= 0 {
		s.dt = 1.0 / 60.0
	}
	if s.ppm <= 0 {
		s.ppm = 16
	}
	if ids := world.Entities(); len(ids) > 0 {
		s.player = ids[0]
	}
	if s.replayer != nil {
		s.state = state.StateReplaying
		s.dt = s.replayer.Timestep(s.dt)
	} else if opts.RecordPath != "" {
		s.recorder = replay.NewRecorder(opts.StageName, s.dt)
		s.log.Info("recording enabled", "path", opts.RecordPath)
	}
	return s
}

// SetLogger replaces the scene's logger and its movement system's
func (s *Sandbox) SetLogger(l *slog.Logger) {
	s.log = l
	s.movement.SetLogger(l)
}

func (s *Sandbox) Name() string               { return "sandbox" }
func (s *Sandbox) State() state.SandboxState  { return s.state }
func (s *Sandbox) Frame() int                 { return s.frame }
func (s *Sandbox) Player() ecs.EntityID       { return s.player }
func (s *Sandbox) LastReport() ecs.StepReport { return s.last }
func (s *Sandbox) Recorder() *replay.Recorder { return s.recorder }

// Update handles the sandbox keys and advances the simulation (implements scene.Scene)
func (s *Sandbox) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Finish()
		return nil, ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.state == state.StateRunning {
		s.Respawn()
	}

	switch s.state {
	case state.StateRunning:
		s.turnCamera()
		var raw system.RawInput
		if in, ok := s.world.Input[s.player]; ok {
			raw = in.ReadKeyboard()
		}
		s.Step(raw)
	case state.StateReplaying:
		s.replayStep()
	}
	return nil, nil
}

// Step advances the world by one fixed tick with raw driving the player
func (s *Sandbox) Step(raw system.RawInput) {
	if s.recorder != nil {
		yaw := 0.0
		if cam, ok := s.world.Camera[s.player]; ok {
			yaw = cam.Yaw
		}
		s.recorder.RecordFrame(raw, yaw)
	}

	tick := system.Tick{Time: float64(s.frame) * s.dt, DeltaTime: s.dt}
	reports := s.movement.Update(s.world, map[ecs.EntityID]system.RawInput{s.player: raw}, tick)
	s.frame++
	for _, r := range reports {
		if r.ID == s.player {
			s.last = r
		}
	}
}

// Respawn sends the player back to spawn. A recording picks it up on the next step.
func (s *Sandbox) Respawn() {
	if !s.world.Respawn(s.player) {
		return
	}
	if s.recorder != nil {
		s.recorder.MarkRespawn()
	}
}

func (s *Sandbox) replayStep() {
	in, ok := s.replayer.Next()
	if !ok {
		s.state = state.StateFinished
		s.log.Info("replay finished", "frames", s.replayer.TotalFrames(), "position", s.last.Position)
		return
	}
	if in.Respawn {
		s.world.Respawn(s.player)
	}
	if cam, ok := s.world.Camera[s.player]; ok {
		cam.Yaw = in.Yaw
	}
	s.Step(in.Raw)
}

func (s *Sandbox) turnCamera() {
	cam, ok := s.world.Camera[s.player]
	if !ok {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyJ) {
		cam.Turn(cameraTurnRate * s.dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyL) {
		cam.Turn(-cameraTurnRate * s.dt)
	}
}

// TogglePause pauses a running or replaying sandbox, or resumes a paused one
func (s *Sandbox) TogglePause() {
	switch s.state {
	case state.StateRunning, state.StateReplaying:
		s.resume = s.state
		s.state = state.StatePaused
	case state.StatePaused:
		s.state = s.resume
	}
}

// Finish stops the sandbox and saves the recording, if any
func (s *Sandbox) Finish() {
	if s.state == state.StateFinished && s.recorder == nil {
		return
	}
	s.state = state.StateFinished
	s.saveRecording()
}

func (s *Sandbox) saveRecording() {
	if s.recorder == nil {
		return
	}
	rec := s.recorder
	s.recorder = nil

	filename := s.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := rec.Save(filename); err != nil {
		if errors.Is(err, replay.ErrEmpty) {
			s.log.Warn("nothing recorded", "path", filename)
			return
		}
		s.log.Error("failed to save recording", "path", filename, "err", err)
		return
	}
	s.log.Info("recording saved", "path", filename, "frames", rec.FrameCount())
}

// Draw renders both views and the HUD
func (s *Sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	side, top := s.views()
	s.drawView(screen, side)
	s.drawView(screen, top)
	s.drawHUD(screen)

	if s.state == state.StatePaused {
		ebitenutil.DrawRect(screen, 0, 0, float64(s.screenW), float64(s.screenH), colorOverlay)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", s.screenW/2-50, s.screenH/2-20)
	}
}

// views returns the side (X/Y) and top (X/Z) views centered on the player
func (s *Sandbox) views() (side, top view) {
	var center mgl64.Vec3
	if body, ok := s.world.Body[s.player]; ok {
		center = body.Position
	}
	half := s.screenW / 2
	hudH := 16
	side = view{
		bounds:  image.Rect(0, hudH, half-1, s.screenH),
		u:       axisX,
		v:       axisY,
		ppm:     s.ppm,
		centerU: center.X(),
		centerV: center.Y() + 1,
	}
	top = view{
		bounds:  image.Rect(half+1, hudH, s.screenW, s.screenH),
		u:       axisX,
		v:       axisZ,
		ppm:     s.ppm,
		centerU: center.X(),
		centerV: center.Z(),
	}
	return side, top
}

func (s *Sandbox) drawView(screen *ebiten.Image, vw view) {
	dst := vw.clip(screen)
	dst.Fill(colorPanel)

	if stage := s.world.Stage; stage != nil {
		own := make(map[entity.ColliderID]bool, len(s.world.Character))
		for _, c := range s.world.Character {
			own[c.Collider] = true
		}
		for _, c := range stage.Colliders() {
			if own[c.ID] {
				continue
			}
			col := colorSolid
			switch {
			case c.Trigger:
				col = colorTrigger
			case c.ID == s.last.Ground && s.last.Grounded:
				col = colorGround
			}
			vw.fillBox(dst, c.Box, col)
		}
	}

	for _, id := range s.world.Entities() {
		s.drawCharacter(dst, vw, id)
	}
}

func (s *Sandbox) drawCharacter(dst *ebiten.Image, vw view, id ecs.EntityID) {
	body, ok := s.world.Body[id]
	if !ok {
		return
	}
	c := s.world.Character[id]

	col := colorOther
	if id == s.player {
		col = colorCharacter
		if !s.last.Grounded {
			col = colorAirborne
		}
	}
	if vw.v == axisY {
		vw.fillBox(dst, body.CapsuleBox(c.Capsule.Height, c.Capsule.Radius), col)
	} else {
		r := c.Capsule.Radius
		p := body.Position
		vw.fillBox(dst, entity.Box{
			Min: mgl64.Vec3{p.X() - r, p.Y(), p.Z() - r},
			Max: mgl64.Vec3{p.X() + r, p.Y(), p.Z() + r},
		}, col)
	}

	// facing and velocity from the body's mid height
	mid := body.Position.Add(movement.Up.Mul(c.Capsule.Height / 2))
	face := mid.Add(body.Rotation.Rotate(movement.Forward))
	vw.line(dst, mid[vw.u], mid[vw.v], face[vw.u], face[vw.v], colorFacing)
	if id == s.player {
		vel := mid.Add(s.last.Velocity.Mul(0.1))
		vw.line(dst, mid[vw.u], mid[vw.v], vel[vw.u], vel[vw.v], colorVelocity)
	}
}

func (s *Sandbox) drawHUD(screen *ebiten.Image) {
	r := s.last
	rec := ""
	if s.recorder != nil {
		rec = fmt.Sprintf(" REC %d", s.recorder.FrameCount())
	}
	hud := fmt.Sprintf("%s f=%d pos=(%.2f,%.2f,%.2f) v=(%.2f,%.2f,%.2f) %s%s",
		s.state, s.frame,
		r.Position.X(), r.Position.Y(), r.Position.Z(),
		r.Velocity.X(), r.Velocity.Y(), r.Velocity.Z(),
		r.State, rec)
	ebitenutil.DebugPrint(screen, hud)
	ebitenutil.DebugPrintAt(screen, "WASD move | Space jump | Shift run | E dash | J/L camera | R respawn | P pause | Esc quit",
		2, s.screenH-16)
}

// OnEnter is called when entering this scene
func (s *Sandbox) OnEnter() {
	s.log.Info("sandbox started", "state", s.state, "entities", len(s.world.Entities()), "dt", s.dt)
}

// OnExit is called when leaving this scene
func (s *Sandbox) OnExit() {
	s.Finish()
}

var _ scene.Scene = (*Sandbox)(nil)
