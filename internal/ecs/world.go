package ecs

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/domain/entity"
	"github.com/younwookim/kinetic/internal/infrastructure/config"
	"github.com/younwookim/kinetic/internal/logger"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Body      map[EntityID]*entity.Body
	Resolver  map[EntityID]*system.Resolver
	Camera    map[EntityID]*entity.Camera
	Input     map[EntityID]*system.InputSystem
	Character map[EntityID]Character

	// Stage is the collision world shared by every character (may be nil)
	Stage *entity.Stage

	log *slog.Logger
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Body:      make(map[EntityID]*entity.Body),
		Resolver:  make(map[EntityID]*system.Resolver),
		Camera:    make(map[EntityID]*entity.Camera),
		Input:     make(map[EntityID]*system.InputSystem),
		Character: make(map[EntityID]Character),
		log:       logger.L(),
	}
}

// SetLogger replaces the logger handed to resolvers created afterwards
func (w *World) SetLogger(l *slog.Logger) {
	w.log = l
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity, including its body collider
func (w *World) DestroyEntity(id EntityID) {
	if c, ok := w.Character[id]; ok && w.Stage != nil && c.Collider != entity.NoCollider {
		w.Stage.RemoveCollider(c.Collider)
	}
	delete(w.Body, id)
	delete(w.Resolver, id)
	delete(w.Camera, id)
	delete(w.Input, id)
	delete(w.Character, id)
}

// Exists checks if an entity has a Character component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Character[id]
	return ok
}

// Entities returns every live entity in ascending ID order
func (w *World) Entities() []EntityID {
	seen := make(map[EntityID]struct{}, len(w.Character))
	for id := range w.Character {
		seen[id] = struct{}{}
	}
	for id := range w.Body {
		seen[id] = struct{}{}
	}
	for id := range w.Resolver {
		seen[id] = struct{}{}
	}
	ids := make([]EntityID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CreateCharacter creates a character driven by mode. When the world has a
// stage, the body gets its own collider on cfg.BodyLayer and the resolver
// sweeps against the stage.
func (w *World) CreateCharacter(cfg config.CharacterConfig, mode system.MovementMode, dt float64) EntityID {
	cfg = cfg.WithDefaults()
	id := w.NewEntity()

	capsule := system.Capsule{
		Height: cfg.Capsule.Height,
		Radius: cfg.Capsule.Radius,
		Skin:   cfg.Capsule.Skin,
	}
	body := entity.NewBody(cfg.Spawn.Vec(), cfg.Mass)
	camera := &entity.Camera{Yaw: cfg.CameraYaw()}

	var world system.WorldQuery
	collider := entity.NoCollider
	if w.Stage != nil {
		collider = w.Stage.AddCollider(entity.Collider{
			Name:  cfg.Name,
			Layer: cfg.BodyLayer,
			Box:   body.CapsuleBox(capsule.Height, capsule.Radius),
		})
		body.Root = collider
		world = w.Stage
	}

	rc := system.ResolverConfig{
		Capsule:              capsule,
		GroundCheckRadius:    cfg.GroundCheckRadius,
		Mask:                 cfg.Mask(),
		Triggers:             entity.TriggersIgnore,
		SpeedMultiplier:      cfg.SpeedMultiplier,
		JumpStrengthModifier: cfg.JumpStrengthModifier,
		DeltaTime:            dt,
	}
	resolver := system.NewResolver(rc, body, mode, world, camera)
	resolver.SetLogger(w.log.With("entity", uint64(id), "name", cfg.Name))

	w.Body[id] = body
	w.Resolver[id] = resolver
	w.Camera[id] = camera
	w.Input[id] = system.NewInputSystem()
	w.Character[id] = Character{
		Name:     cfg.Name,
		Mode:     cfg.Mode,
		Capsule:  capsule,
		Spawn:    body.Position,
		Collider: collider,
	}
	return id
}

// BuildCharacter creates a character from config, resolving its mode by name
func (w *World) BuildCharacter(cfg config.CharacterConfig, modes map[string]system.MovementMode, dt float64) (EntityID, error) {
	mode, ok := modes[cfg.Mode]
	if !ok {
		return 0, fmt.Errorf("character %s: unknown mode %q", cfg.Name, cfg.Mode)
	}
	return w.CreateCharacter(cfg, mode, dt), nil
}

// BuildCharacters creates every character in cfg, in order
func (w *World) BuildCharacters(cfg *config.CharactersConfig, modes map[string]system.MovementMode, dt float64) ([]EntityID, error) {
	ids := make([]EntityID, 0, len(cfg.Characters))
	for _, c := range cfg.Characters {
		id, err := w.BuildCharacter(c, modes, dt)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Respawn moves a character back to its spawn point and clears its momentum
func (w *World) Respawn(id EntityID) bool {
	body, ok := w.Body[id]
	if !ok {
		return false
	}
	c := w.Character[id]
	body.Move(c.Spawn, body.Rotation)
	body.ResetVelocity()
	if r, ok := w.Resolver[id]; ok {
		r.OverrideVelocity(mgl64.Vec3{})
	}
	w.syncCollider(id)
	return true
}

// syncCollider moves the character's body collider to the body's position
func (w *World) syncCollider(id EntityID) {
	c, ok := w.Character[id]
	if !ok || w.Stage == nil || c.Collider == entity.NoCollider {
		return
	}
	body, ok := w.Body[id]
	if !ok {
		return
	}
	w.Stage.SetBox(c.Collider, body.CapsuleBox(c.Capsule.Height, c.Capsule.Radius))
}
