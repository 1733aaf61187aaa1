package entity

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Collider is a static or kinematic box in the stage.
// Parent links colliders into hierarchies; a character ignores every collider
// that shares its root.
type Collider struct {
	ID      ColliderID
	Name    string
	Parent  ColliderID
	Layer   int
	Trigger bool
	Box     Box
}

// Stage is the collision world characters move through
type Stage struct {
	Name  string
	Spawn mgl64.Vec3

	colliders map[ColliderID]*Collider
	order     []ColliderID
	nextID    ColliderID
}

// NewStage creates an empty stage
func NewStage(name string) *Stage {
	return &Stage{
		Name:      name,
		colliders: make(map[ColliderID]*Collider),
		nextID:    1, // 0 is "none"
	}
}

// AddCollider adds c to the stage and returns its ID.
// A zero c.ID is replaced with the next free ID.
func (s *Stage) AddCollider(c Collider) ColliderID {
	if c.ID == NoCollider {
		c.ID = s.nextID
	}
	if c.ID >= s.nextID {
		s.nextID = c.ID + 1
	}
	if _, exists := s.colliders[c.ID]; !exists {
		s.order = append(s.order, c.ID)
		sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })
	}
	stored := c
	s.colliders[c.ID] = &stored
	return c.ID
}

// RemoveCollider removes a collider. Children keep their Parent link and become roots.
func (s *Stage) RemoveCollider(id ColliderID) {
	if _, ok := s.colliders[id]; !ok {
		return
	}
	delete(s.colliders, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetBox moves a collider's box
func (s *Stage) SetBox(id ColliderID, box Box) bool {
	c, ok := s.colliders[id]
	if !ok {
		return false
	}
	c.Box = box
	return true
}

// Collider returns a copy of the collider with the given ID
func (s *Stage) Collider(id ColliderID) (Collider, bool) {
	c, ok := s.colliders[id]
	if !ok {
		return Collider{}, false
	}
	return *c, true
}

// Colliders returns copies of all colliders in ascending ID order
func (s *Stage) Colliders() []Collider {
	out := make([]Collider, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.colliders[id])
	}
	return out
}

// Root returns the topmost ancestor of id
func (s *Stage) Root(id ColliderID) ColliderID {
	cur := id
	// bounded walk so a malformed parent cycle cannot hang the tick
	for i := 0; i <= len(s.colliders); i++ {
		c, ok := s.colliders[cur]
		if !ok || c.Parent == NoCollider {
			return cur
		}
		if _, ok := s.colliders[c.Parent]; !ok {
			return cur
		}
		cur = c.Parent
	}
	return cur
}

// IsChildOf reports whether id is ancestor or lies below it in the hierarchy
func (s *Stage) IsChildOf(id, ancestor ColliderID) bool {
	if ancestor == NoCollider {
		return false
	}
	cur := id
	for i := 0; i <= len(s.colliders); i++ {
		if cur == ancestor {
			return true
		}
		c, ok := s.colliders[cur]
		if !ok || c.Parent == NoCollider {
			return false
		}
		cur = c.Parent
	}
	return false
}

func (s *Stage) accepts(c *Collider, mask LayerMask, triggers TriggerInteraction) bool {
	if !mask.Contains(c.Layer) {
		return false
	}
	if c.Trigger && triggers == TriggersIgnore {
		return false
	}
	return true
}
