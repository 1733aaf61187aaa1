package replay

import (
	"errors"

	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/ecs"
)

// ErrNoCharacter is returned when a headless run has nothing to drive
var ErrNoCharacter = errors.New("world has no character")

// RunHeadless drives the world's first character through every remaining
// recorded frame at a fixed step of dt and returns that character's last report.
// Recorded respawns are applied before their tick.
// Other characters are stepped with idle input.
func RunHeadless(w *ecs.World, r *Replayer, dt float64) (ecs.StepReport, error) {
	ids := w.Entities()
	if len(ids) == 0 {
		return ecs.StepReport{}, ErrNoCharacter
	}
	target := ids[0]

	ms := ecs.NewMovementSystem()
	last := ecs.StepReport{ID: target}
	for frame := 0; ; frame++ {
		in, ok := r.Next()
		if !ok {
			break
		}
		if in.Respawn {
			w.Respawn(target)
		}
		if cam, ok := w.Camera[target]; ok {
			cam.Yaw = in.Yaw
		}

		reports := ms.Update(w, map[ecs.EntityID]system.RawInput{target: in.Raw}, system.Tick{Time: float64(frame) * dt, DeltaTime: dt})
		for _, rep := range reports {
			if rep.ID == target {
				last = rep
			}
		}
	}
	return last, nil
}
