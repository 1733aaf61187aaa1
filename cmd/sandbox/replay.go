package main

import (
	"fmt"
	"io"

	"github.com/younwookim/kinetic/internal/application/replay"
	"github.com/younwookim/kinetic/internal/ecs"
)

// runHeadless plays data back on w without a window and writes the final pose to out
func runHeadless(w *ecs.World, data *replay.Data, dt float64, out io.Writer) (ecs.StepReport, error) {
	r := replay.NewReplayer(*data)
	report, err := replay.RunHeadless(w, r, r.Timestep(dt))
	if err != nil {
		return report, fmt.Errorf("failed to replay: %w", err)
	}

	p, v := report.Position, report.Velocity
	fmt.Fprintf(out, "frames=%d stage=%s\n", r.TotalFrames(), data.Stage)
	fmt.Fprintf(out, "position=(%.6f, %.6f, %.6f)\n", p.X(), p.Y(), p.Z())
	fmt.Fprintf(out, "velocity=(%.6f, %.6f, %.6f)\n", v.X(), v.Y(), v.Z())
	fmt.Fprintf(out, "state=%s grounded=%t ground=%d\n", report.State, report.Grounded, report.Ground)
	return report, nil
}
