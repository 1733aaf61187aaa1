package ecs

import (
	"log/slog"

	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/logger"
)

// MovementSystem steps every character's resolver once per tick
type MovementSystem struct {
	log *slog.Logger
}

// NewMovementSystem creates a movement system logging through the global logger
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{log: logger.L()}
}

// SetLogger replaces the system's logger
func (s *MovementSystem) SetLogger(l *slog.Logger) {
	s.log = l
}

// Update samples each character's input and processes the characters in
// ascending ID order. Entities without raw input get an idle input. An entity
// missing its body or resolver is reported as skipped and never stops the rest.
func (s *MovementSystem) Update(w *World, raw map[EntityID]system.RawInput, tick system.Tick) []StepReport {
	ids := w.Entities()
	reports := make([]StepReport, 0, len(ids))

	for _, id := range ids {
		reports = append(reports, s.step(w, id, raw[id], tick))
	}
	return reports
}

func (s *MovementSystem) step(w *World, id EntityID, raw system.RawInput, tick system.Tick) StepReport {
	report := StepReport{ID: id}

	body, ok := w.Body[id]
	if !ok {
		return s.skip(report, "no body")
	}
	resolver, ok := w.Resolver[id]
	if !ok {
		return s.skip(report, "no resolver")
	}
	input, ok := w.Input[id]
	if !ok {
		input = system.NewInputSystem()
		w.Input[id] = input
	}

	f := resolver.Process(input.Sample(raw, tick.DeltaTime), tick)
	if f == nil {
		return s.skip(report, "not processed")
	}
	w.syncCollider(id)

	report.Position = body.Position
	report.Rotation = body.Rotation
	report.Velocity = f.FinalVelocity()
	report.State = f.State
	report.Grounded = f.FinalGrounded
	report.Ground = f.FinalGround
	return report
}

func (s *MovementSystem) skip(report StepReport, reason string) StepReport {
	s.log.Warn("character skipped", "entity", uint64(report.ID), "reason", reason)
	report.Skipped = true
	report.Reason = reason
	return report
}
