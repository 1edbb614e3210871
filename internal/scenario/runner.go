package scenario

import (
	"context"
	"log/slog"

	"github.com/mr1hm/go-impact-sim/internal/material"
	"github.com/mr1hm/go-impact-sim/internal/models"
	"github.com/mr1hm/go-impact-sim/internal/physics"
	"github.com/mr1hm/go-impact-sim/internal/worker"
)

// Outcome pairs a preset with its computed result.
type Outcome struct {
	Preset Preset
	Result models.ImpactResult
	Err    error
}

// Runner evaluates presets through a worker pool. The engine is pure, so
// concurrent evaluation needs no locking.
type Runner struct {
	materials  *material.Registry
	numWorkers int
	bufferSize int
}

func NewRunner(materials *material.Registry, numWorkers, bufferSize int) *Runner {
	return &Runner{
		materials:  materials,
		numWorkers: numWorkers,
		bufferSize: bufferSize,
	}
}

// Params expands a preset into engine parameters, resolving the material
// key through the registry.
func (r *Runner) Params(p Preset) models.ImpactParameters {
	return models.ImpactParameters{
		DiameterM:      p.DiameterM,
		VelocityMS:     p.VelocityMS,
		DensityKgM3:    r.materials.Density(p.Material),
		ImpactAngleDeg: p.AngleDeg,
		TargetSurface:  p.Surface,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
	}
}

type job struct {
	idx    int
	preset Preset
}

type indexed struct {
	idx int
	out Outcome
}

// Run evaluates the given presets concurrently and returns outcomes in
// input order.
func (r *Runner) Run(ctx context.Context, presets []Preset) []Outcome {
	process := func(ctx context.Context, j job) indexed {
		res, err := physics.Calculate(r.Params(j.preset))
		if err != nil {
			slog.Error("preset evaluation failed", "preset", j.preset.Key, "error", err)
		} else {
			slog.Debug("preset evaluated",
				"preset", j.preset.Key,
				"energy_mt", res.EnergyMegatons,
				"severity", res.Assessment.Severity)
		}
		return indexed{idx: j.idx, out: Outcome{Preset: j.preset, Result: res, Err: err}}
	}

	pool := worker.NewPool(r.numWorkers, r.bufferSize, process)
	pool.Start(ctx)

	go func() {
		for i, p := range presets {
			pool.Submit(job{idx: i, preset: p})
		}
		pool.Stop()
	}()

	outcomes := make([]Outcome, len(presets))
	for res := range pool.Results() {
		outcomes[res.idx] = res.out
	}
	return outcomes
}
