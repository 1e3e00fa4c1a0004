package bloch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/bloch/internal/presentation/circuit"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/plot"
	"github.com/aretw0/bloch/pkg/qubit"
)

// Request selects what to render.
type Request struct {
	Gate gate.Symbol
	// Projection overrides the engine default when non-empty.
	Projection qubit.Projection
	// SkipImage leaves Scene.CircuitPNG empty, for callers that fetch the
	// diagram separately.
	SkipImage bool
}

// RenderEvent is passed to Hooks.OnRender after every render pass.
type RenderEvent struct {
	Gate       gate.Symbol
	Projection qubit.Projection
	Duration   time.Duration
	Err        error
}

// Hooks are optional observers of the render pipeline.
type Hooks struct {
	OnRender func(ctx context.Context, e RenderEvent)
}

// Engine is the high-level entry point of the explorer.
type Engine struct {
	projection qubit.Projection
	sphere     plot.Sphere
	hooks      Hooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithProjection sets the default projection (default: qubit.ProjectionFull).
func WithProjection(p qubit.Projection) Option {
	return func(e *Engine) {
		e.projection = p
	}
}

// WithSphere configures the reference sphere of the figure.
func WithSphere(s plot.Sphere) Option {
	return func(e *Engine) {
		e.sphere = s
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		projection: qubit.ProjectionFull,
		sphere:     plot.DefaultSphere(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	p, err := qubit.ParseProjection(string(eng.projection))
	if err != nil {
		return nil, err
	}
	eng.projection = p

	if eng.sphere.Radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", eng.sphere.Radius)
	}
	if eng.sphere.Resolution < 2 {
		return nil, fmt.Errorf("sphere resolution must be at least 2, got %d", eng.sphere.Resolution)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return eng, nil
}

// Projection returns the engine's default projection.
func (e *Engine) Projection() qubit.Projection {
	return e.projection
}

// Catalog returns the gates the engine can render.
func (e *Engine) Catalog() []gate.Entry {
	return gate.Catalog()
}

// Evaluate returns the state obtained by applying sym to |0>.
// It panics if sym is not a catalog symbol.
func (e *Engine) Evaluate(sym gate.Symbol) qubit.State {
	return qubit.Evaluate(gate.MustLookup(sym).Unitary)
}

// Render runs one full pass of the pipeline for req.
// The gate must come from gate.Parse or gate.All; other symbols panic.
func (e *Engine) Render(ctx context.Context, req Request) (*Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proj := e.projection
	if req.Projection != "" {
		p, err := qubit.ParseProjection(string(req.Projection))
		if err != nil {
			return nil, err
		}
		proj = p
	}

	start := time.Now()
	scene, err := e.render(req, proj)
	elapsed := time.Since(start)

	if e.hooks.OnRender != nil {
		e.hooks.OnRender(ctx, RenderEvent{
			Gate:       req.Gate,
			Projection: proj,
			Duration:   elapsed,
			Err:        err,
		})
	}
	if err != nil {
		e.logger.Error("render failed", "gate", req.Gate, "projection", proj, "err", err)
		return nil, err
	}

	e.logger.Debug("rendered",
		"gate", req.Gate,
		"projection", proj,
		"x", scene.Vector.X,
		"y", scene.Vector.Y,
		"z", scene.Vector.Z,
		"duration", elapsed,
	)
	return scene, nil
}

func (e *Engine) render(req Request, proj qubit.Projection) (*Scene, error) {
	entry := gate.MustLookup(req.Gate)
	state := qubit.Evaluate(entry.Unitary)
	vec := qubit.Project(state, proj)

	scene := &Scene{
		Gate:        entry.Symbol,
		Name:        entry.Name,
		Description: entry.Description,
		Family:      entry.Family,
		Projection:  proj,
		State:       state,
		Vector:      vec,
		Figure:      plot.NewFigure(vec, e.sphere),
		Circuit:     circuit.Text(entry.Symbol),
	}

	if !req.SkipImage {
		img, err := circuit.PNG(entry.Symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		scene.CircuitPNG = img
	}
	return scene, nil
}
