package bloch_test

import (
	"context"
	"math"
	"testing"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/plot"
	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RenderAllGates(t *testing.T) {
	eng, err := bloch.New()
	require.NoError(t, err)

	want := map[gate.Symbol]qubit.Vector{
		gate.I: {Z: 1},
		gate.X: {Z: -1},
		gate.Y: {Z: -1},
		gate.Z: {Z: 1},
		gate.H: {X: 1},
		gate.S: {Z: 1},
		gate.T: {Z: 1},
	}

	for _, sym := range gate.All() {
		t.Run(sym.String(), func(t *testing.T) {
			scene, err := eng.Render(context.Background(), bloch.Request{Gate: sym})
			require.NoError(t, err)

			assert.Equal(t, sym, scene.Gate)
			assert.Equal(t, qubit.ProjectionFull, scene.Projection)
			assert.True(t, scene.State.IsNormalized())
			assert.InDelta(t, want[sym].X, scene.Vector.X, 1e-12)
			assert.InDelta(t, want[sym].Y, scene.Vector.Y, 1e-12)
			assert.InDelta(t, want[sym].Z, scene.Vector.Z, 1e-12)
			assert.NotEmpty(t, scene.Description)
			assert.NotEmpty(t, scene.Circuit)
			assert.NotEmpty(t, scene.CircuitPNG)
			assert.Len(t, scene.Figure.Data, 2)
		})
	}
}

func TestEngine_LegacyProjection(t *testing.T) {
	eng, err := bloch.New(bloch.WithProjection(qubit.ProjectionLegacy))
	require.NoError(t, err)

	r := 1 / math.Sqrt2
	want := map[gate.Symbol]qubit.Vector{
		gate.I: {X: 1},
		gate.X: {Y: 1},
		gate.Y: {},
		gate.Z: {X: 1},
		gate.H: {X: r, Y: r},
		gate.S: {X: 1},
		gate.T: {X: 1},
	}
	for sym, v := range want {
		scene, err := eng.Render(context.Background(), bloch.Request{Gate: sym, SkipImage: true})
		require.NoError(t, err)
		assert.InDelta(t, v.X, scene.Vector.X, 1e-12, sym)
		assert.InDelta(t, v.Y, scene.Vector.Y, 1e-12, sym)
		assert.Equal(t, 0.0, scene.Vector.Z, sym)
		assert.Empty(t, scene.CircuitPNG)
	}
}

func TestEngine_ProjectionOverride(t *testing.T) {
	eng, err := bloch.New()
	require.NoError(t, err)

	scene, err := eng.Render(context.Background(), bloch.Request{Gate: gate.H, Projection: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, qubit.ProjectionLegacy, scene.Projection)
	assert.InDelta(t, 1/math.Sqrt2, scene.Vector.X, 1e-12)

	_, err = eng.Render(context.Background(), bloch.Request{Gate: gate.H, Projection: "polar"})
	assert.ErrorIs(t, err, qubit.ErrUnknownProjection)
}

func TestEngine_RenderIsRepeatable(t *testing.T) {
	eng, err := bloch.New()
	require.NoError(t, err)

	a, err := eng.Render(context.Background(), bloch.Request{Gate: gate.T})
	require.NoError(t, err)
	b, err := eng.Render(context.Background(), bloch.Request{Gate: gate.T})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEngine_Hooks(t *testing.T) {
	var events []bloch.RenderEvent
	eng, err := bloch.New(bloch.WithHooks(bloch.Hooks{
		OnRender: func(ctx context.Context, e bloch.RenderEvent) {
			events = append(events, e)
		},
	}))
	require.NoError(t, err)

	_, err = eng.Render(context.Background(), bloch.Request{Gate: gate.S})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, gate.S, events[0].Gate)
	assert.Equal(t, qubit.ProjectionFull, events[0].Projection)
	assert.NoError(t, events[0].Err)
}

func TestEngine_CanceledContext(t *testing.T) {
	eng, err := bloch.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = eng.Render(ctx, bloch.Request{Gate: gate.X})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_UnknownGatePanics(t *testing.T) {
	eng, err := bloch.New()
	require.NoError(t, err)
	assert.Panics(t, func() {
		_, _ = eng.Render(context.Background(), bloch.Request{Gate: "CX"})
	})
}

func TestNew_Validation(t *testing.T) {
	_, err := bloch.New(bloch.WithProjection("polar"))
	assert.ErrorIs(t, err, qubit.ErrUnknownProjection)

	s := plot.DefaultSphere()
	s.Radius = 0
	_, err = bloch.New(bloch.WithSphere(s))
	assert.Error(t, err)

	s = plot.DefaultSphere()
	s.Resolution = 1
	_, err = bloch.New(bloch.WithSphere(s))
	assert.Error(t, err)
}

func TestScene_Readout(t *testing.T) {
	scene := &bloch.Scene{Vector: qubit.Vector{X: 1, Y: 0, Z: -0.5}}
	assert.Equal(t, "x: 1\ny: 0\nz: -0.5\n", scene.Readout())
}

func TestScene_ReadoutRoundsNoise(t *testing.T) {
	eng, err := bloch.New()
	require.NoError(t, err)
	scene, err := eng.Render(context.Background(), bloch.Request{Gate: gate.H, SkipImage: true})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, scene.Vector.X, 1e-12)
	assert.Equal(t, "x: 1\ny: 0\nz: 0\n", scene.Readout())
}

func TestScene_MarkdownMatchesCatalog(t *testing.T) {
	entry := gate.MustLookup(gate.S)
	scene := &bloch.Scene{Name: entry.Name, Description: entry.Description}
	assert.Equal(t, entry.Markdown(), scene.Markdown())
}

func TestVersion(t *testing.T) {
	assert.Regexp(t, `^\d+\.\d+\.\d+\s*$`, bloch.Version)
}
