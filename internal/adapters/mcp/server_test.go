package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/bloch"
	"github.com/aretw0/bloch/pkg/gate"
	"github.com/aretw0/bloch/pkg/qubit"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := bloch.New()
	require.NoError(t, err)
	return NewServer(eng)
}

func TestHandleRenderGate(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleRenderGate(context.Background(), mcp.CallToolRequest{}, renderArgs{Gate: "x"})
	require.NoError(t, err)
	assert.Equal(t, "X", res.Gate)
	assert.Equal(t, "full", res.Projection)
	assert.Equal(t, qubit.Vector{Z: -1}, res.Vector)
	require.Len(t, res.Amplitudes, 2)
	assert.Equal(t, qubit.Amplitude{Re: 1}, res.Amplitudes[1])
	assert.Equal(t, "q: ──[X]──", res.Circuit)
}

func TestHandleRenderGate_Legacy(t *testing.T) {
	s := newTestServer(t)
	res, err := s.handleRenderGate(context.Background(), mcp.CallToolRequest{}, renderArgs{Gate: "I", Projection: "legacy"})
	require.NoError(t, err)
	assert.Equal(t, qubit.Vector{X: 1}, res.Vector)
}

func TestHandleRenderGate_BadInput(t *testing.T) {
	s := newTestServer(t)

	_, err := s.handleRenderGate(context.Background(), mcp.CallToolRequest{}, renderArgs{Gate: "CNOT"})
	assert.ErrorIs(t, err, gate.ErrUnknownGate)

	_, err = s.handleRenderGate(context.Background(), mcp.CallToolRequest{}, renderArgs{Gate: "H", Projection: "polar"})
	assert.ErrorIs(t, err, qubit.ErrUnknownProjection)
}

func TestHandleListGates(t *testing.T) {
	s := newTestServer(t)
	res, err := s.handleListGates(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var entries []gate.Entry
	require.NoError(t, json.Unmarshal([]byte(text.Text), &entries))
	assert.Len(t, entries, 7)
}

func TestReadGates(t *testing.T) {
	s := newTestServer(t)
	contents, err := s.readGates(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, gatesURI, text.URI)
	assert.Contains(t, text.Text, `"symbol":"H"`)
}
