package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Sort(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"yield.poll", "yield", "yield.thread", "yield.fs"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("yield", "yield.thread"))
	require.NoError(t, g.AddEdge("yield.thread", "yield.poll"))
	require.NoError(t, g.AddEdge("yield.fs", "yield.poll"))
	require.NoError(t, g.AddEdge("yield", "yield.fs"))
	require.NoError(t, g.AddEdge("yield", "yield.fs"))

	sorted, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"yield", "yield.fs", "yield.thread", "yield.poll"}, sorted)
	assert.Equal(t, []string{"yield"}, g.Dependencies("yield.fs"))
}

func TestGraph_Cycle(t *testing.T) {
	g := NewGraph()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNode("c")
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "a"))

	assert.Equal(t, []string{"a", "b", "c", "a"}, g.Cycle())
	_, err := g.Sort()
	assert.True(t, errors.Is(err, ErrCycle))
}

func TestGraph_Reaches(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"yield", "yield.thread", "yield.poll", "yield.fs"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("yield", "yield.thread"))
	require.NoError(t, g.AddEdge("yield.thread", "yield.poll"))

	assert.True(t, g.Reaches("yield", "yield.poll"))
	assert.True(t, g.Reaches("yield.fs", "yield.fs"))
	assert.False(t, g.Reaches("yield.poll", "yield"))
	assert.False(t, g.Reaches("yield", "yield.fs"))
}

func TestGraph_AddEdge_Invalid(t *testing.T) {
	g := NewGraph()
	g.AddNode("a")
	assert.Error(t, g.AddEdge("a", "missing"))
	assert.Error(t, g.AddEdge("missing", "a"))
	assert.ErrorIs(t, g.AddEdge("a", "a"), ErrCycle)
}
