package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kessho-pm/kessho/internal/graph"
)

func TestTopologicalSortOrdersLayers(t *testing.T) {
	g := graph.New[string]()
	for _, n := range []string{"app", "lib-a", "lib-b", "lib-c"} {
		g.AddNode(n)
	}
	g.AddEdge("app", "lib-a")
	g.AddEdge("app", "lib-b")
	g.AddEdge("lib-a", "lib-c")
	g.AddEdge("lib-b", "lib-c")

	layers, err := g.TopologicalSort(func(a, b string) bool { return a < b })
	require.NoError(t, err)
	require.Len(t, layers, 3)
	assert.Equal(t, []string{"lib-c"}, layers[0].Nodes)
	assert.Equal(t, []string{"lib-a", "lib-b"}, layers[1].Nodes)
	assert.Equal(t, []string{"app"}, layers[2].Nodes)
}

func TestDetectCycle(t *testing.T) {
	g := graph.New[string]()
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	cycle := g.DetectCycle()
	assert.NotEmpty(t, cycle)

	_, err := g.TopologicalSort(nil)
	require.Error(t, err)
	var cycleErr *graph.CycleError[string]
	assert.ErrorAs(t, err, &cycleErr)
}

func TestAddEdgeUnknownNodePanics(t *testing.T) {
	g := graph.New[string]()
	g.AddNode("a")
	assert.Panics(t, func() {
		g.AddEdge("a", "missing")
	})
}

func TestNodeAndEdgeCount(t *testing.T) {
	g := graph.New[int]()
	g.AddNode(1)
	g.AddNode(2)
	g.AddEdge(1, 2)
	g.AddEdge(1, 2) // duplicate, must not double-count
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}
