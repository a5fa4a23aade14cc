// Package graph provides a generic directed-acyclic-graph helper for cycle
// detection and topological layering. The transaction planner does not use
// it; its CycleError is presented by internal/errors.Translate.
package graph

import (
	"fmt"
	"maps"
	"slices"
)

// DAG is a directed graph over a comparable node type, e.g. pkgkey.Key.
type DAG[T comparable] struct {
	nodes    map[T]struct{}
	edges    map[T]map[T]struct{}
	inDegree map[T]int
}

// New creates an empty DAG.
func New[T comparable]() *DAG[T] {
	return &DAG[T]{
		nodes:    make(map[T]struct{}),
		edges:    make(map[T]map[T]struct{}),
		inDegree: make(map[T]int),
	}
}

// AddNode registers a node. Adding the same node twice is a no-op.
func (g *DAG[T]) AddNode(n T) {
	if _, exists := g.nodes[n]; exists {
		return
	}
	g.nodes[n] = struct{}{}
	g.inDegree[n] = 0
}

// AddEdge records that from depends on to. Both nodes must already be
// registered via AddNode; AddEdge panics otherwise, since a dependency
// edge to an unknown node means the caller built the graph out of order.
func (g *DAG[T]) AddEdge(from, to T) {
	if _, exists := g.nodes[from]; !exists {
		panic(fmt.Sprintf("graph: node %v does not exist", from))
	}
	if _, exists := g.nodes[to]; !exists {
		panic(fmt.Sprintf("graph: node %v does not exist", to))
	}

	if g.edges[from] == nil {
		g.edges[from] = make(map[T]struct{})
	}
	if _, exists := g.edges[from][to]; !exists {
		g.edges[from][to] = struct{}{}
		g.inDegree[from]++
	}
}

type nodeColor int

const (
	white nodeColor = iota
	gray
	black
)

// DetectCycle returns the first cycle found as a path of nodes ending
// back where it started, or nil if the graph is acyclic. It uses
// three-color depth-first search.
func (g *DAG[T]) DetectCycle() []T {
	color := make(map[T]nodeColor, len(g.nodes))
	parent := make(map[T]T, len(g.nodes))

	var cycle []T

	var dfs func(node T) bool
	dfs = func(node T) bool {
		color[node] = gray

		for dep := range g.edges[node] {
			if color[dep] == gray {
				cycle = []T{dep}
				for curr := node; curr != dep; curr = parent[curr] {
					cycle = append(cycle, curr)
				}
				cycle = append(cycle, dep)
				slices.Reverse(cycle)
				return true
			}
			if color[dep] == white {
				parent[dep] = node
				if dfs(dep) {
					return true
				}
			}
		}

		color[node] = black
		return false
	}

	for id := range g.nodes {
		if color[id] == white {
			if dfs(id) {
				return cycle
			}
		}
	}

	return nil
}

// Layer is a set of nodes with no dependency relationship between them —
// safe to execute in any order, or in parallel, relative to one another.
type Layer[T comparable] struct {
	Nodes []T
}

// TopologicalSort returns the graph's nodes grouped into dependency
// layers using Kahn's algorithm: layer 0 has no dependencies, layer N
// depends only on nodes in layers < N. Within a layer, nodes are
// returned in the order supplied by less, for deterministic output.
func (g *DAG[T]) TopologicalSort(less func(a, b T) bool) ([]Layer[T], error) {
	if cycle := g.DetectCycle(); cycle != nil {
		return nil, NewCycleError(cycle)
	}

	inDegree := make(map[T]int, len(g.inDegree))
	maps.Copy(inDegree, g.inDegree)

	reverseEdges := make(map[T][]T, len(g.nodes))
	for from, deps := range g.edges {
		for dep := range deps {
			reverseEdges[dep] = append(reverseEdges[dep], from)
		}
	}

	layers := make([]Layer[T], 0, len(g.nodes))

	queue := make([]T, 0, len(g.nodes))
	for id, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		layer := Layer[T]{Nodes: make([]T, 0, len(queue))}
		nextQueue := make([]T, 0, len(g.nodes))

		for _, id := range queue {
			layer.Nodes = append(layer.Nodes, id)

			for _, dependent := range reverseEdges[id] {
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					nextQueue = append(nextQueue, dependent)
				}
			}
		}

		if less != nil {
			slices.SortFunc(layer.Nodes, func(a, b T) int {
				switch {
				case less(a, b):
					return -1
				case less(b, a):
					return 1
				default:
					return 0
				}
			})
		}

		layers = append(layers, layer)
		queue = nextQueue
	}

	return layers, nil
}

// NodeCount returns the number of registered nodes.
func (g *DAG[T]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of registered edges.
func (g *DAG[T]) EdgeCount() int {
	count := 0
	for _, deps := range g.edges {
		count += len(deps)
	}
	return count
}
