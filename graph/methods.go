package graph

import (
	"math"
	"sort"
)

// AddVertex inserts v as an isolated vertex if absent.
// Returns ErrNegativeVertex for v < 0.
//
// Complexity: O(1).
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return ErrNegativeVertex
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(v)

	return nil
}

// AddEdge inserts the undirected edge {u, v} with the given weight,
// creating missing endpoints. An existing edge is overwritten.
//
// Errors: ErrNegativeVertex, ErrSelfLoop, ErrBadWeight.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, weight float64) error {
	if u < 0 || v < 0 {
		return ErrNegativeVertex
	}
	if u == v {
		return ErrSelfLoop
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(u)
	g.ensure(v)
	g.adj[u][v] = weight
	g.adj[v][u] = weight

	return nil
}

// RemoveEdge deletes the edge {u, v}. Endpoints remain.
// Returns ErrEdgeNotFound if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)

	return nil
}

// RemoveVertex deletes v and every edge incident to it.
// Returns ErrVertexNotFound if v is absent.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	nbrs, ok := g.adj[v]
	if !ok {
		return ErrVertexNotFound
	}
	for u := range nbrs {
		delete(g.adj[u], v)
	}
	delete(g.adj, v)

	return nil
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]

	return ok
}

// HasEdge reports whether the edge {u, v} exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of edge {u, v} and whether it exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]

	return w, ok
}

// Neighbors returns the sorted neighbor set of v (nil if v is absent
// or isolated).
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs := g.adj[v]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]int, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// Vertices returns every vertex in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Edges returns every edge exactly once, sorted by (U, V), with U < V.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var out []Edge
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, nbrs := range g.adj {
		total += len(nbrs)
	}

	return total / 2
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := &Graph{adj: make(map[int]map[int]float64, len(g.adj))}
	for v, nbrs := range g.adj {
		cp := make(map[int]float64, len(nbrs))
		for u, w := range nbrs {
			cp[u] = w
		}
		c.adj[v] = cp
	}

	return c
}

// ensure inserts v with an empty neighbor map if absent.
// Callers must hold g.mu.
func (g *Graph) ensure(v int) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[int]float64)
	}
}
