// Package cities holds the city adjacency graph used for nearby-destination
// suggestions. A graph is built once from a validated dataset and is read-only
// afterwards, so concurrent queries need no locking.
package cities

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and lookups.
var (
	ErrInvalidCityName = errors.New("city name must be a non-empty string")
	ErrUnknownCity     = errors.New("unknown city")
	ErrInvalidDistance = errors.New("distance must be a finite number >= 0")
	ErrNotAGraph       = errors.New("graph is required")
)

// Neighbor is one directed half of an undirected edge.
type Neighbor struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Graph is an undirected weighted graph over city names. Each undirected edge
// is stored as two half-edges, one in each endpoint's adjacency list.
type Graph struct {
	adj   map[string][]Neighbor
	order []string
	edges int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]Neighbor)}
}

// AddCity adds a city. Adding an existing city is a no-op.
func (g *Graph) AddCity(name string) error {
	if name == "" {
		return ErrInvalidCityName
	}

	if _, ok := g.adj[name]; ok {
		return nil
	}

	g.adj[name] = []Neighbor{}
	g.order = append(g.order, name)

	return nil
}

// AddEdge connects two existing cities with an undirected edge.
func (g *Graph) AddEdge(from, to string, distance float64) error {
	if _, ok := g.adj[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCity, from)
	}

	if _, ok := g.adj[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCity, to)
	}

	if !validDistance(distance) {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, distance)
	}

	g.adj[from] = append(g.adj[from], Neighbor{To: to, Distance: distance})
	g.adj[to] = append(g.adj[to], Neighbor{To: from, Distance: distance})
	g.edges++

	return nil
}

// Neighbors returns a copy of the city's adjacency list.
func (g *Graph) Neighbors(city string) ([]Neighbor, error) {
	list, ok := g.adj[city]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	result := make([]Neighbor, len(list))
	copy(result, list)

	return result, nil
}

// HasCity reports whether the city is in the graph.
func (g *Graph) HasCity(city string) bool {
	_, ok := g.adj[city]
	return ok
}

// Cities returns city names in insertion order.
func (g *Graph) Cities() []string {
	result := make([]string, len(g.order))
	copy(result, g.order)

	return result
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Catalog summarizes a graph for listing.
type Catalog struct {
	Cities []string `json:"cities"`
	Roads  int      `json:"roads"`
}

// Catalog returns the city names in insertion order and the road count.
func (g *Graph) Catalog() Catalog {
	return Catalog{Cities: g.Cities(), Roads: g.edges}
}

// BuildGraph adds every city, then every edge, in slice order. Input is
// expected to have passed ValidateGraphData; it is not re-validated here.
func BuildGraph(cityNames []string, edges []EdgeSpec) (*Graph, error) {
	g := NewGraph()

	for _, c := range cityNames {
		if err := g.AddCity(c); err != nil {
			return nil, err
		}
	}

	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Distance); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func validDistance(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}
