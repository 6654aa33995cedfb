package cities

import "sort"

// DefaultMaxDistanceKm is the radius used when the caller gives none.
const DefaultMaxDistanceKm = 250

// NearbyCity is a suggestion returned by NearbyCities.
type NearbyCity struct {
	City     string  `json:"city"`
	Distance float64 `json:"distance"`
}

// NearbyCities returns the direct neighbors of destination within
// maxDistanceKm (inclusive), closest first. Only single-hop neighbors are
// considered. An unknown or empty destination yields an empty result.
func NearbyCities(g *Graph, destination string, maxDistanceKm float64) ([]NearbyCity, error) {
	if g == nil {
		return nil, ErrNotAGraph
	}

	list, ok := g.adj[destination]
	if !ok {
		return []NearbyCity{}, nil
	}

	result := make([]NearbyCity, 0, len(list))

	for _, n := range list {
		if n.Distance <= maxDistanceKm {
			result = append(result, NearbyCity{City: n.To, Distance: n.Distance})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Distance < result[j].Distance
	})

	return result, nil
}

// NearbyCitiesFor is NearbyCities for destinations decoded from untyped input.
// Anything other than a string yields an empty result.
func NearbyCitiesFor(g *Graph, destination any, maxDistanceKm float64) ([]NearbyCity, error) {
	if g == nil {
		return nil, ErrNotAGraph
	}

	name, ok := destination.(string)
	if !ok {
		return []NearbyCity{}, nil
	}

	return NearbyCities(g, name, maxDistanceKm)
}
