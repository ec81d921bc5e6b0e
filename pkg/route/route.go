// Package route sequences candidate POIs into a walkable stop order using
// greedy nearest-neighbor selection over great-circle distance.
package route

import (
	"github.com/paulmach/orb"

	"shutterplan/pkg/classify"
	"shutterplan/pkg/geo"
	"shutterplan/pkg/model"
)

// Stop-cap bands by session duration. Policy constants, not derived physics.
const (
	shortSessionMin  = 60
	mediumSessionMin = 150
)

// MaxStops returns the stop cap for a session duration in minutes.
func MaxStops(durationMin int) int {
	switch {
	case durationMin <= shortSessionMin:
		return 1
	case durationMin <= mediumSessionMin:
		return 2
	default:
		return 3
	}
}

// Build constructs a route from the origin through up to maxStops candidates.
// Starting at the origin, the nearest unvisited candidate is appended and
// becomes the new position, until maxStops stops are chosen or candidates run
// out. Ties keep the earliest candidate, so output is deterministic for a
// fixed input order. Each stop carries its classified category and the
// walking distance from the previous position.
func Build(candidates []model.POI, origin orb.Point, maxStops int) model.Route {
	if maxStops <= 0 || len(candidates) == 0 {
		return model.Route{}
	}

	pool := make([]model.POI, len(candidates))
	copy(pool, candidates)

	var stops []model.Stop
	pos := origin
	for len(stops) < maxStops && len(pool) > 0 {
		best := 0
		bestDist := geo.Distance(pos, pool[0].Pt)
		for i := 1; i < len(pool); i++ {
			if d := geo.Distance(pos, pool[i].Pt); d < bestDist {
				best, bestDist = i, d
			}
		}

		chosen := pool[best]
		stops = append(stops, model.Stop{
			POI:       chosen,
			Category:  classify.Category(&chosen),
			LegMeters: bestDist,
		})
		pos = chosen.Pt
		pool = append(pool[:best], pool[best+1:]...)
	}

	return model.Route{Stops: stops}
}
