package route

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"

	"shutterplan/pkg/geo"
	"shutterplan/pkg/model"
)

func poiAt(id string, lat, lon float64) model.POI {
	return model.POI{ID: id, Name: id, Pt: orb.Point{lon, lat}}
}

func TestMaxStopsBands(t *testing.T) {
	cases := []struct {
		duration int
		want     int
	}{
		{15, 1}, {60, 1}, {61, 2}, {150, 2}, {151, 3}, {360, 3},
	}
	for _, c := range cases {
		if got := MaxStops(c.duration); got != c.want {
			t.Errorf("MaxStops(%d) = %d, want %d", c.duration, got, c.want)
		}
	}
}

func TestBuildGreedyOrder(t *testing.T) {
	origin := orb.Point{0, 0}
	// far is closest to origin's antipode of near; expected order by
	// nearest-neighbor from origin: a (closest), then b (closest to a),
	// then c.
	a := poiAt("a", 0.001, 0)
	b := poiAt("b", 0.002, 0)
	c := poiAt("c", 0.010, 0)

	// Feed in scrambled order.
	r := Build([]model.POI{c, b, a}, origin, 3)
	if len(r.Stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(r.Stops))
	}
	gotOrder := []string{r.Stops[0].POI.ID, r.Stops[1].POI.ID, r.Stops[2].POI.ID}
	wantOrder := []string{"a", "b", "c"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("order = %v, want %v", gotOrder, wantOrder)
		}
	}
}

func TestBuildGreedyProperty(t *testing.T) {
	origin := orb.Point{144.9631, -37.8136}
	var candidates []model.POI
	for i := 0; i < 10; i++ {
		candidates = append(candidates, poiAt(fmt.Sprintf("p%d", i),
			-37.8136+float64(i%5)*0.003, 144.9631+float64(i%3)*0.002))
	}

	r := Build(candidates, origin, len(candidates))

	// Each stop must be the nearest remaining candidate to the previous
	// position.
	pos := origin
	remaining := map[string]model.POI{}
	for _, c := range candidates {
		remaining[c.ID] = c
	}
	for i, s := range r.Stops {
		minDist := -1.0
		for _, c := range remaining {
			d := geo.Distance(pos, c.Pt)
			if minDist < 0 || d < minDist {
				minDist = d
			}
		}
		if got := geo.Distance(pos, s.POI.Pt); got > minDist+1e-9 {
			t.Errorf("stop %d (%s) at distance %f, nearest remaining was %f", i, s.POI.ID, got, minDist)
		}
		delete(remaining, s.POI.ID)
		pos = s.POI.Pt
	}
}

func TestBuildCapInvariant(t *testing.T) {
	origin := orb.Point{0, 0}
	var candidates []model.POI
	for i := 0; i < 5; i++ {
		candidates = append(candidates, poiAt(fmt.Sprintf("p%d", i), float64(i)*0.001, 0))
	}

	for _, k := range []int{0, 1, 3, 5, 10} {
		r := Build(candidates, origin, k)
		want := k
		if want > len(candidates) {
			want = len(candidates)
		}
		if len(r.Stops) != want {
			t.Errorf("cap %d: got %d stops, want %d", k, len(r.Stops), want)
		}
		seen := map[string]bool{}
		for _, s := range r.Stops {
			if seen[s.POI.ID] {
				t.Errorf("cap %d: duplicate POI %s", k, s.POI.ID)
			}
			seen[s.POI.ID] = true
		}
	}
}

func TestBuildLegDistances(t *testing.T) {
	origin := orb.Point{0, 0}
	a := poiAt("a", 0.001, 0)
	b := poiAt("b", 0.002, 0)

	r := Build([]model.POI{a, b}, origin, 2)
	if len(r.Stops) != 2 {
		t.Fatal("expected 2 stops")
	}
	// First leg from origin, second leg from the first stop.
	wantFirst := geo.Distance(origin, a.Pt)
	wantSecond := geo.Distance(a.Pt, b.Pt)
	if r.Stops[0].LegMeters != wantFirst {
		t.Errorf("first leg = %f, want %f", r.Stops[0].LegMeters, wantFirst)
	}
	if r.Stops[1].LegMeters != wantSecond {
		t.Errorf("second leg = %f, want %f", r.Stops[1].LegMeters, wantSecond)
	}
	if total := r.TotalMeters(); total != wantFirst+wantSecond {
		t.Errorf("total = %f, want %f", total, wantFirst+wantSecond)
	}
}

func TestBuildDeterministicTieBreak(t *testing.T) {
	origin := orb.Point{0, 0}
	// Two candidates equidistant from the origin.
	east := poiAt("east", 0, 0.001)
	west := poiAt("west", 0, -0.001)

	r1 := Build([]model.POI{east, west}, origin, 1)
	r2 := Build([]model.POI{east, west}, origin, 1)
	if r1.Stops[0].POI.ID != r2.Stops[0].POI.ID {
		t.Error("tie-break not deterministic for identical input")
	}
	// Earliest candidate wins on ties.
	if r1.Stops[0].POI.ID != "east" {
		t.Errorf("tie-break chose %s, want east (input order)", r1.Stops[0].POI.ID)
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	if r := Build(nil, orb.Point{0, 0}, 3); len(r.Stops) != 0 {
		t.Error("expected empty route for no candidates")
	}
	if r := Build([]model.POI{poiAt("a", 1, 1)}, orb.Point{0, 0}, 0); len(r.Stops) != 0 {
		t.Error("expected empty route for zero cap")
	}
}
