// Package model defines the core domain types shared across the planner.
package model

import (
	"time"

	"github.com/paulmach/orb"
)

// Location is a resolved geocoding result.
type Location struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
	Source      string  `json:"source"` // provider that resolved it, e.g. "Google Maps"
}

// Point returns the location as an orb.Point (lon, lat order).
func (l *Location) Point() orb.Point {
	return orb.Point{l.Lon, l.Lat}
}

// POI is a candidate photographic stop near the session location.
type POI struct {
	// ID is provider-scoped and stable across requests. OSM entries use
	// "<type>/<id>" (e.g. "node/123"), Google entries use the place_id.
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Pt   orb.Point `json:"pt"` // lon, lat

	// Tags holds raw OSM tags for Overpass results.
	Tags map[string]string `json:"tags,omitempty"`
	// GoogleTypes holds the type list for Google Places results.
	GoogleTypes []string `json:"google_types,omitempty"`
	FromGoogle  bool     `json:"from_google,omitempty"`
}

// Lat returns the POI latitude.
func (p *POI) Lat() float64 { return p.Pt[1] }

// Lon returns the POI longitude.
func (p *POI) Lon() float64 { return p.Pt[0] }

// Category is one of the fixed photography-relevant POI categories.
type Category string

// The closed category set. Classification always yields one of these.
const (
	CatViewpoint   Category = "viewpoint"
	CatMuseumArt   Category = "museum_art"
	CatMarket      Category = "market"
	CatPark        Category = "park"
	CatCoast       Category = "coast"
	CatBridgePier  Category = "bridge_pier"
	CatMall        Category = "mall"
	CatHospitality Category = "hospitality"
	CatGeneral     Category = "general"
)

// Stop is one routed POI with the walking distance from the previous
// position (the session origin for the first stop).
type Stop struct {
	POI       POI      `json:"poi"`
	Category  Category `json:"category"`
	LegMeters float64  `json:"leg_meters"`
}

// Route is the ordered walkable stop sequence.
type Route struct {
	Stops []Stop `json:"stops"`
}

// TotalMeters sums the leg distances of all stops.
func (r *Route) TotalMeters() float64 {
	var total float64
	for _, s := range r.Stops {
		total += s.LegMeters
	}
	return total
}

// TimeOfDay buckets supported by the session form.
const (
	TimeMorning    = "morning"
	TimeMidday     = "midday"
	TimeGoldenHour = "golden hour"
	TimeBlueHour   = "blue hour"
	TimeNight      = "night"
)

// Lens describes a lens option with an explicit focal length so the
// wide/tele step assignment can compare numbers instead of label text.
// Zooms carry their long end.
type Lens struct {
	Label         string `json:"label"`
	FocalLengthMM int    `json:"focal_length_mm"`
}

// SessionParams is the caller-supplied request. Immutable once built.
type SessionParams struct {
	PhotoType string `json:"photo_type"`
	Location  string `json:"location"`
	Camera    string `json:"camera"`
	Lenses    []Lens `json:"lenses"` // one or two

	TimeOfDay   string `json:"time_of_day"`
	DurationMin int    `json:"duration"`
	Lighting    string `json:"lighting"`
	Weather     string `json:"weather"`
	ColorMode   string `json:"color_mode"` // "Color" or "Black & White"

	IsDigital bool   `json:"is_digital"`
	FilmStock string `json:"film_stock"`
	FilmISO   string `json:"film_iso"`

	Constraints string `json:"constraints"`
}

// Lens returns the primary lens label (empty when no lens was supplied).
func (p *SessionParams) Lens() string {
	if len(p.Lenses) == 0 {
		return ""
	}
	return p.Lenses[0].Label
}

// Task is the generated practice task, persisted to history.
type Task struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // "2006-01-02 15:04"
	Title   string `json:"title"`
	Summary string `json:"summary"`

	WhenWhere     string `json:"when_where"`
	PhotoType     string `json:"photo_type"`
	Camera        string `json:"camera"`
	Lens          string `json:"lens"`
	Gear          string `json:"gear"`
	LensRationale string `json:"lens_rationale"`

	ExposurePresets    []string `json:"exposure_presets"`
	Steps              []string `json:"steps"`
	CompositionPrompts []string `json:"composition_prompts"`
	Contingencies      string   `json:"contingencies"`
	SuccessCriteria    []string `json:"success_criteria"`
	SafetyNote         string   `json:"safety_note"`
	ColorMode          string   `json:"color_mode"`

	POIIDs         []string `json:"poi_ids,omitempty"`
	POINames       []string `json:"poi_names,omitempty"`
	TotalDistanceM float64  `json:"total_distance_m,omitempty"`
	WeatherSummary string   `json:"weather_summary,omitempty"`

	Sunrise string `json:"sunrise,omitempty"`
	Sunset  string `json:"sunset,omitempty"`
}

// CreatedOn reports whether the task's date falls on the given day.
func (t *Task) CreatedOn(day time.Time) bool {
	return len(t.Date) >= 10 && t.Date[:10] == day.Format("2006-01-02")
}
