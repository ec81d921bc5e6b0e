// Package planner runs the full task generation pipeline: location
// resolution, POI acquisition and routing, guidance synthesis, generic
// content selection, task assembly and repeat suppression. Network failures
// degrade the output; only structurally invalid session parameters return an
// error.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"shutterplan/pkg/model"
	"shutterplan/pkg/route"
	"shutterplan/pkg/suntimes"
)

// DefaultRadiusM is the POI search radius when the config does not set one.
const DefaultRadiusM = 800

// repeatWindow is the trailing history window checked for repeats.
const repeatWindow = 7

// Resolver turns free-text locations into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, query string) (*model.Location, error)
}

// POIFinder fetches candidate stops around a point.
type POIFinder interface {
	Fetch(ctx context.Context, lat, lon float64, radiusM int) []model.POI
}

// WeatherService summarizes current conditions, empty string on failure.
type WeatherService interface {
	Current(ctx context.Context, lat, lon float64) string
}

// SunClient looks up sunrise/sunset for a date.
type SunClient interface {
	Times(ctx context.Context, lat, lon float64, date string) (*suntimes.Times, error)
}

// HistoryReader provides past tasks for repeat and same-day POI checks.
type HistoryReader interface {
	Load() []model.Task
}

// Options wires a Planner. Resolver, Finder, Weather and Sun may be nil; the
// pipeline then skips the corresponding enrichment.
type Options struct {
	Resolver Resolver
	Finder   POIFinder
	Weather  WeatherService
	Sun      SunClient
	History  HistoryReader

	RadiusM int
	Seed    int64
	Now     func() time.Time
}

// Planner generates daily photography tasks.
type Planner struct {
	resolver Resolver
	finder   POIFinder
	weather  WeatherService
	sun      SunClient
	history  HistoryReader

	radiusM int
	rng     *rand.Rand
	now     func() time.Time
}

// New builds a Planner. Seed 0 seeds from the clock; any other value makes
// output deterministic.
func New(opts Options) *Planner {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	radius := opts.RadiusM
	if radius <= 0 {
		radius = DefaultRadiusM
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Planner{
		resolver: opts.Resolver,
		finder:   opts.Finder,
		weather:  opts.Weather,
		sun:      opts.Sun,
		history:  opts.History,
		radiusM:  radius,
		rng:      rand.New(rand.NewSource(seed)),
		now:      now,
	}
}

// Generate runs the pipeline and returns a fully populated task.
func (p *Planner) Generate(ctx context.Context, params *model.SessionParams) (*model.Task, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	now := p.now()
	past := p.loadHistory()

	loc := p.resolve(ctx, params.Location)

	var (
		rt             model.Route
		weatherSummary string
		sun            *suntimes.Times
	)
	if loc != nil {
		weatherSummary = p.currentWeather(ctx, loc)
		sun = p.sunTimes(ctx, loc, now)

		candidates := p.fetchCandidates(ctx, loc, past, now)
		rt = route.Build(candidates, loc.Point(), route.MaxStops(params.DurationMin))
	}

	steps, prompts := p.synthesize(params, rt, weatherSummary)

	task := p.assemble(params, rt, steps, prompts, weatherSummary, sun, now)
	if isRecentRepeat(task, past, repeatWindow) {
		slog.Info("repeat location+type within window, generating variation",
			"photo_type", task.PhotoType, "location", params.Location)
		p.generateVariation(task)
	}
	return task, nil
}

func validate(params *model.SessionParams) error {
	if params == nil {
		return errors.New("session parameters required")
	}
	var missing []string
	if params.PhotoType == "" {
		missing = append(missing, "photo_type")
	}
	if params.Location == "" {
		missing = append(missing, "location")
	}
	if params.Camera == "" {
		missing = append(missing, "camera")
	}
	if len(missing) > 0 {
		return fmt.Errorf("session parameters missing: %s", strings.Join(missing, ", "))
	}
	if params.DurationMin <= 0 {
		return fmt.Errorf("duration must be positive, got %d", params.DurationMin)
	}
	return nil
}

func (p *Planner) loadHistory() []model.Task {
	if p.history == nil {
		return nil
	}
	return p.history.Load()
}

func (p *Planner) resolve(ctx context.Context, location string) *model.Location {
	if p.resolver == nil {
		return nil
	}
	loc, err := p.resolver.Resolve(ctx, location)
	if err != nil {
		slog.Warn("location resolution failed, using static guides", "location", location, "error", err)
		return nil
	}
	return loc
}

func (p *Planner) currentWeather(ctx context.Context, loc *model.Location) string {
	if p.weather == nil {
		return ""
	}
	return p.weather.Current(ctx, loc.Lat, loc.Lon)
}

func (p *Planner) sunTimes(ctx context.Context, loc *model.Location, now time.Time) *suntimes.Times {
	if p.sun == nil {
		return nil
	}
	sun, err := p.sun.Times(ctx, loc.Lat, loc.Lon, now.Format("2006-01-02"))
	if err != nil {
		slog.Debug("sun times unavailable", "error", err)
		return nil
	}
	return sun
}

// fetchCandidates pulls nearby POIs and drops any already used earlier the
// same calendar day.
func (p *Planner) fetchCandidates(ctx context.Context, loc *model.Location, past []model.Task, now time.Time) []model.POI {
	if p.finder == nil {
		return nil
	}
	pois := p.finder.Fetch(ctx, loc.Lat, loc.Lon, p.radiusM)
	if len(pois) == 0 {
		return nil
	}

	usedToday := map[string]bool{}
	for i := range past {
		if !past[i].CreatedOn(now) {
			continue
		}
		for _, id := range past[i].POIIDs {
			usedToday[id] = true
		}
	}
	if len(usedToday) == 0 {
		return pois
	}

	var out []model.POI
	for _, poi := range pois {
		if !usedToday[poi.ID] {
			out = append(out, poi)
		}
	}
	return out
}
