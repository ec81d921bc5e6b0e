package planner

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"shutterplan/pkg/guide"
	"shutterplan/pkg/model"
	"shutterplan/pkg/suntimes"
)

// assemble merges the synthesized content into the final task record.
func (p *Planner) assemble(params *model.SessionParams, rt model.Route, steps, prompts []string,
	weatherSummary string, sun *suntimes.Times, now time.Time) *model.Task {

	task := &model.Task{
		ID:    uuid.NewString(),
		Date:  now.Format("2006-01-02 15:04"),
		Title: fmt.Sprintf("%s %s @ %s", titleCase(params.TimeOfDay), titleCase(params.PhotoType), params.Location),
		Summary: fmt.Sprintf("%s session in %s | %s + %s | %d mins | Checklist: %d steps",
			params.PhotoType, params.Location, params.Camera, params.Lens(), params.DurationMin, len(steps)),
		WhenWhere: fmt.Sprintf("%s (%d min) | %s", titleCase(params.TimeOfDay), params.DurationMin, params.Location),

		PhotoType:     params.PhotoType,
		Camera:        params.Camera,
		Lens:          params.Lens(),
		Gear:          gearString(params),
		LensRationale: guide.LensRationale(params.Lens()),

		ExposurePresets:    guide.ExposurePresets(params.IsDigital, params.FilmISO, params.TimeOfDay),
		Steps:              steps,
		CompositionPrompts: prompts,
		Contingencies:      guide.Contingencies(params),
		SuccessCriteria:    guide.SuccessCriteria(params.PhotoType, params.DurationMin),
		SafetyNote:         guide.SafetyNote(params.PhotoType, params.Location, params.TimeOfDay),
		ColorMode:          params.ColorMode,

		WeatherSummary: weatherSummary,
	}

	for _, stop := range rt.Stops {
		task.POIIDs = append(task.POIIDs, stop.POI.ID)
		task.POINames = append(task.POINames, stop.POI.Name)
	}
	task.TotalDistanceM = rt.TotalMeters()

	if sun != nil {
		task.Sunrise = sun.Sunrise
		task.Sunset = sun.Sunset
	}
	return task
}

// gearString summarizes the kit, including the film stock and ISO for analog
// sessions.
func gearString(params *model.SessionParams) string {
	gear := fmt.Sprintf("%s + %s; %s", params.Camera, params.Lens(), params.ColorMode)
	if params.IsDigital {
		return gear + "; RAW+JPEG recommended"
	}
	stock := params.FilmStock
	if stock == "" {
		stock = "Film"
	}
	iso := params.FilmISO
	if iso == "" {
		iso = "400"
	}
	return fmt.Sprintf("%s; %s @ ISO %s", gear, stock, iso)
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(f)
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}
