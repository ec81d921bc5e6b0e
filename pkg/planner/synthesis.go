package planner

import (
	"fmt"
	"strings"

	"shutterplan/pkg/guide"
	"shutterplan/pkg/model"
)

// Caps on synthesized content.
const (
	maxLocSteps     = 5
	maxMergedPrompt = 7
	maxSpotsShown   = 3
)

// synthesize builds the checklist and composition prompts for a session. The
// checklist layers, front to back: curated suggested spots, the first stop's
// focus header, routed stop guidance, curated or universal location steps,
// and the duration-scaled base steps.
func (p *Planner) synthesize(params *model.SessionParams, rt model.Route, weatherSummary string) ([]string, []string) {
	locData := guide.AnalyzeLocation(params.Location)

	var stopSteps, stopPrompts []string
	for i, stop := range rt.Stops {
		b := guide.StopBundle(stop.Category, stop.POI.Name, params.TimeOfDay, weatherSummary)
		if i == 0 {
			steps := b.Steps
			if len(steps) > maxLocSteps {
				steps = steps[:maxLocSteps]
			}
			stopSteps = append(stopSteps, steps...)
		} else {
			stopSteps = append(stopSteps,
				fmt.Sprintf("Walk %.0f m to %s and work the scene", stop.LegMeters, stopName(&stop)))
			for _, s := range b.Steps[:min(2, len(b.Steps))] {
				stopSteps = append(stopSteps, s)
			}
		}
		for _, pr := range b.Prompts {
			stopPrompts = appendUnique(stopPrompts, pr)
		}
	}

	var steps []string
	if len(stopSteps) > 0 {
		steps = append(steps, stopSteps...)
	} else if len(locData.SpecificSteps) > 0 {
		locSteps := locData.SpecificSteps
		if len(locSteps) > maxLocSteps {
			locSteps = locSteps[:maxLocSteps]
		}
		steps = append(steps, locSteps...)
	}
	steps = append(steps, baseSteps(params.DurationMin)...)

	if len(rt.Stops) > 0 {
		steps = append([]string{"Focus location: " + stopName(&rt.Stops[0])}, steps...)
	}
	if len(locData.SuggestedSpots) > 0 {
		spots := locData.SuggestedSpots
		if len(spots) > maxSpotsShown {
			spots = spots[:maxSpotsShown]
		}
		steps = append([]string{"Suggested spots: " + strings.Join(spots, ", ")}, steps...)
	}

	if len(params.Lenses) == 2 {
		steps = p.assignLenses(steps, params.Lenses[0], params.Lenses[1])
	}

	prompts := guide.CompositionPrompts(p.rng, params.PhotoType)
	for _, pr := range stopPrompts {
		prompts = appendUnique(prompts, pr)
	}
	if len(prompts) > maxMergedPrompt {
		prompts = prompts[:maxMergedPrompt]
	}

	return steps, prompts
}

func stopName(s *model.Stop) string {
	if s.POI.Name != "" {
		return s.POI.Name
	}
	return "(unnamed " + string(s.Category) + ")"
}

// baseSteps is the generic checklist, lengthened for longer sessions.
func baseSteps(durationMin int) []string {
	steps := []string{
		"Scout area for 5-10 minutes",
		"Shoot 1 wide establishing shot",
		"Capture 3 strong details/textures",
		"Find 2 human/motion moments",
		"Experiment with 2 unusual angles",
	}
	if durationMin > 60 {
		steps = append(steps,
			"Create 1 storytelling sequence of 3-5 frames",
			"Look for reflections and abstract compositions")
	}
	if durationMin > 120 {
		steps = append(steps,
			"Photograph a subject from 3 different perspectives (near/mid/far)",
			"Dedicate 15 mins to a single scene, working multiple variations")
	}
	if durationMin > 240 {
		steps = append(steps,
			"Focus on a thematic series (shadows, reflections, gestures, etc.)",
			"Build a mini-project: 12 images that could tell a story together",
			"Review work mid-session and adjust approach")
	}
	return steps
}

// Keyword sets for two-lens step assignment.
var (
	wideKeywords = []string{"wide", "scout", "environment", "establishing", "series", "story"}
	teleKeywords = []string{"detail", "texture", "compression", "tele", "isolate", "long"}
)

// assignLenses suffixes each non-header step with a lens pick: the shorter
// focal length for wide-leaning steps, the longer for tele-leaning ones, and
// a coin flip for steps matching neither set.
func (p *Planner) assignLenses(steps []string, a, b model.Lens) []string {
	wide, tele := a, b
	if b.FocalLengthMM < a.FocalLengthMM {
		wide, tele = b, a
	}

	out := make([]string, len(steps))
	for i, step := range steps {
		if strings.HasPrefix(step, "Suggested spots:") || strings.HasPrefix(step, "Focus location:") {
			out[i] = step
			continue
		}
		var lens model.Lens
		switch {
		case matchesAny(step, wideKeywords):
			lens = wide
		case matchesAny(step, teleKeywords):
			lens = tele
		case p.rng.Intn(2) == 0:
			lens = wide
		default:
			lens = tele
		}
		out[i] = fmt.Sprintf("%s (%s)", step, lens.Label)
	}
	return out
}

func matchesAny(step string, keywords []string) bool {
	lower := strings.ToLower(step)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func appendUnique(dst []string, s string) []string {
	for _, have := range dst {
		if have == s {
			return dst
		}
	}
	return append(dst, s)
}
