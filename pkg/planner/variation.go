package planner

import (
	"strings"

	"shutterplan/pkg/model"
)

// VariationMarker is appended to the title when a repeat triggers a re-roll.
const VariationMarker = " (Weekly Variation)"

// isRecentRepeat reports whether a task with the same photo type and location
// was generated within the trailing window. The location is the segment after
// the last "|" of the when/where field, trimmed and lower-cased. Entries
// missing either field are skipped rather than matched.
func isRecentRepeat(task *model.Task, past []model.Task, window int) bool {
	if len(past) == 0 {
		return false
	}

	newKey := repeatKey(task.PhotoType, task.WhenWhere)
	start := len(past) - window
	if start < 0 {
		start = 0
	}
	for _, t := range past[start:] {
		if t.PhotoType == "" || t.WhenWhere == "" {
			continue
		}
		if repeatKey(t.PhotoType, t.WhenWhere) == newKey {
			return true
		}
	}
	return false
}

func repeatKey(photoType, whenWhere string) [2]string {
	parts := strings.Split(whenWhere, "|")
	loc := strings.TrimSpace(parts[len(parts)-1])
	return [2]string{strings.ToLower(photoType), strings.ToLower(loc)}
}

// generateVariation reshuffles the task's creative content in place and tags
// it as a rotation. Called at most once per generation.
func (p *Planner) generateVariation(task *model.Task) {
	if len(task.Steps) > 3 {
		p.rng.Shuffle(len(task.Steps), func(i, j int) {
			task.Steps[i], task.Steps[j] = task.Steps[j], task.Steps[i]
		})
	}

	if len(task.ExposurePresets) > 3 {
		exp := append([]string(nil), task.ExposurePresets...)
		p.rng.Shuffle(len(exp), func(i, j int) { exp[i], exp[j] = exp[j], exp[i] })
		if len(exp) > 4 {
			exp = exp[:4]
		}
		task.ExposurePresets = exp
	}

	if len(task.CompositionPrompts) > 1 {
		p.rng.Shuffle(len(task.CompositionPrompts), func(i, j int) {
			task.CompositionPrompts[i], task.CompositionPrompts[j] = task.CompositionPrompts[j], task.CompositionPrompts[i]
		})
	}

	task.Title += VariationMarker
	task.Summary += " | Rotated creative variation for repeat location."
}
